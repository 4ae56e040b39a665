package dto

import "time"

type WalletSummaryResponseDTO struct {
	ID               int     `json:"id" example:"1"`
	UserID           int     `json:"userId" example:"42"`
	AvailableBalance float64 `json:"availableBalance" example:"150.5"`
	PendingPayout    float64 `json:"pendingPayout" example:"40"`
	TotalEarnings    float64 `json:"totalEarnings" example:"320.5"`
}

type TransactionResponseDTO struct {
	ID          int                  `json:"id" example:"10"`
	Amount      float64              `json:"amount" example:"40"`
	Type        string               `json:"type" example:"CREDIT"`
	Source      string               `json:"source" example:"COURSE_SALE"`
	ReferenceID *int                 `json:"referenceId,omitempty" example:"3"`
	Metadata    *TransactionMetadata `json:"metadata,omitempty"`
	CreatedAt   time.Time            `json:"createdAt" example:"2024-11-02T15:04:05Z"`
}

type TransactionMetadata struct {
	Note     string `json:"note,omitempty" example:"October payout"`
	SaleID   string `json:"saleId,omitempty" example:"sale-8812"`
	RefundID string `json:"refundId,omitempty" example:"refund-112"`
	Actor    string `json:"actor,omitempty" example:"commerce"`
}

type TransactionListResponseDTO struct {
	Items  []TransactionResponseDTO `json:"items"`
	Total  int                      `json:"total" example:"57"`
	Limit  int                      `json:"limit" example:"20"`
	Offset int                      `json:"offset" example:"0"`
}

type CommerceEventRequestDTO struct {
	UserID   int                  `json:"userId" example:"42"`
	Amount   float64              `json:"amount" example:"25.5"`
	Metadata *TransactionMetadata `json:"metadata,omitempty"`
}
