package dto

import "time"

type MethodDetails struct {
	AccountName   string `json:"accountName,omitempty" example:"Jane Teacher"`
	AccountNumber string `json:"accountNumber,omitempty" example:"1234567890"`
	BankName      string `json:"bankName,omitempty" example:"Maybank"`
	Provider      string `json:"provider,omitempty" example:"GrabPay"`
	Phone         string `json:"phone,omitempty" example:"+60123456789"`
}

type AddPayoutMethodRequestDTO struct {
	Type      string        `json:"type" example:"BANK_TRANSFER"`
	Label     string        `json:"label" example:"Maybank savings"`
	Details   MethodDetails `json:"details"`
	IsDefault bool          `json:"isDefault" example:"true"`
}

type UpdatePayoutMethodRequestDTO struct {
	Label     *string        `json:"label,omitempty" example:"Maybank current"`
	Details   *MethodDetails `json:"details,omitempty"`
	IsDefault *bool          `json:"isDefault,omitempty" example:"true"`
}

type PayoutMethodResponseDTO struct {
	ID        int           `json:"id" example:"2"`
	Type      string        `json:"type" example:"BANK_TRANSFER"`
	Label     string        `json:"label" example:"Maybank savings"`
	Details   MethodDetails `json:"details"`
	IsDefault bool          `json:"isDefault" example:"true"`
	CreatedAt time.Time     `json:"createdAt" example:"2024-11-02T15:04:05Z"`
}

type RequestPayoutRequestDTO struct {
	Amount   float64 `json:"amount" example:"40"`
	MethodID *int    `json:"methodId,omitempty" example:"2"`
	Note     string  `json:"note,omitempty" example:"October earnings"`
}

type PayoutRequestResponseDTO struct {
	ID                int                      `json:"id" example:"3"`
	Amount            float64                  `json:"amount" example:"40"`
	Status            string                   `json:"status" example:"PENDING"`
	Note              string                   `json:"note,omitempty" example:"October earnings"`
	AdminNote         string                   `json:"adminNote,omitempty" example:"verified"`
	ExternalReference string                   `json:"externalReference,omitempty" example:"tx-20241102-1"`
	Method            *PayoutMethodResponseDTO `json:"method,omitempty"`
	RequestedAt       time.Time                `json:"requestedAt" example:"2024-11-02T15:04:05Z"`
	ProcessedAt       *time.Time               `json:"processedAt,omitempty" example:"2024-11-04T10:00:00Z"`
}

type PayoutListResponseDTO struct {
	Items  []PayoutRequestResponseDTO `json:"items"`
	Total  int                        `json:"total" example:"4"`
	Limit  int                        `json:"limit" example:"20"`
	Offset int                        `json:"offset" example:"0"`
}

type ReviewPayoutRequestDTO struct {
	Action            string `json:"action" example:"approve"`
	AdminNote         string `json:"adminNote,omitempty" example:"verified bank details"`
	ExternalReference string `json:"externalReference,omitempty" example:"bank-batch-1142"`
}
