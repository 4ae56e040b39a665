package domain

import "time"

type Wallet struct {
	ID               int       `db:"id"`
	UserID           int       `db:"user_id"`
	AvailableBalance float64   `db:"available_balance"`
	PendingPayout    float64   `db:"pending_payout"`
	TotalEarnings    float64   `db:"total_earnings"`
	CreatedAt        time.Time `db:"created_at"`
}

// WalletTransaction is an append-only ledger row: one per balance change,
// never updated or deleted.
type WalletTransaction struct {
	ID          int                  `db:"id"`
	WalletID    int                  `db:"wallet_id"`
	Amount      float64              `db:"amount"`
	Type        TransactionType      `db:"type"`
	Source      TransactionSource    `db:"source"`
	ReferenceID *int                 `db:"reference_id"`
	Metadata    *TransactionMetadata `db:"metadata"`
	CreatedAt   time.Time            `db:"created_at"`
}

type PayoutMethod struct {
	ID        int           `db:"id"`
	WalletID  int           `db:"wallet_id"`
	Type      MethodType    `db:"type"`
	Label     string        `db:"label"`
	Details   MethodDetails `db:"details"`
	IsDefault bool          `db:"is_default"`
	CreatedAt time.Time     `db:"created_at"`
}

type PayoutRequest struct {
	ID                int          `db:"id"`
	WalletID          int          `db:"wallet_id"`
	MethodID          *int         `db:"method_id"`
	Amount            float64      `db:"amount"`
	Status            PayoutStatus `db:"status"`
	Note              string       `db:"note"`
	AdminNote         string       `db:"admin_note"`
	ExternalReference string       `db:"external_reference"`
	RequestedAt       time.Time    `db:"requested_at"`
	ProcessedAt       *time.Time   `db:"processed_at"`

	// Method is the resolved payout method, populated on list reads.
	// Nil when the method was deleted after the request was filed.
	Method *PayoutMethod `db:"-"`
}

// MethodDetails is the structured shape behind the payout method's opaque
// details column. The ledger never interprets it; only the disbursing admin
// does.
type MethodDetails struct {
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	Provider      string `json:"provider,omitempty"`
	Phone         string `json:"phone,omitempty"`
}

// TransactionMetadata annotates a ledger row with the event that caused it.
type TransactionMetadata struct {
	Note     string `json:"note,omitempty"`
	SaleID   string `json:"saleId,omitempty"`
	RefundID string `json:"refundId,omitempty"`
	Actor    string `json:"actor,omitempty"`
}
