package domain

type TransactionType string

const (
	TransactionCredit   TransactionType = "CREDIT"
	TransactionDebit    TransactionType = "DEBIT"
	TransactionUnfreeze TransactionType = "UNFREEZE"
)

func (t TransactionType) Valid() bool {
	switch t {
	case TransactionCredit, TransactionDebit, TransactionUnfreeze:
		return true
	}
	return false
}

type TransactionSource string

const (
	SourceCourseSale TransactionSource = "COURSE_SALE"
	SourceRefund     TransactionSource = "REFUND"
	SourcePayout     TransactionSource = "PAYOUT"
	SourceReversal   TransactionSource = "REVERSAL"
)

func (s TransactionSource) Valid() bool {
	switch s {
	case SourceCourseSale, SourceRefund, SourcePayout, SourceReversal:
		return true
	}
	return false
}

type MethodType string

const (
	MethodBankTransfer MethodType = "BANK_TRANSFER"
	MethodGrabPay      MethodType = "GRABPAY"
	MethodTouchNGo     MethodType = "TOUCH_N_GO"
	MethodPayPal       MethodType = "PAYPAL"
	MethodOther        MethodType = "OTHER"
)

func (m MethodType) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodGrabPay, MethodTouchNGo, MethodPayPal, MethodOther:
		return true
	}
	return false
}

type PayoutStatus string

const (
	StatusPending    PayoutStatus = "PENDING"
	StatusApproved   PayoutStatus = "APPROVED"
	StatusProcessing PayoutStatus = "PROCESSING"
	StatusPaid       PayoutStatus = "PAID"
	StatusRejected   PayoutStatus = "REJECTED"
)

func (s PayoutStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusProcessing, StatusPaid, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no review action may leave this status.
func (s PayoutStatus) Terminal() bool {
	return s == StatusPaid || s == StatusRejected
}
