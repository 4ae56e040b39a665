package domain

// TransactionFilter narrows a ledger listing. Empty Type/Source mean no
// filter; unknown values are dropped by the service before they get here.
type TransactionFilter struct {
	Type   TransactionType
	Source TransactionSource
	Limit  int
	Offset int
}

type TransactionPage struct {
	Items  []WalletTransaction
	Total  int
	Limit  int
	Offset int
}

type PayoutPage struct {
	Items  []PayoutRequest
	Total  int
	Limit  int
	Offset int
}
