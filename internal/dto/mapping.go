package dto

import "github.com/edumarket/wallet/internal/domain"

func NewWalletSummaryResponse(w *domain.Wallet) WalletSummaryResponseDTO {
	return WalletSummaryResponseDTO{
		ID:               w.ID,
		UserID:           w.UserID,
		AvailableBalance: w.AvailableBalance,
		PendingPayout:    w.PendingPayout,
		TotalEarnings:    w.TotalEarnings,
	}
}

func NewTransactionMetadata(m *domain.TransactionMetadata) *TransactionMetadata {
	if m == nil {
		return nil
	}
	return &TransactionMetadata{
		Note:     m.Note,
		SaleID:   m.SaleID,
		RefundID: m.RefundID,
		Actor:    m.Actor,
	}
}

func (m *TransactionMetadata) ToDomain() *domain.TransactionMetadata {
	if m == nil {
		return nil
	}
	return &domain.TransactionMetadata{
		Note:     m.Note,
		SaleID:   m.SaleID,
		RefundID: m.RefundID,
		Actor:    m.Actor,
	}
}

func NewTransactionListResponse(page *domain.TransactionPage) TransactionListResponseDTO {
	items := make([]TransactionResponseDTO, len(page.Items))
	for i, t := range page.Items {
		items[i] = TransactionResponseDTO{
			ID:          t.ID,
			Amount:      t.Amount,
			Type:        string(t.Type),
			Source:      string(t.Source),
			ReferenceID: t.ReferenceID,
			Metadata:    NewTransactionMetadata(t.Metadata),
			CreatedAt:   t.CreatedAt,
		}
	}
	return TransactionListResponseDTO{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}

func NewMethodDetails(d domain.MethodDetails) MethodDetails {
	return MethodDetails{
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		BankName:      d.BankName,
		Provider:      d.Provider,
		Phone:         d.Phone,
	}
}

func (d MethodDetails) ToDomain() domain.MethodDetails {
	return domain.MethodDetails{
		AccountName:   d.AccountName,
		AccountNumber: d.AccountNumber,
		BankName:      d.BankName,
		Provider:      d.Provider,
		Phone:         d.Phone,
	}
}

func NewPayoutMethodResponse(m *domain.PayoutMethod) PayoutMethodResponseDTO {
	return PayoutMethodResponseDTO{
		ID:        m.ID,
		Type:      string(m.Type),
		Label:     m.Label,
		Details:   NewMethodDetails(m.Details),
		IsDefault: m.IsDefault,
		CreatedAt: m.CreatedAt,
	}
}

func NewPayoutRequestResponse(r *domain.PayoutRequest) PayoutRequestResponseDTO {
	resp := PayoutRequestResponseDTO{
		ID:                r.ID,
		Amount:            r.Amount,
		Status:            string(r.Status),
		Note:              r.Note,
		AdminNote:         r.AdminNote,
		ExternalReference: r.ExternalReference,
		RequestedAt:       r.RequestedAt,
		ProcessedAt:       r.ProcessedAt,
	}
	if r.Method != nil {
		method := NewPayoutMethodResponse(r.Method)
		resp.Method = &method
	}
	return resp
}

func NewPayoutListResponse(page *domain.PayoutPage) PayoutListResponseDTO {
	items := make([]PayoutRequestResponseDTO, len(page.Items))
	for i := range page.Items {
		items[i] = NewPayoutRequestResponse(&page.Items[i])
	}
	return PayoutListResponseDTO{
		Items:  items,
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
}
