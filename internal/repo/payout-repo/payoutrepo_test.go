package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

var (
	requestedAt = time.Date(2024, 11, 2, 15, 4, 5, 0, time.UTC)
	processedAt = time.Date(2024, 11, 3, 9, 0, 0, 0, time.UTC)
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func requestRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "wallet_id", "method_id", "amount", "status", "note", "admin_note", "external_reference", "requested_at", "processed_at"})
}

func joinedRows() *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "wallet_id", "method_id", "amount", "status", "note", "admin_note", "external_reference", "requested_at", "processed_at",
		"m_id", "m_wallet_id", "m_type", "m_label", "m_details", "m_is_default", "m_created_at",
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	methodID := 3
	tests := []struct {
		name      string
		request   *domain.PayoutRequest
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Saves pending request",
			request: &domain.PayoutRequest{
				WalletID: 1,
				MethodID: &methodID,
				Amount:   40.0,
				Status:   domain.StatusPending,
				Note:     "monthly payout",
			},
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "requested_at"}).AddRow(5, requestedAt)
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payout_requests (wallet_id, method_id, amount, status, note)`)).
					WithArgs(1, &methodID, 40.0, domain.StatusPending, "monthly payout").
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name: "Database error",
			request: &domain.PayoutRequest{
				WalletID: 1,
				Amount:   40.0,
				Status:   domain.StatusPending,
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO payout_requests`)).
					WithArgs(1, (*int)(nil), 40.0, domain.StatusPending, "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.request)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotZero(t, result.ID)
				assert.Equal(t, requestedAt, result.RequestedAt)
			}
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.PayoutRequest
	}{
		{
			name: "Existing request",
			id:   5,
			mockSetup: func() {
				rows := requestRows().AddRow(5, 1, (*int)(nil), 40.0, domain.StatusPending, "monthly payout", "", "", requestedAt, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payout_requests
        WHERE id = $1`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.PayoutRequest{
				ID:          5,
				WalletID:    1,
				Amount:      40.0,
				Status:      domain.StatusPending,
				Note:        "monthly payout",
				RequestedAt: requestedAt,
			},
		},
		{
			name: "Missing request returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payout_requests
        WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name: "Database error",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM payout_requests
        WHERE id = $1`)).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		result    *domain.PayoutRequest
	}{
		{
			name: "Locks request row",
			id:   5,
			mockSetup: func() {
				rows := requestRows().AddRow(5, 1, (*int)(nil), 40.0, domain.StatusApproved, "", "looks good", "", requestedAt, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			result: &domain.PayoutRequest{
				ID:          5,
				WalletID:    1,
				Amount:      40.0,
				Status:      domain.StatusApproved,
				AdminNote:   "looks good",
				RequestedAt: requestedAt,
			},
		},
		{
			name: "Missing request returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.LockByID(context.Background(), tt.id)

			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateReview(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		status      domain.PayoutStatus
		processedAt *time.Time
		mockSetup   func()
		expectErr   bool
	}{
		{
			name:        "Marks request paid with processed timestamp",
			status:      domain.StatusPaid,
			processedAt: &processedAt,
			mockSetup: func() {
				rows := requestRows().AddRow(5, 1, (*int)(nil), 40.0, domain.StatusPaid, "", "done", "txn-123", requestedAt, &processedAt)
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE payout_requests
        SET status = $1, admin_note = $2, external_reference = $3, processed_at = $4
        WHERE id = $5`)).
					WithArgs(domain.StatusPaid, "done", "txn-123", &processedAt, 5).
					WillReturnRows(rows)
			},
			expectErr: false,
		},
		{
			name:   "Database error",
			status: domain.StatusApproved,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE payout_requests`)).
					WithArgs(domain.StatusApproved, "done", "txn-123", (*time.Time)(nil), 5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateReview(context.Background(), 5, tt.status, "done", "txn-123", tt.processedAt)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.status, result.Status)
				assert.Equal(t, tt.processedAt, result.ProcessedAt)
			}
		})
	}
}

func TestRepository_ListByWalletID(t *testing.T) {
	repo, mock := NewMock(t)

	methodID := 3
	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		check     func(t *testing.T, requests []domain.PayoutRequest, total int)
	}{
		{
			name: "Joins the payout method",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payout_requests WHERE wallet_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				rows := joinedRows().AddRow(
					5, 1, &methodID, 40.0, domain.StatusPending, "", "", "", requestedAt, (*time.Time)(nil),
					&methodID, intPtr(1), methodTypePtr(domain.MethodBankTransfer), strPtr("Maybank personal"),
					[]byte(`{"bankName":"Maybank"}`), boolPtr(true), &requestedAt,
				)
				mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN payout_methods m ON m.id = r.method_id`)).
					WithArgs(1, 20, 0).
					WillReturnRows(rows)
			},
			expectErr: false,
			check: func(t *testing.T, requests []domain.PayoutRequest, total int) {
				assert.Len(t, requests, 1)
				assert.Equal(t, 1, total)
				assert.NotNil(t, requests[0].Method)
				assert.Equal(t, "Maybank personal", requests[0].Method.Label)
				assert.Equal(t, "Maybank", requests[0].Method.Details.BankName)
			},
		},
		{
			name: "Method deleted after request",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payout_requests WHERE wallet_id = $1`)).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				rows := joinedRows().AddRow(
					5, 1, (*int)(nil), 40.0, domain.StatusPending, "", "", "", requestedAt, (*time.Time)(nil),
					(*int)(nil), (*int)(nil), (*domain.MethodType)(nil), (*string)(nil),
					[]byte(nil), (*bool)(nil), (*time.Time)(nil),
				)
				mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN payout_methods m ON m.id = r.method_id`)).
					WithArgs(1, 20, 0).
					WillReturnRows(rows)
			},
			expectErr: false,
			check: func(t *testing.T, requests []domain.PayoutRequest, total int) {
				assert.Len(t, requests, 1)
				assert.Nil(t, requests[0].Method)
			},
		},
		{
			name: "Count query fails",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payout_requests`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			requests, total, err := repo.ListByWalletID(context.Background(), 1, 20, 0)

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, requests)
			} else {
				assert.NoError(t, err)
				tt.check(t, requests, total)
			}
		})
	}
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		status    domain.PayoutStatus
		mockSetup func()
		total     int
	}{
		{
			name:   "Filters by status",
			status: domain.StatusPending,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payout_requests WHERE status = $1`)).
					WithArgs(domain.StatusPending).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
				rows := joinedRows().AddRow(
					5, 1, (*int)(nil), 40.0, domain.StatusPending, "", "", "", requestedAt, (*time.Time)(nil),
					(*int)(nil), (*int)(nil), (*domain.MethodType)(nil), (*string)(nil),
					[]byte(nil), (*bool)(nil), (*time.Time)(nil),
				)
				mock.ExpectQuery(regexp.QuoteMeta(`WHERE r.status = $3`)).
					WithArgs(20, 0, domain.StatusPending).
					WillReturnRows(rows)
			},
			total: 1,
		},
		{
			name:   "Empty status lists all",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM payout_requests`)).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(2))
				rows := joinedRows().
					AddRow(6, 2, (*int)(nil), 15.0, domain.StatusPaid, "", "", "txn-9", requestedAt, &processedAt,
						(*int)(nil), (*int)(nil), (*domain.MethodType)(nil), (*string)(nil),
						[]byte(nil), (*bool)(nil), (*time.Time)(nil)).
					AddRow(5, 1, (*int)(nil), 40.0, domain.StatusPending, "", "", "", requestedAt, (*time.Time)(nil),
						(*int)(nil), (*int)(nil), (*domain.MethodType)(nil), (*string)(nil),
						[]byte(nil), (*bool)(nil), (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`LEFT JOIN payout_methods m ON m.id = r.method_id`)).
					WithArgs(20, 0).
					WillReturnRows(rows)
			},
			total: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			requests, total, err := repo.ListByStatus(context.Background(), tt.status, 20, 0)

			assert.NoError(t, err)
			assert.Equal(t, tt.total, total)
			assert.Len(t, requests, tt.total)
		})
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }

func methodTypePtr(v domain.MethodType) *domain.MethodType { return &v }
