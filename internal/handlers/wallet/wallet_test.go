package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/service/walletservice"
	"github.com/edumarket/wallet/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	return handler, service
}

func authedRequest(method, target, body string) *http.Request {
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	ctx := context.WithValue(r.Context(), auth.UserIDKey, 1)
	return r.WithContext(ctx)
}

func TestWalletHandler_GetSummary(t *testing.T) {
	tests := []struct {
		name       string
		mockSetup  func(service *MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Returns summary",
			mockSetup: func(service *MockService) {
				service.EXPECT().GetSummary(gomock.Any(), 1).
					Return(&domain.Wallet{ID: 1, UserID: 1, AvailableBalance: 60, PendingPayout: 40, TotalEarnings: 100}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"availableBalance":60`,
		},
		{
			name: "Service failure",
			mockSetup: func(service *MockService) {
				service.EXPECT().GetSummary(gomock.Any(), 1).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.GetSummary(w, authedRequest(http.MethodGet, "/api/wallet", ""))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestWalletHandler_ListTransactions(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name:   "Passes filters through",
			target: "/api/wallet/transactions?type=CREDIT&source=COURSE_SALE&limit=10&offset=5",
			mockSetup: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), 1, domain.TransactionFilter{
					Type:   domain.TransactionCredit,
					Source: domain.SourceCourseSale,
					Limit:  10,
					Offset: 5,
				}).Return(&domain.TransactionPage{Items: []domain.WalletTransaction{}, Limit: 10, Offset: 5}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Non-numeric paging falls back to zero",
			target: "/api/wallet/transactions?limit=abc",
			mockSetup: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), 1, domain.TransactionFilter{}).
					Return(&domain.TransactionPage{Items: []domain.WalletTransaction{}, Limit: 20}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "Service failure",
			target: "/api/wallet/transactions",
			mockSetup: func(service *MockService) {
				service.EXPECT().ListTransactions(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.ListTransactions(w, authedRequest(http.MethodGet, tt.target, ""))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWalletHandler_Credit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name: "Applies sale credit",
			body: `{"userId":42,"amount":25.5,"metadata":{"saleId":"sale-8812"}}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().CreditForTeacher(gomock.Any(), 42, 25.5, &domain.TransactionMetadata{SaleID: "sale-8812"}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Malformed body",
			body:       `{"userId":`,
			mockSetup:  func(service *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"userId":42,"amount":25.5}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().CreditForTeacher(gomock.Any(), 42, 25.5, gomock.Any()).Return(errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.Credit(w, authedRequest(http.MethodPost, "/api/internal/credit", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWalletHandler_Debit(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name: "Applies refund debit",
			body: `{"userId":42,"amount":25.5,"metadata":{"refundId":"refund-112"}}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().DebitForRefund(gomock.Any(), 42, 25.5, &domain.TransactionMetadata{RefundID: "refund-112"}).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Insufficient balance maps to 402",
			body: `{"userId":42,"amount":500}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().DebitForRefund(gomock.Any(), 42, 500.0, gomock.Any()).
					Return(fmt.Errorf("%w: available 100.00, refund 500.00", walletservice.ErrInsufficientBalance))
			},
			wantStatus: http.StatusPaymentRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.Debit(w, authedRequest(http.MethodPost, "/api/internal/debit", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestWalletHandler_Debit_SentinelMapping(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().DebitForRefund(gomock.Any(), 42, 500.0, gomock.Any()).
		Return(errors.New("wrapped: insufficient balance"))

	// A plain error that merely mentions balance stays a 500; only the
	// walletservice sentinel maps to 402.
	w := httptest.NewRecorder()
	handler.Debit(w, authedRequest(http.MethodPost, "/api/internal/debit", `{"userId":42,"amount":500}`))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Internal server error", resp["message"])
}
