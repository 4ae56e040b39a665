package payout

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/service/payoutservice"
	"github.com/edumarket/wallet/pkg/auth"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupHandler(t *testing.T) (*PayoutHandler, *MockService) {
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

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPayoutHandler_AddMethod(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name: "Creates method",
			body: `{"type":"BANK_TRANSFER","label":"Maybank savings","details":{"accountName":"Jane Tan","bankName":"Maybank"},"isDefault":true}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().AddPayoutMethod(gomock.Any(), 1, payoutservice.AddMethodInput{
					Type:      domain.MethodBankTransfer,
					Label:     "Maybank savings",
					Details:   domain.MethodDetails{AccountName: "Jane Tan", BankName: "Maybank"},
					IsDefault: true,
				}).Return(&domain.PayoutMethod{ID: 1, Type: domain.MethodBankTransfer, Label: "Maybank savings", IsDefault: true}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Unknown type maps to 400",
			body: `{"type":"WIRE","label":"x"}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().AddPayoutMethod(gomock.Any(), 1, gomock.Any()).
					Return(nil, fmt.Errorf("%w: %q", payoutservice.ErrInvalidMethodType, "WIRE"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Malformed body",
			body:       `{"type":`,
			mockSetup:  func(service *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.AddMethod(w, authedRequest(http.MethodPost, "/api/wallet/methods", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPayoutHandler_ListMethods(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().ListPayoutMethods(gomock.Any(), 1).Return([]domain.PayoutMethod{
		{ID: 2, Type: domain.MethodGrabPay, Label: "GrabPay", IsDefault: true},
		{ID: 1, Type: domain.MethodBankTransfer, Label: "Maybank savings"},
	}, nil)

	w := httptest.NewRecorder()
	handler.ListMethods(w, authedRequest(http.MethodGet, "/api/wallet/methods", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"GrabPay"`)
	assert.Contains(t, w.Body.String(), `"label":"Maybank savings"`)
}

func TestPayoutHandler_UpdateMethod(t *testing.T) {
	label := "Maybank current"

	tests := []struct {
		name       string
		id         string
		body       string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name: "Updates label",
			id:   "1",
			body: `{"label":"Maybank current"}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().UpdatePayoutMethod(gomock.Any(), 1, 1, payoutservice.UpdateMethodInput{Label: &label}).
					Return(&domain.PayoutMethod{ID: 1, Label: label}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "Non-numeric id",
			id:         "abc",
			body:       `{}`,
			mockSetup:  func(service *MockService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Method not found",
			id:   "99",
			body: `{"label":"Maybank current"}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().UpdatePayoutMethod(gomock.Any(), 1, 99, gomock.Any()).
					Return(nil, payoutservice.ErrMethodNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			r := withURLParam(authedRequest(http.MethodPut, "/api/wallet/methods/"+tt.id, tt.body), "id", tt.id)
			w := httptest.NewRecorder()
			handler.UpdateMethod(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPayoutHandler_DeleteMethod(t *testing.T) {
	tests := []struct {
		name       string
		id         string
		mockSetup  func(service *MockService)
		wantStatus int
	}{
		{
			name: "Deletes method",
			id:   "1",
			mockSetup: func(service *MockService) {
				service.EXPECT().DeletePayoutMethod(gomock.Any(), 1, 1).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Method not found",
			id:   "99",
			mockSetup: func(service *MockService) {
				service.EXPECT().DeletePayoutMethod(gomock.Any(), 1, 99).Return(payoutservice.ErrMethodNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			r := withURLParam(authedRequest(http.MethodDelete, "/api/wallet/methods/"+tt.id, ""), "id", tt.id)
			w := httptest.NewRecorder()
			handler.DeleteMethod(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPayoutHandler_RequestPayout(t *testing.T) {
	methodID := 2

	tests := []struct {
		name       string
		body       string
		mockSetup  func(service *MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "Files a pending request",
			body: `{"amount":40,"methodId":2,"note":"October earnings"}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, payoutservice.PayoutInput{
					Amount:   40,
					MethodID: &methodID,
					Note:     "October earnings",
				}).Return(&domain.PayoutRequest{ID: 3, Amount: 40, Status: domain.StatusPending, Note: "October earnings"}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"status":"PENDING"`,
		},
		{
			name: "Invalid amount maps to 400",
			body: `{"amount":-10}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, fmt.Errorf("%w: amount must be a positive number", payoutservice.ErrInvalidAmount))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Insufficient balance maps to 402",
			body: `{"amount":200}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, fmt.Errorf("%w: available 100.00, requested 200.00", payoutservice.ErrInsufficientBalance))
			},
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name: "Unknown method maps to 404",
			body: `{"amount":40,"methodId":99}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).
					Return(nil, payoutservice.ErrMethodNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "Service failure",
			body: `{"amount":40}`,
			mockSetup: func(service *MockService) {
				service.EXPECT().RequestPayout(gomock.Any(), 1, gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := setupHandler(t)
			tt.mockSetup(service)

			w := httptest.NewRecorder()
			handler.RequestPayout(w, authedRequest(http.MethodPost, "/api/wallet/payouts", tt.body))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestPayoutHandler_ListMyPayouts(t *testing.T) {
	handler, service := setupHandler(t)

	service.EXPECT().ListMyPayouts(gomock.Any(), 1, 10, 0).
		Return(&domain.PayoutPage{Items: []domain.PayoutRequest{{ID: 3, Status: domain.StatusPaid}}, Total: 1, Limit: 10}, nil)

	w := httptest.NewRecorder()
	handler.ListMyPayouts(w, authedRequest(http.MethodGet, "/api/wallet/payouts?limit=10", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"PAID"`)
}
