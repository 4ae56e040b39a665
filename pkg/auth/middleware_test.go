package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := &JWTService{}
	validToken, _ := jwtService.GenerateJWT(42, true, time.Now().Add(time.Hour))

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{
			name:       "Valid bearer token",
			authHeader: "Bearer " + validToken,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Wrong scheme",
			authHeader: "Basic abc123",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "Garbage token",
			authHeader: "Bearer not.a.token",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var gotIsAdmin bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = r.Context().Value(UserIDKey).(int)
				gotIsAdmin, _ = r.Context().Value(IsAdminKey).(bool)
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/wallet", nil)
			if tt.authHeader != "" {
				r.Header.Set("Authorization", tt.authHeader)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, 42, gotUserID)
				assert.True(t, gotIsAdmin)
			}
		})
	}
}

func TestAdminMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		ctxSetup   func(ctx context.Context) context.Context
		wantStatus int
	}{
		{
			name: "Admin passes",
			ctxSetup: func(ctx context.Context) context.Context {
				return context.WithValue(ctx, IsAdminKey, true)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "Non-admin forbidden",
			ctxSetup: func(ctx context.Context) context.Context {
				return context.WithValue(ctx, IsAdminKey, false)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "No claim forbidden",
			ctxSetup:   func(ctx context.Context) context.Context { return ctx },
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/admin/payouts", nil)
			r = r.WithContext(tt.ctxSetup(r.Context()))
			w := httptest.NewRecorder()
			AdminMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
