package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/dto"
	"github.com/edumarket/wallet/internal/service/walletservice"
	"github.com/edumarket/wallet/pkg/auth"
	"github.com/edumarket/wallet/pkg/utils"
)

//go:generate mockgen -source=wallet.go -destination=mock_service.go -package=wallet

type Service interface {
	GetSummary(ctx context.Context, userID int) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID int, f domain.TransactionFilter) (*domain.TransactionPage, error)
	CreditForTeacher(ctx context.Context, userID int, amount float64, meta *domain.TransactionMetadata) error
	DebitForRefund(ctx context.Context, userID int, amount float64, meta *domain.TransactionMetadata) error
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetSummary godoc
//
//	@Summary		Get wallet summary
//	@Description	Current available balance, pending payout reservation and lifetime earnings. Creates a zero-balance wallet on first access.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletSummaryResponseDTO	"Wallet summary"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetSummary(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewWalletSummaryResponse(wallet))
}

// ListTransactions godoc
//
//	@Summary		Get wallet ledger
//	@Description	Paginated ledger entries, newest first. Unknown type/source filter values are ignored.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int		false	"Page size (1-100, default 20)"
//	@Param			offset	query		int		false	"Page offset"
//	@Param			type	query		string	false	"Filter by transaction type"
//	@Param			source	query		string	false	"Filter by transaction source"
//	@Success		200		{object}	dto.TransactionListResponseDTO	"Ledger page"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filter := domain.TransactionFilter{
		Type:   domain.TransactionType(r.URL.Query().Get("type")),
		Source: domain.TransactionSource(r.URL.Query().Get("source")),
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	page, err := h.walletService.ListTransactions(r.Context(), userID, filter)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewTransactionListResponse(page))
}

// Credit godoc
//
//	@Summary		Credit a teacher wallet
//	@Description	Called by the commerce workflow on a completed course sale.
//	@Tags			Internal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CommerceEventRequestDTO	true	"Sale event"
//	@Success		200		{string}	string						"Credit applied"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/credit [post]
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	var req dto.CommerceEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.CreditForTeacher(r.Context(), req.UserID, req.Amount, req.Metadata.ToDomain()); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "credit applied")
}

// Debit godoc
//
//	@Summary		Debit a teacher wallet
//	@Description	Called by the commerce workflow on a processed refund.
//	@Tags			Internal
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CommerceEventRequestDTO	true	"Refund event"
//	@Success		200		{string}	string						"Debit applied"
//	@Failure		400		{object}	utils.Response				"Invalid request"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient balance"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/internal/debit [post]
func (h *WalletHandler) Debit(w http.ResponseWriter, r *http.Request) {
	var req dto.CommerceEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.walletService.DebitForRefund(r.Context(), req.UserID, req.Amount, req.Metadata.ToDomain()); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "debit applied")
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, walletservice.ErrInvalidUserID):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, walletservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, walletservice.ErrWalletNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func queryInt(r *http.Request, key string) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return v
}
