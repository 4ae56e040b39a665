package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/dto"
	"github.com/edumarket/wallet/internal/service/payoutservice"
	"github.com/edumarket/wallet/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_service.go -package=admin

type Service interface {
	ListPayoutRequests(ctx context.Context, status domain.PayoutStatus, limit, offset int) (*domain.PayoutPage, error)
	ReviewPayout(ctx context.Context, id int, action payoutservice.ReviewAction, in payoutservice.ReviewInput) (*domain.PayoutRequest, error)
}

type AdminHandler struct {
	payoutService Service
}

func New(payoutService Service) *AdminHandler {
	return &AdminHandler{
		payoutService: payoutService,
	}
}

// ListPayouts godoc
//
//	@Summary		List payout requests
//	@Description	Review queue across all wallets, optionally filtered by status.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			status	query		string	false	"Filter by status"
//	@Param			limit	query		int		false	"Page size (1-100, default 20)"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	dto.PayoutListResponseDTO	"Payout page"
//	@Failure		400		{object}	utils.Response				"Invalid status"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin capability required"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/payouts [get]
func (h *AdminHandler) ListPayouts(w http.ResponseWriter, r *http.Request) {
	status := domain.PayoutStatus(r.URL.Query().Get("status"))

	page, err := h.payoutService.ListPayoutRequests(r.Context(), status, queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutListResponse(page))
}

// ReviewPayout godoc
//
//	@Summary		Review a payout request
//	@Description	Apply approve, reject, processing or paid. Balance effects commit atomically with the status change.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Request id"
//	@Param			request	body		dto.ReviewPayoutRequestDTO	true	"Review action"
//	@Success		200		{object}	dto.PayoutRequestResponseDTO	"Updated request"
//	@Failure		400		{object}	utils.Response					"Invalid action or illegal transition"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		403		{object}	utils.Response					"Admin capability required"
//	@Failure		404		{object}	utils.Response					"Request not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/payouts/{id}/review [post]
func (h *AdminHandler) ReviewPayout(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request id")
		return
	}

	var req dto.ReviewPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.payoutService.ReviewPayout(r.Context(), id, payoutservice.ReviewAction(req.Action), payoutservice.ReviewInput{
		AdminNote:         req.AdminNote,
		ExternalReference: req.ExternalReference,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutRequestResponse(request))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutservice.ErrInvalidStatus),
		errors.Is(err, payoutservice.ErrInvalidAction),
		errors.Is(err, payoutservice.ErrIllegalTransition):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, payoutservice.ErrRequestNotFound),
		errors.Is(err, payoutservice.ErrWalletNotFound):
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
