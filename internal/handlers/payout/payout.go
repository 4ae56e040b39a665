package payout

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
	"github.com/edumarket/wallet/pkg/auth"
	"github.com/edumarket/wallet/pkg/utils"
)

//go:generate mockgen -source=payout.go -destination=mock_service.go -package=payout

type Service interface {
	AddPayoutMethod(ctx context.Context, userID int, in payoutservice.AddMethodInput) (*domain.PayoutMethod, error)
	ListPayoutMethods(ctx context.Context, userID int) ([]domain.PayoutMethod, error)
	UpdatePayoutMethod(ctx context.Context, userID, methodID int, in payoutservice.UpdateMethodInput) (*domain.PayoutMethod, error)
	DeletePayoutMethod(ctx context.Context, userID, methodID int) error
	RequestPayout(ctx context.Context, userID int, in payoutservice.PayoutInput) (*domain.PayoutRequest, error)
	ListMyPayouts(ctx context.Context, userID, limit, offset int) (*domain.PayoutPage, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// AddMethod godoc
//
//	@Summary		Add payout method
//	@Description	Register a disbursement destination. Setting isDefault clears the previous default in the same transaction.
//	@Tags			Payout methods
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AddPayoutMethodRequestDTO	true	"Payout method"
//	@Success		201		{object}	dto.PayoutMethodResponseDTO		"Created method"
//	@Failure		400		{object}	utils.Response					"Invalid type or missing label"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/methods [post]
func (h *PayoutHandler) AddMethod(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AddPayoutMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	method, err := h.payoutService.AddPayoutMethod(r.Context(), userID, payoutservice.AddMethodInput{
		Type:      domain.MethodType(req.Type),
		Label:     req.Label,
		Details:   req.Details.ToDomain(),
		IsDefault: req.IsDefault,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPayoutMethodResponse(method))
}

// ListMethods godoc
//
//	@Summary		List payout methods
//	@Tags			Payout methods
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutMethodResponseDTO	"Methods, default first"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/methods [get]
func (h *PayoutHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	methods, err := h.payoutService.ListPayoutMethods(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	response := make([]dto.PayoutMethodResponseDTO, len(methods))
	for i := range methods {
		response[i] = dto.NewPayoutMethodResponse(&methods[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateMethod godoc
//
//	@Summary		Update payout method
//	@Description	Partial update of an owned method. Ownership is checked before any mutation.
//	@Tags			Payout methods
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Method id"
//	@Param			request	body		dto.UpdatePayoutMethodRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.PayoutMethodResponseDTO		"Updated method"
//	@Failure		400		{object}	utils.Response					"Invalid request"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Method not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/methods/{id} [put]
func (h *PayoutHandler) UpdateMethod(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	methodID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid method id")
		return
	}

	var req dto.UpdatePayoutMethodRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := payoutservice.UpdateMethodInput{
		Label:     req.Label,
		IsDefault: req.IsDefault,
	}
	if req.Details != nil {
		details := req.Details.ToDomain()
		in.Details = &details
	}

	method, err := h.payoutService.UpdatePayoutMethod(r.Context(), userID, methodID, in)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutMethodResponse(method))
}

// DeleteMethod godoc
//
//	@Summary		Delete payout method
//	@Description	Historical payout requests keep a nulled reference to the deleted method.
//	@Tags			Payout methods
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int				true	"Method id"
//	@Success		200	{string}	string			"Deleted"
//	@Failure		400	{object}	utils.Response	"Invalid method id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Method not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/wallet/methods/{id} [delete]
func (h *PayoutHandler) DeleteMethod(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	methodID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid method id")
		return
	}

	if err := h.payoutService.DeletePayoutMethod(r.Context(), userID, methodID); err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, "payout method deleted")
}

// RequestPayout godoc
//
//	@Summary		Request a payout
//	@Description	Reserves the amount from the available balance and files a PENDING request for admin review.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RequestPayoutRequestDTO		true	"Payout request"
//	@Success		201		{object}	dto.PayoutRequestResponseDTO	"Created request"
//	@Failure		400		{object}	utils.Response					"Invalid amount"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient balance"
//	@Failure		404		{object}	utils.Response					"Method not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/wallet/payouts [post]
func (h *PayoutHandler) RequestPayout(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.RequestPayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	request, err := h.payoutService.RequestPayout(r.Context(), userID, payoutservice.PayoutInput{
		Amount:   req.Amount,
		MethodID: req.MethodID,
		Note:     req.Note,
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.NewPayoutRequestResponse(request))
}

// ListMyPayouts godoc
//
//	@Summary		List own payout requests
//	@Description	Paginated, newest first, each with its resolved payout method.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int	false	"Page size (1-100, default 20)"
//	@Param			offset	query		int	false	"Page offset"
//	@Success		200		{object}	dto.PayoutListResponseDTO	"Payout page"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/wallet/payouts [get]
func (h *PayoutHandler) ListMyPayouts(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	page, err := h.payoutService.ListMyPayouts(r.Context(), userID, queryInt(r, "limit"), queryInt(r, "offset"))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayoutListResponse(page))
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, payoutservice.ErrInvalidAmount),
		errors.Is(err, payoutservice.ErrInvalidMethodType),
		errors.Is(err, payoutservice.ErrEmptyLabel):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, payoutservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, payoutservice.ErrMethodNotFound),
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
