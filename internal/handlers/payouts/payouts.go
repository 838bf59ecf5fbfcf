package payouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	payoutservice "github.com/dnochieng/mvest/internal/service/payoutservice"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	Request(ctx context.Context, userID int, amount decimal.Decimal, phoneNumber string) (*domain.Payout, error)
	Approve(ctx context.Context, payoutID, adminID int) (*domain.Payout, error)
	Reject(ctx context.Context, payoutID, adminID int) (*domain.Payout, error)
	ListMine(ctx context.Context, userID int) ([]domain.Payout, error)
	AdminList(ctx context.Context) ([]domain.Payout, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

// Request godoc
//
//	@Summary		Request a withdrawal
//	@Description	Debit the available balance and queue a payout for admin review. The amount must be a positive multiple of 100.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePayoutRequestDTO	true	"Withdrawal request payload"
//	@Success		202		{object}	dto.PayoutResponseDTO		"Payout queued for review"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient available balance"
//	@Failure		422		{object}	utils.Response				"Amount is not a positive multiple of 100"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/payouts [post]
func (h *PayoutHandler) Request(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	payout, err := h.payoutService.Request(r.Context(), userID, req.Amount, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toResponse(payout))
}

// GetMine godoc
//
//	@Summary		Get payout history
//	@Description	Get withdrawal requests for the authenticated user, newest first.
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutResponseDTO	"Payout history"
//	@Success		204	{object}	utils.Response			"No payouts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/payouts [get]
func (h *PayoutHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	payouts, err := h.payoutService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(payouts) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No payouts")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(payouts))
}

// AdminList godoc
//
//	@Summary		List all payouts
//	@Description	List withdrawal requests across all users for review.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutResponseDTO	"All payouts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/payouts [get]
func (h *PayoutHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	payouts, err := h.payoutService.AdminList(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(payouts))
}

// Approve godoc
//
//	@Summary		Approve a payout
//	@Description	Mark a pending payout as approved. The funds were already debited when the payout was requested.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Payout ID"
//	@Success		200	{object}	dto.PayoutResponseDTO	"Approved payout"
//	@Failure		400	{object}	utils.Response			"Invalid payout id"
//	@Failure		404	{object}	utils.Response			"Payout not found"
//	@Failure		409	{object}	utils.Response			"Payout already decided"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/payouts/{id}/approve [post]
func (h *PayoutHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.payoutService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a payout
//	@Description	Reject a pending payout and refund the debited amount to the user's available balance.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Payout ID"
//	@Success		200	{object}	dto.PayoutResponseDTO	"Rejected payout"
//	@Failure		400	{object}	utils.Response			"Invalid payout id"
//	@Failure		404	{object}	utils.Response			"Payout not found"
//	@Failure		409	{object}	utils.Response			"Payout already decided"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/payouts/{id}/reject [post]
func (h *PayoutHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.payoutService.Reject)
}

func (h *PayoutHandler) decide(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, payoutID, adminID int) (*domain.Payout, error)) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	payoutID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid payout id")
		return
	}

	payout, err := fn(r.Context(), payoutID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, payoutservice.ErrPayoutNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, payoutservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(payout))
}

func toResponse(p *domain.Payout) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:          p.ID,
		UserID:      p.UserID,
		Amount:      p.Amount,
		PhoneNumber: p.PhoneNumber,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
	}
}

func toResponses(payouts []domain.Payout) []dto.PayoutResponseDTO {
	response := make([]dto.PayoutResponseDTO, len(payouts))
	for i := range payouts {
		response[i] = toResponse(&payouts[i])
	}
	return response
}
