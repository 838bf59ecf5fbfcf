package deposits

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
	depositservice "github.com/dnochieng/mvest/internal/service/depositservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, userID int, amount decimal.Decimal, phoneNumber, message string) (*domain.Deposit, error)
	Approve(ctx context.Context, depositID, adminID int) (*domain.Deposit, error)
	Reject(ctx context.Context, depositID, adminID int) (*domain.Deposit, error)
	ListMine(ctx context.Context, userID int) ([]domain.Deposit, error)
	AdminList(ctx context.Context) ([]domain.Deposit, error)
}

type DepositHandler struct {
	depositService Service
}

func New(depositService Service) *DepositHandler {
	return &DepositHandler{
		depositService: depositService,
	}
}

// Create godoc
//
//	@Summary		Submit a deposit claim
//	@Description	Record a pending deposit claim with the mobile money confirmation message. No balance changes until an admin approves it.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateDepositRequestDTO	true	"Deposit claim payload"
//	@Success		202		{object}	dto.DepositResponseDTO		"Deposit accepted for review"
//	@Failure		400		{object}	utils.Response				"Invalid request body or amount"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deposit, err := h.depositService.Create(r.Context(), userID, req.Amount, req.PhoneNumber, req.Message)
	if err != nil {
		if errors.Is(err, depositservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, toResponse(deposit))
}

// GetMine godoc
//
//	@Summary		Get deposit history
//	@Description	Get deposit claims for the authenticated user, newest first.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposit history"
//	@Success		204	{object}	utils.Response			"No deposits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/deposits [get]
func (h *DepositHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	deposits, err := h.depositService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(deposits) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No deposits")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(deposits))
}

// AdminList godoc
//
//	@Summary		List all deposits
//	@Description	List deposit claims across all users for review.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"All deposits"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/deposits [get]
func (h *DepositHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	deposits, err := h.depositService.AdminList(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponses(deposits))
}

// Approve godoc
//
//	@Summary		Approve a deposit
//	@Description	Approve a pending deposit claim and credit the user's investable balance. A deposit can be decided only once.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Deposit ID"
//	@Success		200	{object}	dto.DepositResponseDTO	"Approved deposit"
//	@Failure		400	{object}	utils.Response			"Invalid deposit id"
//	@Failure		404	{object}	utils.Response			"Deposit not found"
//	@Failure		409	{object}	utils.Response			"Deposit already decided"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/deposits/{id}/approve [post]
func (h *DepositHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.depositService.Approve)
}

// Reject godoc
//
//	@Summary		Reject a deposit
//	@Description	Reject a pending deposit claim. No balances change.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int						true	"Deposit ID"
//	@Success		200	{object}	dto.DepositResponseDTO	"Rejected deposit"
//	@Failure		400	{object}	utils.Response			"Invalid deposit id"
//	@Failure		404	{object}	utils.Response			"Deposit not found"
//	@Failure		409	{object}	utils.Response			"Deposit already decided"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/deposits/{id}/reject [post]
func (h *DepositHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, h.depositService.Reject)
}

func (h *DepositHandler) decide(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, depositID, adminID int) (*domain.Deposit, error)) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	depositID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid deposit id")
		return
	}

	deposit, err := fn(r.Context(), depositID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrDepositNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, depositservice.ErrInvalidState):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponse(deposit))
}

func toResponse(d *domain.Deposit) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		ID:          d.ID,
		UserID:      d.UserID,
		Amount:      d.Amount,
		PhoneNumber: d.PhoneNumber,
		Message:     d.Message,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
	}
}

func toResponses(deposits []domain.Deposit) []dto.DepositResponseDTO {
	response := make([]dto.DepositResponseDTO, len(deposits))
	for i := range deposits {
		response[i] = toResponse(&deposits[i])
	}
	return response
}
