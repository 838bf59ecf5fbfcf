package investments

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	investservice "github.com/dnochieng/mvest/internal/service/investservice"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	CreateInvestment(ctx context.Context, userID, packageID int) (*domain.Investment, error)
	StartEarning(ctx context.Context, userID, earningID int) (*domain.Earning, error)
	ListMine(ctx context.Context, userID int) ([]investservice.InvestmentWithEarnings, error)
	AdminList(ctx context.Context) ([]domain.InvestmentAdminView, error)
}

type InvestmentHandler struct {
	investService Service
}

func New(investService Service) *InvestmentHandler {
	return &InvestmentHandler{
		investService: investService,
	}
}

// Create godoc
//
//	@Summary		Buy an investment package
//	@Description	Lock the package price from the investable balance and open an active investment with one earning slot per day of the package duration.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateInvestmentRequestDTO	true	"Investment payload"
//	@Success		201		{object}	dto.InvestmentResponseDTO		"Created investment"
//	@Failure		400		{object}	utils.Response					"Invalid request body"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient investable balance"
//	@Failure		404		{object}	utils.Response					"Package not found or inactive"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/investments [post]
func (h *InvestmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateInvestmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	investment, err := h.investService.CreateInvestment(r.Context(), userID, req.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, investservice.ErrPackageUnavailable):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponse(investment, nil))
}

// StartEarning godoc
//
//	@Summary		Start an earning cycle
//	@Description	Start the countdown on a pending earning slot. Only one earning per investment can be running at a time; it is credited automatically once the accrual window elapses.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.StartEarningRequestDTO	true	"Earning to start"
//	@Success		200		{object}	dto.EarningResponseDTO		"Started earning"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Earning not found"
//	@Failure		409		{object}	utils.Response				"Earning not pending or another earning is running"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/investments/earnings/start [post]
func (h *InvestmentHandler) StartEarning(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.StartEarningRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	earning, err := h.investService.StartEarning(r.Context(), userID, req.EarningID)
	if err != nil {
		switch {
		case errors.Is(err, investservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, investservice.ErrInvalidState), errors.Is(err, investservice.ErrEarningInProgress):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEarning(earning))
}

// GetMine godoc
//
//	@Summary		Get investments with earnings
//	@Description	Get the authenticated user's investments, each with its daily earning slots.
//	@Tags			Investments
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvestmentResponseDTO	"Investments"
//	@Success		204	{object}	utils.Response				"No investments"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/investments [get]
func (h *InvestmentHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	investments, err := h.investService.ListMine(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(investments) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No investments")
		return
	}

	response := make([]dto.InvestmentResponseDTO, len(investments))
	for i, inv := range investments {
		response[i] = toResponse(&inv.Investment, inv.Earnings)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdminList godoc
//
//	@Summary		List all investments
//	@Description	List investments across all users with owner and package details.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InvestmentAdminResponseDTO	"All investments"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		403	{object}	utils.Response					"Admin access required"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/admin/investments [get]
func (h *InvestmentHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	investments, err := h.investService.AdminList(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.InvestmentAdminResponseDTO, len(investments))
	for i, inv := range investments {
		response[i] = dto.InvestmentAdminResponseDTO{
			ID:          inv.ID,
			UserID:      inv.UserID,
			Username:    inv.Username,
			Email:       inv.Email,
			PackageName: inv.PackageName,
			Principal:   inv.Principal,
			DailyReturn: inv.DailyReturn,
			Status:      inv.Status,
			TotalEarned: inv.TotalEarned,
			StartDate:   inv.StartDate,
			EndDate:     inv.EndDate,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func toResponse(inv *domain.Investment, earnings []domain.Earning) dto.InvestmentResponseDTO {
	resp := dto.InvestmentResponseDTO{
		ID:          inv.ID,
		PackageID:   inv.PackageID,
		Principal:   inv.Principal,
		DailyReturn: inv.DailyReturn,
		Status:      inv.Status,
		TotalEarned: inv.TotalEarned,
		StartDate:   inv.StartDate,
		EndDate:     inv.EndDate,
	}
	for i := range earnings {
		resp.Earnings = append(resp.Earnings, toEarning(&earnings[i]))
	}
	return resp
}

func toEarning(e *domain.Earning) dto.EarningResponseDTO {
	return dto.EarningResponseDTO{
		ID:         e.ID,
		DayIndex:   e.DayIndex,
		Amount:     e.Amount,
		Status:     e.Status,
		StartedAt:  e.StartedAt,
		CreditedAt: e.CreditedAt,
	}
}
