package users

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
	userservice "github.com/dnochieng/mvest/internal/service/userservice"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	Me(ctx context.Context, userID int) (*userservice.Profile, error)
	List(ctx context.Context) ([]domain.User, error)
	AdjustBalances(ctx context.Context, userID int, deltaAvailable, deltaInvestable decimal.Decimal, adminID int) (*domain.Wallet, error)
}

type UserHandler struct {
	userService Service
}

func New(userService Service) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Me godoc
//
//	@Summary		Get own profile
//	@Description	Get the authenticated user's account, wallet, referral history and lifetime referral earnings.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"User not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/users/me [get]
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	profile, err := h.userService.Me(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	referrals := make([]dto.ReferralResponseDTO, len(profile.Referrals))
	for i, ref := range profile.Referrals {
		referrals[i] = dto.ReferralResponseDTO{
			ReferredUserID: ref.ReferredUserID,
			RewardAmount:   ref.RewardAmount,
			Rewarded:       ref.InvestmentID != nil,
			CreatedAt:      ref.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ProfileResponseDTO{
		User:             toUserDTO(&profile.User),
		Wallet:           dto.WalletResponseDTO{Available: profile.Wallet.Available, Investable: profile.Wallet.Investable, LockedPrincipal: profile.Wallet.LockedPrincipal},
		Referrals:        referrals,
		ReferralEarnings: profile.ReferralEarnings,
	})
}

// AdminList godoc
//
//	@Summary		List all users
//	@Description	List registered accounts for administration.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UserResponseDTO	"All users"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		403	{object}	utils.Response		"Admin access required"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/api/admin/users [get]
func (h *UserHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.UserResponseDTO, len(users))
	for i := range users {
		response[i] = toUserDTO(&users[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// AdjustBalances godoc
//
//	@Summary		Adjust a user's balances
//	@Description	Apply signed corrections to a user's available and investable balances. Each applied delta is recorded as an ADJUSTMENT transaction.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"User ID"
//	@Param			request	body		dto.AdjustBalancesRequestDTO	true	"Signed balance deltas"
//	@Success		200		{object}	dto.WalletResponseDTO		"Adjusted wallet"
//	@Failure		400		{object}	utils.Response				"Invalid request body or id"
//	@Failure		404		{object}	utils.Response				"Wallet not found"
//	@Failure		422		{object}	utils.Response				"Adjustment would make a balance negative"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/users/{id}/balances [post]
func (h *UserHandler) AdjustBalances(w http.ResponseWriter, r *http.Request) {
	adminID := r.Context().Value(auth.UserIDKey).(int)

	userID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.AdjustBalancesRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	wallet, err := h.userService.AdjustBalances(r.Context(), userID, req.DeltaAvailable, req.DeltaInvestable, adminID)
	if err != nil {
		switch {
		case errors.Is(err, walletservice.ErrWalletNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, walletservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Available:       wallet.Available,
		Investable:      wallet.Investable,
		LockedPrincipal: wallet.LockedPrincipal,
	})
}

func toUserDTO(u *domain.User) dto.UserResponseDTO {
	return dto.UserResponseDTO{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		PhoneNumber:  u.PhoneNumber,
		Role:         u.Role,
		ReferralCode: u.ReferralCode,
		CreatedAt:    u.CreatedAt,
	}
}
