package wallet

import (
	"context"
	"errors"
	"net/http"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/dnochieng/mvest/pkg/utils"
)

type Service interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	ListTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error)
}

type WalletHandler struct {
	walletService Service
}

func New(walletService Service) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
	}
}

// GetWallet godoc
//
//	@Summary		Get current user wallet
//	@Description	Retrieve the available, investable and locked principal balances for the authenticated user.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.WalletResponseDTO	"Wallet balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/wallet [get]
func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	wallet, err := h.walletService.GetWallet(r.Context(), userID)
	if err != nil {
		if errors.Is(err, walletservice.ErrWalletNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.WalletResponseDTO{
		Available:       wallet.Available,
		Investable:      wallet.Investable,
		LockedPrincipal: wallet.LockedPrincipal,
	})
}

// GetTransactions godoc
//
//	@Summary		Get wallet transactions
//	@Description	Get the wallet transaction history for the authenticated user, newest first.
//	@Tags			Wallet
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.WalletTransactionResponseDTO	"Transaction history"
//	@Success		204	{object}	utils.Response						"No transactions"
//	@Failure		401	{object}	utils.Response						"User not authorized"
//	@Failure		500	{object}	utils.Response						"Internal server error"
//	@Router			/api/wallet/transactions [get]
func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	transactions, err := h.walletService.ListTransactions(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if len(transactions) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No transactions")
		return
	}

	response := make([]dto.WalletTransactionResponseDTO, len(transactions))
	for i, tx := range transactions {
		response[i] = dto.WalletTransactionResponseDTO{
			ID:           tx.ID,
			Type:         tx.Type,
			Direction:    tx.Direction,
			Amount:       tx.Amount,
			BalanceAfter: tx.BalanceAfter,
			Metadata:     tx.Metadata,
			CreatedAt:    tx.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
