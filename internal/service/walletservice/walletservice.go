package walletservice

import (
	"context"
	"errors"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Transaction types recorded against wallet mutations.
const (
	TypeDepositApproved   = "DEPOSIT_APPROVED"
	TypeInvestmentLock    = "INVESTMENT_LOCK"
	TypePrincipalRelease  = "PRINCIPAL_RELEASE"
	TypeEarningCredit     = "EARNING_CREDIT"
	TypeReferralBonus     = "REFERRAL_BONUS"
	TypeWithdrawalRequest = "WITHDRAWAL_REQUEST"
	TypeAdjustment        = "ADJUSTMENT"
)

const (
	DirectionCredit = "CREDIT"
	DirectionDebit  = "DEBIT"
)

var (
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
)

type WalletRepo interface {
	Create(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, wallet *domain.Wallet) error
	CreateTransaction(ctx context.Context, txn *domain.WalletTransaction) error
	ListTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error)
}

// TxPublisher emits committed wallet transactions to the event stream.
// Publishing is best-effort and never affects the ledger outcome.
type TxPublisher interface {
	PublishWalletTransaction(ctx context.Context, userID int, txn *domain.WalletTransaction) error
}

type Service struct {
	walletRepo WalletRepo
	txManager  pg.TXManager
	publisher  TxPublisher
}

func New(walletRepo WalletRepo, txManager pg.TXManager, publisher TxPublisher) *Service {
	return &Service{
		walletRepo: walletRepo,
		txManager:  txManager,
		publisher:  publisher,
	}
}

func (s *Service) CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.Create(ctx, userID)
	if err != nil {
		zap.L().Error("failed to create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	return wallet, nil
}

func (s *Service) ListTransactions(ctx context.Context, userID int) ([]domain.WalletTransaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	txns, err := s.walletRepo.ListTransactions(ctx, wallet.ID)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	return txns, nil
}

// mutate runs fn against the row-locked wallet and writes the transaction
// record fn returns, all inside one database transaction.
func (s *Service) mutate(ctx context.Context, userID int, fn func(wallet *domain.Wallet) (*domain.WalletTransaction, error)) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	var txn *domain.WalletTransaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.walletRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		txn, err = fn(wallet)
		if err != nil {
			return err
		}

		if err := s.walletRepo.UpdateBalances(ctx, wallet); err != nil {
			return err
		}
		txn.WalletID = wallet.ID
		return s.walletRepo.CreateTransaction(ctx, txn)
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishWalletTransaction(ctx, userID, txn); err != nil {
			zap.L().Warn("failed to publish wallet transaction", zap.Error(err))
		}
	}
	return wallet, nil
}

func (s *Service) CreditAvailable(ctx context.Context, userID int, amount decimal.Decimal, txType string, metadata map[string]any) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(wallet *domain.Wallet) (*domain.WalletTransaction, error) {
		wallet.Available = wallet.Available.Add(amount)
		return &domain.WalletTransaction{
			Type:         txType,
			Direction:    DirectionCredit,
			Amount:       amount,
			BalanceAfter: wallet.Available,
			Metadata:     metadata,
		}, nil
	})
}

func (s *Service) DebitAvailable(ctx context.Context, userID int, amount decimal.Decimal, txType string, metadata map[string]any) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(wallet *domain.Wallet) (*domain.WalletTransaction, error) {
		if wallet.Available.LessThan(amount) {
			return nil, ErrInsufficientBalance
		}
		wallet.Available = wallet.Available.Sub(amount)
		return &domain.WalletTransaction{
			Type:         txType,
			Direction:    DirectionDebit,
			Amount:       amount,
			BalanceAfter: wallet.Available,
			Metadata:     metadata,
		}, nil
	})
}

func (s *Service) CreditInvestable(ctx context.Context, userID int, amount decimal.Decimal, metadata map[string]any) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(wallet *domain.Wallet) (*domain.WalletTransaction, error) {
		wallet.Investable = wallet.Investable.Add(amount)
		return &domain.WalletTransaction{
			Type:         TypeDepositApproved,
			Direction:    DirectionCredit,
			Amount:       amount,
			BalanceAfter: wallet.Investable,
			Metadata:     metadata,
		}, nil
	})
}

// LockPrincipal moves amount from the investable bucket into locked principal.
func (s *Service) LockPrincipal(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(wallet *domain.Wallet) (*domain.WalletTransaction, error) {
		if wallet.Investable.LessThan(amount) {
			return nil, ErrInsufficientBalance
		}
		wallet.Investable = wallet.Investable.Sub(amount)
		wallet.LockedPrincipal = wallet.LockedPrincipal.Add(amount)
		return &domain.WalletTransaction{
			Type:         TypeInvestmentLock,
			Direction:    DirectionDebit,
			Amount:       amount,
			BalanceAfter: wallet.Investable,
			Metadata:     nil,
		}, nil
	})
}

// AdjustBalances applies admin-set deltas to the available and investable
// buckets, writing one ADJUSTMENT record per touched bucket in the same
// transaction.
func (s *Service) AdjustBalances(ctx context.Context, userID int, deltaAvailable, deltaInvestable decimal.Decimal, adminID int) (*domain.Wallet, error) {
	var wallet *domain.Wallet
	var txns []*domain.WalletTransaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		wallet, err = s.walletRepo.GetByUserIDForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return ErrWalletNotFound
		}

		wallet.Available = wallet.Available.Add(deltaAvailable)
		wallet.Investable = wallet.Investable.Add(deltaInvestable)
		if wallet.Available.IsNegative() || wallet.Investable.IsNegative() {
			return ErrInsufficientBalance
		}
		if err := s.walletRepo.UpdateBalances(ctx, wallet); err != nil {
			return err
		}

		record := func(delta, balanceAfter decimal.Decimal, reason string) error {
			if delta.IsZero() {
				return nil
			}
			direction := DirectionCredit
			if delta.IsNegative() {
				direction = DirectionDebit
			}
			txn := &domain.WalletTransaction{
				WalletID:     wallet.ID,
				Type:         TypeAdjustment,
				Direction:    direction,
				Amount:       delta.Abs(),
				BalanceAfter: balanceAfter,
				Metadata:     map[string]any{"adminId": adminID, "reason": reason},
			}
			if err := s.walletRepo.CreateTransaction(ctx, txn); err != nil {
				return err
			}
			txns = append(txns, txn)
			return nil
		}
		if err := record(deltaAvailable, wallet.Available, "manual_adjust_available"); err != nil {
			return err
		}
		return record(deltaInvestable, wallet.Investable, "manual_adjust_investable")
	})
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		for _, txn := range txns {
			if err := s.publisher.PublishWalletTransaction(ctx, userID, txn); err != nil {
				zap.L().Warn("failed to publish wallet transaction", zap.Error(err))
			}
		}
	}
	zap.L().Info("wallet balances adjusted",
		zap.Int("userID", userID),
		zap.Int("adminID", adminID))
	return wallet, nil
}

// UnlockPrincipal returns committed principal to the available bucket once an
// investment reaches a terminal state.
func (s *Service) UnlockPrincipal(ctx context.Context, userID int, amount decimal.Decimal, metadata map[string]any) (*domain.Wallet, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	return s.mutate(ctx, userID, func(wallet *domain.Wallet) (*domain.WalletTransaction, error) {
		if wallet.LockedPrincipal.LessThan(amount) {
			return nil, ErrInsufficientBalance
		}
		wallet.LockedPrincipal = wallet.LockedPrincipal.Sub(amount)
		wallet.Available = wallet.Available.Add(amount)
		return &domain.WalletTransaction{
			Type:         TypePrincipalRelease,
			Direction:    DirectionCredit,
			Amount:       amount,
			BalanceAfter: wallet.Available,
			Metadata:     metadata,
		}, nil
	})
}
