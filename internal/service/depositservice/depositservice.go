package depositservice

import (
	"context"
	"errors"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

var (
	ErrDepositNotFound = errors.New("deposit not found")
	ErrInvalidState    = errors.New("deposit already decided")
	ErrInvalidAmount   = errors.New("amount must be positive")
)

type DepositRepo interface {
	Create(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error)
	GetByID(ctx context.Context, id int) (*domain.Deposit, error)
	DecideIfPending(ctx context.Context, id int, status string, adminID int) (*domain.Deposit, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Deposit, error)
	ListAll(ctx context.Context) ([]domain.Deposit, error)
}

type WalletService interface {
	CreditInvestable(ctx context.Context, userID int, amount decimal.Decimal, metadata map[string]any) (*domain.Wallet, error)
}

type Service struct {
	depositRepo   DepositRepo
	walletService WalletService
	txManager     pg.TXManager
}

func New(depositRepo DepositRepo, walletService WalletService, txManager pg.TXManager) *Service {
	return &Service{
		depositRepo:   depositRepo,
		walletService: walletService,
		txManager:     txManager,
	}
}

// Create records the user's claim of an external transfer. The wallet is not
// touched until an admin approves.
func (s *Service) Create(ctx context.Context, userID int, amount decimal.Decimal, phoneNumber, message string) (*domain.Deposit, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	deposit, err := s.depositRepo.Create(ctx, &domain.Deposit{
		UserID:      userID,
		Amount:      amount,
		PhoneNumber: phoneNumber,
		Message:     message,
	})
	if err != nil {
		zap.L().Error("can't create deposit", zap.Error(err))
		return nil, err
	}
	return deposit, nil
}

// Approve flips the deposit to APPROVED and credits the investable bucket. The
// status transition and the credit commit together, so a concurrent second
// approval observes the changed status and fails without a double credit.
func (s *Service) Approve(ctx context.Context, depositID, adminID int) (*domain.Deposit, error) {
	var approved *domain.Deposit
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		deposit, err := s.depositRepo.GetByID(ctx, depositID)
		if err != nil {
			return err
		}
		if deposit == nil {
			return ErrDepositNotFound
		}

		approved, err = s.depositRepo.DecideIfPending(ctx, depositID, StatusApproved, adminID)
		if err != nil {
			return err
		}
		if approved == nil {
			return ErrInvalidState
		}

		_, err = s.walletService.CreditInvestable(ctx, approved.UserID, approved.Amount,
			map[string]any{"depositId": approved.ID})
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("deposit approved",
		zap.Int("depositID", approved.ID),
		zap.Int("adminID", adminID),
		zap.String("amount", approved.Amount.String()))
	return approved, nil
}

// Reject flips the deposit to REJECTED. No wallet effect.
func (s *Service) Reject(ctx context.Context, depositID, adminID int) (*domain.Deposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, ErrDepositNotFound
	}

	rejected, err := s.depositRepo.DecideIfPending(ctx, depositID, StatusRejected, adminID)
	if err != nil {
		return nil, err
	}
	if rejected == nil {
		return nil, ErrInvalidState
	}
	return rejected, nil
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}

func (s *Service) AdminList(ctx context.Context) ([]domain.Deposit, error) {
	deposits, err := s.depositRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch deposits", zap.Error(err))
		return nil, err
	}
	return deposits, nil
}
