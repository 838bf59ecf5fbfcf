package payoutservice

import (
	"context"
	"errors"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// Withdrawals go out through manual mobile-money transfers, so amounts are
// restricted to whole multiples of the disbursement unit.
var withdrawalUnit = decimal.NewFromInt(100)

var (
	ErrPayoutNotFound = errors.New("payout not found")
	ErrInvalidState   = errors.New("payout already decided")
	ErrInvalidAmount  = errors.New("amount must be a positive multiple of 100")
)

type PayoutRepo interface {
	Create(ctx context.Context, payout *domain.Payout) (*domain.Payout, error)
	GetByID(ctx context.Context, id int) (*domain.Payout, error)
	DecideIfPending(ctx context.Context, id int, status string, adminID int) (*domain.Payout, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Payout, error)
	ListAll(ctx context.Context) ([]domain.Payout, error)
}

type WalletService interface {
	CreditAvailable(ctx context.Context, userID int, amount decimal.Decimal, txType string, metadata map[string]any) (*domain.Wallet, error)
	DebitAvailable(ctx context.Context, userID int, amount decimal.Decimal, txType string, metadata map[string]any) (*domain.Wallet, error)
}

type Service struct {
	payoutRepo    PayoutRepo
	walletService WalletService
	txManager     pg.TXManager
}

func New(payoutRepo PayoutRepo, walletService WalletService, txManager pg.TXManager) *Service {
	return &Service{
		payoutRepo:    payoutRepo,
		walletService: walletService,
		txManager:     txManager,
	}
}

// Request reserves the funds immediately: the available balance is debited
// before the payout row exists, in the same transaction, so a request that
// cannot be covered fails with no partial effect.
func (s *Service) Request(ctx context.Context, userID int, amount decimal.Decimal, phoneNumber string) (*domain.Payout, error) {
	if !amount.IsPositive() || !amount.Mod(withdrawalUnit).IsZero() {
		return nil, ErrInvalidAmount
	}

	var payout *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		_, err := s.walletService.DebitAvailable(ctx, userID, amount,
			walletservice.TypeWithdrawalRequest, map[string]any{"phoneNumber": phoneNumber})
		if err != nil {
			return err
		}
		payout, err = s.payoutRepo.Create(ctx, &domain.Payout{
			UserID:      userID,
			Amount:      amount,
			PhoneNumber: phoneNumber,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("payout requested",
		zap.Int("payoutID", payout.ID),
		zap.Int("userID", userID),
		zap.String("amount", amount.String()))
	return payout, nil
}

// Approve marks the payout APPROVED. The funds were already debited at request
// time; disbursement happens outside the system.
func (s *Service) Approve(ctx context.Context, payoutID, adminID int) (*domain.Payout, error) {
	payout, err := s.payoutRepo.GetByID(ctx, payoutID)
	if err != nil {
		return nil, err
	}
	if payout == nil {
		return nil, ErrPayoutNotFound
	}

	approved, err := s.payoutRepo.DecideIfPending(ctx, payoutID, StatusApproved, adminID)
	if err != nil {
		return nil, err
	}
	if approved == nil {
		return nil, ErrInvalidState
	}
	return approved, nil
}

// Reject refunds the reservation. The status transition and the refund commit
// together so a racing second reject cannot refund twice.
func (s *Service) Reject(ctx context.Context, payoutID, adminID int) (*domain.Payout, error) {
	var rejected *domain.Payout
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		payout, err := s.payoutRepo.GetByID(ctx, payoutID)
		if err != nil {
			return err
		}
		if payout == nil {
			return ErrPayoutNotFound
		}

		rejected, err = s.payoutRepo.DecideIfPending(ctx, payoutID, StatusRejected, adminID)
		if err != nil {
			return err
		}
		if rejected == nil {
			return ErrInvalidState
		}

		_, err = s.walletService.CreditAvailable(ctx, rejected.UserID, rejected.Amount,
			walletservice.TypeAdjustment, map[string]any{"reason": "withdrawal_rejected", "payoutId": rejected.ID})
		return err
	})
	if err != nil {
		return nil, err
	}
	zap.L().Info("payout rejected and refunded",
		zap.Int("payoutID", rejected.ID),
		zap.Int("adminID", adminID))
	return rejected, nil
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}

func (s *Service) AdminList(ctx context.Context) ([]domain.Payout, error) {
	payouts, err := s.payoutRepo.ListAll(ctx)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
