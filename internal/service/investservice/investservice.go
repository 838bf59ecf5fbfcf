package investservice

import (
	"context"
	"errors"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	InvestmentActive    = "ACTIVE"
	InvestmentCompleted = "COMPLETED"

	EarningPending  = "PENDING"
	EarningStarted  = "STARTED"
	EarningCredited = "CREDITED"
)

// referralRate is the share of the principal paid to the referrer on the
// referred user's first investment.
var referralRate = decimal.RequireFromString("0.10")

var (
	ErrNotFound           = errors.New("not found")
	ErrPackageUnavailable = errors.New("package unavailable")
	ErrInvalidState       = errors.New("earning is not in the required state")
	ErrEarningInProgress  = errors.New("another earning is already in progress for this investment")
)

type InvestmentRepo interface {
	Create(ctx context.Context, inv *domain.Investment) (*domain.Investment, error)
	CreateEarnings(ctx context.Context, investmentID int, amount decimal.Decimal, days int) error
	GetByID(ctx context.Context, id int) (*domain.Investment, error)
	GetByIDForUpdate(ctx context.Context, id int) (*domain.Investment, error)
	ListByUserID(ctx context.Context, userID int) ([]domain.Investment, error)
	ListAllDetailed(ctx context.Context) ([]domain.InvestmentAdminView, error)
	GetEarningByID(ctx context.Context, id int) (*domain.Earning, error)
	ListEarningsByUserID(ctx context.Context, userID int) ([]domain.Earning, error)
	CountStartedEarnings(ctx context.Context, investmentID int) (int, error)
	StartEarningIfPending(ctx context.Context, id int) (*domain.Earning, error)
	CreditEarningIfStarted(ctx context.Context, id int) (*domain.Earning, error)
	FindDueEarnings(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.DueEarning, error)
	AddTotalEarned(ctx context.Context, investmentID int, amount decimal.Decimal) error
	CompleteIfFullyCredited(ctx context.Context, investmentID int) (bool, error)
}

type PackageRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Package, error)
}

type ReferralRepo interface {
	FindByReferredUser(ctx context.Context, referredUserID int) (*domain.Referral, error)
	RecordReward(ctx context.Context, id, investmentID int, reward decimal.Decimal) (*domain.Referral, error)
}

type WalletService interface {
	LockPrincipal(ctx context.Context, userID int, amount decimal.Decimal) (*domain.Wallet, error)
	UnlockPrincipal(ctx context.Context, userID int, amount decimal.Decimal, metadata map[string]any) (*domain.Wallet, error)
	CreditAvailable(ctx context.Context, userID int, amount decimal.Decimal, txType string, metadata map[string]any) (*domain.Wallet, error)
}

type Service struct {
	investmentRepo InvestmentRepo
	packageRepo    PackageRepo
	referralRepo   ReferralRepo
	walletService  WalletService
	txManager      pg.TXManager
}

func New(investmentRepo InvestmentRepo, packageRepo PackageRepo, referralRepo ReferralRepo, walletService WalletService, txManager pg.TXManager) *Service {
	return &Service{
		investmentRepo: investmentRepo,
		packageRepo:    packageRepo,
		referralRepo:   referralRepo,
		walletService:  walletService,
		txManager:      txManager,
	}
}

// CreateInvestment locks the package price out of the investable balance and
// creates the investment with one PENDING earning slot per day, all in one
// transaction. The referral bonus for the buyer's first investment commits in
// the same transaction, so a crash can't leave the investment without the
// bonus.
func (s *Service) CreateInvestment(ctx context.Context, userID, packageID int) (*domain.Investment, error) {
	pkg, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil || !pkg.IsActive {
		return nil, ErrPackageUnavailable
	}

	var investment *domain.Investment
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.walletService.LockPrincipal(ctx, userID, pkg.Price); err != nil {
			return err
		}

		now := time.Now()
		investment, err = s.investmentRepo.Create(ctx, &domain.Investment{
			UserID:      userID,
			PackageID:   pkg.ID,
			Principal:   pkg.Price,
			DailyReturn: pkg.DailyReturn,
			Status:      InvestmentActive,
			StartDate:   now,
			EndDate:     now.AddDate(0, 0, pkg.DurationDays),
			LockedAt:    now,
		})
		if err != nil {
			return err
		}

		if err := s.investmentRepo.CreateEarnings(ctx, investment.ID, pkg.DailyReturn, pkg.DurationDays); err != nil {
			return err
		}

		return s.payReferralBonus(ctx, userID, investment)
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("investment created",
		zap.Int("investmentID", investment.ID),
		zap.Int("userID", userID),
		zap.String("principal", investment.Principal.String()))
	return investment, nil
}

// payReferralBonus credits 10% of the principal to the buyer's referrer. The
// reward is recorded against the referral row first, guarded on its investment
// link still being unset, so re-investing never pays a second bonus.
func (s *Service) payReferralBonus(ctx context.Context, userID int, investment *domain.Investment) error {
	referral, err := s.referralRepo.FindByReferredUser(ctx, userID)
	if err != nil {
		return err
	}
	if referral == nil {
		return nil
	}

	reward := investment.Principal.Mul(referralRate)
	recorded, err := s.referralRepo.RecordReward(ctx, referral.ID, investment.ID, reward)
	if err != nil {
		return err
	}
	if recorded == nil {
		// bonus already paid for an earlier investment
		return nil
	}

	_, err = s.walletService.CreditAvailable(ctx, referral.ReferrerID, reward,
		walletservice.TypeReferralBonus,
		map[string]any{"fromUserId": userID, "investmentId": investment.ID})
	return err
}

// StartEarning transitions one PENDING earning slot to STARTED. The parent
// investment row is locked first, so concurrent starts against the same
// investment serialize and at most one slot can be STARTED at a time.
func (s *Service) StartEarning(ctx context.Context, userID, earningID int) (*domain.Earning, error) {
	var started *domain.Earning
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		earning, err := s.investmentRepo.GetEarningByID(ctx, earningID)
		if err != nil {
			return err
		}
		if earning == nil {
			return ErrNotFound
		}

		investment, err := s.investmentRepo.GetByIDForUpdate(ctx, earning.InvestmentID)
		if err != nil {
			return err
		}
		if investment == nil || investment.UserID != userID {
			return ErrNotFound
		}

		if earning.Status != EarningPending {
			return ErrInvalidState
		}

		startedCount, err := s.investmentRepo.CountStartedEarnings(ctx, earning.InvestmentID)
		if err != nil {
			return err
		}
		if startedCount > 0 {
			return ErrEarningInProgress
		}

		started, err = s.investmentRepo.StartEarningIfPending(ctx, earningID)
		if err != nil {
			return err
		}
		if started == nil {
			return ErrInvalidState
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return started, nil
}

// FindDueEarnings lists STARTED earnings whose accrual window elapsed before
// the cutoff.
func (s *Service) FindDueEarnings(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.DueEarning, error) {
	return s.investmentRepo.FindDueEarnings(ctx, cutoff, limit)
}

// CreditDueEarning matures a single due earning: the CREDITED transition, the
// totalEarned increment, the wallet credit and (for the final slot) the
// investment completion all commit as one transaction. The status guard on the
// transition makes the credit exactly-once even if two sweeps race.
func (s *Service) CreditDueEarning(ctx context.Context, due domain.DueEarning) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		credited, err := s.investmentRepo.CreditEarningIfStarted(ctx, due.ID)
		if err != nil {
			return err
		}
		if credited == nil {
			// another sweep got here first
			return nil
		}

		if err := s.investmentRepo.AddTotalEarned(ctx, due.InvestmentID, credited.Amount); err != nil {
			return err
		}

		_, err = s.walletService.CreditAvailable(ctx, due.UserID, credited.Amount,
			walletservice.TypeEarningCredit, map[string]any{"earningId": credited.ID})
		if err != nil {
			return err
		}

		completed, err := s.investmentRepo.CompleteIfFullyCredited(ctx, due.InvestmentID)
		if err != nil {
			return err
		}
		if completed {
			investment, err := s.investmentRepo.GetByID(ctx, due.InvestmentID)
			if err != nil {
				return err
			}
			_, err = s.walletService.UnlockPrincipal(ctx, due.UserID, investment.Principal,
				map[string]any{"investmentId": investment.ID})
			if err != nil {
				return err
			}
			zap.L().Info("investment completed",
				zap.Int("investmentID", investment.ID),
				zap.Int("userID", due.UserID))
		}
		return nil
	})
}

// InvestmentWithEarnings is an investment and its earning slots for the
// user-facing listing.
type InvestmentWithEarnings struct {
	Investment domain.Investment
	Earnings   []domain.Earning
}

func (s *Service) ListMine(ctx context.Context, userID int) ([]InvestmentWithEarnings, error) {
	investments, err := s.investmentRepo.ListByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list investments", zap.Error(err))
		return nil, err
	}
	earnings, err := s.investmentRepo.ListEarningsByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list earnings", zap.Error(err))
		return nil, err
	}

	byInvestment := make(map[int][]domain.Earning, len(investments))
	for _, e := range earnings {
		byInvestment[e.InvestmentID] = append(byInvestment[e.InvestmentID], e)
	}

	result := make([]InvestmentWithEarnings, 0, len(investments))
	for _, inv := range investments {
		result = append(result, InvestmentWithEarnings{
			Investment: inv,
			Earnings:   byInvestment[inv.ID],
		})
	}
	return result, nil
}

func (s *Service) AdminList(ctx context.Context) ([]domain.InvestmentAdminView, error) {
	views, err := s.investmentRepo.ListAllDetailed(ctx)
	if err != nil {
		zap.L().Error("failed to list all investments", zap.Error(err))
		return nil, err
	}
	return views, nil
}
