package investservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

type mocks struct {
	investmentRepo *MockInvestmentRepo
	packageRepo    *MockPackageRepo
	referralRepo   *MockReferralRepo
	walletService  *MockWalletService
	txManager      *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		investmentRepo: NewMockInvestmentRepo(ctrl),
		packageRepo:    NewMockPackageRepo(ctrl),
		referralRepo:   NewMockReferralRepo(ctrl),
		walletService:  NewMockWalletService(ctrl),
		txManager:      pg.NewMockTXManager(ctrl),
	}
	service := New(m.investmentRepo, m.packageRepo, m.referralRepo, m.walletService, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func starterPackage() *domain.Package {
	return &domain.Package{
		ID:           2,
		Name:         "Starter",
		Price:        dec(1000),
		DailyReturn:  dec(100),
		DurationDays: 3,
		IsActive:     true,
	}
}

func TestCreateInvestment(t *testing.T) {
	t.Run("Locks principal and creates one earning slot per day", func(t *testing.T) {
		service, m := NewMock(t)

		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(starterPackage(), nil)
		passthroughTx(m.txManager)
		m.walletService.EXPECT().LockPrincipal(gomock.Any(), 1, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal) (*domain.Wallet, error) {
				assert.True(t, amount.Equal(dec(1000)))
				return &domain.Wallet{}, nil
			})
		m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *domain.Investment) (*domain.Investment, error) {
				assert.Equal(t, InvestmentActive, inv.Status)
				assert.True(t, inv.Principal.Equal(dec(1000)))
				assert.True(t, inv.DailyReturn.Equal(dec(100)))
				assert.Equal(t, 3, int(inv.EndDate.Sub(inv.StartDate).Hours()/24))
				inv.ID = 4
				return inv, nil
			})
		m.investmentRepo.EXPECT().CreateEarnings(gomock.Any(), 4, gomock.Any(), 3).Return(nil)
		m.referralRepo.EXPECT().FindByReferredUser(gomock.Any(), 1).Return(nil, nil)

		investment, err := service.CreateInvestment(context.Background(), 1, 2)
		assert.NoError(t, err)
		assert.Equal(t, 4, investment.ID)
	})

	t.Run("Inactive package is unavailable", func(t *testing.T) {
		service, m := NewMock(t)

		pkg := starterPackage()
		pkg.IsActive = false
		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(pkg, nil)

		_, err := service.CreateInvestment(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrPackageUnavailable)
	})

	t.Run("Unknown package is unavailable", func(t *testing.T) {
		service, m := NewMock(t)

		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(nil, nil)

		_, err := service.CreateInvestment(context.Background(), 1, 2)
		assert.ErrorIs(t, err, ErrPackageUnavailable)
	})

	t.Run("Insufficient investable balance aborts everything", func(t *testing.T) {
		service, m := NewMock(t)

		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(starterPackage(), nil)
		passthroughTx(m.txManager)
		m.walletService.EXPECT().LockPrincipal(gomock.Any(), 1, gomock.Any()).
			Return(nil, walletservice.ErrInsufficientBalance)

		_, err := service.CreateInvestment(context.Background(), 1, 2)
		assert.ErrorIs(t, err, walletservice.ErrInsufficientBalance)
	})
}

func TestReferralBonus(t *testing.T) {
	t.Run("First investment pays 10 percent to the referrer", func(t *testing.T) {
		service, m := NewMock(t)

		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(starterPackage(), nil)
		passthroughTx(m.txManager)
		m.walletService.EXPECT().LockPrincipal(gomock.Any(), 7, gomock.Any()).Return(&domain.Wallet{}, nil)
		m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *domain.Investment) (*domain.Investment, error) {
				inv.ID = 4
				return inv, nil
			})
		m.investmentRepo.EXPECT().CreateEarnings(gomock.Any(), 4, gomock.Any(), 3).Return(nil)
		m.referralRepo.EXPECT().FindByReferredUser(gomock.Any(), 7).Return(&domain.Referral{
			ID:             12,
			ReferrerID:     1,
			ReferredUserID: 7,
		}, nil)
		m.referralRepo.EXPECT().RecordReward(gomock.Any(), 12, 4, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ int, reward decimal.Decimal) (*domain.Referral, error) {
				assert.True(t, reward.Equal(dec(100)))
				return &domain.Referral{ID: 12, ReferrerID: 1}, nil
			})
		m.walletService.EXPECT().CreditAvailable(gomock.Any(), 1, gomock.Any(),
			walletservice.TypeReferralBonus, gomock.Any()).Return(&domain.Wallet{}, nil)

		_, err := service.CreateInvestment(context.Background(), 7, 2)
		assert.NoError(t, err)
	})

	t.Run("Second investment pays no second bonus", func(t *testing.T) {
		service, m := NewMock(t)

		m.packageRepo.EXPECT().GetByID(gomock.Any(), 2).Return(starterPackage(), nil)
		passthroughTx(m.txManager)
		m.walletService.EXPECT().LockPrincipal(gomock.Any(), 7, gomock.Any()).Return(&domain.Wallet{}, nil)
		m.investmentRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *domain.Investment) (*domain.Investment, error) {
				inv.ID = 5
				return inv, nil
			})
		m.investmentRepo.EXPECT().CreateEarnings(gomock.Any(), 5, gomock.Any(), 3).Return(nil)
		m.referralRepo.EXPECT().FindByReferredUser(gomock.Any(), 7).Return(&domain.Referral{
			ID:             12,
			ReferrerID:     1,
			ReferredUserID: 7,
		}, nil)
		// reward row already linked to an earlier investment
		m.referralRepo.EXPECT().RecordReward(gomock.Any(), 12, 5, gomock.Any()).Return(nil, nil)

		_, err := service.CreateInvestment(context.Background(), 7, 2)
		assert.NoError(t, err)
	})
}

func TestStartEarning(t *testing.T) {
	pendingEarning := func() *domain.Earning {
		return &domain.Earning{ID: 15, InvestmentID: 4, DayIndex: 1, Amount: dec(100), Status: EarningPending}
	}
	activeInvestment := func() *domain.Investment {
		return &domain.Investment{ID: 4, UserID: 1, Status: InvestmentActive}
	}

	t.Run("Starts a pending earning", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		m.investmentRepo.EXPECT().GetEarningByID(gomock.Any(), 15).Return(pendingEarning(), nil)
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 4).Return(activeInvestment(), nil)
		m.investmentRepo.EXPECT().CountStartedEarnings(gomock.Any(), 4).Return(0, nil)
		started := pendingEarning()
		started.Status = EarningStarted
		m.investmentRepo.EXPECT().StartEarningIfPending(gomock.Any(), 15).Return(started, nil)

		earning, err := service.StartEarning(context.Background(), 1, 15)
		assert.NoError(t, err)
		assert.Equal(t, EarningStarted, earning.Status)
	})

	t.Run("Unknown earning", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		m.investmentRepo.EXPECT().GetEarningByID(gomock.Any(), 15).Return(nil, nil)

		_, err := service.StartEarning(context.Background(), 1, 15)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Another user's earning looks like it does not exist", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		m.investmentRepo.EXPECT().GetEarningByID(gomock.Any(), 15).Return(pendingEarning(), nil)
		other := activeInvestment()
		other.UserID = 2
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 4).Return(other, nil)

		_, err := service.StartEarning(context.Background(), 1, 15)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Already started earning cannot restart", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		started := pendingEarning()
		started.Status = EarningStarted
		m.investmentRepo.EXPECT().GetEarningByID(gomock.Any(), 15).Return(started, nil)
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 4).Return(activeInvestment(), nil)

		_, err := service.StartEarning(context.Background(), 1, 15)
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("Only one earning per investment can run", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		m.investmentRepo.EXPECT().GetEarningByID(gomock.Any(), 15).Return(pendingEarning(), nil)
		m.investmentRepo.EXPECT().GetByIDForUpdate(gomock.Any(), 4).Return(activeInvestment(), nil)
		m.investmentRepo.EXPECT().CountStartedEarnings(gomock.Any(), 4).Return(1, nil)

		_, err := service.StartEarning(context.Background(), 1, 15)
		assert.ErrorIs(t, err, ErrEarningInProgress)
	})
}

func TestCreditDueEarning(t *testing.T) {
	due := domain.DueEarning{
		Earning: domain.Earning{ID: 15, InvestmentID: 4, Amount: dec(100), Status: EarningStarted},
		UserID:  1,
	}

	t.Run("Credits the wallet and bumps totalEarned", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		credited := &domain.Earning{ID: 15, InvestmentID: 4, Amount: dec(100), Status: EarningCredited}
		m.investmentRepo.EXPECT().CreditEarningIfStarted(gomock.Any(), 15).Return(credited, nil)
		m.investmentRepo.EXPECT().AddTotalEarned(gomock.Any(), 4, gomock.Any()).Return(nil)
		m.walletService.EXPECT().CreditAvailable(gomock.Any(), 1, gomock.Any(),
			walletservice.TypeEarningCredit, gomock.Any()).Return(&domain.Wallet{}, nil)
		m.investmentRepo.EXPECT().CompleteIfFullyCredited(gomock.Any(), 4).Return(false, nil)

		assert.NoError(t, service.CreditDueEarning(context.Background(), due))
	})

	t.Run("Lost race credits nothing", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		m.investmentRepo.EXPECT().CreditEarningIfStarted(gomock.Any(), 15).Return(nil, nil)

		assert.NoError(t, service.CreditDueEarning(context.Background(), due))
	})

	t.Run("Final credit completes the investment and releases principal", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		credited := &domain.Earning{ID: 15, InvestmentID: 4, Amount: dec(100), Status: EarningCredited}
		m.investmentRepo.EXPECT().CreditEarningIfStarted(gomock.Any(), 15).Return(credited, nil)
		m.investmentRepo.EXPECT().AddTotalEarned(gomock.Any(), 4, gomock.Any()).Return(nil)
		m.walletService.EXPECT().CreditAvailable(gomock.Any(), 1, gomock.Any(),
			walletservice.TypeEarningCredit, gomock.Any()).Return(&domain.Wallet{}, nil)
		m.investmentRepo.EXPECT().CompleteIfFullyCredited(gomock.Any(), 4).Return(true, nil)
		m.investmentRepo.EXPECT().GetByID(gomock.Any(), 4).Return(&domain.Investment{
			ID:        4,
			UserID:    1,
			Principal: dec(1000),
			Status:    InvestmentCompleted,
		}, nil)
		m.walletService.EXPECT().UnlockPrincipal(gomock.Any(), 1, gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal, _ map[string]any) (*domain.Wallet, error) {
				assert.True(t, amount.Equal(dec(1000)))
				return &domain.Wallet{}, nil
			})

		assert.NoError(t, service.CreditDueEarning(context.Background(), due))
	})

	t.Run("Wallet failure aborts the transition", func(t *testing.T) {
		service, m := NewMock(t)

		passthroughTx(m.txManager)
		credited := &domain.Earning{ID: 15, InvestmentID: 4, Amount: dec(100), Status: EarningCredited}
		m.investmentRepo.EXPECT().CreditEarningIfStarted(gomock.Any(), 15).Return(credited, nil)
		m.investmentRepo.EXPECT().AddTotalEarned(gomock.Any(), 4, gomock.Any()).Return(nil)
		m.walletService.EXPECT().CreditAvailable(gomock.Any(), 1, gomock.Any(),
			walletservice.TypeEarningCredit, gomock.Any()).Return(nil, errors.New("wallet gone"))

		assert.Error(t, service.CreditDueEarning(context.Background(), due))
	})
}

func TestListMine(t *testing.T) {
	service, m := NewMock(t)

	m.investmentRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return([]domain.Investment{
		{ID: 4, UserID: 1},
		{ID: 5, UserID: 1},
	}, nil)
	m.investmentRepo.EXPECT().ListEarningsByUserID(gomock.Any(), 1).Return([]domain.Earning{
		{ID: 15, InvestmentID: 4},
		{ID: 16, InvestmentID: 4},
		{ID: 30, InvestmentID: 5},
	}, nil)

	result, err := service.ListMine(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Len(t, result[0].Earnings, 2)
	assert.Len(t, result[1].Earnings, 1)
}
