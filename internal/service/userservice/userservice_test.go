package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockReferralRepo, *MockWalletService) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	referralRepo := NewMockReferralRepo(ctrl)
	walletService := NewMockWalletService(ctrl)
	service := New(userRepo, referralRepo, walletService)
	defer ctrl.Finish()
	return service, userRepo, referralRepo, walletService
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestMe(t *testing.T) {
	t.Run("Aggregates account, wallet and referral earnings", func(t *testing.T) {
		service, userRepo, referralRepo, walletService := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1, Username: "jane"}, nil)
		walletService.EXPECT().GetWallet(gomock.Any(), 1).Return(&domain.Wallet{ID: 10, Available: dec(500)}, nil)
		referralRepo.EXPECT().ListByReferrer(gomock.Any(), 1).Return([]domain.Referral{
			{ID: 12, ReferrerID: 1, RewardAmount: dec(100)},
			{ID: 13, ReferrerID: 1, RewardAmount: dec(50)},
		}, nil)

		profile, err := service.Me(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "jane", profile.User.Username)
		assert.True(t, profile.Wallet.Available.Equal(dec(500)))
		assert.Len(t, profile.Referrals, 2)
		assert.True(t, profile.ReferralEarnings.Equal(dec(150)))
	})

	t.Run("Unknown user", func(t *testing.T) {
		service, userRepo, _, _ := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)

		_, err := service.Me(context.Background(), 1)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Wallet error propagates", func(t *testing.T) {
		service, userRepo, _, walletService := NewMock(t)

		userRepo.EXPECT().FindByID(gomock.Any(), 1).Return(&domain.User{ID: 1}, nil)
		walletService.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("db error"))

		_, err := service.Me(context.Background(), 1)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	service, userRepo, _, _ := NewMock(t)

	expected := []domain.User{{ID: 1}, {ID: 2}}
	userRepo.EXPECT().List(gomock.Any()).Return(expected, nil)

	users, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAdjustBalances(t *testing.T) {
	service, _, _, walletService := NewMock(t)

	walletService.EXPECT().AdjustBalances(gomock.Any(), 2, gomock.Any(), gomock.Any(), 99).
		Return(&domain.Wallet{ID: 20, Available: dec(150)}, nil)

	wallet, err := service.AdjustBalances(context.Background(), 2, dec(50), dec(0), 99)
	assert.NoError(t, err)
	assert.True(t, wallet.Available.Equal(dec(150)))
}
