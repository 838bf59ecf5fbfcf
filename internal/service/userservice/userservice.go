package userservice

import (
	"context"
	"errors"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}

type ReferralRepo interface {
	ListByReferrer(ctx context.Context, referrerID int) ([]domain.Referral, error)
}

type WalletService interface {
	GetWallet(ctx context.Context, userID int) (*domain.Wallet, error)
	AdjustBalances(ctx context.Context, userID int, deltaAvailable, deltaInvestable decimal.Decimal, adminID int) (*domain.Wallet, error)
}

type Service struct {
	userRepo      UserRepo
	referralRepo  ReferralRepo
	walletService WalletService
}

func New(userRepo UserRepo, referralRepo ReferralRepo, walletService WalletService) *Service {
	return &Service{
		userRepo:      userRepo,
		referralRepo:  referralRepo,
		walletService: walletService,
	}
}

// Profile is the user's own view: account, wallet, referral history and the
// lifetime referral earnings.
type Profile struct {
	User             domain.User
	Wallet           domain.Wallet
	Referrals        []domain.Referral
	ReferralEarnings decimal.Decimal
}

func (s *Service) Me(ctx context.Context, userID int) (*Profile, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	wallet, err := s.walletService.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	referrals, err := s.referralRepo.ListByReferrer(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list referrals", zap.Error(err))
		return nil, err
	}

	total := decimal.Zero
	for _, ref := range referrals {
		total = total.Add(ref.RewardAmount)
	}

	return &Profile{
		User:             *user,
		Wallet:           *wallet,
		Referrals:        referrals,
		ReferralEarnings: total,
	}, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *Service) AdjustBalances(ctx context.Context, userID int, deltaAvailable, deltaInvestable decimal.Decimal, adminID int) (*domain.Wallet, error) {
	return s.walletService.AdjustBalances(ctx, userID, deltaAvailable, deltaInvestable, adminID)
}
