package authservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPhoneTaken         = errors.New("phone number already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserRepo interface {
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error)
	FindByReferralCode(ctx context.Context, code string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

type ReferralRepo interface {
	Create(ctx context.Context, referrerID, referredUserID int) (*domain.Referral, error)
}

type WalletService interface {
	CreateWallet(ctx context.Context, userID int) (*domain.Wallet, error)
}

type Service struct {
	userRepo      UserRepo
	referralRepo  ReferralRepo
	walletService WalletService
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
	txManager     pg.TXManager
}

func New(userRepo UserRepo, referralRepo ReferralRepo, walletService WalletService,
	hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, txManager pg.TXManager) *Service {
	return &Service{
		userRepo:      userRepo,
		referralRepo:  referralRepo,
		walletService: walletService,
		hashService:   hashService,
		jwtService:    jwtService,
		txManager:     txManager,
	}
}

// Register creates the user, an empty wallet and, when a valid referral code
// was supplied, the referral link — all in one transaction.
func (s *Service) Register(ctx context.Context, email, username, phoneNumber, password, referralCode string) (*domain.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	existing, err = s.userRepo.FindByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrPhoneTaken
	}

	var referrer *domain.User
	if referralCode != "" {
		referrer, err = s.userRepo.FindByReferralCode(ctx, referralCode)
		if err != nil {
			return nil, err
		}
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password", zap.Error(err))
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Username:     username,
		PhoneNumber:  phoneNumber,
		PasswordHash: hashedPassword,
		Role:         auth.RoleUser,
		ReferralCode: "REF-" + strings.ToUpper(uuid.NewString()[:8]),
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		if _, err := s.walletService.CreateWallet(ctx, user.ID); err != nil {
			return err
		}
		if referrer != nil {
			if _, err := s.referralRepo.Create(ctx, referrer.ID, user.ID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't register user", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user registered", zap.String("email", user.Email))
	return user, nil
}

// Authenticate accepts either an email or a username as the identifier.
func (s *Service) Authenticate(ctx context.Context, identifier, password string) (*domain.User, error) {
	var user *domain.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil || user == nil {
		return nil, ErrInvalidCredentials
	}

	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("user authenticated", zap.String("identifier", identifier))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(time.Hour)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}
