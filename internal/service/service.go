package service

import (
	authhandlers "github.com/dnochieng/mvest/internal/handlers/auth"
	depositshandlers "github.com/dnochieng/mvest/internal/handlers/deposits"
	investmentshandlers "github.com/dnochieng/mvest/internal/handlers/investments"
	packageshandlers "github.com/dnochieng/mvest/internal/handlers/packages"
	payoutshandlers "github.com/dnochieng/mvest/internal/handlers/payouts"
	usershandlers "github.com/dnochieng/mvest/internal/handlers/users"
	wallethandlers "github.com/dnochieng/mvest/internal/handlers/wallet"

	pkgauth "github.com/dnochieng/mvest/pkg/auth"

	"github.com/dnochieng/mvest/internal/pg"
	"github.com/dnochieng/mvest/internal/repo"
	authservice "github.com/dnochieng/mvest/internal/service/authservice"
	depositservice "github.com/dnochieng/mvest/internal/service/depositservice"
	investservice "github.com/dnochieng/mvest/internal/service/investservice"
	packageservice "github.com/dnochieng/mvest/internal/service/packageservice"
	payoutservice "github.com/dnochieng/mvest/internal/service/payoutservice"
	userservice "github.com/dnochieng/mvest/internal/service/userservice"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
)

type Services struct {
	AuthService       authhandlers.Service
	WalletService     wallethandlers.Service
	DepositService    depositshandlers.Service
	PayoutService     payoutshandlers.Service
	PackageService    packageshandlers.Service
	InvestmentService investmentshandlers.Service
	UserService       usershandlers.Service

	// InvestService is the concrete investment service; the accrual sweep
	// drives it directly.
	InvestService *investservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cache packageservice.Cache, publisher walletservice.TxPublisher) *Services {
	walletService := walletservice.New(repo.WalletRepo, txManager, publisher)
	authService := authservice.New(repo.UserRepo, repo.ReferralRepo, walletService,
		&pkgauth.HashService{}, &pkgauth.JWTService{}, txManager)
	depositService := depositservice.New(repo.DepositRepo, walletService, txManager)
	payoutService := payoutservice.New(repo.PayoutRepo, walletService, txManager)
	packageService := packageservice.New(repo.PackageRepo, cache)
	investService := investservice.New(repo.InvestmentRepo, repo.PackageRepo, repo.ReferralRepo, walletService, txManager)
	userService := userservice.New(repo.UserRepo, repo.ReferralRepo, walletService)

	return &Services{
		AuthService:       authService,
		WalletService:     walletService,
		DepositService:    depositService,
		PayoutService:     payoutService,
		PackageService:    packageService,
		InvestmentService: investService,
		UserService:       userService,

		InvestService: investService,
	}
}
