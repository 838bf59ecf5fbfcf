package repo

import (
	"github.com/dnochieng/mvest/internal/pg"
	depositrepo "github.com/dnochieng/mvest/internal/repo/deposit-repo"
	investmentrepo "github.com/dnochieng/mvest/internal/repo/investment-repo"
	packagerepo "github.com/dnochieng/mvest/internal/repo/package-repo"
	payoutrepo "github.com/dnochieng/mvest/internal/repo/payout-repo"
	referralrepo "github.com/dnochieng/mvest/internal/repo/referral-repo"
	userrepo "github.com/dnochieng/mvest/internal/repo/user-repo"
	walletrepo "github.com/dnochieng/mvest/internal/repo/wallet-repo"
)

type Repositories struct {
	UserRepo       *userrepo.Repository
	WalletRepo     *walletrepo.Repository
	DepositRepo    *depositrepo.Repository
	PayoutRepo     *payoutrepo.Repository
	PackageRepo    *packagerepo.Repository
	InvestmentRepo *investmentrepo.Repository
	ReferralRepo   *referralrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:       userrepo.New(conn),
		WalletRepo:     walletrepo.New(conn),
		DepositRepo:    depositrepo.New(conn),
		PayoutRepo:     payoutrepo.New(conn),
		PackageRepo:    packagerepo.New(conn),
		InvestmentRepo: investmentrepo.New(conn),
		ReferralRepo:   referralrepo.New(conn),
	}
}
