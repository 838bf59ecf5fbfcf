package handlers

import (
	"net/http"

	_ "github.com/dnochieng/mvest/docs"
	authhandlers "github.com/dnochieng/mvest/internal/handlers/auth"
	depositshandlers "github.com/dnochieng/mvest/internal/handlers/deposits"
	investmentshandlers "github.com/dnochieng/mvest/internal/handlers/investments"
	packageshandlers "github.com/dnochieng/mvest/internal/handlers/packages"
	payoutshandlers "github.com/dnochieng/mvest/internal/handlers/payouts"
	usershandlers "github.com/dnochieng/mvest/internal/handlers/users"
	wallethandlers "github.com/dnochieng/mvest/internal/handlers/wallet"
	"github.com/dnochieng/mvest/internal/service"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetWallet(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
}

type DepositHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	Request(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
}

type InvestmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	StartEarning(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
}

type PackageHandler interface {
	ListActive(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type UserHandler interface {
	Me(w http.ResponseWriter, r *http.Request)
	AdminList(w http.ResponseWriter, r *http.Request)
	AdjustBalances(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler       AuthHandler
	WalletHandler     WalletHandler
	DepositHandler    DepositHandler
	PayoutHandler     PayoutHandler
	InvestmentHandler InvestmentHandler
	PackageHandler    PackageHandler
	UserHandler       UserHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:       authhandlers.New(s.AuthService),
		WalletHandler:     wallethandlers.New(s.WalletService),
		DepositHandler:    depositshandlers.New(s.DepositService),
		PayoutHandler:     payoutshandlers.New(s.PayoutService),
		InvestmentHandler: investmentshandlers.New(s.InvestmentService),
		PackageHandler:    packageshandlers.New(s.PackageService),
		UserHandler:       usershandlers.New(s.UserService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/users/me", h.UserHandler.Me)
			r.Route("/wallet", func(r chi.Router) {
				r.Get("/", h.WalletHandler.GetWallet)
				r.Get("/transactions", h.WalletHandler.GetTransactions)
			})
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositHandler.Create)
				r.Get("/", h.DepositHandler.GetMine)
			})
			r.Route("/payouts", func(r chi.Router) {
				r.Post("/", h.PayoutHandler.Request)
				r.Get("/", h.PayoutHandler.GetMine)
			})
			r.Get("/packages", h.PackageHandler.ListActive)
			r.Route("/investments", func(r chi.Router) {
				r.Post("/", h.InvestmentHandler.Create)
				r.Get("/", h.InvestmentHandler.GetMine)
				r.Post("/earnings/start", h.InvestmentHandler.StartEarning)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(auth.AdminMiddleware)

				r.Route("/deposits", func(r chi.Router) {
					r.Get("/", h.DepositHandler.AdminList)
					r.Post("/{id}/approve", h.DepositHandler.Approve)
					r.Post("/{id}/reject", h.DepositHandler.Reject)
				})
				r.Route("/payouts", func(r chi.Router) {
					r.Get("/", h.PayoutHandler.AdminList)
					r.Post("/{id}/approve", h.PayoutHandler.Approve)
					r.Post("/{id}/reject", h.PayoutHandler.Reject)
				})
				r.Route("/packages", func(r chi.Router) {
					r.Get("/", h.PackageHandler.AdminList)
					r.Post("/", h.PackageHandler.Create)
					r.Put("/{id}", h.PackageHandler.Update)
					r.Delete("/{id}", h.PackageHandler.Delete)
				})
				r.Get("/investments", h.InvestmentHandler.AdminList)
				r.Route("/users", func(r chi.Router) {
					r.Get("/", h.UserHandler.AdminList)
					r.Post("/{id}/balances", h.UserHandler.AdjustBalances)
				})
			})
		})
	})

	return r
}
