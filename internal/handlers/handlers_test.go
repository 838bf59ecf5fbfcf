package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	_ "github.com/dnochieng/mvest/docs"
	authhandlers "github.com/dnochieng/mvest/internal/handlers/auth"
	depositshandlers "github.com/dnochieng/mvest/internal/handlers/deposits"
	investmentshandlers "github.com/dnochieng/mvest/internal/handlers/investments"
	packageshandlers "github.com/dnochieng/mvest/internal/handlers/packages"
	payoutshandlers "github.com/dnochieng/mvest/internal/handlers/payouts"
	usershandlers "github.com/dnochieng/mvest/internal/handlers/users"
	wallethandlers "github.com/dnochieng/mvest/internal/handlers/wallet"
	"github.com/dnochieng/mvest/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := &service.Services{
		AuthService:       authhandlers.NewMockService(ctrl),
		WalletService:     wallethandlers.NewMockService(ctrl),
		DepositService:    depositshandlers.NewMockService(ctrl),
		PayoutService:     payoutshandlers.NewMockService(ctrl),
		PackageService:    packageshandlers.NewMockService(ctrl),
		InvestmentService: investmentshandlers.NewMockService(ctrl),
		UserService:       usershandlers.NewMockService(ctrl),
	}

	h := New(services)
	assert.NotNil(t, h, "Handlers should not be nil")
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthHandler := NewMockAuthHandler(ctrl)
	mockWalletHandler := NewMockWalletHandler(ctrl)
	mockDepositHandler := NewMockDepositHandler(ctrl)
	mockPayoutHandler := NewMockPayoutHandler(ctrl)
	mockInvestmentHandler := NewMockInvestmentHandler(ctrl)
	mockPackageHandler := NewMockPackageHandler(ctrl)
	mockUserHandler := NewMockUserHandler(ctrl)

	mockAuthHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockAuthHandler.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetWallet(gomock.Any(), gomock.Any()).AnyTimes()
	mockWalletHandler.EXPECT().GetTransactions(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockDepositHandler.EXPECT().GetMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().Request(gomock.Any(), gomock.Any()).AnyTimes()
	mockPayoutHandler.EXPECT().GetMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestmentHandler.EXPECT().Create(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestmentHandler.EXPECT().GetMine(gomock.Any(), gomock.Any()).AnyTimes()
	mockInvestmentHandler.EXPECT().StartEarning(gomock.Any(), gomock.Any()).AnyTimes()
	mockPackageHandler.EXPECT().ListActive(gomock.Any(), gomock.Any()).AnyTimes()
	mockUserHandler.EXPECT().Me(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		AuthHandler:       mockAuthHandler,
		WalletHandler:     mockWalletHandler,
		DepositHandler:    mockDepositHandler,
		PayoutHandler:     mockPayoutHandler,
		InvestmentHandler: mockInvestmentHandler,
		PackageHandler:    mockPackageHandler,
		UserHandler:       mockUserHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/auth/register", http.StatusOK},
		{"POST", "/api/auth/login", http.StatusOK},
		{"GET", "/api/users/me", http.StatusUnauthorized},
		{"GET", "/api/wallet", http.StatusUnauthorized},
		{"GET", "/api/wallet/transactions", http.StatusUnauthorized},
		{"POST", "/api/deposits", http.StatusUnauthorized},
		{"GET", "/api/deposits", http.StatusUnauthorized},
		{"POST", "/api/payouts", http.StatusUnauthorized},
		{"GET", "/api/payouts", http.StatusUnauthorized},
		{"GET", "/api/packages", http.StatusUnauthorized},
		{"POST", "/api/investments", http.StatusUnauthorized},
		{"GET", "/api/investments", http.StatusUnauthorized},
		{"POST", "/api/investments/earnings/start", http.StatusUnauthorized},
		{"GET", "/api/admin/deposits", http.StatusUnauthorized},
		{"POST", "/api/admin/deposits/1/approve", http.StatusUnauthorized},
		{"POST", "/api/admin/payouts/1/reject", http.StatusUnauthorized},
		{"GET", "/api/admin/packages", http.StatusUnauthorized},
		{"POST", "/api/admin/packages", http.StatusUnauthorized},
		{"PUT", "/api/admin/packages/1", http.StatusUnauthorized},
		{"DELETE", "/api/admin/packages/1", http.StatusUnauthorized},
		{"GET", "/api/admin/investments", http.StatusUnauthorized},
		{"GET", "/api/admin/users", http.StatusUnauthorized},
		{"POST", "/api/admin/users/1/balances", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
