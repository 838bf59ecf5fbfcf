package wallet

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*WalletHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func TestGetWalletHandler(t *testing.T) {
	handler, service := NewMock(t)

	wallet := &domain.Wallet{
		UserID:          1,
		Available:       decimal.NewFromInt(150),
		Investable:      decimal.NewFromInt(500),
		LockedPrincipal: decimal.NewFromInt(1000),
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful wallet retrieval",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(wallet, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wallet not found",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().GetWallet(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/wallet")
			w := httptest.NewRecorder()
			handler.GetWallet(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Available.Equal(decimal.NewFromInt(150)))
				assert.True(t, body.LockedPrincipal.Equal(decimal.NewFromInt(1000)))
			}
		})
	}
}

func TestGetTransactionsHandler(t *testing.T) {
	handler, service := NewMock(t)

	transactions := []domain.WalletTransaction{
		{ID: 2, Type: walletservice.TypeEarningCredit, Direction: walletservice.DirectionCredit, Amount: decimal.NewFromInt(100), BalanceAfter: decimal.NewFromInt(150), CreatedAt: time.Now()},
		{ID: 1, Type: walletservice.TypeDepositApproved, Direction: walletservice.DirectionCredit, Amount: decimal.NewFromInt(50), BalanceAfter: decimal.NewFromInt(50), CreatedAt: time.Now().Add(-time.Hour)},
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Successful history retrieval",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 1).Return(transactions, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No transactions",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().ListTransactions(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/wallet/transactions")
			w := httptest.NewRecorder()
			handler.GetTransactions(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.WalletTransactionResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, walletservice.TypeEarningCredit, body[0].Type)
			}
		})
	}
}
