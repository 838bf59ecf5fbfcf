package users

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/dto"
	userservice "github.com/dnochieng/mvest/internal/service/userservice"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/dnochieng/mvest/pkg/auth"
)

func NewMock(t *testing.T) (*UserHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func authedRequest(method, target string, body []byte) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	return r.WithContext(context.WithValue(r.Context(), auth.UserIDKey, 1))
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestMeHandler(t *testing.T) {
	handler, service := NewMock(t)

	investmentID := 5
	profile := &userservice.Profile{
		User:   domain.User{ID: 1, Email: "jane@example.com", Username: "jane", Role: "USER", ReferralCode: "REF-1A2B3C4D"},
		Wallet: domain.Wallet{UserID: 1, Available: decimal.NewFromInt(150), Investable: decimal.NewFromInt(500)},
		Referrals: []domain.Referral{
			{ID: 1, ReferrerID: 1, ReferredUserID: 2, RewardAmount: decimal.NewFromInt(100), InvestmentID: &investmentID},
			{ID: 2, ReferrerID: 1, ReferredUserID: 3, RewardAmount: decimal.Decimal{}},
		},
		ReferralEarnings: decimal.NewFromInt(100),
	}

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful profile retrieval",
			prepareMock: func() {
				service.EXPECT().Me(gomock.Any(), 1).Return(profile, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "User not found",
			prepareMock: func() {
				service.EXPECT().Me(gomock.Any(), 1).Return(nil, userservice.ErrUserNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().Me(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/users/me", nil)
			w := httptest.NewRecorder()
			handler.Me(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, "jane", body.User.Username)
				assert.Len(t, body.Referrals, 2)
				assert.True(t, body.Referrals[0].Rewarded)
				assert.False(t, body.Referrals[1].Rewarded)
				assert.True(t, body.ReferralEarnings.Equal(decimal.NewFromInt(100)))
			}
		})
	}
}

func TestAdminListUsersHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.User{
		{ID: 1, Email: "jane@example.com", Username: "jane", Role: "USER"},
		{ID: 2, Email: "admin@example.com", Username: "admin", Role: "ADMIN"},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/admin/users", nil)
	w := httptest.NewRecorder()
	handler.AdminList(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.UserResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
	assert.Equal(t, "ADMIN", body[1].Role)
}

func TestAdjustBalancesHandler(t *testing.T) {
	handler, service := NewMock(t)

	adjusted := &domain.Wallet{UserID: 2, Available: decimal.NewFromInt(50), Investable: decimal.NewFromInt(200)}

	tests := []struct {
		name         string
		userID       string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Successful adjustment",
			userID: "2",
			body:   `{"deltaAvailable":"-50","deltaInvestable":"200"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustBalances(gomock.Any(), 2, decimal.NewFromInt(-50), decimal.NewFromInt(200), 1).
					Return(adjusted, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid user id",
			userID:       "abc",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Invalid request body",
			userID:       "2",
			body:         `{"deltaAvailable":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "Wallet not found",
			userID: "99",
			body:   `{"deltaAvailable":"10","deltaInvestable":"0"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustBalances(gomock.Any(), 99, decimal.NewFromInt(10), decimal.NewFromInt(0), 1).
					Return(nil, walletservice.ErrWalletNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:   "Adjustment would go negative",
			userID: "2",
			body:   `{"deltaAvailable":"-5000","deltaInvestable":"0"}`,
			prepareMock: func() {
				service.EXPECT().
					AdjustBalances(gomock.Any(), 2, decimal.NewFromInt(-5000), decimal.NewFromInt(0), 1).
					Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/admin/users/"+tt.userID+"/balances", []byte(tt.body))
			r = withURLParam(r, "id", tt.userID)
			w := httptest.NewRecorder()
			handler.AdjustBalances(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.WalletResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.True(t, body.Investable.Equal(decimal.NewFromInt(200)))
			}
		})
	}
}
