package deposits

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
	depositservice "github.com/dnochieng/mvest/internal/service/depositservice"
	"github.com/dnochieng/mvest/pkg/auth"
)

func NewMock(t *testing.T) (*DepositHandler, *MockService) {
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

func TestCreateDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	pending := &domain.Deposit{ID: 7, UserID: 1, Amount: decimal.NewFromInt(500), PhoneNumber: "+254712345678", Status: depositservice.StatusPending}

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful deposit claim",
			body: `{"amount":"500","phoneNumber":"+254712345678","message":"QWE123 Confirmed. Ksh500 received"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, decimal.NewFromInt(500), "+254712345678", "QWE123 Confirmed. Ksh500 received").
					Return(pending, nil)
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "Invalid request body",
			body:         `{"amount":`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Non-positive amount",
			body: `{"amount":"0","phoneNumber":"+254712345678","message":"msg"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, decimal.NewFromInt(0), "+254712345678", "msg").
					Return(nil, depositservice.ErrInvalidAmount)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Internal error",
			body: `{"amount":"500","phoneNumber":"+254712345678","message":"msg"}`,
			prepareMock: func() {
				service.EXPECT().
					Create(gomock.Any(), 1, decimal.NewFromInt(500), "+254712345678", "msg").
					Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/deposits", []byte(tt.body))
			w := httptest.NewRecorder()
			handler.Create(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusAccepted {
				var body dto.DepositResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, depositservice.StatusPending, body.Status)
			}
		})
	}
}

func TestGetMineDepositsHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful history retrieval",
			prepareMock: func() {
				service.EXPECT().ListMine(gomock.Any(), 1).Return([]domain.Deposit{
					{ID: 7, UserID: 1, Amount: decimal.NewFromInt(500), Status: depositservice.StatusApproved},
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "No deposits",
			prepareMock: func() {
				service.EXPECT().ListMine(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusNoContent,
		},
		{
			name: "Internal error",
			prepareMock: func() {
				service.EXPECT().ListMine(gomock.Any(), 1).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodGet, "/api/deposits", nil)
			w := httptest.NewRecorder()
			handler.GetMine(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestApproveDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	approved := &domain.Deposit{ID: 7, UserID: 2, Amount: decimal.NewFromInt(500), Status: depositservice.StatusApproved}

	tests := []struct {
		name         string
		depositID    string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:      "Successful approval",
			depositID: "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 7, 1).Return(approved, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid deposit id",
			depositID:    "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "Deposit not found",
			depositID: "99",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 99, 1).Return(nil, depositservice.ErrDepositNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Already decided",
			depositID: "7",
			prepareMock: func() {
				service.EXPECT().Approve(gomock.Any(), 7, 1).Return(nil, depositservice.ErrInvalidState)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := authedRequest(http.MethodPost, "/api/admin/deposits/"+tt.depositID+"/approve", nil)
			r = withURLParam(r, "id", tt.depositID)
			w := httptest.NewRecorder()
			handler.Approve(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.DepositResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, depositservice.StatusApproved, body.Status)
			}
		})
	}
}

func TestRejectDepositHandler(t *testing.T) {
	handler, service := NewMock(t)

	rejected := &domain.Deposit{ID: 7, UserID: 2, Amount: decimal.NewFromInt(500), Status: depositservice.StatusRejected}

	service.EXPECT().Reject(gomock.Any(), 7, 1).Return(rejected, nil)

	r := authedRequest(http.MethodPost, "/api/admin/deposits/7/reject", nil)
	r = withURLParam(r, "id", "7")
	w := httptest.NewRecorder()
	handler.Reject(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body dto.DepositResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Equal(t, depositservice.StatusRejected, body.Status)
}

func TestAdminListDepositsHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().AdminList(gomock.Any()).Return([]domain.Deposit{
		{ID: 7, UserID: 1, Status: depositservice.StatusPending},
		{ID: 8, UserID: 2, Status: depositservice.StatusApproved},
	}, nil)

	r := authedRequest(http.MethodGet, "/api/admin/deposits", nil)
	w := httptest.NewRecorder()
	handler.AdminList(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []dto.DepositResponseDTO
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 2)
}
