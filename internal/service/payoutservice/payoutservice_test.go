package payoutservice

import (
	"context"
	"testing"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	walletservice "github.com/dnochieng/mvest/internal/service/walletservice"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockPayoutRepo, *MockWalletService, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	payoutRepo := NewMockPayoutRepo(ctrl)
	walletSvc := NewMockWalletService(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(payoutRepo, walletSvc, txManager)
	defer ctrl.Finish()
	return service, payoutRepo, walletSvc, txManager
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		})
}

func TestRequest(t *testing.T) {
	service, payoutRepo, walletSvc, txManager := NewMock(t)

	tests := []struct {
		name          string
		amount        decimal.Decimal
		prepareMock   func()
		expectedError error
	}{
		{
			name:   "Debits available then records the payout",
			amount: dec(200),
			prepareMock: func() {
				passthroughTx(txManager)
				walletSvc.EXPECT().DebitAvailable(gomock.Any(), 1, gomock.Any(),
					walletservice.TypeWithdrawalRequest, gomock.Any()).Return(&domain.Wallet{}, nil)
				payoutRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
						assert.Equal(t, 1, p.UserID)
						assert.True(t, p.Amount.Equal(dec(200)))
						p.ID = 3
						p.Status = StatusPending
						return p, nil
					})
			},
		},
		{
			name:          "Rejects amount that is not a multiple of 100",
			amount:        dec(150),
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Rejects zero amount",
			amount:        dec(0),
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:          "Rejects negative amount",
			amount:        dec(-100),
			prepareMock:   func() {},
			expectedError: ErrInvalidAmount,
		},
		{
			name:   "Insufficient balance leaves no payout row",
			amount: dec(300),
			prepareMock: func() {
				passthroughTx(txManager)
				walletSvc.EXPECT().DebitAvailable(gomock.Any(), 1, gomock.Any(),
					walletservice.TypeWithdrawalRequest, gomock.Any()).
					Return(nil, walletservice.ErrInsufficientBalance)
			},
			expectedError: walletservice.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			payout, err := service.Request(context.Background(), 1, tt.amount, "+254712345678")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusPending, payout.Status)
			}
		})
	}
}

func TestApprove(t *testing.T) {
	service, payoutRepo, _, _ := NewMock(t)

	pending := &domain.Payout{ID: 3, UserID: 1, Amount: dec(200), Status: StatusPending}
	approved := &domain.Payout{ID: 3, UserID: 1, Amount: dec(200), Status: StatusApproved}

	t.Run("Approval only flips status", func(t *testing.T) {
		payoutRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pending, nil)
		payoutRepo.EXPECT().DecideIfPending(gomock.Any(), 3, StatusApproved, 99).Return(approved, nil)

		payout, err := service.Approve(context.Background(), 3, 99)
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, payout.Status)
	})

	t.Run("Unknown payout", func(t *testing.T) {
		payoutRepo.EXPECT().GetByID(gomock.Any(), 3).Return(nil, nil)

		_, err := service.Approve(context.Background(), 3, 99)
		assert.ErrorIs(t, err, ErrPayoutNotFound)
	})

	t.Run("Second decision fails", func(t *testing.T) {
		payoutRepo.EXPECT().GetByID(gomock.Any(), 3).Return(approved, nil)
		payoutRepo.EXPECT().DecideIfPending(gomock.Any(), 3, StatusApproved, 99).Return(nil, nil)

		_, err := service.Approve(context.Background(), 3, 99)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestReject(t *testing.T) {
	service, payoutRepo, walletSvc, txManager := NewMock(t)

	pending := &domain.Payout{ID: 3, UserID: 1, Amount: dec(200), Status: StatusPending}
	rejected := &domain.Payout{ID: 3, UserID: 1, Amount: dec(200), Status: StatusRejected}

	t.Run("Rejection refunds the reserved amount", func(t *testing.T) {
		passthroughTx(txManager)
		payoutRepo.EXPECT().GetByID(gomock.Any(), 3).Return(pending, nil)
		payoutRepo.EXPECT().DecideIfPending(gomock.Any(), 3, StatusRejected, 99).Return(rejected, nil)
		walletSvc.EXPECT().CreditAvailable(gomock.Any(), 1, gomock.Any(),
			walletservice.TypeAdjustment, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ int, amount decimal.Decimal, _ string, metadata map[string]any) (*domain.Wallet, error) {
				assert.True(t, amount.Equal(dec(200)))
				assert.Equal(t, "withdrawal_rejected", metadata["reason"])
				return &domain.Wallet{}, nil
			})

		payout, err := service.Reject(context.Background(), 3, 99)
		assert.NoError(t, err)
		assert.Equal(t, StatusRejected, payout.Status)
	})

	t.Run("Already decided payout is not refunded again", func(t *testing.T) {
		passthroughTx(txManager)
		payoutRepo.EXPECT().GetByID(gomock.Any(), 3).Return(rejected, nil)
		payoutRepo.EXPECT().DecideIfPending(gomock.Any(), 3, StatusRejected, 99).Return(nil, nil)

		_, err := service.Reject(context.Background(), 3, 99)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestListMine(t *testing.T) {
	service, payoutRepo, _, _ := NewMock(t)

	expected := []domain.Payout{{ID: 3, UserID: 1, Amount: dec(200)}}
	payoutRepo.EXPECT().ListByUserID(gomock.Any(), 1).Return(expected, nil)

	payouts, err := service.ListMine(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, expected, payouts)
}
