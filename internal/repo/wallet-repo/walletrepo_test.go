package walletrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

const walletSelect = `SELECT id, user_id, available, investable, locked_principal, updated_at`

func TestRepository_GetByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		userID    int
		mockSetup func()
		expectErr bool
		result    *domain.Wallet
	}{
		{
			name:   "Valid userID returns wallet",
			userID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "user_id", "available", "investable", "locked_principal", "updated_at"}).
					AddRow(1, 1, decimal.NewFromInt(150), decimal.NewFromInt(500), decimal.NewFromInt(1000), now)
				mock.ExpectQuery(regexp.QuoteMeta(walletSelect)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Wallet{
				ID:              1,
				UserID:          1,
				Available:       decimal.NewFromInt(150),
				Investable:      decimal.NewFromInt(500),
				LockedPrincipal: decimal.NewFromInt(1000),
				UpdatedAt:       now,
			},
		},
		{
			name:   "Non-existing userID returns nil",
			userID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(walletSelect)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			userID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(walletSelect)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByUserID(context.Background(), tt.userID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unmet expectations: %v", err)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	rows := pgxmock.NewRows([]string{"id", "user_id", "available", "investable", "locked_principal", "updated_at"}).
		AddRow(1, 1, decimal.NewFromInt(0), decimal.NewFromInt(0), decimal.NewFromInt(0), now)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallets (user_id)`)).
		WithArgs(1).
		WillReturnRows(rows)

	wallet, err := repo.Create(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, 1, wallet.UserID)
	assert.True(t, wallet.Available.IsZero())

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestRepository_UpdateBalances(t *testing.T) {
	repo, mock := NewMock(t)

	wallet := &domain.Wallet{
		ID:              1,
		UserID:          1,
		Available:       decimal.NewFromInt(150),
		Investable:      decimal.NewFromInt(500),
		LockedPrincipal: decimal.NewFromInt(1000),
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Successful update",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(wallet.Available, wallet.Investable, wallet.LockedPrincipal, wallet.ID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE wallets`)).
					WithArgs(wallet.Available, wallet.Investable, wallet.LockedPrincipal, wallet.ID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.UpdateBalances(context.Background(), wallet)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unmet expectations: %v", err)
			}
		})
	}
}

func TestRepository_CreateTransaction(t *testing.T) {
	repo, mock := NewMock(t)

	txn := &domain.WalletTransaction{
		WalletID:     1,
		Type:         "DEPOSIT_APPROVED",
		Direction:    "CREDIT",
		Amount:       decimal.NewFromInt(500),
		BalanceAfter: decimal.NewFromInt(500),
		Metadata:     map[string]any{"depositId": 7},
	}

	now := time.Now()
	rows := pgxmock.NewRows([]string{"id", "created_at"}).AddRow(10, now)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO wallet_transactions`)).
		WithArgs(txn.WalletID, txn.Type, txn.Direction, txn.Amount, txn.BalanceAfter, txn.Metadata).
		WillReturnRows(rows)

	err := repo.CreateTransaction(context.Background(), txn)

	assert.NoError(t, err)
	assert.Equal(t, 10, txn.ID)
	assert.Equal(t, now, txn.CreatedAt)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestRepository_ListTransactions(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Returns transactions newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "wallet_id", "type", "direction", "amount", "balance_after", "metadata", "created_at"}).
					AddRow(2, 1, "EARNING_CREDIT", "CREDIT", decimal.NewFromInt(100), decimal.NewFromInt(600), map[string]any{"earningId": 11}, now).
					AddRow(1, 1, "DEPOSIT_APPROVED", "CREDIT", decimal.NewFromInt(500), decimal.NewFromInt(500), map[string]any{"depositId": 7}, now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM wallet_transactions`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			txns, err := repo.ListTransactions(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, txns, tt.expectLen)
				assert.Equal(t, "EARNING_CREDIT", txns[0].Type)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unmet expectations: %v", err)
			}
		})
	}
}
