package depositrepo

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

var depositRows = []string{"id", "user_id", "amount", "phone_number", "message", "status", "approved_by", "approved_at", "created_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	rows := pgxmock.NewRows(depositRows).
		AddRow(1, 2, decimal.NewFromInt(500), "+254700000001", "MPESA ref QWE123", "PENDING", (*int)(nil), (*time.Time)(nil), now)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO deposits (user_id, amount, phone_number, message)`)).
		WithArgs(2, decimal.NewFromInt(500), "+254700000001", "MPESA ref QWE123").
		WillReturnRows(rows)

	deposit, err := repo.Create(context.Background(), &domain.Deposit{
		UserID:      2,
		Amount:      decimal.NewFromInt(500),
		PhoneNumber: "+254700000001",
		Message:     "MPESA ref QWE123",
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, deposit.ID)
	assert.Equal(t, "PENDING", deposit.Status)
	assert.Nil(t, deposit.ApprovedBy)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}

func TestRepository_DecideIfPending(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()
	adminID := 9

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Deposit
	}{
		{
			name: "Pending deposit gets decided",
			mockSetup: func() {
				rows := pgxmock.NewRows(depositRows).
					AddRow(1, 2, decimal.NewFromInt(500), "+254700000001", "MPESA ref QWE123", "APPROVED", &adminID, &now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE deposits`)).
					WithArgs("APPROVED", adminID, 1).
					WillReturnRows(rows)
			},
			result: &domain.Deposit{
				ID:          1,
				UserID:      2,
				Amount:      decimal.NewFromInt(500),
				PhoneNumber: "+254700000001",
				Message:     "MPESA ref QWE123",
				Status:      "APPROVED",
				ApprovedBy:  &adminID,
				ApprovedAt:  &now,
				CreatedAt:   now,
			},
		},
		{
			name: "Already decided deposit returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE deposits`)).
					WithArgs("APPROVED", adminID, 1).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`UPDATE deposits`)).
					WithArgs("APPROVED", adminID, 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.DecideIfPending(context.Background(), 1, "APPROVED", adminID)

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

func TestRepository_ListByUserID(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Returns user deposits",
			mockSetup: func() {
				rows := pgxmock.NewRows(depositRows).
					AddRow(2, 1, decimal.NewFromInt(300), "+254700000001", "", "PENDING", (*int)(nil), (*time.Time)(nil), now).
					AddRow(1, 1, decimal.NewFromInt(500), "+254700000001", "", "REJECTED", (*int)(nil), (*time.Time)(nil), now.Add(-time.Hour))
				mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM deposits`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			deposits, err := repo.ListByUserID(context.Background(), 1)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, deposits, tt.expectLen)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unmet expectations: %v", err)
			}
		})
	}
}
