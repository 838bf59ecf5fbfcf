package investmentrepo

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

var earningRows = []string{"id", "investment_id", "day_index", "amount", "status", "started_at", "credited_at"}

func TestRepository_StartEarningIfPending(t *testing.T) {
	repo, mock := NewMock(t)

	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Earning
	}{
		{
			name: "Pending earning gets started",
			mockSetup: func() {
				rows := pgxmock.NewRows(earningRows).
					AddRow(11, 4, 1, decimal.NewFromInt(100), "STARTED", &now, (*time.Time)(nil))
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'STARTED', started_at = now()`)).
					WithArgs(11).
					WillReturnRows(rows)
			},
			result: &domain.Earning{
				ID:           11,
				InvestmentID: 4,
				DayIndex:     1,
				Amount:       decimal.NewFromInt(100),
				Status:       "STARTED",
				StartedAt:    &now,
			},
		},
		{
			name: "Already started earning returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'STARTED', started_at = now()`)).
					WithArgs(11).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'STARTED', started_at = now()`)).
					WithArgs(11).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.StartEarningIfPending(context.Background(), 11)

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

func TestRepository_CreditEarningIfStarted(t *testing.T) {
	repo, mock := NewMock(t)

	started := time.Now().Add(-24 * time.Hour)
	credited := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Earning
	}{
		{
			name: "Started earning gets credited",
			mockSetup: func() {
				rows := pgxmock.NewRows(earningRows).
					AddRow(11, 4, 1, decimal.NewFromInt(100), "CREDITED", &started, &credited)
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'CREDITED', credited_at = now()`)).
					WithArgs(11).
					WillReturnRows(rows)
			},
			result: &domain.Earning{
				ID:           11,
				InvestmentID: 4,
				DayIndex:     1,
				Amount:       decimal.NewFromInt(100),
				Status:       "CREDITED",
				StartedAt:    &started,
				CreditedAt:   &credited,
			},
		},
		{
			name: "Already credited earning returns nil",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'CREDITED', credited_at = now()`)).
					WithArgs(11).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SET status = 'CREDITED', credited_at = now()`)).
					WithArgs(11).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.CreditEarningIfStarted(context.Background(), 11)

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

func TestRepository_CompleteIfFullyCredited(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		completed bool
	}{
		{
			name: "Last credited slot completes the investment",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'COMPLETED'`)).
					WithArgs(4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			completed: true,
		},
		{
			name: "Uncredited slots remain",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'COMPLETED'`)).
					WithArgs(4).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			completed: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`SET status = 'COMPLETED'`)).
					WithArgs(4).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			completed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			completed, err := repo.CompleteIfFullyCredited(context.Background(), 4)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.completed, completed)

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("there were unmet expectations: %v", err)
			}
		})
	}
}

func TestRepository_CreateEarnings(t *testing.T) {
	repo, mock := NewMock(t)

	t.Run("Inserts one slot per day", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO earnings (investment_id, day_index, amount)`)).
			WithArgs(4, decimal.NewFromInt(100), 30).
			WillReturnResult(pgxmock.NewResult("INSERT", 30))

		err := repo.CreateEarnings(context.Background(), 4, decimal.NewFromInt(100), 30)

		assert.NoError(t, err)

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unmet expectations: %v", err)
		}
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO earnings (investment_id, day_index, amount)`)).
			WithArgs(4, decimal.NewFromInt(100), 30).
			WillReturnError(errors.New("database error"))

		err := repo.CreateEarnings(context.Background(), 4, decimal.NewFromInt(100), 30)

		assert.Error(t, err)

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("there were unmet expectations: %v", err)
		}
	})
}
