package walletrepo

import (
	"context"

	"github.com/dnochieng/mvest/internal/domain"
	"github.com/dnochieng/mvest/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const walletColumns = "id, user_id, available, investable, locked_principal, updated_at"

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Available, &wallet.Investable,
		&wallet.LockedPrincipal, &wallet.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        RETURNING ` + walletColumns + `
    `
	return scanWallet(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
    `
	return scanWallet(r.db.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate takes a row lock on the wallet. Must run inside a
// transaction; concurrent mutations of the same wallet serialize on this lock.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT ` + walletColumns + `
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return scanWallet(r.db.QueryRow(ctx, query, userID))
}

func (r *Repository) UpdateBalances(ctx context.Context, wallet *domain.Wallet) error {
	query := `
        UPDATE wallets
        SET available = $1, investable = $2, locked_principal = $3, updated_at = now()
        WHERE id = $4
    `
	_, err := r.db.Exec(ctx, query, wallet.Available, wallet.Investable, wallet.LockedPrincipal, wallet.ID)
	if err != nil {
		zap.L().Error("can't update wallet balances", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreateTransaction(ctx context.Context, txn *domain.WalletTransaction) error {
	query := `
        INSERT INTO wallet_transactions (wallet_id, type, direction, amount, balance_after, metadata)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, txn.WalletID, txn.Type, txn.Direction,
		txn.Amount, txn.BalanceAfter, txn.Metadata).Scan(&txn.ID, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("can't save wallet transaction", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) ListTransactions(ctx context.Context, walletID int) ([]domain.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, type, direction, amount, balance_after, metadata, created_at
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("can't list wallet transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.WalletTransaction
	for rows.Next() {
		var txn domain.WalletTransaction
		err := rows.Scan(&txn.ID, &txn.WalletID, &txn.Type, &txn.Direction,
			&txn.Amount, &txn.BalanceAfter, &txn.Metadata, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan wallet transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
