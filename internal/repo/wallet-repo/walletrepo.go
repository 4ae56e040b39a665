package walletrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/pg"
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

func scanWallet(row pgx.Row, w *domain.Wallet) error {
	return row.Scan(&w.ID, &w.UserID, &w.AvailableBalance, &w.PendingPayout, &w.TotalEarnings, &w.CreatedAt)
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, available_balance, pending_payout, total_earnings, created_at
        FROM wallets
        WHERE user_id = $1
    `
	var wallet domain.Wallet
	err := scanWallet(r.db.QueryRow(ctx, query, userID), &wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// GetOrCreate is a race-safe upsert: concurrent first accesses for the same
// user all land on the single row the database keeps.
func (r *Repository) GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id)
        VALUES ($1)
        ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
        RETURNING id, user_id, available_balance, pending_payout, total_earnings, created_at
    `
	var wallet domain.Wallet
	err := scanWallet(r.db.QueryRow(ctx, query, userID), &wallet)
	if err != nil {
		zap.L().Error("failed to get or create wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// LockByUserID reads the wallet row FOR UPDATE. Must run inside a
// transaction; the lock serializes concurrent balance mutators.
func (r *Repository) LockByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, available_balance, pending_payout, total_earnings, created_at
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	var wallet domain.Wallet
	err := scanWallet(r.db.QueryRow(ctx, query, userID), &wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) LockByID(ctx context.Context, walletID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, available_balance, pending_payout, total_earnings, created_at
        FROM wallets
        WHERE id = $1
        FOR UPDATE
    `
	var wallet domain.Wallet
	err := scanWallet(r.db.QueryRow(ctx, query, walletID), &wallet)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

// ApplyDelta shifts the balance columns by the given amounts. The CHECK
// constraints reject any delta that would push a balance negative.
func (r *Repository) ApplyDelta(ctx context.Context, walletID int, available, pending, earnings float64) (*domain.Wallet, error) {
	query := `
        UPDATE wallets
        SET available_balance = available_balance + $1,
            pending_payout = pending_payout + $2,
            total_earnings = total_earnings + $3
        WHERE id = $4
        RETURNING id, user_id, available_balance, pending_payout, total_earnings, created_at
    `
	var wallet domain.Wallet
	err := scanWallet(r.db.QueryRow(ctx, query, available, pending, earnings, walletID), &wallet)
	if err != nil {
		zap.L().Error("failed to apply balance delta", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
