package transactionrepo

import (
	"context"
	"encoding/json"
	"fmt"

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

// Append inserts a ledger row. There are deliberately no update or delete
// statements for wallet_transactions anywhere in this package.
func (r *Repository) Append(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error) {
	query := `
        INSERT INTO wallet_transactions (wallet_id, amount, type, source, reference_id, metadata)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	var metadata []byte
	if t.Metadata != nil {
		var err error
		metadata, err = json.Marshal(t.Metadata)
		if err != nil {
			return nil, fmt.Errorf("can't marshal transaction metadata: %w", err)
		}
	}
	err := r.db.QueryRow(ctx, query, t.WalletID, t.Amount, t.Type, t.Source, t.ReferenceID, metadata).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		zap.L().Error("can't append wallet transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) ListByWalletID(ctx context.Context, walletID int, f domain.TransactionFilter) ([]domain.WalletTransaction, int, error) {
	where := "WHERE wallet_id = $1"
	args := []interface{}{walletID}
	if f.Type != "" {
		args = append(args, f.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.Source != "" {
		args = append(args, f.Source)
		where += fmt.Sprintf(" AND source = $%d", len(args))
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM wallet_transactions " + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		zap.L().Error("failed to count wallet transactions", zap.Error(err))
		return nil, 0, err
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
        SELECT id, wallet_id, amount, type, source, reference_id, metadata, created_at
        FROM wallet_transactions
        %s
        ORDER BY created_at DESC, id DESC
        LIMIT $%d OFFSET $%d
    `, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch wallet transactions", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var transactions []domain.WalletTransaction
	for rows.Next() {
		var t domain.WalletTransaction
		var metadata []byte
		err := rows.Scan(&t.ID, &t.WalletID, &t.Amount, &t.Type, &t.Source, &t.ReferenceID, &metadata, &t.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan wallet transaction row", zap.Error(err))
			return nil, 0, err
		}
		if len(metadata) > 0 {
			t.Metadata = &domain.TransactionMetadata{}
			if err := json.Unmarshal(metadata, t.Metadata); err != nil {
				zap.L().Error("failed to decode transaction metadata", zap.Error(err))
				return nil, 0, err
			}
		}
		transactions = append(transactions, t)
	}

	return transactions, total, nil
}

// SumByWalletID replays the ledger: credits and unfreezes minus debits.
// Used by reconciliation to verify the stored available balance.
func (r *Repository) SumByWalletID(ctx context.Context, walletID int) (float64, error) {
	query := `
        SELECT COALESCE(SUM(CASE WHEN type = 'DEBIT' THEN -amount ELSE amount END), 0)
        FROM wallet_transactions
        WHERE wallet_id = $1
    `
	var sum float64
	if err := r.db.QueryRow(ctx, query, walletID).Scan(&sum); err != nil {
		zap.L().Error("failed to sum wallet transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}
