package methodrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

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

func marshalDetails(d domain.MethodDetails) ([]byte, error) {
	details, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("can't marshal method details: %w", err)
	}
	return details, nil
}

func scanMethod(row pgx.Row, m *domain.PayoutMethod) error {
	var details []byte
	if err := row.Scan(&m.ID, &m.WalletID, &m.Type, &m.Label, &details, &m.IsDefault, &m.CreatedAt); err != nil {
		return err
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &m.Details); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error) {
	query := `
        INSERT INTO payout_methods (wallet_id, type, label, details, is_default)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	details, err := marshalDetails(method.Details)
	if err != nil {
		return nil, err
	}
	err = r.db.QueryRow(ctx, query, method.WalletID, method.Type, method.Label, details, method.IsDefault).
		Scan(&method.ID, &method.CreatedAt)
	if err != nil {
		zap.L().Error("can't save payout method", zap.Error(err))
		return nil, err
	}
	return method, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.PayoutMethod, error) {
	query := `
        SELECT id, wallet_id, type, label, details, is_default, created_at
        FROM payout_methods
        WHERE id = $1
    `
	var method domain.PayoutMethod
	err := scanMethod(r.db.QueryRow(ctx, query, id), &method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get payout method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) GetDefault(ctx context.Context, walletID int) (*domain.PayoutMethod, error) {
	query := `
        SELECT id, wallet_id, type, label, details, is_default, created_at
        FROM payout_methods
        WHERE wallet_id = $1 AND is_default
    `
	var method domain.PayoutMethod
	err := scanMethod(r.db.QueryRow(ctx, query, walletID), &method)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get default payout method", zap.Error(err))
		return nil, err
	}
	return &method, nil
}

func (r *Repository) ListByWalletID(ctx context.Context, walletID int) ([]domain.PayoutMethod, error) {
	query := `
        SELECT id, wallet_id, type, label, details, is_default, created_at
        FROM payout_methods
        WHERE wallet_id = $1
        ORDER BY is_default DESC, created_at DESC
    `
	rows, err := r.db.Query(ctx, query, walletID)
	if err != nil {
		zap.L().Error("failed to fetch payout methods", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var methods []domain.PayoutMethod
	for rows.Next() {
		var method domain.PayoutMethod
		var details []byte
		err := rows.Scan(&method.ID, &method.WalletID, &method.Type, &method.Label, &details, &method.IsDefault, &method.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payout method row", zap.Error(err))
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &method.Details); err != nil {
				zap.L().Error("failed to decode method details", zap.Error(err))
				return nil, err
			}
		}
		methods = append(methods, method)
	}
	return methods, nil
}

func (r *Repository) Update(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error) {
	query := `
        UPDATE payout_methods
        SET label = $1, details = $2, is_default = $3
        WHERE id = $4
        RETURNING id, wallet_id, type, label, details, is_default, created_at
    `
	details, err := marshalDetails(method.Details)
	if err != nil {
		return nil, err
	}
	var updated domain.PayoutMethod
	err = scanMethod(r.db.QueryRow(ctx, query, method.Label, details, method.IsDefault, method.ID), &updated)
	if err != nil {
		zap.L().Error("can't update payout method", zap.Error(err))
		return nil, err
	}
	return &updated, nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM payout_methods
        WHERE id = $1
    `
	if _, err := r.db.Exec(ctx, query, id); err != nil {
		zap.L().Error("can't delete payout method", zap.Error(err))
		return err
	}
	return nil
}

// ClearDefaults unsets is_default on all of the wallet's methods. Runs in
// the same transaction as the insert or update that sets the new default.
func (r *Repository) ClearDefaults(ctx context.Context, walletID int) error {
	query := `
        UPDATE payout_methods
        SET is_default = FALSE
        WHERE wallet_id = $1 AND is_default
    `
	if _, err := r.db.Exec(ctx, query, walletID); err != nil {
		zap.L().Error("can't clear default payout methods", zap.Error(err))
		return err
	}
	return nil
}
