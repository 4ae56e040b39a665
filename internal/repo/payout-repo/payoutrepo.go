package payoutrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

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

const requestColumns = "id, wallet_id, method_id, amount, status, note, admin_note, external_reference, requested_at, processed_at"

func scanRequest(row pgx.Row, pr *domain.PayoutRequest) error {
	return row.Scan(&pr.ID, &pr.WalletID, &pr.MethodID, &pr.Amount, &pr.Status,
		&pr.Note, &pr.AdminNote, &pr.ExternalReference, &pr.RequestedAt, &pr.ProcessedAt)
}

func (r *Repository) Create(ctx context.Context, request *domain.PayoutRequest) (*domain.PayoutRequest, error) {
	query := `
        INSERT INTO payout_requests (wallet_id, method_id, amount, status, note)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, requested_at
    `
	err := r.db.QueryRow(ctx, query, request.WalletID, request.MethodID, request.Amount, request.Status, request.Note).
		Scan(&request.ID, &request.RequestedAt)
	if err != nil {
		zap.L().Error("can't save payout request", zap.Error(err))
		return nil, err
	}
	return request, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.PayoutRequest, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM payout_requests
        WHERE id = $1
    `, requestColumns)
	var request domain.PayoutRequest
	err := scanRequest(r.db.QueryRow(ctx, query, id), &request)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get payout request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

// LockByID reads the request FOR UPDATE so that concurrent reviews of the
// same request serialize. Must run inside a transaction.
func (r *Repository) LockByID(ctx context.Context, id int) (*domain.PayoutRequest, error) {
	query := fmt.Sprintf(`
        SELECT %s
        FROM payout_requests
        WHERE id = $1
        FOR UPDATE
    `, requestColumns)
	var request domain.PayoutRequest
	err := scanRequest(r.db.QueryRow(ctx, query, id), &request)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock payout request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) UpdateReview(ctx context.Context, id int, status domain.PayoutStatus, adminNote, externalReference string, processedAt *time.Time) (*domain.PayoutRequest, error) {
	query := fmt.Sprintf(`
        UPDATE payout_requests
        SET status = $1, admin_note = $2, external_reference = $3, processed_at = $4
        WHERE id = $5
        RETURNING %s
    `, requestColumns)
	var request domain.PayoutRequest
	err := scanRequest(r.db.QueryRow(ctx, query, status, adminNote, externalReference, processedAt, id), &request)
	if err != nil {
		zap.L().Error("can't update payout request", zap.Error(err))
		return nil, err
	}
	return &request, nil
}

func (r *Repository) ListByWalletID(ctx context.Context, walletID, limit, offset int) ([]domain.PayoutRequest, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM payout_requests WHERE wallet_id = $1`
	if err := r.db.QueryRow(ctx, countQuery, walletID).Scan(&total); err != nil {
		zap.L().Error("failed to count payout requests", zap.Error(err))
		return nil, 0, err
	}

	query := `
        SELECT r.id, r.wallet_id, r.method_id, r.amount, r.status, r.note, r.admin_note,
               r.external_reference, r.requested_at, r.processed_at,
               m.id, m.wallet_id, m.type, m.label, m.details, m.is_default, m.created_at
        FROM payout_requests r
        LEFT JOIN payout_methods m ON m.id = r.method_id
        WHERE r.wallet_id = $1
        ORDER BY r.requested_at DESC, r.id DESC
        LIMIT $2 OFFSET $3
    `
	return r.list(ctx, query, total, walletID, limit, offset)
}

// ListByStatus serves the admin review queue. An empty status lists all.
func (r *Repository) ListByStatus(ctx context.Context, status domain.PayoutStatus, limit, offset int) ([]domain.PayoutRequest, int, error) {
	where := ""
	args := []interface{}{limit, offset}
	countQuery := `SELECT COUNT(*) FROM payout_requests`
	countArgs := []interface{}{}
	if status != "" {
		where = "WHERE r.status = $3"
		args = append(args, status)
		countQuery += ` WHERE status = $1`
		countArgs = append(countArgs, status)
	}

	var total int
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		zap.L().Error("failed to count payout requests", zap.Error(err))
		return nil, 0, err
	}

	query := fmt.Sprintf(`
        SELECT r.id, r.wallet_id, r.method_id, r.amount, r.status, r.note, r.admin_note,
               r.external_reference, r.requested_at, r.processed_at,
               m.id, m.wallet_id, m.type, m.label, m.details, m.is_default, m.created_at
        FROM payout_requests r
        LEFT JOIN payout_methods m ON m.id = r.method_id
        %s
        ORDER BY r.requested_at DESC, r.id DESC
        LIMIT $1 OFFSET $2
    `, where)
	return r.list(ctx, query, total, args...)
}

func (r *Repository) list(ctx context.Context, query string, total int, args ...interface{}) ([]domain.PayoutRequest, int, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to fetch payout requests", zap.Error(err))
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.PayoutRequest
	for rows.Next() {
		var request domain.PayoutRequest
		var (
			methodID        *int
			methodWalletID  *int
			methodType      *domain.MethodType
			methodLabel     *string
			methodDetails   []byte
			methodIsDefault *bool
			methodCreatedAt *time.Time
		)
		err := rows.Scan(&request.ID, &request.WalletID, &request.MethodID, &request.Amount, &request.Status,
			&request.Note, &request.AdminNote, &request.ExternalReference, &request.RequestedAt, &request.ProcessedAt,
			&methodID, &methodWalletID, &methodType, &methodLabel, &methodDetails, &methodIsDefault, &methodCreatedAt)
		if err != nil {
			zap.L().Error("failed to scan payout request row", zap.Error(err))
			return nil, 0, err
		}
		if methodID != nil {
			method := domain.PayoutMethod{
				ID:        *methodID,
				WalletID:  *methodWalletID,
				Type:      *methodType,
				Label:     *methodLabel,
				IsDefault: *methodIsDefault,
				CreatedAt: *methodCreatedAt,
			}
			if len(methodDetails) > 0 {
				if err := json.Unmarshal(methodDetails, &method.Details); err != nil {
					zap.L().Error("failed to decode method details", zap.Error(err))
					return nil, 0, err
				}
			}
			request.Method = &method
		}
		requests = append(requests, request)
	}

	return requests, total, nil
}
