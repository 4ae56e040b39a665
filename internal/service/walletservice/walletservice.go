package walletservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/pg"
	"github.com/edumarket/wallet/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=walletservice.go -destination=mock_repo.go -package=walletservice

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	LockByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, walletID int, available, pending, earnings float64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error)
	ListByWalletID(ctx context.Context, walletID int, f domain.TransactionFilter) ([]domain.WalletTransaction, int, error)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

var (
	ErrInvalidUserID       = errors.New("invalid user id")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

// EnsureWallet is the idempotent get-or-create entry point. New users get a
// zero-balance wallet on first access.
func (s *Service) EnsureWallet(ctx context.Context, userID int) (*domain.Wallet, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		zap.L().Error("failed to ensure wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (s *Service) GetSummary(ctx context.Context, userID int) (*domain.Wallet, error) {
	return s.EnsureWallet(ctx, userID)
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListTransactions pages the ledger newest-first. Unknown type/source filter
// values degrade to "no filter" rather than erroring; clients sending junk
// filters still get their history.
func (s *Service) ListTransactions(ctx context.Context, userID int, f domain.TransactionFilter) (*domain.TransactionPage, error) {
	wallet, err := s.EnsureWallet(ctx, userID)
	if err != nil {
		return nil, err
	}

	f.Limit, f.Offset = clampPage(f.Limit, f.Offset)
	if f.Type != "" && !f.Type.Valid() {
		f.Type = ""
	}
	if f.Source != "" && !f.Source.Valid() {
		f.Source = ""
	}

	items, total, err := s.transactionRepo.ListByWalletID(ctx, wallet.ID, f)
	if err != nil {
		zap.L().Error("failed to list wallet transactions", zap.Error(err))
		return nil, err
	}
	return &domain.TransactionPage{
		Items:  items,
		Total:  total,
		Limit:  f.Limit,
		Offset: f.Offset,
	}, nil
}

// CreditForTeacher moves sale proceeds into the wallet. Non-positive or
// non-finite amounts are a silent no-op: a buggy caller must not be able to
// corrupt the ledger.
func (s *Service) CreditForTeacher(ctx context.Context, userID int, amount float64, meta *domain.TransactionMetadata) error {
	if !validAmount(amount) {
		zap.L().Warn("ignoring credit with invalid amount", zap.Int("userID", userID), zap.Float64("amount", amount))
		return nil
	}
	if _, err := s.EnsureWallet(ctx, userID); err != nil {
		return err
	}

	err := pg.WithRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.LockByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrWalletNotFound
			}
			if _, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, amount, 0, amount); err != nil {
				return err
			}
			_, err = s.transactionRepo.Append(ctx, &domain.WalletTransaction{
				WalletID: wallet.ID,
				Amount:   amount,
				Type:     domain.TransactionCredit,
				Source:   domain.SourceCourseSale,
				Metadata: meta,
			})
			return err
		})
	})
	if err != nil {
		zap.L().Error("failed to credit wallet", zap.Error(err))
		return err
	}
	metrics.CreditsTotal.Inc()
	return nil
}

// DebitForRefund claws back sale proceeds on a processed refund. The balance
// is re-read under the wallet row lock, never from a pre-transaction value.
func (s *Service) DebitForRefund(ctx context.Context, userID int, amount float64, meta *domain.TransactionMetadata) error {
	if !validAmount(amount) {
		zap.L().Warn("ignoring debit with invalid amount", zap.Int("userID", userID), zap.Float64("amount", amount))
		return nil
	}
	if _, err := s.EnsureWallet(ctx, userID); err != nil {
		return err
	}

	err := pg.WithRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			wallet, err := s.walletRepo.LockByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if wallet == nil {
				return ErrWalletNotFound
			}
			if wallet.AvailableBalance < amount {
				return fmt.Errorf("%w: available %.2f, refund %.2f", ErrInsufficientBalance, wallet.AvailableBalance, amount)
			}
			if _, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, -amount, 0, 0); err != nil {
				return err
			}
			_, err = s.transactionRepo.Append(ctx, &domain.WalletTransaction{
				WalletID: wallet.ID,
				Amount:   amount,
				Type:     domain.TransactionDebit,
				Source:   domain.SourceRefund,
				Metadata: meta,
			})
			return err
		})
	})
	if err != nil {
		zap.L().Error("failed to debit wallet", zap.Error(err))
		return err
	}
	metrics.DebitsTotal.Inc()
	return nil
}

func validAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}
