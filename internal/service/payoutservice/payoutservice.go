package payoutservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edumarket/wallet/internal/domain"
	"github.com/edumarket/wallet/internal/pg"
	"github.com/edumarket/wallet/pkg/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=payoutservice.go -destination=mock_repo.go -package=payoutservice

type WalletRepo interface {
	GetOrCreate(ctx context.Context, userID int) (*domain.Wallet, error)
	LockByUserID(ctx context.Context, userID int) (*domain.Wallet, error)
	LockByID(ctx context.Context, walletID int) (*domain.Wallet, error)
	ApplyDelta(ctx context.Context, walletID int, available, pending, earnings float64) (*domain.Wallet, error)
}

type TransactionRepo interface {
	Append(ctx context.Context, t *domain.WalletTransaction) (*domain.WalletTransaction, error)
}

type MethodRepo interface {
	Create(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error)
	GetByID(ctx context.Context, id int) (*domain.PayoutMethod, error)
	GetDefault(ctx context.Context, walletID int) (*domain.PayoutMethod, error)
	ListByWalletID(ctx context.Context, walletID int) ([]domain.PayoutMethod, error)
	Update(ctx context.Context, method *domain.PayoutMethod) (*domain.PayoutMethod, error)
	Delete(ctx context.Context, id int) error
	ClearDefaults(ctx context.Context, walletID int) error
}

type PayoutRepo interface {
	Create(ctx context.Context, request *domain.PayoutRequest) (*domain.PayoutRequest, error)
	LockByID(ctx context.Context, id int) (*domain.PayoutRequest, error)
	UpdateReview(ctx context.Context, id int, status domain.PayoutStatus, adminNote, externalReference string, processedAt *time.Time) (*domain.PayoutRequest, error)
	ListByWalletID(ctx context.Context, walletID, limit, offset int) ([]domain.PayoutRequest, int, error)
	ListByStatus(ctx context.Context, status domain.PayoutStatus, limit, offset int) ([]domain.PayoutRequest, int, error)
}

const (
	defaultLimit = 20
	maxLimit     = 100
)

var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidMethodType   = errors.New("invalid payout method type")
	ErrEmptyLabel          = errors.New("label is required")
	ErrInvalidStatus       = errors.New("invalid payout status")
	ErrInvalidAction       = errors.New("invalid review action")
	ErrMethodNotFound      = errors.New("payout method not found")
	ErrRequestNotFound     = errors.New("payout request not found")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrIllegalTransition   = errors.New("illegal payout status transition")
)

type ReviewAction string

const (
	ActionApprove    ReviewAction = "approve"
	ActionReject     ReviewAction = "reject"
	ActionProcessing ReviewAction = "processing"
	ActionPaid       ReviewAction = "paid"
)

func (a ReviewAction) Valid() bool {
	switch a {
	case ActionApprove, ActionReject, ActionProcessing, ActionPaid:
		return true
	}
	return false
}

// reviewTransitions is the legal-source-state table of the payout state
// machine. PAID and REJECTED appear in no set: they are terminal.
var reviewTransitions = map[ReviewAction]map[domain.PayoutStatus]bool{
	ActionApprove:    {domain.StatusPending: true},
	ActionProcessing: {domain.StatusPending: true, domain.StatusApproved: true},
	ActionReject:     {domain.StatusPending: true, domain.StatusApproved: true, domain.StatusProcessing: true},
	ActionPaid:       {domain.StatusApproved: true, domain.StatusProcessing: true},
}

type AddMethodInput struct {
	Type      domain.MethodType
	Label     string
	Details   domain.MethodDetails
	IsDefault bool
}

type UpdateMethodInput struct {
	Label     *string
	Details   *domain.MethodDetails
	IsDefault *bool
}

type PayoutInput struct {
	Amount   float64
	MethodID *int
	Note     string
}

type ReviewInput struct {
	AdminNote         string
	ExternalReference string
}

type Service struct {
	walletRepo      WalletRepo
	transactionRepo TransactionRepo
	methodRepo      MethodRepo
	payoutRepo      PayoutRepo
	txManager       pg.TXManager
}

func New(walletRepo WalletRepo, transactionRepo TransactionRepo, methodRepo MethodRepo, payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		walletRepo:      walletRepo,
		transactionRepo: transactionRepo,
		methodRepo:      methodRepo,
		payoutRepo:      payoutRepo,
		txManager:       txManager,
	}
}

func (s *Service) AddPayoutMethod(ctx context.Context, userID int, in AddMethodInput) (*domain.PayoutMethod, error) {
	if !in.Type.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMethodType, in.Type)
	}
	if strings.TrimSpace(in.Label) == "" {
		return nil, ErrEmptyLabel
	}

	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	method := &domain.PayoutMethod{
		WalletID:  wallet.ID,
		Type:      in.Type,
		Label:     strings.TrimSpace(in.Label),
		Details:   in.Details,
		IsDefault: in.IsDefault,
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if in.IsDefault {
			if err := s.methodRepo.ClearDefaults(ctx, wallet.ID); err != nil {
				return err
			}
		}
		_, err := s.methodRepo.Create(ctx, method)
		return err
	})
	if err != nil {
		zap.L().Error("failed to add payout method", zap.Error(err))
		return nil, err
	}
	return method, nil
}

func (s *Service) ListPayoutMethods(ctx context.Context, userID int) ([]domain.PayoutMethod, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.methodRepo.ListByWalletID(ctx, wallet.ID)
}

func (s *Service) UpdatePayoutMethod(ctx context.Context, userID, methodID int, in UpdateMethodInput) (*domain.PayoutMethod, error) {
	wallet, method, err := s.ownedMethod(ctx, userID, methodID)
	if err != nil {
		return nil, err
	}

	if in.Label != nil {
		if strings.TrimSpace(*in.Label) == "" {
			return nil, ErrEmptyLabel
		}
		method.Label = strings.TrimSpace(*in.Label)
	}
	if in.Details != nil {
		method.Details = *in.Details
	}
	makeDefault := in.IsDefault != nil && *in.IsDefault && !method.IsDefault
	if in.IsDefault != nil {
		method.IsDefault = *in.IsDefault
	}

	var updated *domain.PayoutMethod
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if makeDefault {
			if err := s.methodRepo.ClearDefaults(ctx, wallet.ID); err != nil {
				return err
			}
		}
		var err error
		updated, err = s.methodRepo.Update(ctx, method)
		return err
	})
	if err != nil {
		zap.L().Error("failed to update payout method", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// DeletePayoutMethod removes a disbursement destination. Requests that
// referenced it keep a nulled method_id; history is never cascaded away.
func (s *Service) DeletePayoutMethod(ctx context.Context, userID, methodID int) error {
	_, method, err := s.ownedMethod(ctx, userID, methodID)
	if err != nil {
		return err
	}
	return s.methodRepo.Delete(ctx, method.ID)
}

func (s *Service) ownedMethod(ctx context.Context, userID, methodID int) (*domain.Wallet, *domain.PayoutMethod, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	method, err := s.methodRepo.GetByID(ctx, methodID)
	if err != nil {
		return nil, nil, err
	}
	if method == nil || method.WalletID != wallet.ID {
		return nil, nil, ErrMethodNotFound
	}
	return wallet, method, nil
}

// RequestPayout reserves funds for disbursement. The balance check and the
// reservation run under the wallet row lock in one transaction, so two
// concurrent requests cannot both pass the check against a stale value.
func (s *Service) RequestPayout(ctx context.Context, userID int, in PayoutInput) (*domain.PayoutRequest, error) {
	if !(in.Amount > 0) || math.IsInf(in.Amount, 0) || math.IsNaN(in.Amount) {
		return nil, fmt.Errorf("%w: amount must be a positive number", ErrInvalidAmount)
	}

	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	var method *domain.PayoutMethod
	if in.MethodID != nil {
		method, err = s.methodRepo.GetByID(ctx, *in.MethodID)
		if err != nil {
			return nil, err
		}
		if method == nil || method.WalletID != wallet.ID {
			return nil, ErrMethodNotFound
		}
	} else {
		method, err = s.methodRepo.GetDefault(ctx, wallet.ID)
		if err != nil {
			return nil, err
		}
	}

	var request *domain.PayoutRequest
	err = pg.WithRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			locked, err := s.walletRepo.LockByUserID(ctx, userID)
			if err != nil {
				return err
			}
			if locked == nil {
				return ErrWalletNotFound
			}
			if locked.AvailableBalance < in.Amount {
				return fmt.Errorf("%w: available %.2f, requested %.2f", ErrInsufficientBalance, locked.AvailableBalance, in.Amount)
			}
			if _, err := s.walletRepo.ApplyDelta(ctx, locked.ID, -in.Amount, in.Amount, 0); err != nil {
				return err
			}

			request = &domain.PayoutRequest{
				WalletID: locked.ID,
				Amount:   in.Amount,
				Status:   domain.StatusPending,
				Note:     in.Note,
			}
			if method != nil {
				request.MethodID = &method.ID
			}
			if _, err := s.payoutRepo.Create(ctx, request); err != nil {
				return err
			}

			var meta *domain.TransactionMetadata
			if in.Note != "" {
				meta = &domain.TransactionMetadata{Note: in.Note}
			}
			_, err = s.transactionRepo.Append(ctx, &domain.WalletTransaction{
				WalletID:    locked.ID,
				Amount:      in.Amount,
				Type:        domain.TransactionDebit,
				Source:      domain.SourcePayout,
				ReferenceID: &request.ID,
				Metadata:    meta,
			})
			return err
		})
	})
	if err != nil {
		zap.L().Error("failed to request payout", zap.Error(err))
		return nil, err
	}

	request.Method = method
	metrics.PayoutRequestsTotal.Inc()
	return request, nil
}

func (s *Service) ListMyPayouts(ctx context.Context, userID, limit, offset int) (*domain.PayoutPage, error) {
	wallet, err := s.walletRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}
	limit, offset = clampPage(limit, offset)
	items, total, err := s.payoutRepo.ListByWalletID(ctx, wallet.ID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list payouts", zap.Error(err))
		return nil, err
	}
	return &domain.PayoutPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// ListPayoutRequests is the admin review queue, optionally filtered by
// status. Unlike the ledger filters, an unknown status is rejected.
func (s *Service) ListPayoutRequests(ctx context.Context, status domain.PayoutStatus, limit, offset int) (*domain.PayoutPage, error) {
	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	limit, offset = clampPage(limit, offset)
	items, total, err := s.payoutRepo.ListByStatus(ctx, status, limit, offset)
	if err != nil {
		zap.L().Error("failed to list payout requests", zap.Error(err))
		return nil, err
	}
	return &domain.PayoutPage{Items: items, Total: total, Limit: limit, Offset: offset}, nil
}

// ReviewPayout applies one admin action. Any balance effect commits in the
// same transaction as the status change: a reject that restores funds and a
// reject that flips the status are the same atomic unit.
func (s *Service) ReviewPayout(ctx context.Context, id int, action ReviewAction, in ReviewInput) (*domain.PayoutRequest, error) {
	if !action.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, action)
	}

	var updated *domain.PayoutRequest
	err := pg.WithRetry(ctx, func(ctx context.Context) error {
		return s.txManager.Begin(ctx, func(ctx context.Context) error {
			request, err := s.payoutRepo.LockByID(ctx, id)
			if err != nil {
				return err
			}
			if request == nil {
				return ErrRequestNotFound
			}
			if !reviewTransitions[action][request.Status] {
				return fmt.Errorf("%w: cannot %s a request in status %s", ErrIllegalTransition, action, request.Status)
			}

			adminNote := request.AdminNote
			if in.AdminNote != "" {
				adminNote = in.AdminNote
			}
			externalReference := request.ExternalReference
			if in.ExternalReference != "" {
				externalReference = in.ExternalReference
			}

			switch action {
			case ActionApprove:
				updated, err = s.payoutRepo.UpdateReview(ctx, request.ID, domain.StatusApproved, adminNote, externalReference, nil)
			case ActionProcessing:
				updated, err = s.payoutRepo.UpdateReview(ctx, request.ID, domain.StatusProcessing, adminNote, externalReference, nil)
			case ActionReject:
				updated, err = s.reject(ctx, request, adminNote, externalReference)
			case ActionPaid:
				if externalReference == "" {
					externalReference = uuid.NewString()
				}
				updated, err = s.paid(ctx, request, adminNote, externalReference)
			}
			return err
		})
	})
	if err != nil {
		zap.L().Error("failed to review payout", zap.Error(err))
		return nil, err
	}

	metrics.PayoutReviewsTotal.WithLabelValues(string(action)).Inc()
	return updated, nil
}

// reject returns the reserved funds to the spendable balance and records the
// reversal in the ledger.
func (s *Service) reject(ctx context.Context, request *domain.PayoutRequest, adminNote, externalReference string) (*domain.PayoutRequest, error) {
	wallet, err := s.walletRepo.LockByID(ctx, request.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if _, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, request.Amount, -request.Amount, 0); err != nil {
		return nil, err
	}
	var meta *domain.TransactionMetadata
	if adminNote != "" {
		meta = &domain.TransactionMetadata{Note: adminNote}
	}
	_, err = s.transactionRepo.Append(ctx, &domain.WalletTransaction{
		WalletID:    wallet.ID,
		Amount:      request.Amount,
		Type:        domain.TransactionUnfreeze,
		Source:      domain.SourceReversal,
		ReferenceID: &request.ID,
		Metadata:    meta,
	})
	if err != nil {
		return nil, err
	}
	return s.payoutRepo.UpdateReview(ctx, request.ID, domain.StatusRejected, adminNote, externalReference, nil)
}

// paid releases the reservation. The original DEBIT written at request time
// already recorded the outflow, so no new ledger row is appended here.
func (s *Service) paid(ctx context.Context, request *domain.PayoutRequest, adminNote, externalReference string) (*domain.PayoutRequest, error) {
	wallet, err := s.walletRepo.LockByID(ctx, request.WalletID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}
	if _, err := s.walletRepo.ApplyDelta(ctx, wallet.ID, 0, -request.Amount, 0); err != nil {
		return nil, err
	}
	now := time.Now()
	return s.payoutRepo.UpdateReview(ctx, request.ID, domain.StatusPaid, adminNote, externalReference, &now)
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
