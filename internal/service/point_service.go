package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/pointpolicy"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/pkg/uow"
)

const (
	maxConflictRetries    = 3
	conflictRetryBaseWait = 100 * time.Millisecond

	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// PointService owns every mutation of a user's point balance. Each mutating
// operation locks the user's account row, applies the counter deltas and
// appends exactly one ledger entry inside a single transaction; a balance
// change without its ledger entry is never observable.
type PointService struct {
	uow        uow.UOW
	calc       *pointpolicy.Calculator
	policy     *pointpolicy.Policy
	acctRepo   PointAccountRepository
	ledgerRepo PointLedgerRepository
}

func NewPointService(u uow.UOW, policy *pointpolicy.Policy) (*PointService, error) {
	acctRepo, acctErr := uow.GetRepositoryAs[PointAccountRepository](
		u, uow.RepositoryName(repoargs.PointAccountRepoName))
	if acctErr != nil {
		return nil, acctErr
	}
	ledgerRepo, ledgerErr := uow.GetRepositoryAs[PointLedgerRepository](
		u, uow.RepositoryName(repoargs.PointLedgerRepoName))
	if ledgerErr != nil {
		return nil, ledgerErr
	}
	return &PointService{
		uow:        u,
		calc:       pointpolicy.NewCalculator(policy),
		policy:     policy,
		acctRepo:   acctRepo,
		ledgerRepo: ledgerRepo,
	}, nil
}

// GetBalance returns the user's account counters, creating an empty account
// on first access. No ledger entry is written.
func (p *PointService) GetBalance(ctx context.Context, userID int64) (*domain.PointAccount, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user id is required")
	}
	account, err := p.acctRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("getting balance: %w", err)
	}
	return account, nil
}

type EarnPointsArgs struct {
	UserID      int64
	Amount      int64
	Reason      string
	ReasonCode  domain.ReasonCode
	RelatedID   *string
	RelatedType *domain.RelatedType
	ExpiresAt   *time.Time
}

// EarnPoints credits the user with Amount points. When ExpiresAt is not
// supplied the policy expiration window is applied from now. Earning is
// always allowed; only validation or persistence can fail.
func (p *PointService) EarnPoints(ctx context.Context, args EarnPointsArgs) (*domain.PointLedgerEntry, error) {
	if args.UserID <= 0 {
		return nil, domain.NewValidationError("user id is required")
	}
	if args.Amount <= 0 {
		return nil, domain.NewValidationError("earn amount must be positive, got %d", args.Amount)
	}
	if args.Reason == "" || args.ReasonCode == "" {
		return nil, domain.NewValidationError("reason and reason code are required")
	}
	if args.ExpiresAt == nil {
		expiresAt := p.calc.ExpirationDate(time.Now())
		args.ExpiresAt = &expiresAt
	}

	var entry *domain.PointLedgerEntry
	txErr := p.withConflictRetry(ctx, func(c context.Context, tx uow.TX) error {
		acctRepo, ledgerRepo, repoErr := txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		account, lockErr := acctRepo.GetForUpdate(c, args.UserID)
		if lockErr != nil {
			return lockErr
		}

		newAvailable := account.AvailablePoints + args.Amount
		if _, updErr := acctRepo.ApplyDeltas(c, args.UserID, repoargs.AccountDeltas{
			Total:     args.Amount,
			Available: args.Amount,
		}); updErr != nil {
			return updErr
		}

		created, createErr := ledgerRepo.Create(c, repoargs.LedgerEntryCreate{
			UserID:       args.UserID,
			Type:         domain.EntryTypeEarned,
			Amount:       args.Amount,
			BalanceAfter: newAvailable,
			Reason:       args.Reason,
			ReasonCode:   args.ReasonCode,
			RelatedID:    args.RelatedID,
			RelatedType:  args.RelatedType,
			ExpiresAt:    args.ExpiresAt,
		})
		if createErr != nil {
			return createErr
		}
		entry = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("earning points: %w", txErr)
	}
	return entry, nil
}

// UsePoints debits amount points as payment for an order. Fails with
// ErrBelowMinimumUse or ErrInsufficientBalance before anything is written.
func (p *PointService) UsePoints(
	ctx context.Context,
	userID int64,
	amount int64,
	orderID string,
) (*domain.PointLedgerEntry, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user id is required")
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("use amount must be positive, got %d", amount)
	}
	if orderID == "" {
		return nil, domain.NewValidationError("order id is required")
	}

	var entry *domain.PointLedgerEntry
	txErr := p.withConflictRetry(ctx, func(c context.Context, tx uow.TX) error {
		acctRepo, ledgerRepo, repoErr := txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		account, lockErr := acctRepo.GetForUpdate(c, userID)
		if lockErr != nil {
			return lockErr
		}

		if useErr := p.calc.ValidateSpend(amount, account.AvailablePoints); useErr != nil {
			return useErr
		}

		newAvailable := account.AvailablePoints - amount
		if _, updErr := acctRepo.ApplyDeltas(c, userID, repoargs.AccountDeltas{
			Available: -amount,
			Used:      amount,
		}); updErr != nil {
			return updErr
		}

		relatedType := domain.RelatedTypeOrder
		created, createErr := ledgerRepo.Create(c, repoargs.LedgerEntryCreate{
			UserID:       userID,
			Type:         domain.EntryTypeUsed,
			Amount:       -amount,
			BalanceAfter: newAvailable,
			Reason:       "order payment",
			ReasonCode:   domain.ReasonOrderPayment,
			RelatedID:    &orderID,
			RelatedType:  &relatedType,
		})
		if createErr != nil {
			return createErr
		}
		entry = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("using points: %w", txErr)
	}
	return entry, nil
}

// CancelPoints refunds the points spent on an order. Returns (nil, nil) when
// no USED entry exists for the order. A refund already issued for the order
// is returned as-is instead of being issued twice: the guard is checked under
// the account lock and backed by a unique index on cancelled entries.
func (p *PointService) CancelPoints(ctx context.Context, orderID string) (*domain.PointLedgerEntry, error) {
	if orderID == "" {
		return nil, domain.NewValidationError("order id is required")
	}

	var entry *domain.PointLedgerEntry
	txErr := p.withConflictRetry(ctx, func(c context.Context, tx uow.TX) error {
		acctRepo, ledgerRepo, repoErr := txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		used, findErr := ledgerRepo.FindLastByRelated(c, orderID, domain.RelatedTypeOrder, domain.EntryTypeUsed)
		if findErr != nil {
			if errors.Is(findErr, domain.ErrRecordNotFound) {
				entry = nil
				return nil
			}
			return findErr
		}

		account, lockErr := acctRepo.GetForUpdate(c, used.UserID)
		if lockErr != nil {
			return lockErr
		}

		// Re-checked under the lock: a concurrent cancel that committed first
		// is visible here.
		cancelled, cancelledErr := ledgerRepo.FindLastByRelated(
			c, orderID, domain.RelatedTypeOrder, domain.EntryTypeCancelled)
		if cancelledErr == nil {
			entry = cancelled
			return nil
		}
		if !errors.Is(cancelledErr, domain.ErrRecordNotFound) {
			return cancelledErr
		}

		refund := -used.Amount // USED amounts are stored negative
		newAvailable := account.AvailablePoints + refund
		if _, updErr := acctRepo.ApplyDeltas(c, used.UserID, repoargs.AccountDeltas{
			Available: refund,
			Used:      -refund,
		}); updErr != nil {
			return updErr
		}

		relatedType := domain.RelatedTypeOrder
		created, createErr := ledgerRepo.Create(c, repoargs.LedgerEntryCreate{
			UserID:       used.UserID,
			Type:         domain.EntryTypeCancelled,
			Amount:       refund,
			BalanceAfter: newAvailable,
			Reason:       "order cancel refund",
			ReasonCode:   domain.ReasonOrderCancelRefund,
			RelatedID:    &orderID,
			RelatedType:  &relatedType,
		})
		if createErr != nil {
			return createErr
		}
		entry = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("cancelling points: %w", txErr)
	}
	return entry, nil
}

// AdjustPoints is the admin path. A positive amount is a grant (delegates to
// EarnPoints with ADMIN_GRANT); a negative amount deducts from both available
// and total, failing with ErrInsufficientBalance when the balance is too low.
func (p *PointService) AdjustPoints(
	ctx context.Context,
	userID int64,
	amount int64,
	reason string,
	adminID string,
) (*domain.PointLedgerEntry, error) {
	if userID <= 0 {
		return nil, domain.NewValidationError("user id is required")
	}
	if amount == 0 {
		return nil, domain.NewValidationError("adjust amount must not be zero")
	}
	if reason == "" {
		return nil, domain.NewValidationError("reason is required")
	}
	if adminID == "" {
		return nil, domain.NewValidationError("admin id is required")
	}

	relatedType := domain.RelatedTypeAdmin
	if amount > 0 {
		return p.EarnPoints(ctx, EarnPointsArgs{
			UserID:      userID,
			Amount:      amount,
			Reason:      reason,
			ReasonCode:  domain.ReasonAdminGrant,
			RelatedID:   &adminID,
			RelatedType: &relatedType,
		})
	}

	deduct := -amount
	var entry *domain.PointLedgerEntry
	txErr := p.withConflictRetry(ctx, func(c context.Context, tx uow.TX) error {
		acctRepo, ledgerRepo, repoErr := txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		account, lockErr := acctRepo.GetForUpdate(c, userID)
		if lockErr != nil {
			return lockErr
		}
		if account.AvailablePoints < deduct {
			return &domain.InsufficientBalanceError{Requested: deduct, Available: account.AvailablePoints}
		}

		newAvailable := account.AvailablePoints - deduct
		if _, updErr := acctRepo.ApplyDeltas(c, userID, repoargs.AccountDeltas{
			Total:     -deduct,
			Available: -deduct,
		}); updErr != nil {
			return updErr
		}

		created, createErr := ledgerRepo.Create(c, repoargs.LedgerEntryCreate{
			UserID:       userID,
			Type:         domain.EntryTypeAdjusted,
			Amount:       -deduct,
			BalanceAfter: newAvailable,
			Reason:       reason,
			ReasonCode:   domain.ReasonAdminDeduct,
			RelatedID:    &adminID,
			RelatedType:  &relatedType,
		})
		if createErr != nil {
			return createErr
		}
		entry = created
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("adjusting points: %w", txErr)
	}
	return entry, nil
}

type HistoryArgs struct {
	UserID int64
	Type   *domain.EntryType
	From   *time.Time
	To     *time.Time
	Page   uint
	Limit  uint
}

// GetHistory returns one reverse-chronological page of the user's ledger plus
// the total count matching the filter.
func (p *PointService) GetHistory(ctx context.Context, args HistoryArgs) ([]domain.PointLedgerEntry, int64, error) {
	if args.UserID <= 0 {
		return nil, 0, domain.NewValidationError("user id is required")
	}
	if args.Type != nil && !args.Type.Valid() {
		return nil, 0, domain.NewValidationError("unknown entry type %q", *args.Type)
	}
	if args.Page == 0 {
		args.Page = 1
	}
	if args.Limit == 0 {
		args.Limit = defaultHistoryLimit
	}
	if args.Limit > maxHistoryLimit {
		args.Limit = maxHistoryLimit
	}

	entries, total, err := p.ledgerRepo.GetHistory(ctx, repoargs.HistoryFilter{
		UserID: args.UserID,
		Type:   args.Type,
		From:   args.From,
		To:     args.To,
		Offset: (args.Page - 1) * args.Limit,
		Limit:  args.Limit,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("getting point history: %w", err)
	}
	return entries, total, nil
}

// GrantSignupBonus credits the flat signup bonus from the policy.
func (p *PointService) GrantSignupBonus(ctx context.Context, userID int64) (*domain.PointLedgerEntry, error) {
	return p.EarnPoints(ctx, EarnPointsArgs{
		UserID:     userID,
		Amount:     p.policy.SignupBonus(),
		Reason:     "signup bonus",
		ReasonCode: domain.ReasonSignup,
	})
}

// GrantReviewPoints credits the flat review bonus for a written review.
func (p *PointService) GrantReviewPoints(
	ctx context.Context,
	userID int64,
	reviewID string,
) (*domain.PointLedgerEntry, error) {
	if reviewID == "" {
		return nil, domain.NewValidationError("review id is required")
	}
	relatedType := domain.RelatedTypeReview
	return p.EarnPoints(ctx, EarnPointsArgs{
		UserID:      userID,
		Amount:      p.policy.ReviewBonus(),
		Reason:      "review reward",
		ReasonCode:  domain.ReasonReviewWrite,
		RelatedID:   &reviewID,
		RelatedType: &relatedType,
	})
}

// EarnOrderPoints credits the tier-rate share of a completed order. Returns
// (nil, nil) when the computed amount rounds down to zero.
func (p *PointService) EarnOrderPoints(
	ctx context.Context,
	userID int64,
	orderID string,
	orderAmount int64,
	tier domain.MembershipTier,
) (*domain.PointLedgerEntry, error) {
	if orderID == "" {
		return nil, domain.NewValidationError("order id is required")
	}
	if orderAmount <= 0 {
		return nil, domain.NewValidationError("order amount must be positive, got %d", orderAmount)
	}

	amount := p.calc.EarnPointsForTier(orderAmount, tier)
	if amount == 0 {
		return nil, nil
	}
	relatedType := domain.RelatedTypeOrder
	return p.EarnPoints(ctx, EarnPointsArgs{
		UserID:      userID,
		Amount:      amount,
		Reason:      "order completion reward",
		ReasonCode:  domain.ReasonOrderComplete,
		RelatedID:   &orderID,
		RelatedType: &relatedType,
	})
}

// withConflictRetry runs fn in a unit-of-work transaction, retrying the whole
// transaction on lock contention with jittered backoff. After
// maxConflictRetries the conflict is surfaced to the caller.
func (p *PointService) withConflictRetry(ctx context.Context, fn func(context.Context, uow.TX) error) error {
	var err error
	for attempt := 0; attempt <= maxConflictRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(jitter(float64(conflictRetryBaseWait)*float64(attempt), 0.15, 0.15))
			select {
			case <-ctx.Done():
				return ctx.Err() //nolint:wrapcheck
			case <-time.After(wait):
			}
		}
		err = p.uow.Do(ctx, fn)
		if err == nil || !errors.Is(err, domain.ErrConcurrencyConflict) {
			return err //nolint:wrapcheck
		}
	}
	return err //nolint:wrapcheck
}

func txRepos(tx uow.TX) (PointAccountRepository, PointLedgerRepository, error) {
	acctRepo, acctErr := uow.GetAs[PointAccountRepository](tx, uow.RepositoryName(repoargs.PointAccountRepoName))
	if acctErr != nil {
		return nil, nil, acctErr //nolint:wrapcheck
	}
	ledgerRepo, ledgerErr := uow.GetAs[PointLedgerRepository](tx, uow.RepositoryName(repoargs.PointLedgerRepoName))
	if ledgerErr != nil {
		return nil, nil, ledgerErr //nolint:wrapcheck
	}
	return acctRepo, ledgerRepo, nil
}
