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

const hoursPerDay = 24

// ExpirationService runs the two batch responsibilities of the ledger: expire
// due EARNED entries exactly once, and report users whose points expire soon.
type ExpirationService struct {
	uow        uow.UOW
	policy     *pointpolicy.Policy
	ledgerRepo PointLedgerRepository
}

func NewExpirationService(u uow.UOW, policy *pointpolicy.Policy) (*ExpirationService, error) {
	ledgerRepo, ledgerErr := uow.GetRepositoryAs[PointLedgerRepository](
		u, uow.RepositoryName(repoargs.PointLedgerRepoName))
	if ledgerErr != nil {
		return nil, ledgerErr
	}
	return &ExpirationService{
		uow:        u,
		policy:     policy,
		ledgerRepo: ledgerRepo,
	}, nil
}

// SkippedUser records a user whose due amount exceeded the available balance.
// The drift comes from points spent after their earning entry came due; the
// run tolerates it and leaves the entries unwatermarked for reconciliation.
type SkippedUser struct {
	UserID    int64
	Due       int64
	Available int64
}

type ExpirationRunResult struct {
	ExpiredTotal   int64
	UsersProcessed int
	Skipped        []SkippedUser
}

// ProcessExpiredPoints expires every due EARNED entry, one user per
// transaction. Each user transaction locks only that user's account, so
// interactive operations on other users are never blocked by the batch.
// Watermarked entries are excluded from the scan, which makes a repeated run
// over the same data a no-op.
func (e *ExpirationService) ProcessExpiredPoints(
	ctx context.Context,
	batchLimit uint,
) (*ExpirationRunResult, error) {
	now := time.Now()

	due, dueErr := e.ledgerRepo.DueUserAmounts(ctx, now, batchLimit)
	if dueErr != nil {
		return nil, fmt.Errorf("processing expired points: %w", dueErr)
	}

	result := new(ExpirationRunResult)
	for _, d := range due {
		expired, expireErr := e.expireUser(ctx, d.UserID, now)
		if expireErr != nil {
			var insufficient *insufficientForExpiryError
			if errors.As(expireErr, &insufficient) {
				result.Skipped = append(result.Skipped, SkippedUser{
					UserID:    d.UserID,
					Due:       insufficient.Due,
					Available: insufficient.Available,
				})
				continue
			}
			return result, fmt.Errorf("processing expired points for user %d: %w", d.UserID, expireErr)
		}
		if expired > 0 {
			result.ExpiredTotal += expired
			result.UsersProcessed++
		}
	}
	return result, nil
}

// ExpiringUsers returns, per user, the summed amount expiring within the
// policy notify window and the earliest upcoming expiry. Read-only; consumed
// by the notification collaborator.
func (e *ExpirationService) ExpiringUsers(ctx context.Context) ([]repoargs.ExpiringUser, error) {
	now := time.Now()
	to := now.Add(time.Duration(e.policy.NotifyDays()) * hoursPerDay * time.Hour)

	users, err := e.ledgerRepo.ExpiringSoon(ctx, now, to)
	if err != nil {
		return nil, fmt.Errorf("getting users with expiring points: %w", err)
	}
	return users, nil
}

type insufficientForExpiryError struct {
	Due       int64
	Available int64
}

func (e *insufficientForExpiryError) Error() string {
	return fmt.Sprintf("due amount %d exceeds available balance %d", e.Due, e.Available)
}

// expireUser consumes the user's due entries in one transaction: verify the
// balance covers the due sum, append one EXPIRED entry, move the counters and
// watermark the consumed entries. Returns the amount expired (0 when another
// run already consumed the entries).
func (e *ExpirationService) expireUser(ctx context.Context, userID int64, now time.Time) (int64, error) {
	var expired int64

	txErr := e.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		acctRepo, ledgerRepo, repoErr := txRepos(tx)
		if repoErr != nil {
			return repoErr
		}

		account, lockErr := acctRepo.GetForUpdate(c, userID)
		if lockErr != nil {
			return lockErr
		}

		// Re-read under the lock: the pre-scan ran without it.
		entries, entriesErr := ledgerRepo.DueEntriesForUser(c, userID, now)
		if entriesErr != nil {
			return entriesErr
		}
		if len(entries) == 0 {
			return nil
		}

		var dueAmount int64
		entryIDs := make([]int64, len(entries))
		for i, entry := range entries {
			dueAmount += entry.Amount
			entryIDs[i] = entry.ID
		}

		if account.AvailablePoints < dueAmount {
			return &insufficientForExpiryError{Due: dueAmount, Available: account.AvailablePoints}
		}

		newAvailable := account.AvailablePoints - dueAmount
		if _, updErr := acctRepo.ApplyDeltas(c, userID, repoargs.AccountDeltas{
			Available: -dueAmount,
			Expired:   dueAmount,
		}); updErr != nil {
			return updErr
		}

		if _, createErr := ledgerRepo.Create(c, repoargs.LedgerEntryCreate{
			UserID:       userID,
			Type:         domain.EntryTypeExpired,
			Amount:       -dueAmount,
			BalanceAfter: newAvailable,
			Reason:       "points expired",
			ReasonCode:   domain.ReasonAutoExpiration,
		}); createErr != nil {
			return createErr
		}

		if markErr := ledgerRepo.MarkExpired(c, entryIDs, now); markErr != nil {
			return markErr
		}

		expired = dueAmount
		return nil
	})
	if txErr != nil {
		return 0, txErr //nolint:wrapcheck
	}
	return expired, nil
}
