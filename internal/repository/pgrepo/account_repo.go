package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/pkg/uow"
)

// rowLockTimeout bounds how long a transaction waits for another writer on the
// same account before failing with a lock_not_available error.
const rowLockTimeout = "3s"

const accountColumns = `user_id, created_at, updated_at,
	total_points, available_points, pending_points, used_points, expired_points`

type PointAccountRepository struct {
	conn uow.DBTX
}

func NewPointAccountRepository(conn uow.DBTX) *PointAccountRepository {
	return &PointAccountRepository{conn: conn}
}

// GetOrCreate returns the user's account, creating an empty one on first use.
func (r *PointAccountRepository) GetOrCreate(ctx context.Context, userID int64) (*domain.PointAccount, error) {
	_, insErr := r.conn.Exec(ctx,
		`INSERT INTO point_accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if insErr != nil {
		return nil, convertErr(insErr, "creating point account for user %d", userID)
	}
	return r.get(ctx, userID, false)
}

func (r *PointAccountRepository) Get(ctx context.Context, userID int64) (*domain.PointAccount, error) {
	return r.get(ctx, userID, false)
}

// GetForUpdate locks the user's account row for the rest of the transaction,
// creating the account first if it does not exist. Every mutating operation
// on a user goes through this lock, which serializes writers per user while
// leaving other users untouched. Must be called inside a uow transaction.
func (r *PointAccountRepository) GetForUpdate(ctx context.Context, userID int64) (*domain.PointAccount, error) {
	if _, err := r.conn.Exec(ctx, `SET LOCAL lock_timeout = '`+rowLockTimeout+`'`); err != nil {
		return nil, convertErr(err, "setting lock timeout for user %d", userID)
	}

	account, err := r.get(ctx, userID, true)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	_, insErr := r.conn.Exec(ctx,
		`INSERT INTO point_accounts (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if insErr != nil {
		return nil, convertErr(insErr, "creating point account for user %d", userID)
	}
	return r.get(ctx, userID, true)
}

// ApplyDeltas adds the signed deltas to the account counters and returns the
// updated row. The schema CHECK on available_points rejects a negative result.
func (r *PointAccountRepository) ApplyDeltas(
	ctx context.Context,
	userID int64,
	deltas repoargs.AccountDeltas,
) (*domain.PointAccount, error) {
	row := r.conn.QueryRow(ctx, `
		UPDATE point_accounts SET
			total_points     = total_points + $2,
			available_points = available_points + $3,
			pending_points   = pending_points + $4,
			used_points      = used_points + $5,
			expired_points   = expired_points + $6,
			updated_at       = now()
		WHERE user_id = $1
		RETURNING `+accountColumns,
		userID, deltas.Total, deltas.Available, deltas.Pending, deltas.Used, deltas.Expired)

	account, err := scanAccount(row)
	if err != nil {
		return nil, convertErr(err, "applying deltas to point account of user %d", userID)
	}
	return account, nil
}

func (r *PointAccountRepository) get(ctx context.Context, userID int64, forUpdate bool) (*domain.PointAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM point_accounts WHERE user_id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	account, err := scanAccount(r.conn.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, convertErr(err, "getting point account of user %d", userID)
	}
	return account, nil
}

func scanAccount(row pgx.Row) (*domain.PointAccount, error) {
	var a domain.PointAccount
	err := row.Scan(
		&a.UserID, &a.CreatedAt, &a.UpdatedAt,
		&a.TotalPoints, &a.AvailablePoints, &a.PendingPoints, &a.UsedPoints, &a.ExpiredPoints,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &a, nil
}
