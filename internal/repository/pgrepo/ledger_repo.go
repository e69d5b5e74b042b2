package pgrepo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/hanmall/pointledger/internal/domain"
	"github.com/hanmall/pointledger/internal/repository/repoargs"
	"github.com/hanmall/pointledger/pkg/uow"
)

const ledgerColumns = `id, created_at, user_id, type, amount, balance_after,
	reason, reason_code, related_id, related_type, expires_at, expired_at`

type PointLedgerRepository struct {
	conn uow.DBTX
}

func NewPointLedgerRepository(conn uow.DBTX) *PointLedgerRepository {
	return &PointLedgerRepository{conn: conn}
}

func (r *PointLedgerRepository) Create(
	ctx context.Context,
	entry repoargs.LedgerEntryCreate,
) (*domain.PointLedgerEntry, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO point_ledger_entries
			(user_id, type, amount, balance_after, reason, reason_code, related_id, related_type, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+ledgerColumns,
		entry.UserID, entry.Type, entry.Amount, entry.BalanceAfter,
		entry.Reason, entry.ReasonCode, entry.RelatedID, entry.RelatedType, entry.ExpiresAt)

	created, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "creating %s ledger entry for user %d", entry.Type, entry.UserID)
	}
	return created, nil
}

// FindLastByRelated returns the most recent entry of entryType linked to the
// given related entity, or ErrRecordNotFound.
func (r *PointLedgerRepository) FindLastByRelated(
	ctx context.Context,
	relatedID string,
	relatedType domain.RelatedType,
	entryType domain.EntryType,
) (*domain.PointLedgerEntry, error) {
	row := r.conn.QueryRow(ctx, `
		SELECT `+ledgerColumns+` FROM point_ledger_entries
		WHERE related_id = $1 AND related_type = $2 AND type = $3
		ORDER BY id DESC LIMIT 1`,
		relatedID, relatedType, entryType)

	entry, err := scanEntry(row)
	if err != nil {
		return nil, convertErr(err, "finding last %s entry for %s %s", entryType, relatedType, relatedID)
	}
	return entry, nil
}

// GetHistory returns one page of a user's entries, newest first, plus the
// total row count for the same filter.
func (r *PointLedgerRepository) GetHistory(
	ctx context.Context,
	filter repoargs.HistoryFilter,
) ([]domain.PointLedgerEntry, int64, error) {
	where, args := buildHistoryWhere(filter)

	var total int64
	countRow := r.conn.QueryRow(ctx, `SELECT count(*) FROM point_ledger_entries `+where, args...)
	if err := countRow.Scan(&total); err != nil {
		return nil, 0, convertErr(err, "counting ledger entries of user %d", filter.UserID)
	}

	query := fmt.Sprintf(`SELECT %s FROM point_ledger_entries %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		ledgerColumns, where, len(args)+1, len(args)+2) //nolint:mnd
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, convertErr(err, "getting ledger history of user %d", filter.UserID)
	}
	defer rows.Close()

	var entries []domain.PointLedgerEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, 0, convertErr(scanErr, "scanning ledger history of user %d", filter.UserID)
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, 0, convertErr(rowsErr, "getting ledger history of user %d", filter.UserID)
	}
	return entries, total, nil
}

// DueUserAmounts sums not-yet-watermarked EARNED amounts whose expires_at has
// passed, grouped per user. limit bounds the users handled in one batch run.
func (r *PointLedgerRepository) DueUserAmounts(
	ctx context.Context,
	now time.Time,
	limit uint,
) ([]repoargs.UserDueAmount, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT user_id, COALESCE(SUM(amount), 0) FROM point_ledger_entries
		WHERE type = $1 AND expired_at IS NULL AND expires_at IS NOT NULL AND expires_at <= $2
		GROUP BY user_id
		ORDER BY user_id
		LIMIT $3`,
		domain.EntryTypeEarned, now, limit)
	if err != nil {
		return nil, convertErr(err, "getting due expiration amounts")
	}
	defer rows.Close()

	var due []repoargs.UserDueAmount
	for rows.Next() {
		var d repoargs.UserDueAmount
		if scanErr := rows.Scan(&d.UserID, &d.Amount); scanErr != nil {
			return nil, convertErr(scanErr, "scanning due expiration amounts")
		}
		due = append(due, d)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting due expiration amounts")
	}
	return due, nil
}

// DueEntriesForUser returns the user's due EARNED entries. Called under the
// account row lock so the set cannot change before the watermark write.
func (r *PointLedgerRepository) DueEntriesForUser(
	ctx context.Context,
	userID int64,
	now time.Time,
) ([]domain.PointLedgerEntry, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT `+ledgerColumns+` FROM point_ledger_entries
		WHERE user_id = $1 AND type = $2 AND expired_at IS NULL
			AND expires_at IS NOT NULL AND expires_at <= $3
		ORDER BY id`,
		userID, domain.EntryTypeEarned, now)
	if err != nil {
		return nil, convertErr(err, "getting due entries of user %d", userID)
	}
	defer rows.Close()

	var entries []domain.PointLedgerEntry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning due entries of user %d", userID)
		}
		entries = append(entries, *entry)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting due entries of user %d", userID)
	}
	return entries, nil
}

// MarkExpired sets the expiration watermark on the given EARNED entries.
// Already-watermarked rows are left alone, which is what makes a second batch
// run over the same rows a no-op.
func (r *PointLedgerRepository) MarkExpired(ctx context.Context, entryIDs []int64, expiredAt time.Time) error {
	if len(entryIDs) == 0 {
		return nil
	}
	_, err := r.conn.Exec(ctx, `
		UPDATE point_ledger_entries SET expired_at = $2
		WHERE id = ANY($1) AND expired_at IS NULL`,
		entryIDs, expiredAt)
	if err != nil {
		return convertErr(err, "marking %d entries expired", len(entryIDs))
	}
	return nil
}

// ExpiringSoon aggregates per user the EARNED amounts expiring inside
// (from, to], with the earliest upcoming expiry date.
func (r *PointLedgerRepository) ExpiringSoon(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]repoargs.ExpiringUser, error) {
	rows, err := r.conn.Query(ctx, `
		SELECT user_id, COALESCE(SUM(amount), 0), MIN(expires_at) FROM point_ledger_entries
		WHERE type = $1 AND expired_at IS NULL
			AND expires_at IS NOT NULL AND expires_at > $2 AND expires_at <= $3
		GROUP BY user_id
		ORDER BY MIN(expires_at)`,
		domain.EntryTypeEarned, from, to)
	if err != nil {
		return nil, convertErr(err, "getting users with expiring points")
	}
	defer rows.Close()

	var users []repoargs.ExpiringUser
	for rows.Next() {
		var u repoargs.ExpiringUser
		if scanErr := rows.Scan(&u.UserID, &u.Amount, &u.EarliestExpiry); scanErr != nil {
			return nil, convertErr(scanErr, "scanning users with expiring points")
		}
		users = append(users, u)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting users with expiring points")
	}
	return users, nil
}

func buildHistoryWhere(filter repoargs.HistoryFilter) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.Type != nil {
		args = append(args, *filter.Type)
		conditions = append(conditions, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanEntry(row pgx.Row) (*domain.PointLedgerEntry, error) {
	var e domain.PointLedgerEntry
	err := row.Scan(
		&e.ID, &e.CreatedAt, &e.UserID, &e.Type, &e.Amount, &e.BalanceAfter,
		&e.Reason, &e.ReasonCode, &e.RelatedID, &e.RelatedType, &e.ExpiresAt, &e.ExpiredAt,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &e, nil
}
