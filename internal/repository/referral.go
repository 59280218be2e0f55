package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"referral_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Referral struct {
	ID          uuid.UUID  `db:"id"`
	ReferrerID  uuid.UUID  `db:"referrer_id"`
	ReferredID  uuid.UUID  `db:"referred_id"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ConvertedAt *time.Time `db:"converted_at"`
}

type referralEntry struct {
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *Repository) CreateReferral(ctx context.Context, referral *model.Referral) error {
	query, args, err := squirrel.
		Insert("referrals").
		SetMap(map[string]interface{}{
			"id":           referral.ID,
			"referrer_id":  referral.ReferrerID,
			"referred_id":  referral.ReferredID,
			"status":       string(referral.Status),
			"created_at":   referral.CreatedAt,
			"converted_at": referral.ConvertedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build referral insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if _, ok := uniqueViolation(err); ok {
			return ErrReferralExists
		}
		return fmt.Errorf("failed to insert referral: %w", err)
	}

	return nil
}

func (r *Repository) GetReferralsByReferrer(ctx context.Context, referrerID uuid.UUID) ([]*model.ReferralEntry, error) {
	query, args, err := squirrel.
		Select("u.name", "u.email", "r.status", "r.created_at").
		From("referrals r").
		Join("users u ON u.id = r.referred_id").
		Where(squirrel.Eq{"r.referrer_id": referrerID}).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build referral list query: %w", err)
	}

	var rows []*referralEntry
	err = r.db.SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get referrals: %w", err)
	}

	entries := make([]*model.ReferralEntry, len(rows))
	for i, row := range rows {
		entries[i] = &model.ReferralEntry{
			Name:      row.Name,
			Email:     row.Email,
			Status:    model.ReferralStatus(row.Status),
			CreatedAt: row.CreatedAt,
		}
	}

	return entries, nil
}

// CountReferrals counts referral edges originating from referrerID,
// optionally restricted to the given statuses.
func (r *Repository) CountReferrals(ctx context.Context, referrerID uuid.UUID, statuses []model.ReferralStatus) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From("referrals").
		Where(squirrel.Eq{"referrer_id": referrerID})

	if len(statuses) > 0 {
		ss := make([]string, len(statuses))
		for i, s := range statuses {
			ss[i] = string(s)
		}
		builder = builder.Where(squirrel.Expr("status = ANY(?)", pq.Array(ss)))
	}

	query, args, err := builder.
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build referral count query: %w", err)
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count referrals: %w", err)
	}

	return count, nil
}

// ConvertPendingReferral flips the pending referral for referredID to
// converted and credits both ends of the edge in one transaction.
// Returns false when no pending referral exists.
func (r *Repository) ConvertPendingReferral(ctx context.Context, referredID uuid.UUID, reward int) (bool, error) {
	converted := false

	err := r.Transaction(ctx, func(tx *sqlx.Tx) error {
		query, args, err := squirrel.
			Select("*").
			From("referrals").
			Where(squirrel.Eq{
				"referred_id": referredID,
				"status":      string(model.ReferralPending),
			}).
			Suffix("FOR UPDATE").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		var referral Referral
		err = tx.GetContext(ctx, &referral, query, args...)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("failed to get pending referral: %w", err)
		}

		updateQuery, updateArgs, err := squirrel.
			Update("referrals").
			Set("status", string(model.ReferralConverted)).
			Set("converted_at", time.Now()).
			Where(squirrel.Eq{"id": referral.ID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("failed to convert referral: %w", err)
		}

		for _, userID := range []uuid.UUID{referral.ReferrerID, referral.ReferredID} {
			creditQuery, creditArgs, err := squirrel.
				Update("users").
				Set("credits", squirrel.Expr("credits + ?", reward)).
				Set("updated_at", squirrel.Expr("now()")).
				Where(squirrel.Eq{"id": userID}).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return err
			}

			_, err = tx.ExecContext(ctx, creditQuery, creditArgs...)
			if err != nil {
				return fmt.Errorf("failed to credit user: %w", err)
			}
		}

		converted = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return converted, nil
}
