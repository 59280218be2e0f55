package repository

import (
	"context"
	"fmt"

	"referral_backend/internal/model"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

func (r *Repository) CreatePurchase(ctx context.Context, purchase *model.Purchase) error {
	query, args, err := squirrel.
		Insert("purchases").
		SetMap(map[string]interface{}{
			"id":         purchase.ID,
			"user_id":    purchase.UserID,
			"amount":     purchase.Amount,
			"created_at": purchase.CreatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build purchase insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert purchase: %w", err)
	}

	return nil
}

func (r *Repository) CountPurchases(ctx context.Context, userID uuid.UUID) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From("purchases").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build purchase count query: %w", err)
	}

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to count purchases: %w", err)
	}

	return count, nil
}
