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
	"github.com/jackc/pgx/v5/pgconn"
)

type User struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	Name         string     `db:"name"`
	ReferralCode string     `db:"referral_code"`
	Credits      int        `db:"credits"`
	ReferredBy   *uuid.UUID `db:"referred_by"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (u *User) toModel() *model.User {
	return &model.User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		ReferralCode: u.ReferralCode,
		Credits:      u.Credits,
		ReferredBy:   u.ReferredBy,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// uniqueViolation reports the violated constraint name on a 23505 error.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName, true
	}
	return "", false
}

func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	query, args, err := squirrel.
		Insert("users").
		SetMap(map[string]interface{}{
			"id":            user.ID,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"name":          user.Name,
			"referral_code": user.ReferralCode,
			"credits":       user.Credits,
			"referred_by":   user.ReferredBy,
			"created_at":    user.CreatedAt,
			"updated_at":    user.UpdatedAt,
		}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build user insert query: %w", err)
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if constraint, ok := uniqueViolation(err); ok {
			switch constraint {
			case "users_email_key":
				return ErrEmailTaken
			case "users_referral_code_key":
				return ErrCodeTaken
			}
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

func (r *Repository) getUser(ctx context.Context, pred squirrel.Eq) (*model.User, error) {
	query, args, err := squirrel.
		Select("*").
		From("users").
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var user User
	err = r.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return user.toModel(), nil
}

func (r *Repository) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return r.getUser(ctx, squirrel.Eq{"id": id})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getUser(ctx, squirrel.Eq{"email": email})
}

func (r *Repository) GetUserByReferralCode(ctx context.Context, code string) (*model.User, error) {
	return r.getUser(ctx, squirrel.Eq{"referral_code": code})
}

func (r *Repository) SetReferredBy(ctx context.Context, userID, referrerID uuid.UUID) error {
	query, args, err := squirrel.
		Update("users").
		Set("referred_by", referrerID).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to set referred_by: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
