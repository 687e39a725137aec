package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/eshop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var userColumns = []string{
	"id", "name", "email", "password_hash", "phone", "is_admin",
	"street", "apartment", "zip", "city", "country",
}

func (r *postgresRepo) ListUsers(ctx context.Context) ([]entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		OrderBy("name").
		MustSql()

	var rows []User
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}

	result := make([]entities.User, 0, len(rows))
	for _, u := range rows {
		result = append(result, UserToEntity(u))
	}
	return result, nil
}

func (r *postgresRepo) GetUser(ctx context.Context, id string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"id": id})
}

func (r *postgresRepo) GetUserByEmail(ctx context.Context, email string) (entities.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *postgresRepo) getUser(ctx context.Context, where sq.Eq) (entities.User, error) {
	query, args := r.qb.Select(userColumns...).
		From("users").
		Where(where).
		MustSql()

	var u User
	err := r.getContext(ctx, &u, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, entities.ErrUserNotFound
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	return UserToEntity(u), nil
}

func (r *postgresRepo) CreateUser(ctx context.Context, u entities.User) (entities.User, error) {
	u.ID = uuid.NewString()

	query, args := r.qb.Insert("users").
		Columns(userColumns...).
		Values(
			u.ID, u.Name, u.Email, u.PasswordHash, u.Phone, u.IsAdmin,
			nullString(u.Street), nullString(u.Apartment), nullString(u.Zip),
			nullString(u.City), nullString(u.Country),
		).
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

// UpdateUser overwrites the profile. An empty PasswordHash keeps the current one.
func (r *postgresRepo) UpdateUser(ctx context.Context, u entities.User) (entities.User, error) {
	q := r.qb.Update("users").
		Set("name", u.Name).
		Set("email", u.Email).
		Set("phone", u.Phone).
		Set("is_admin", u.IsAdmin).
		Set("street", nullString(u.Street)).
		Set("apartment", nullString(u.Apartment)).
		Set("zip", nullString(u.Zip)).
		Set("city", nullString(u.City)).
		Set("country", nullString(u.Country)).
		Where(sq.Eq{"id": u.ID})
	if u.PasswordHash != "" {
		q = q.Set("password_hash", u.PasswordHash)
	}

	query, args := q.MustSql()
	res, err := r.execContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return entities.User{}, entities.ErrEmailTaken
	}
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return entities.User{}, fmt.Errorf("failed to update user: %w", err)
	}
	if !ok {
		return entities.User{}, entities.ErrUserNotFound
	}
	return r.GetUser(ctx, u.ID)
}

func (r *postgresRepo) DeleteUser(ctx context.Context, id string) error {
	query, args := r.qb.Delete("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if !ok {
		return entities.ErrUserNotFound
	}
	return nil
}

func (r *postgresRepo) CountUsers(ctx context.Context) (int, error) {
	query, args := r.qb.Select("COUNT(*)").From("users").MustSql()

	var count int
	if err := r.getContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) userRefsByIDs(ctx context.Context, ids []string) (map[string]entities.UserRef, error) {
	result := make(map[string]entities.UserRef, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	query, args := r.qb.Select("id", "name", "email").
		From("users").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var rows []struct {
		ID    string `db:"id"`
		Name  string `db:"name"`
		Email string `db:"email"`
	}
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	for _, u := range rows {
		result[u.ID] = entities.UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return result, nil
}
