package database

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type userStore struct{}

var _ store.UserStore = (*userStore)(nil)

// CreateUser implements store.UserStore.
func (s *userStore) CreateUser(ctx context.Context, h db.Handler, username, email, passwordHash string) (models.User, error) {
	query := h.Rebind(`INSERT INTO users (username, email, password, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var id int64
	if err := h.GetContext(ctx, &id, query, username, email, passwordHash); err != nil {
		return models.User{}, err //nolint:wrapcheck
	}

	return s.GetUserByID(ctx, h, id)
}

// GetUserByID implements store.UserStore.
func (*userStore) GetUserByID(ctx context.Context, h db.Handler, id int64) (models.User, error) {
	query := h.Rebind(`SELECT * FROM users WHERE id = ?`)
	var m models.User
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// FindUserByUsername implements store.UserStore.
func (*userStore) FindUserByUsername(ctx context.Context, h db.Handler, username string) (models.User, error) {
	query := h.Rebind(`SELECT * FROM users WHERE username = ?`)
	var m models.User
	err := h.GetContext(ctx, &m, query, username)
	return m, err //nolint:wrapcheck
}

// FindUserByEmail implements store.UserStore.
func (*userStore) FindUserByEmail(ctx context.Context, h db.Handler, email string) (models.User, error) {
	query := h.Rebind(`SELECT * FROM users WHERE email = ?`)
	var m models.User
	err := h.GetContext(ctx, &m, query, email)
	return m, err //nolint:wrapcheck
}
