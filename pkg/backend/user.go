package backend

import (
	"context"
	"errors"
	"strings"

	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/proto"
	"github.com/teamwallet/teamwallet/pkg/utils"
)

type user struct {
	u models.User
}

var _ proto.User = user{}

// ID implements proto.User.
func (u user) ID() int64 {
	return u.u.ID
}

// Username implements proto.User.
func (u user) Username() string {
	return u.u.Username
}

// Email implements proto.User.
func (u user) Email() string {
	return u.u.Email
}

// CreateUser registers a new user with a hashed password.
func (b *Backend) CreateUser(ctx context.Context, username, email, password string) (proto.User, error) {
	username = strings.ToLower(username)
	if err := utils.ValidateUsername(username); err != nil {
		return nil, err //nolint:wrapcheck
	}
	email = strings.ToLower(email)
	if err := utils.ValidateEmail(email); err != nil {
		return nil, err //nolint:wrapcheck
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	var m models.User
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		var err error
		m, err = b.store.CreateUser(ctx, tx, username, email, hash)
		return db.WrapError(err)
	}); err != nil {
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, proto.ErrUserExist
		}
		return nil, err
	}

	return user{m}, nil
}

// UserByID finds a user by ID.
func (b *Backend) UserByID(ctx context.Context, id int64) (proto.User, error) {
	if u, ok := b.cache.Get(id); ok {
		return *u, nil
	}

	m, err := b.store.GetUserByID(ctx, b.db, id)
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return nil, proto.ErrUserNotFound
		}
		return nil, err //nolint:wrapcheck
	}

	u := user{m}
	b.cache.Set(id, &u)
	return u, nil
}

// UserByCredentials finds a user by username or email and verifies the
// password. It returns proto.ErrUserNotFound when either check fails, so
// callers can not distinguish a missing user from a bad password.
func (b *Backend) UserByCredentials(ctx context.Context, login, password string) (proto.User, error) {
	login = strings.ToLower(login)

	m, err := b.store.FindUserByUsername(ctx, b.db, login)
	if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
		m, err = b.store.FindUserByEmail(ctx, b.db, login)
	}
	if err != nil {
		if errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
			return nil, proto.ErrUserNotFound
		}
		return nil, err //nolint:wrapcheck
	}

	if !m.Password.Valid || !VerifyPassword(password, m.Password.String) {
		return nil, proto.ErrUserNotFound
	}

	return user{m}, nil
}
