package store

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
)

// UserStore is a store for users.
type UserStore interface {
	CreateUser(ctx context.Context, h db.Handler, username, email, passwordHash string) (models.User, error)
	GetUserByID(ctx context.Context, h db.Handler, id int64) (models.User, error)
	FindUserByUsername(ctx context.Context, h db.Handler, username string) (models.User, error)
	FindUserByEmail(ctx context.Context, h db.Handler, email string) (models.User, error)
}
