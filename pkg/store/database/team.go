package database

import (
	"context"

	"github.com/teamwallet/teamwallet/pkg/db"
	"github.com/teamwallet/teamwallet/pkg/db/models"
	"github.com/teamwallet/teamwallet/pkg/store"
)

type teamStore struct{}

var _ store.TeamStore = (*teamStore)(nil)

// CreateTeam implements store.TeamStore.
func (s *teamStore) CreateTeam(ctx context.Context, h db.Handler, user int64, name string) (models.Team, error) {
	query := h.Rebind(`INSERT INTO teams (name, created_by, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP) RETURNING id`)
	var id int64
	if err := h.GetContext(ctx, &id, query, name, user); err != nil {
		return models.Team{}, err //nolint:wrapcheck
	}

	return s.GetTeamByID(ctx, h, id)
}

// GetTeamByID implements store.TeamStore.
func (*teamStore) GetTeamByID(ctx context.Context, h db.Handler, id int64) (models.Team, error) {
	query := h.Rebind(`SELECT * FROM teams WHERE id = ?`)
	var m models.Team
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// ListTeamsByUserID implements store.TeamStore.
func (*teamStore) ListTeamsByUserID(ctx context.Context, h db.Handler, user int64) ([]models.Team, error) {
	query := h.Rebind(`
		SELECT
		  t.*
		FROM
		  teams t
		  JOIN memberships m ON m.team_id = t.id
		WHERE
		  m.user_id = ?
		ORDER BY t.name
	`)
	var teams []models.Team
	err := h.SelectContext(ctx, &teams, query, user)
	return teams, err //nolint:wrapcheck
}

// UpdateTeam implements store.TeamStore.
func (*teamStore) UpdateTeam(ctx context.Context, h db.Handler, id int64, name string, premium bool, paymentHandle string) error {
	query := h.Rebind(`
		UPDATE teams
		SET
		  name = ?,
		  premium = ?,
		  payment_handle = ?,
		  updated_at = CURRENT_TIMESTAMP
		WHERE
		  id = ?
	`)
	_, err := h.ExecContext(ctx, query, name, premium, paymentHandle, id)
	return err //nolint:wrapcheck
}

// DeleteTeamByID implements store.TeamStore.
func (*teamStore) DeleteTeamByID(ctx context.Context, h db.Handler, id int64) error {
	query := h.Rebind(`DELETE FROM teams WHERE id = ?`)
	_, err := h.ExecContext(ctx, query, id)
	return err //nolint:wrapcheck
}
