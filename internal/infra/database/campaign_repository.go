package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/builtafrica/spin-promo/internal/entity"
)

// A política de cada roda (janela, horário, limite de giros) mora na tabela
// campaigns. Nada de max-spins chumbado no código: campanha nova = linha nova.
type CampaignRepository struct {
	DB *sql.DB
}

func NewCampaignRepository(db *sql.DB) *CampaignRepository {
	return &CampaignRepository{DB: db}
}

func (r *CampaignRepository) FindByID(ctx context.Context, id string) (*entity.Campaign, error) {
	query := `
		SELECT id, name, starts_at, ends_at, open_hour, close_hour, max_spins, created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`

	c := &entity.Campaign{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.StartsAt,
		&c.EndsAt,
		&c.OpenHour,
		&c.CloseHour,
		&c.MaxSpins,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrCampaignNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
