package entity

import (
	"context"
	"errors"
	"time"
)

var ErrCampaignNotFound = errors.New("campanha não encontrada")

// Fase da janela de uma campanha num dado instante.
type CampaignPhase int

const (
	CampaignNotStarted CampaignPhase = iota
	CampaignOpen
	CampaignOutsideHours
	CampaignEnded
)

// Entidade: Campaign
// Uma roda configurada: janela de datas, janela diária de horas (UTC) e
// política de giros. O ID da campanha é o wheelId que o front manda.
type Campaign struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`

	// Janela diária [OpenHour, CloseHour) em horas UTC.
	// Os dois zerados = sem restrição de horário.
	OpenHour  int `json:"openHour"`
	CloseHour int `json:"closeHour"`

	MaxSpins int64 `json:"maxSpins"` // 1 ou 3 nas campanhas rodadas até hoje

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CampaignRepository interface {
	FindByID(ctx context.Context, id string) (*Campaign, error)
}

func (c *Campaign) HasDailyWindow() bool {
	return c.OpenHour != 0 || c.CloseHour != 0
}

// Phase avalia a janela da campanha contra o relógio. Só leitura.
func (c *Campaign) Phase(now time.Time) CampaignPhase {
	if now.Before(c.StartsAt) {
		return CampaignNotStarted
	}
	if !now.Before(c.EndsAt) {
		return CampaignEnded
	}
	if c.HasDailyWindow() {
		h := now.UTC().Hour()
		if h < c.OpenHour || h >= c.CloseHour {
			return CampaignOutsideHours
		}
	}
	return CampaignOpen
}
