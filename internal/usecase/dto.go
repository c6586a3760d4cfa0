package usecase

import "github.com/builtafrica/spin-promo/internal/entity"

type CheckEligibilityInput struct {
	WheelID string
	Email   string
}

// Veredito de elegibilidade. Activity vem junto quando existe registro,
// igual a resposta que o front já consome.
type EligibilityVerdict struct {
	Eligible      bool                 `json:"eligible"`
	Reason        string               `json:"reason"`
	HasWonPrize   bool                 `json:"hasWonPrize"`
	NumberOfSpins int64                `json:"numberOfSpins"`
	Activity      *entity.SpinActivity `json:"activity,omitempty"`
}

type RecordSpinInput struct {
	WheelID     string `json:"wheelId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Prize       string `json:"prize"`
	HasWonPrize bool   `json:"hasWonPrize"`
}

type UpdateActivityInput struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	entity.SpinActivityPatch
}
