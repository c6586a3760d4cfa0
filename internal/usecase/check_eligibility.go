package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/builtafrica/spin-promo/internal/entity"
)

// Textos de veredito que o front exibe direto pro participante.
const (
	ReasonNotStarted = "The spin event hasn't started yet. Please come back when the campaign opens!"
	ReasonEnded      = "The spin event has ended. Thank you for participating!"
	ReasonNoActivity = "No activity found - eligible to spin"
	ReasonAlreadyWon = "Already won a prize"
	ReasonMaxSpins   = "Maximum spins reached"
	ReasonEligible   = "Eligible to spin"
)

type CheckEligibilityUseCase struct {
	Activities entity.SpinActivityRepository
	Campaigns  entity.CampaignRepository

	// Relógio injetável. Os testes das janelas precisam congelar o tempo.
	Now func() time.Time
}

func NewCheckEligibilityUseCase(
	activities entity.SpinActivityRepository,
	campaigns entity.CampaignRepository,
) *CheckEligibilityUseCase {
	return &CheckEligibilityUseCase{
		Activities: activities,
		Campaigns:  campaigns,
		Now:        time.Now,
	}
}

// Execute é só leitura: nenhum giro é consumido por checar elegibilidade.
func (uc *CheckEligibilityUseCase) Execute(ctx context.Context, input CheckEligibilityInput) (*EligibilityVerdict, error) {
	email := strings.TrimSpace(input.Email)
	wheelID := strings.TrimSpace(input.WheelID)

	if email == "" || email == "undefined" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "Email parameter is required"}
	}
	if wheelID == "" || wheelID == "undefined" {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: "Wheel ID parameter is required"}
	}

	campaign, err := uc.Campaigns.FindByID(ctx, wheelID)
	if err != nil {
		if errors.Is(err, entity.ErrCampaignNotFound) {
			return nil, &DomainError{Code: "CAMPAIGN_NOT_FOUND", Message: "campaign not found for this wheel"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load campaign: " + err.Error()}
	}

	now := uc.Now()
	switch campaign.Phase(now) {
	case entity.CampaignNotStarted:
		return &EligibilityVerdict{Eligible: false, Reason: ReasonNotStarted}, nil
	case entity.CampaignEnded:
		return &EligibilityVerdict{Eligible: false, Reason: ReasonEnded}, nil
	case entity.CampaignOutsideHours:
		return &EligibilityVerdict{
			Eligible: false,
			Reason: fmt.Sprintf(
				"The spin event is only available between %02d:00 and %02d:00 UTC. Please come back during these hours!",
				campaign.OpenHour, campaign.CloseHour,
			),
		}, nil
	}

	activity, err := uc.Activities.FindCurrent(ctx, wheelID, email)
	if err != nil {
		if errors.Is(err, entity.ErrActivityNotFound) {
			return &EligibilityVerdict{Eligible: true, Reason: ReasonNoActivity}, nil
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to load spin activity: " + err.Error()}
	}

	hasMaxSpins := activity.NumberOfSpins >= campaign.MaxSpins
	eligible := !activity.HasWonPrize && !hasMaxSpins

	reason := ReasonEligible
	if activity.HasWonPrize {
		reason = ReasonAlreadyWon
	} else if hasMaxSpins {
		reason = ReasonMaxSpins
	}

	return &EligibilityVerdict{
		Eligible:      eligible,
		Reason:        reason,
		HasWonPrize:   activity.HasWonPrize,
		NumberOfSpins: activity.NumberOfSpins,
		Activity:      activity,
	}, nil
}
