package handlers

import (
	"net/http"

	"github.com/builtafrica/spin-promo/internal/infra/http/middleware"
	"github.com/builtafrica/spin-promo/internal/usecase"
)

type EligibilityHandler struct {
	CheckEligibilityUC *usecase.CheckEligibilityUseCase
}

func NewEligibilityHandler(uc *usecase.CheckEligibilityUseCase) *EligibilityHandler {
	return &EligibilityHandler{CheckEligibilityUC: uc}
}

// GET /api/check-eligibility?email=...&wheelId=...
func (h *EligibilityHandler) Handle(w http.ResponseWriter, r *http.Request) {
	input := usecase.CheckEligibilityInput{
		Email:   r.URL.Query().Get("email"),
		WheelID: r.URL.Query().Get("wheelId"),
	}

	verdict, err := h.CheckEligibilityUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordEligibilityCheck(verdict.Eligible)
	writeJSON(w, http.StatusOK, verdict)
}
