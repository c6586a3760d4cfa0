package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/builtafrica/spin-promo/internal/entity"
	"github.com/builtafrica/spin-promo/internal/infra/http/middleware"
	"github.com/builtafrica/spin-promo/internal/usecase"
)

type ActivityHandler struct {
	RecordSpinUC     *usecase.RecordSpinUseCase
	UpdateActivityUC *usecase.UpdateActivityUseCase
	IncrementUC      *usecase.IncrementSpinsUseCase
}

func NewActivityHandler(
	recordSpinUC *usecase.RecordSpinUseCase,
	updateActivityUC *usecase.UpdateActivityUseCase,
	incrementUC *usecase.IncrementSpinsUseCase,
) *ActivityHandler {
	return &ActivityHandler{
		RecordSpinUC:     recordSpinUC,
		UpdateActivityUC: updateActivityUC,
		IncrementUC:      incrementUC,
	}
}

type activityResponse struct {
	Success  bool                 `json:"success"`
	Message  string               `json:"message"`
	Activity *entity.SpinActivity `json:"activity"`
}

// POST /api/spin-activity
// O resultado do giro vem pronto do front; aqui só registra e notifica.
func (h *ActivityHandler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordSpinInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	activity, err := h.RecordSpinUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	middleware.RecordSpin(input.HasWonPrize)

	writeJSON(w, http.StatusCreated, activityResponse{
		Success:  true,
		Message:  "Spin activity recorded successfully",
		Activity: activity,
	})
}

// PUT /api/spin-activity
func (h *ActivityHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateActivityInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	activity, err := h.UpdateActivityUC.Execute(r.Context(), input)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{
		Success:  true,
		Message:  "Spin activity updated successfully",
		Activity: activity,
	})
}

// PATCH /api/spin-activity
// Só soma 1 giro no registro corrente do email. Usado no fluxo degenerado
// em que o front registra o giro antes de saber o resultado.
func (h *ActivityHandler) HandleIncrement(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	activity, err := h.IncrementUC.Execute(r.Context(), input.Email)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, activityResponse{
		Success:  true,
		Message:  "Spin count incremented successfully",
		Activity: activity,
	})
}
