package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/builtafrica/spin-promo/internal/infra/queue"
	"github.com/builtafrica/spin-promo/internal/usecase"
)

// EmailHandler reenvia as notificações de um snapshot já registrado.
// É a porta de entrada de filas externas (QStash e afins) e de reenvio
// manual. Sem idempotência: chamar duas vezes duplica os emails.
type EmailHandler struct {
	DispatchUC *usecase.DispatchNotificationsUseCase
}

func NewEmailHandler(uc *usecase.DispatchNotificationsUseCase) *EmailHandler {
	return &EmailHandler{DispatchUC: uc}
}

// POST /api/send-spin-emails
func (h *EmailHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var payload queue.NotificationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido: "+err.Error())
		return
	}

	if payload.Email == "" || payload.Name == "" {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid payload")
		return
	}

	if err := h.DispatchUC.Execute(r.Context(), payload); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "DISPATCH_ERROR", "Email send failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
