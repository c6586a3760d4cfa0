package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/builtafrica/spin-promo/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// Mapeia o erro do usecase pro status HTTP. Regra de negócio vira 400/404;
// infraestrutura vira 500 genérico sem vazar detalhe pro caller.
func writeUsecaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		switch domainErr.Code {
		case "ACTIVITY_NOT_FOUND", "CAMPAIGN_NOT_FOUND":
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	log.Printf("❌ Erro interno: %v", err)
	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error")
}
