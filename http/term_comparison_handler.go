package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"inmocalc/domain"
	"inmocalc/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
}

func NewTermComparisonHandler(service *service.TermComparisonService) *TermComparisonHandler {
	return &TermComparisonHandler{service: service}
}

func (h *TermComparisonHandler) Compare(w http.ResponseWriter, r *http.Request) {
	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.TermComparisonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Error().Err(err).Msg("error decodificando comparación de plazos")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Compare(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}
