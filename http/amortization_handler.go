package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"inmocalc/domain"
	"inmocalc/service"
)

type AmortizationHandler struct {
	service *service.AmortizationService
}

func NewAmortizationHandler(service *service.AmortizationService) *AmortizationHandler {
	return &AmortizationHandler{service: service}
}

// BuildTable devuelve el cuadro de amortización completo.
func (h *AmortizationHandler) BuildTable(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildTable(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result)
}

// Summary devuelve la proyección resumida del crédito.
func (h *AmortizationHandler) Summary(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summary(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, summary)
}

// ExportCSV devuelve el cuadro como archivo CSV descargable.
func (h *AmortizationHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildTable(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="amortizacion.csv"`)
	if err := service.WriteScheduleCSV(w, result); err != nil {
		log.Error().Err(err).Msg("error escribiendo CSV de amortización")
	}
}

// writeJSON codifica en buffer primero para no escribir el header si falla.
func writeJSON(w http.ResponseWriter, payload any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		log.Error().Err(err).Msg("error codificando respuesta")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("error escribiendo respuesta")
	}
}
