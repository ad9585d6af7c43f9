package http

import (
	"encoding/json"
	"net/http"

	"inmocalc/domain"
	"inmocalc/service"
)

type FlippingHandler struct {
	service *service.FlippingService
}

func NewFlippingHandler(service *service.FlippingService) *FlippingHandler {
	return &FlippingHandler{service: service}
}

type flippingResponse struct {
	Metrics     domain.FlippingMetrics `json:"indicadores"`
	Stoplight   domain.Stoplight       `json:"semaforo"`
	MAOAdvisory string                 `json:"mensaje_mao"`
}

// Evaluate calcula los indicadores del proyecto, el semáforo y el mensaje
// sobre la oferta máxima.
func (h *FlippingHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var input domain.FlippingInputs
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	metrics, err := h.service.CalculateIndicators(r.Context(), input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, flippingResponse{
		Metrics:     metrics,
		Stoplight:   h.service.Classify(metrics),
		MAOAdvisory: h.service.DescribeMAO(metrics),
	})
}
