package repository

import (
	"context"
	"encoding/json"
	"time"
)

// CalculationRecord es un cálculo terminado, guardado sólo como historial.
// Ningún cálculo posterior lo lee: los motores recomputan siempre desde cero.
type CalculationRecord struct {
	ID        string          `json:"id"`
	Kind      string          `json:"tipo"` // "amortizacion" o "flipping"
	Input     json.RawMessage `json:"entrada"`
	Result    json.RawMessage `json:"resultado"`
	CreatedAt time.Time       `json:"creado_en"`
}

type CalculationRepository interface {
	Save(ctx context.Context, record CalculationRecord) error
}
