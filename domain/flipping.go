package domain

import (
	"math"
	"strconv"
)

// Ratio es un porcentaje derivado que puede ser no finito (ej. rentabilidad
// con pie cero). En JSON un valor no finito se serializa como null para que
// la UI muestre un marcador en vez de fallar.
type Ratio float64

func (r Ratio) MarshalJSON() ([]byte, error) {
	v := float64(r)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, v, 'f', -1, 64), nil
}

// IsFinite reporta si el valor es utilizable como número.
func (r Ratio) IsFinite() bool {
	v := float64(r)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FlippingInputs son los parámetros de un proyecto de compra, remodelación y
// reventa. Todos los montos están en la misma moneda; ValorUF es el valor de
// la unidad indexada usado sólo para expresar el MAO en UF.
type FlippingInputs struct {
	Price        float64 `json:"precio_compra"`
	Area         float64 `json:"superficie"`
	PricePerArea float64 `json:"precio_m2"`
	SafetyFactor float64 `json:"factor_seguridad"`

	RenovationCost float64 `json:"costo_remodelacion"`
	ContingencyPct float64 `json:"contingencia_pct"`

	AcquisitionPct float64 `json:"costos_compra_pct"`
	CommissionPct  float64 `json:"comision_venta_pct"`
	NotaryCost     float64 `json:"gastos_notariales"`

	DownPaymentPct float64 `json:"pie_pct"`
	AnnualRate     float64 `json:"tasa_anual"`
	LoanTermMonths float64 `json:"plazo_credito_meses"`

	HoldingMonths float64 `json:"meses_proyecto"`
	PayingMonths  float64 `json:"meses_pago_credito"`

	TargetMarginPct float64 `json:"margen_objetivo_pct"`

	UFValue float64 `json:"valor_uf"`
}

// FlippingMetrics son los indicadores derivados, todos función pura de los
// inputs en el orden de dependencia en que se calculan.
type FlippingMetrics struct {
	ResaleValue float64 `json:"valor_venta"`

	DownPayment        float64 `json:"pie"`
	FinancedAmount     float64 `json:"monto_financiado"`
	MonthlyInstallment float64 `json:"cuota_mensual"`
	FinancingCost      float64 `json:"costo_financiero"`

	RenovationTotal  float64 `json:"remodelacion_total"`
	AcquisitionCosts float64 `json:"costos_operacionales"`
	SellingCost      float64 `json:"costo_venta"`
	TotalCost        float64 `json:"costo_total"`

	GrossProfit float64 `json:"utilidad_bruta"`

	ROI              Ratio `json:"rentabilidad_pct"`
	AnnualizedReturn Ratio `json:"rentabilidad_anual_pct"`
	ProjectMargin    Ratio `json:"margen_pct"`
	SafetyMargin     Ratio `json:"margen_seguridad_pct"`

	// MAO: oferta máxima que preserva el margen objetivo.
	MAO      float64 `json:"oferta_maxima"`
	MAOInUF  float64 `json:"oferta_maxima_uf"`
	MAODelta float64 `json:"diferencia_oferta"`
}

// Tiers del semáforo de recomendación.
const (
	TierRed    = "rojo"
	TierYellow = "amarillo"
	TierGreen  = "verde"
)

type Stoplight struct {
	Tier    string `json:"nivel"`
	Title   string `json:"titulo"`
	Message string `json:"mensaje"`
}
