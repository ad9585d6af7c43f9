package domain

// DownPaymentMode selecciona cómo se expresa el pie del crédito.
type DownPaymentMode string

const (
	DownPaymentPercent DownPaymentMode = "porcentaje"
	DownPaymentAmount  DownPaymentMode = "monto"
)

// InsuranceMode selecciona cómo se calculan los seguros mensuales.
type InsuranceMode string

const (
	// InsuranceFixed: dos cargos mensuales fijos (desgravamen + incendio/sismo).
	InsuranceFixed InsuranceMode = "fijo"
	// InsuranceRate: dos tasas mensuales aplicadas sobre una base.
	InsuranceRate InsuranceMode = "tasa"
)

// InsuranceBase es la base sobre la que se aplican las tasas de seguros.
type InsuranceBase string

const (
	// InsuranceBaseBalance: saldo insoluto al inicio de cada período.
	InsuranceBaseBalance InsuranceBase = "saldo"
	// InsuranceBasePrincipal: capital original financiado, fijo todo el crédito.
	InsuranceBasePrincipal InsuranceBase = "capital"
)

type LoanInputs struct {
	Price float64 `json:"precio"`

	DownPaymentMode    DownPaymentMode `json:"modo_pie"`
	DownPaymentPercent float64         `json:"pie_porcentaje"`
	DownPaymentAmount  float64         `json:"pie_monto"`

	AnnualRate float64 `json:"tasa_anual"`
	TermYears  float64 `json:"plazo_anios"`

	InsuranceMode InsuranceMode `json:"modo_seguros"`
	InsuranceBase InsuranceBase `json:"base_seguros"`

	// Modo fijo: montos mensuales.
	LifeInsurance float64 `json:"seguro_desgravamen"`
	FireInsurance float64 `json:"seguro_incendio"`

	// Modo tasa: fracciones mensuales (ej. 0.0003).
	LifeInsuranceRate float64 `json:"tasa_desgravamen"`
	FireInsuranceRate float64 `json:"tasa_incendio"`
}

// AmortizationRow es una fila del cuadro de amortización. Invariantes:
// SaldoFinal = max(0, SaldoInicial - Amortizacion) y
// PagoTotal = Interes + Amortizacion + Seguros.
type AmortizationRow struct {
	Period         int     `json:"cuota"`
	OpeningBalance float64 `json:"saldo_inicial"`
	Interest       float64 `json:"interes"`
	Principal      float64 `json:"amortizacion"`
	ClosingBalance float64 `json:"saldo_final"`
	Insurance      float64 `json:"seguros"`
	TotalPayment   float64 `json:"pago_total"`
}

type AmortizationResult struct {
	Rows []AmortizationRow `json:"tabla"`

	Principal float64 `json:"capital"`
	// BaseInstallment es la cuota fija del sistema francés, sin seguros.
	BaseInstallment float64 `json:"cuota_base"`
	// TotalInstallment es la cuota base más los seguros del primer período.
	TotalInstallment float64 `json:"cuota_total"`

	TotalInterest  float64 `json:"total_intereses"`
	TotalInsurance float64 `json:"total_seguros"`
	TotalPaid      float64 `json:"total_pagado"`
	TotalPrincipal float64 `json:"total_amortizado"`
}

// LoanSummary es la proyección reducida del resultado, para la vista resumen.
type LoanSummary struct {
	Principal        float64 `json:"capital"`
	BaseInstallment  float64 `json:"cuota_base"`
	TotalInstallment float64 `json:"cuota_total"`
	TotalInterest    float64 `json:"total_intereses"`
	TotalInsurance   float64 `json:"total_seguros"`
	TotalPaid        float64 `json:"total_pagado"`
	TotalPrincipal   float64 `json:"total_amortizado"`
}
