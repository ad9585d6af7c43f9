package service

const (
	MaxPrice        = 10_000_000_000.0 // tope de precio de propiedad
	MaxInterestRate = 1000.0           // 1000% anual
	MaxTermYears    = 50.0
	MaxTermMonths   = 600

	// Rango máximo de plazos a evaluar en la comparación (en años).
	MaxTermRangeYears = 15

	// Umbrales del semáforo, en puntos porcentuales.
	RedAnnualizedPct   = 12.0 // rentabilidad anualizada mínima
	RedSafetyPct       = 12.0 // margen de seguridad mínimo
	RedMarginPct       = 8.0  // margen del proyecto mínimo
	GreenAnnualizedPct = 30.0
	GreenSafetyPct     = 25.0
	GreenMarginPct     = 18.0
)
