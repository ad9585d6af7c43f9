package domain

type TermComparisonInput struct {
	Loan LoanInputs `json:"credito"`

	MinTermYears int `json:"plazo_min_anios"`
	MaxTermYears int `json:"plazo_max_anios"`

	MaxMonthlyPayment float64 `json:"cuota_maxima"`
	Preference        string  `json:"preferencia"` // "minimize_interest", "minimize_payment", "balanced"
}

type TermOption struct {
	TermYears        int     `json:"plazo_anios"`
	TotalInstallment float64 `json:"cuota_total"`
	TotalInterest    float64 `json:"total_intereses"`
	Score            float64 `json:"puntaje"`
	Reason           string  `json:"razon"`
}

type TermComparisonResult struct {
	RecommendedTerm int          `json:"plazo_recomendado"`
	Options         []TermOption `json:"alternativas"`
}
