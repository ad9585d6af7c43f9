package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"inmocalc/domain"
)

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type TermComparisonService struct {
	amortization *AmortizationService
}

func NewTermComparisonService(amortization *AmortizationService) *TermComparisonService {
	return &TermComparisonService{amortization: amortization}
}

// Compare evalúa el crédito sobre un rango de plazos en años, descarta los
// que exceden la cuota máxima y puntúa el resto según la preferencia.
func (s *TermComparisonService) Compare(
	ctx context.Context,
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.MinTermYears <= 0 || input.MaxTermYears <= 0 {
		return domain.TermComparisonResult{}, errors.New("plazos inválidos")
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, errors.New("plazo mínimo mayor que máximo")
	}
	if float64(input.MaxTermYears) > MaxTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("plazo máximo excede el límite de %.0f años", MaxTermYears)
	}
	// Limitar el rango para evitar cálculos costosos
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, fmt.Errorf("rango de plazos excede el máximo de %d años", MaxTermRangeYears)
	}
	if !isFinite(input.MaxMonthlyPayment) || input.MaxMonthlyPayment <= 0 {
		return domain.TermComparisonResult{}, errors.New("cuota máxima inválida")
	}

	preferences := map[string]bool{
		"minimize_interest": true,
		"minimize_payment":  true,
		"balanced":          true,
	}
	if !preferences[input.Preference] {
		return domain.TermComparisonResult{}, errors.New("preferencia inválida")
	}

	// Los parámetros del crédito se validan una sola vez con el plazo mínimo.
	loan := input.Loan
	loan.TermYears = float64(input.MinTermYears)
	if errs := s.amortization.Validate(loan); len(errs) > 0 {
		return domain.TermComparisonResult{}, errors.New("crédito inválido: " + errs[0])
	}

	type candidate struct {
		term    int
		summary domain.LoanSummary
	}
	candidates := []candidate{}

	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		loan.TermYears = float64(term)
		summary, err := s.amortization.Summary(ctx, loan)
		if err != nil {
			continue
		}
		if summary.TotalInstallment > input.MaxMonthlyPayment {
			continue
		}
		candidates = append(candidates, candidate{term: term, summary: summary})
	}

	if len(candidates) == 0 {
		return domain.TermComparisonResult{}, errors.New("ningún plazo del rango cumple con la cuota máxima especificada")
	}

	minInterest, maxInterest := candidates[0].summary.TotalInterest, candidates[0].summary.TotalInterest
	minPayment, maxPayment := candidates[0].summary.TotalInstallment, candidates[0].summary.TotalInstallment
	for _, c := range candidates {
		minInterest = math.Min(minInterest, c.summary.TotalInterest)
		maxInterest = math.Max(maxInterest, c.summary.TotalInterest)
		minPayment = math.Min(minPayment, c.summary.TotalInstallment)
		maxPayment = math.Max(maxPayment, c.summary.TotalInstallment)
	}

	options := make([]domain.TermOption, 0, len(candidates))
	for _, c := range candidates {
		score := s.score(c.summary, input, c.term,
			minInterest, maxInterest, minPayment, maxPayment)
		options = append(options, domain.TermOption{
			TermYears:        c.term,
			TotalInstallment: c.summary.TotalInstallment,
			TotalInterest:    c.summary.TotalInterest,
			Score:            score,
			Reason:           s.reason(input.Preference),
		})
	}

	// Ordenar por puntaje descendente
	sort.Slice(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TermComparisonResult{
		RecommendedTerm: options[0].TermYears,
		Options:         options,
	}, nil
}

func (s *TermComparisonService) score(
	summary domain.LoanSummary,
	input domain.TermComparisonInput,
	term int,
	minInterest, maxInterest, minPayment, maxPayment float64,
) float64 {

	// Normalizar cada dimensión a 0-10 dentro de los candidatos viables.
	interestScore := 10.0
	if maxInterest > minInterest {
		interestScore = 10.0 * (1.0 - (summary.TotalInterest-minInterest)/(maxInterest-minInterest))
	}
	paymentScore := 10.0
	if maxPayment > minPayment {
		paymentScore = 10.0 * (1.0 - (summary.TotalInstallment-minPayment)/(maxPayment-minPayment))
	}
	termScore := 10.0
	if input.MaxTermYears > input.MinTermYears {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermYears)/float64(input.MaxTermYears-input.MinTermYears))
	}

	var score float64
	switch input.Preference {
	case "minimize_interest":
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case "minimize_payment":
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case "balanced":
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundTo2Decimals(score)
}

func (s *TermComparisonService) reason(preference string) string {
	switch preference {
	case "minimize_interest":
		return "Plazo optimizado para minimizar el costo total de intereses"
	case "minimize_payment":
		return "Plazo optimizado para minimizar la cuota mensual"
	case "balanced":
		return "Balance óptimo entre cuota mensual y costo total"
	}
	return "Recomendación basada en los parámetros proporcionados"
}
