package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"inmocalc/domain"
	"inmocalc/repository"
)

// isFinite reporta si v es un número usable (ni NaN ni infinito).
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type AmortizationService struct {
	repo repository.CalculationRepository
}

// NewAmortizationService creates a new AmortizationService with the given repository.
func NewAmortizationService(repo repository.CalculationRepository) *AmortizationService {
	return &AmortizationService{repo: repo}
}

// Validate revisa todos los parámetros del crédito y devuelve la lista
// completa de problemas encontrados. Lista vacía = entrada válida.
func (s *AmortizationService) Validate(input domain.LoanInputs) []string {
	var errs []string

	priceOK := isFinite(input.Price) && input.Price > 0
	if !priceOK {
		errs = append(errs, "precio inválido: debe ser un número positivo")
	}
	if input.Price > MaxPrice {
		errs = append(errs, fmt.Sprintf("precio excede el máximo permitido de $%.0f", MaxPrice))
	}

	downPayment, dpOK := 0.0, false
	switch input.DownPaymentMode {
	case domain.DownPaymentPercent:
		if isFinite(input.DownPaymentPercent) && input.DownPaymentPercent >= 0 {
			downPayment = input.Price * input.DownPaymentPercent / 100
			dpOK = true
		} else {
			errs = append(errs, "pie inválido: el porcentaje debe ser un número no negativo")
		}
	case domain.DownPaymentAmount:
		if isFinite(input.DownPaymentAmount) && input.DownPaymentAmount >= 0 {
			downPayment = input.DownPaymentAmount
			dpOK = true
		} else {
			errs = append(errs, "pie inválido: el monto debe ser un número no negativo")
		}
	default:
		errs = append(errs, "modo de pie inválido")
	}

	if !isFinite(input.AnnualRate) || input.AnnualRate < 0 {
		errs = append(errs, "tasa inválida: debe ser un número no negativo")
	} else if input.AnnualRate > MaxInterestRate {
		errs = append(errs, fmt.Sprintf("tasa excede el máximo permitido de %.0f%%", MaxInterestRate))
	}

	if !isFinite(input.TermYears) || input.TermYears <= 0 || monthsForTerm(input.TermYears) < 1 {
		errs = append(errs, "plazo inválido: debe ser un número positivo de años")
	} else if input.TermYears > MaxTermYears {
		errs = append(errs, fmt.Sprintf("plazo excede el máximo permitido de %.0f años", MaxTermYears))
	}

	switch input.InsuranceMode {
	case domain.InsuranceFixed:
		if !isFinite(input.LifeInsurance) || input.LifeInsurance < 0 ||
			!isFinite(input.FireInsurance) || input.FireInsurance < 0 {
			errs = append(errs, "seguros inválidos: los montos mensuales deben ser números no negativos")
		}
	case domain.InsuranceRate:
		if !isFinite(input.LifeInsuranceRate) || input.LifeInsuranceRate < 0 ||
			!isFinite(input.FireInsuranceRate) || input.FireInsuranceRate < 0 {
			errs = append(errs, "seguros inválidos: las tasas mensuales deben ser números no negativos")
		}
		switch input.InsuranceBase {
		case domain.InsuranceBaseBalance, domain.InsuranceBasePrincipal:
		default:
			errs = append(errs, "base de seguros inválida")
		}
	default:
		errs = append(errs, "modo de seguros inválido")
	}

	// El pie sólo se compara contra el precio cuando ambos son válidos.
	if priceOK && dpOK && downPayment >= input.Price {
		errs = append(errs, "el pie debe ser menor que el precio: el capital a financiar quedaría en cero")
	}

	return errs
}

// BuildTable construye el cuadro de amortización completo del sistema
// francés. Falla con un único error compuesto si la entrada es inválida.
func (s *AmortizationService) BuildTable(
	ctx context.Context,
	input domain.LoanInputs,
) (domain.AmortizationResult, error) {

	if errs := s.Validate(input); len(errs) > 0 {
		return domain.AmortizationResult{}, errors.New(strings.Join(errs, "; "))
	}

	result := buildSchedule(input)

	// Guardar el resultado (no crítico si falla)
	if err := saveCalculation(ctx, s.repo, "amortizacion", input, result); err != nil {
		log.Warn().Err(err).Msg("no se pudo guardar el cálculo de amortización")
	}

	return result, nil
}

// Summary calcula la proyección resumida: capital, cuotas y totales.
func (s *AmortizationService) Summary(
	ctx context.Context,
	input domain.LoanInputs,
) (domain.LoanSummary, error) {

	if errs := s.Validate(input); len(errs) > 0 {
		return domain.LoanSummary{}, errors.New(strings.Join(errs, "; "))
	}

	result := buildSchedule(input)

	return domain.LoanSummary{
		Principal:        result.Principal,
		BaseInstallment:  result.BaseInstallment,
		TotalInstallment: result.TotalInstallment,
		TotalInterest:    result.TotalInterest,
		TotalInsurance:   result.TotalInsurance,
		TotalPaid:        result.TotalPaid,
		TotalPrincipal:   result.TotalPrincipal,
	}, nil
}

func saveCalculation(
	ctx context.Context,
	repo repository.CalculationRepository,
	kind string,
	input any,
	result any,
) error {
	rawInput, err := json.Marshal(input)
	if err != nil {
		return err
	}
	rawResult, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return repo.Save(ctx, repository.CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     rawInput,
		Result:    rawResult,
		CreatedAt: time.Now(),
	})
}

func monthsForTerm(termYears float64) int {
	return int(math.Round(termYears * 12))
}

func downPaymentFor(input domain.LoanInputs) float64 {
	if input.DownPaymentMode == domain.DownPaymentAmount {
		return input.DownPaymentAmount
	}
	return input.Price * input.DownPaymentPercent / 100
}

// baseInstallment es la cuota fija del sistema francés. Con tasa cero la
// fórmula de anualidad divide por cero, así que se usa el prorrateo lineal.
func baseInstallment(principal, monthlyRate float64, months int) float64 {
	if monthlyRate == 0 {
		return principal / float64(months)
	}
	return principal * monthlyRate / (1 - math.Pow(1+monthlyRate, float64(-months)))
}

func insuranceFor(input domain.LoanInputs, principal, openingBalance float64) float64 {
	if input.InsuranceMode == domain.InsuranceFixed {
		return input.LifeInsurance + input.FireInsurance
	}
	base := principal
	if input.InsuranceBase == domain.InsuranceBaseBalance {
		base = openingBalance
	}
	return base * (input.LifeInsuranceRate + input.FireInsuranceRate)
}

// buildSchedule itera el crédito período a período. En la última cuota la
// amortización se fuerza al saldo inicial completo y la cuota se recalcula,
// de modo que el saldo final cierre exactamente en cero sin arrastre de
// redondeo. Los totales se suman de forma independiente, no se derivan
// unos de otros.
func buildSchedule(input domain.LoanInputs) domain.AmortizationResult {
	principal := input.Price - downPaymentFor(input)
	months := monthsForTerm(input.TermYears)
	monthlyRate := input.AnnualRate / 100 / 12
	installment := baseInstallment(principal, monthlyRate, months)

	rows := make([]domain.AmortizationRow, 0, months)
	balance := principal

	var totalInterest, totalInsurance, totalPaid, totalPrincipal float64

	for t := 1; t <= months; t++ {
		interest := balance * monthlyRate
		principalPaid := installment - interest
		installmentDue := installment

		if t == months {
			principalPaid = balance
			installmentDue = interest + principalPaid
		}

		closing := math.Max(0, balance-principalPaid)
		insurance := insuranceFor(input, principal, balance)
		payment := installmentDue + insurance

		rows = append(rows, domain.AmortizationRow{
			Period:         t,
			OpeningBalance: balance,
			Interest:       interest,
			Principal:      principalPaid,
			ClosingBalance: closing,
			Insurance:      insurance,
			TotalPayment:   payment,
		})

		totalInterest += interest
		totalInsurance += insurance
		totalPaid += payment
		totalPrincipal += principalPaid

		balance = closing
	}

	return domain.AmortizationResult{
		Rows:             rows,
		Principal:        principal,
		BaseInstallment:  installment,
		TotalInstallment: installment + rows[0].Insurance,
		TotalInterest:    totalInterest,
		TotalInsurance:   totalInsurance,
		TotalPaid:        totalPaid,
		TotalPrincipal:   totalPrincipal,
	}
}
