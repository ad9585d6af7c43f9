package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"inmocalc/domain"
	"inmocalc/repository"
)

type FlippingService struct {
	repo repository.CalculationRepository
}

func NewFlippingService(repo repository.CalculationRepository) *FlippingService {
	return &FlippingService{repo: repo}
}

// Validate revisa los parámetros del proyecto y falla con el primer
// problema detectado. El valor de la UF se exige estrictamente positivo
// antes de cualquier conversión.
func (s *FlippingService) Validate(input domain.FlippingInputs) error {
	if !isFinite(input.UFValue) || input.UFValue <= 0 {
		return errors.New("valor de la UF inválido: debe ser un número positivo")
	}

	fields := []struct {
		name  string
		value float64
	}{
		{"precio de compra", input.Price},
		{"superficie", input.Area},
		{"precio por m2", input.PricePerArea},
		{"factor de seguridad", input.SafetyFactor},
		{"costo de remodelación", input.RenovationCost},
		{"contingencia", input.ContingencyPct},
		{"costos de compra", input.AcquisitionPct},
		{"comisión de venta", input.CommissionPct},
		{"gastos notariales", input.NotaryCost},
		{"pie", input.DownPaymentPct},
		{"tasa anual", input.AnnualRate},
		{"plazo del crédito", input.LoanTermMonths},
		{"meses del proyecto", input.HoldingMonths},
		{"meses de pago del crédito", input.PayingMonths},
		{"margen objetivo", input.TargetMarginPct},
	}
	for _, f := range fields {
		if !isFinite(f.value) || f.value < 0 {
			return fmt.Errorf("%s inválido: debe ser un número no negativo", f.name)
		}
	}

	return nil
}

// CalculateIndicators deriva todos los indicadores del proyecto en orden de
// dependencia. Las razones con base cero (ej. rentabilidad con pie cero)
// quedan como valores no finitos en el resultado, nunca como error.
func (s *FlippingService) CalculateIndicators(
	ctx context.Context,
	input domain.FlippingInputs,
) (domain.FlippingMetrics, error) {

	if err := s.Validate(input); err != nil {
		return domain.FlippingMetrics{}, err
	}

	resaleValue := input.PricePerArea * input.Area * input.SafetyFactor

	downPayment := input.Price * input.DownPaymentPct / 100
	financed := input.Price - downPayment

	monthlyRate := input.AnnualRate / 100 / 12
	months := int(math.Round(input.LoanTermMonths))
	var installment float64
	if months > 0 {
		installment = baseInstallment(financed, monthlyRate, months)
	}
	financingCost := installment * input.PayingMonths

	renovationTotal := input.RenovationCost * (1 + input.ContingencyPct/100)
	acquisitionCosts := input.Price*input.AcquisitionPct/100 + input.NotaryCost
	sellingCost := resaleValue * input.CommissionPct / 100

	totalCost := input.Price + acquisitionCosts + renovationTotal + financingCost + sellingCost
	grossProfit := resaleValue - totalCost

	roi := grossProfit / downPayment * 100
	annualized := grossProfit / downPayment / input.HoldingMonths * 12 * 100
	projectMargin := grossProfit / totalCost * 100
	safetyMargin := (resaleValue - totalCost) / resaleValue * 100

	mao := resaleValue - (renovationTotal + acquisitionCosts + sellingCost) -
		resaleValue*input.TargetMarginPct/100

	metrics := domain.FlippingMetrics{
		ResaleValue:        resaleValue,
		DownPayment:        downPayment,
		FinancedAmount:     financed,
		MonthlyInstallment: installment,
		FinancingCost:      financingCost,
		RenovationTotal:    renovationTotal,
		AcquisitionCosts:   acquisitionCosts,
		SellingCost:        sellingCost,
		TotalCost:          totalCost,
		GrossProfit:        grossProfit,
		ROI:                domain.Ratio(roi),
		AnnualizedReturn:   domain.Ratio(annualized),
		ProjectMargin:      domain.Ratio(projectMargin),
		SafetyMargin:       domain.Ratio(safetyMargin),
		MAO:                mao,
		MAOInUF:            mao / input.UFValue,
		MAODelta:           mao - input.Price,
	}

	// Guardar el resultado (no crítico si falla)
	if err := saveCalculation(ctx, s.repo, "flipping", input, metrics); err != nil {
		log.Warn().Err(err).Msg("no se pudo guardar el cálculo de flipping")
	}

	return metrics, nil
}

// Classify aplica el semáforo de recomendación. Las condiciones rojas se
// evalúan primero; verde exige todos los umbrales óptimos; el resto es
// amarillo. Las comparaciones con razones no finitas siguen la semántica
// IEEE: un NaN no cumple ningún umbral.
func (s *FlippingService) Classify(m domain.FlippingMetrics) domain.Stoplight {
	red := m.GrossProfit <= 0 ||
		float64(m.AnnualizedReturn) < RedAnnualizedPct ||
		float64(m.SafetyMargin) < RedSafetyPct ||
		float64(m.ProjectMargin) < RedMarginPct

	if red {
		return domain.Stoplight{
			Tier:    domain.TierRed,
			Title:   "No recomendado",
			Message: "La utilidad o los márgenes del proyecto están bajo los mínimos aceptables. No se recomienda comprar en estas condiciones.",
		}
	}

	green := float64(m.AnnualizedReturn) >= GreenAnnualizedPct &&
		float64(m.SafetyMargin) >= GreenSafetyPct &&
		float64(m.ProjectMargin) >= GreenMarginPct

	if green {
		return domain.Stoplight{
			Tier:    domain.TierGreen,
			Title:   "Compra recomendada",
			Message: "El proyecto cumple todos los umbrales de rentabilidad, margen y seguridad. Condiciones óptimas para comprar.",
		}
	}

	return domain.Stoplight{
		Tier:    domain.TierYellow,
		Title:   "Requiere revisión",
		Message: "El proyecto es viable pero no alcanza los umbrales óptimos. Revise precio, costos o plazo antes de ofertar.",
	}
}

// DescribeMAO explica la diferencia entre el precio pedido y la oferta
// máxima que preserva el margen objetivo.
func (s *FlippingService) DescribeMAO(m domain.FlippingMetrics) string {
	switch {
	case m.MAODelta > 0:
		return fmt.Sprintf(
			"El precio de compra está $%.2f bajo la oferta máxima recomendada: hay espacio para negociar.",
			m.MAODelta,
		)
	case m.MAODelta < 0:
		return fmt.Sprintf(
			"El precio de compra excede la oferta máxima recomendada en $%.2f: negocie una rebaja o descarte el proyecto.",
			-m.MAODelta,
		)
	default:
		return "El precio de compra coincide exactamente con la oferta máxima recomendada."
	}
}
