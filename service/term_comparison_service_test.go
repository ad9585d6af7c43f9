package service

import (
	"context"
	"testing"

	"inmocalc/domain"
)

func termComparisonFixture() domain.TermComparisonInput {
	return domain.TermComparisonInput{
		Loan: domain.LoanInputs{
			Price:           120_000,
			DownPaymentMode: domain.DownPaymentPercent,
			AnnualRate:      0,
			InsuranceMode:   domain.InsuranceFixed,
		},
		MinTermYears:      1,
		MaxTermYears:      5,
		MaxMonthlyPayment: 6000,
		Preference:        "minimize_payment",
	}
}

func newTermComparisonService() *TermComparisonService {
	return NewTermComparisonService(NewAmortizationService(&MockCalculationRepository{}))
}

func TestCompare_MinimizePaymentPicksLongestAffordableTerm(t *testing.T) {

	service := newTermComparisonService()

	result, err := service.Compare(context.Background(), termComparisonFixture())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Con tasa cero las cuotas son 10000, 5000, 3333, 2500 y 2000; la de
	// 1 año excede la cuota máxima y queda fuera.
	if len(result.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(result.Options))
	}
	if result.RecommendedTerm != 5 {
		t.Errorf("expected 5 year term recommended, got %d", result.RecommendedTerm)
	}

	for _, opt := range result.Options {
		if opt.TotalInstallment > 6000 {
			t.Errorf("term %d exceeds payment cap: %.2f", opt.TermYears, opt.TotalInstallment)
		}
		if opt.Reason == "" {
			t.Errorf("term %d: expected a reason", opt.TermYears)
		}
	}
}

func TestCompare_MinimizeInterestPicksShortestTerm(t *testing.T) {

	service := newTermComparisonService()

	input := termComparisonFixture()
	input.Loan.AnnualRate = 12
	input.MaxMonthlyPayment = 12_000
	input.Preference = "minimize_interest"

	result, err := service.Compare(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.RecommendedTerm != input.MinTermYears {
		t.Errorf("expected shortest term %d, got %d", input.MinTermYears, result.RecommendedTerm)
	}
}

func TestCompare_NoAffordableTerm(t *testing.T) {

	service := newTermComparisonService()

	input := termComparisonFixture()
	input.MaxMonthlyPayment = 100

	if _, err := service.Compare(context.Background(), input); err == nil {
		t.Errorf("expected error when no term fits the payment cap")
	}
}

func TestCompare_InvalidInputs(t *testing.T) {

	service := newTermComparisonService()

	input := termComparisonFixture()
	input.Preference = "otro"
	if _, err := service.Compare(context.Background(), input); err == nil {
		t.Errorf("expected error for unknown preference")
	}

	input = termComparisonFixture()
	input.MinTermYears = 10
	input.MaxTermYears = 5
	if _, err := service.Compare(context.Background(), input); err == nil {
		t.Errorf("expected error for inverted range")
	}

	input = termComparisonFixture()
	input.MaxTermYears = input.MinTermYears + MaxTermRangeYears + 1
	if _, err := service.Compare(context.Background(), input); err == nil {
		t.Errorf("expected error for oversized range")
	}

	input = termComparisonFixture()
	input.Loan.Price = -5
	if _, err := service.Compare(context.Background(), input); err == nil {
		t.Errorf("expected error for invalid loan")
	}
}
