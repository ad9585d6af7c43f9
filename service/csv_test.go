package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"inmocalc/domain"
)

func TestWriteScheduleCSV(t *testing.T) {

	service := NewAmortizationService(&MockCalculationRepository{})

	// Tasa cero para valores exactos: capital 1200, 12 cuotas de 100.
	input := domain.LoanInputs{
		Price:           1200,
		DownPaymentMode: domain.DownPaymentPercent,
		AnnualRate:      0,
		TermYears:       1,
		InsuranceMode:   domain.InsuranceFixed,
	}

	result, err := service.BuildTable(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteScheduleCSV(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 13 {
		t.Fatalf("expected header + 12 rows, got %d lines", len(lines))
	}

	wantHeader := "cuota,saldo_inicial,interes,amortizacion,saldo_final,seguros,pago_total"
	if lines[0] != wantHeader {
		t.Errorf("expected header %q, got %q", wantHeader, lines[0])
	}

	wantFirst := "1,1200.000000,0.000000,100.000000,1100.000000,0.000000,100.000000"
	if lines[1] != wantFirst {
		t.Errorf("expected first row %q, got %q", wantFirst, lines[1])
	}

	wantLast := "12,100.000000,0.000000,100.000000,0.000000,0.000000,100.000000"
	if lines[12] != wantLast {
		t.Errorf("expected last row %q, got %q", wantLast, lines[12])
	}
}
