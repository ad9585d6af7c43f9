package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inmocalc/domain"
	"inmocalc/repository"
	"inmocalc/service"
)

func newAmortizationHandler() *AmortizationHandler {
	repo := repository.NewCalculationRepositoryMemory()
	return NewAmortizationHandler(service.NewAmortizationService(repo))
}

func loanBody() []byte {
	return []byte(`{
		"precio": 100000000,
		"modo_pie": "porcentaje",
		"pie_porcentaje": 20,
		"tasa_anual": 4.5,
		"plazo_anios": 20,
		"modo_seguros": "fijo",
		"seguro_desgravamen": 25000,
		"seguro_incendio": 12000
	}`)
}

func TestBuildTableHandler_OK(t *testing.T) {

	handler := newAmortizationHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/amortizacion",
		bytes.NewBuffer(loanBody()),
	)

	w := httptest.NewRecorder()

	handler.BuildTable(w, req)

	resp := w.Result()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var result domain.AmortizationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(result.Rows) != 240 {
		t.Errorf("expected 240 rows, got %d", len(result.Rows))
	}
}

func TestBuildTableHandler_BadRequest(t *testing.T) {

	handler := newAmortizationHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/amortizacion",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	handler.BuildTable(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBuildTableHandler_ValidationErrorsReportedTogether(t *testing.T) {

	handler := newAmortizationHandler()

	body := []byte(`{"precio": -1, "modo_pie": "porcentaje", "tasa_anual": -1, "plazo_anios": 0, "modo_seguros": "fijo"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/amortizacion", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.BuildTable(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	msg := w.Body.String()
	for _, want := range []string{"precio", "tasa", "plazo"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in composite message %q", want, msg)
		}
	}
}

func TestSummaryHandler_OK(t *testing.T) {

	handler := newAmortizationHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/amortizacion/resumen",
		bytes.NewBuffer(loanBody()),
	)
	w := httptest.NewRecorder()

	handler.Summary(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summary domain.LoanSummary
	if err := json.NewDecoder(w.Body).Decode(&summary); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if summary.Principal != 80_000_000 {
		t.Errorf("expected principal 80M, got %.2f", summary.Principal)
	}
}

func TestExportCSVHandler_OK(t *testing.T) {

	handler := newAmortizationHandler()

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/amortizacion/csv",
		bytes.NewBuffer(loanBody()),
	)
	w := httptest.NewRecorder()

	handler.ExportCSV(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "amortizacion.csv") {
		t.Errorf("expected attachment disposition, got %q", cd)
	}
	if !strings.HasPrefix(w.Body.String(), "cuota,saldo_inicial,interes,amortizacion,saldo_final,seguros,pago_total\n") {
		t.Errorf("expected CSV header at start of body")
	}
}
