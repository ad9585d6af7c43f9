package service

import (
	"encoding/csv"
	"io"
	"strconv"

	"inmocalc/domain"
)

// ScheduleCSVHeader es el encabezado fijo que espera la UI al descargar.
var ScheduleCSVHeader = []string{
	"cuota", "saldo_inicial", "interes", "amortizacion", "saldo_final", "seguros", "pago_total",
}

// WriteScheduleCSV serializa el cuadro de amortización, una fila por cuota,
// con precisión fija de 6 decimales.
func WriteScheduleCSV(w io.Writer, result domain.AmortizationResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(ScheduleCSVHeader); err != nil {
		return err
	}

	for _, row := range result.Rows {
		record := []string{
			strconv.Itoa(row.Period),
			formatAmount(row.OpeningBalance),
			formatAmount(row.Interest),
			formatAmount(row.Principal),
			formatAmount(row.ClosingBalance),
			formatAmount(row.Insurance),
			formatAmount(row.TotalPayment),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
