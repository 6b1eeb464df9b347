package engine

import (
	"encoding/csv"
	"os"
	"strconv"

	"compound-calc/internal/model"
)

// WriteBreakdownCSV writes a yearly breakdown to a CSV file.
func WriteBreakdownCSV(path string, rows []model.YearlyBreakdownRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"year", "date", "amount", "interest_earned"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Year),
			fmtDate(r.Date),
			fmtFloat(r.Amount),
			fmtFloat(r.InterestEarned),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtDate(d *model.Date) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
