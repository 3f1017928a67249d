package table

import (
	"encoding/csv"
	"io"
	"strconv"
)

// CSV renders the header row (corner + column labels) and one record per row.
// The title is not part of the output.
type CSV struct{}

func (CSV) Name() string { return "csv" }

func (CSV) Render(w io.Writer, t Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)

	corner := t.Corner
	if corner == "" {
		corner = DefaultCorner
	}
	header := append([]string{corner}, t.ColLabels...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for i, row := range t.Values {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, t.RowLabels[i])
		for _, v := range row {
			rec = append(rec, fmtFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
