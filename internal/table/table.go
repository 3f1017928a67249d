package table

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"order-decision/internal/model"
)

// DefaultCorner labels the header cell above the row labels.
const DefaultCorner = `Order\Demand`

// Table is a titled matrix with labels for both axes.
type Table struct {
	Title     string
	Corner    string
	RowLabels []string
	ColLabels []string
	Values    model.Matrix
}

// Renderer writes a Table to w. Implementations carry no business logic.
type Renderer interface {
	Name() string
	Render(w io.Writer, t Table) error
}

// FromMatrix labels rows "Order N" and columns with the demand level.
func FromMatrix(title string, orders, demands []int, m model.Matrix) Table {
	rows := make([]string, len(orders))
	for i, q := range orders {
		rows[i] = fmt.Sprintf("Order %d", q)
	}
	cols := make([]string, len(demands))
	for j, d := range demands {
		cols[j] = strconv.Itoa(d)
	}
	return Table{
		Title:     title,
		Corner:    DefaultCorner,
		RowLabels: rows,
		ColLabels: cols,
		Values:    m,
	}
}

// Formats lists the names accepted by ForFormat.
func Formats() []string {
	return []string{"text", "csv", "json"}
}

func ForFormat(name string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text":
		return Text{}, nil
	case "csv":
		return CSV{}, nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unsupported table format %q (want one of %s)", name, strings.Join(Formats(), ", "))
	}
}

func (t Table) validate() error {
	if len(t.Values) != len(t.RowLabels) {
		return fmt.Errorf("%w: %d rows for %d row labels", model.ErrDimensionMismatch, len(t.Values), len(t.RowLabels))
	}
	for i, row := range t.Values {
		if len(row) != len(t.ColLabels) {
			return fmt.Errorf("%w: row %d has %d values for %d column labels",
				model.ErrDimensionMismatch, i, len(row), len(t.ColLabels))
		}
	}
	return nil
}
