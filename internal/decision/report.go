package decision

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"order-decision/internal/table"
)

const (
	ProfitMatrixTitle   = "Profit Matrix"
	ExpectedValuesTitle = "Expected Values (eij*qj)"
)

// ProfitTable and ExpectedTable label the result's matrices for rendering.
func (r *Result) ProfitTable() table.Table {
	return table.FromMatrix(ProfitMatrixTitle, r.Scenario.Orders, r.Scenario.Demands, r.ProfitMatrix)
}

func (r *Result) ExpectedTable() table.Table {
	return table.FromMatrix(ExpectedValuesTitle, r.Scenario.Orders, r.Scenario.Demands, r.ExpectedValues)
}

// WriteReport prints both matrices followed by the per-order expected profits
// and the optimal order summary. Text renderers get the console layout; csv
// and json get a single document in that format carrying the same figures.
func WriteReport(w io.Writer, rnd table.Renderer, r *Result) error {
	switch rnd.Name() {
	case "csv":
		return writeCSVReport(w, r)
	case "json":
		return writeJSONReport(w, r)
	}

	if err := rnd.Render(w, r.ProfitTable()); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if err := rnd.Render(w, r.ExpectedTable()); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "\nExpected Profits:\n")
	for i, q := range r.Scenario.Orders {
		fmt.Fprintf(bw, "For Order %d: Expected Profit = %.2f dollars\n", q, r.ExpectedProfits[i])
	}

	if !r.HasOptimal {
		fmt.Fprint(bw, "\nOptimal order quantity: none\nOptimal expected profit: n/a (no order candidates or demand levels)\n")
		return bw.Flush()
	}
	fmt.Fprintf(bw, "\nOptimal order quantity: %d\nOptimal expected profit: %.2f dollars\n",
		r.Optimal.Order, r.Optimal.ExpectedProfit)
	return bw.Flush()
}

var reportHeader = []string{"section", "order", "demand", "value"}

// csv report sections
const (
	sectionProfit             = "profit"
	sectionExpectedValue      = "expected_value"
	sectionExpectedProfit     = "expected_profit"
	sectionOptimal            = "optimal"
	sectionPerfectInformation = "perfect_information"
	sectionEVPI               = "evpi"
)

// writeCSVReport emits one long-format record per figure. Cells that do not
// apply to a section (the demand of an expected profit, say) are left empty.
func writeCSVReport(w io.Writer, r *Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	write := func(section, order, demand string, v float64) error {
		return cw.Write([]string{section, order, demand, strconv.FormatFloat(v, 'f', 2, 64)})
	}

	for _, m := range []struct {
		section string
		values  [][]float64
	}{
		{sectionProfit, r.ProfitMatrix},
		{sectionExpectedValue, r.ExpectedValues},
	} {
		for i, row := range m.values {
			for j, v := range row {
				if err := write(m.section, strconv.Itoa(r.Scenario.Orders[i]), strconv.Itoa(r.Scenario.Demands[j]), v); err != nil {
					return err
				}
			}
		}
	}
	for i, q := range r.Scenario.Orders {
		if err := write(sectionExpectedProfit, strconv.Itoa(q), "", r.ExpectedProfits[i]); err != nil {
			return err
		}
	}
	if r.HasOptimal {
		if err := write(sectionOptimal, strconv.Itoa(r.Optimal.Order), "", r.Optimal.ExpectedProfit); err != nil {
			return err
		}
		if err := write(sectionPerfectInformation, "", "", r.PerfectInformation); err != nil {
			return err
		}
		if err := write(sectionEVPI, "", "", r.EVPI); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type orderProfit struct {
	Order          int     `json:"order"`
	ExpectedProfit float64 `json:"expected_profit"`
}

type jsonReport struct {
	ProfitMatrix       table.Document `json:"profit_matrix"`
	ExpectedValues     table.Document `json:"expected_values"`
	ExpectedProfits    []orderProfit  `json:"expected_profits"`
	Optimal            *orderProfit   `json:"optimal"`
	PerfectInformation *float64       `json:"expected_profit_perfect_information,omitempty"`
	EVPI               *float64       `json:"expected_value_of_perfect_information,omitempty"`
}

// writeJSONReport emits one indented object. optimal is null when there is
// no solution.
func writeJSONReport(w io.Writer, r *Result) error {
	profit, err := r.ProfitTable().Document()
	if err != nil {
		return err
	}
	expected, err := r.ExpectedTable().Document()
	if err != nil {
		return err
	}
	doc := jsonReport{
		ProfitMatrix:    profit,
		ExpectedValues:  expected,
		ExpectedProfits: make([]orderProfit, len(r.Scenario.Orders)),
	}
	for i, q := range r.Scenario.Orders {
		doc.ExpectedProfits[i] = orderProfit{Order: q, ExpectedProfit: r.ExpectedProfits[i]}
	}
	if r.HasOptimal {
		doc.Optimal = &orderProfit{Order: r.Optimal.Order, ExpectedProfit: r.Optimal.ExpectedProfit}
		ev, evpi := r.PerfectInformation, r.EVPI
		doc.PerfectInformation = &ev
		doc.EVPI = &evpi
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// WriteValueOfInformation prints the perfect-information benchmark, if any.
func WriteValueOfInformation(w io.Writer, r *Result) error {
	if !r.HasOptimal {
		return nil
	}
	_, err := fmt.Fprintf(w, "Expected profit with perfect information: %.2f dollars\nExpected value of perfect information: %.2f dollars\n",
		r.PerfectInformation, r.EVPI)
	return err
}

// WriteRanking prints candidates best-first.
func WriteRanking(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-4s %-8s %-18s %-14s\n", "rank", "order", "expected$", "gap$")
	for _, rk := range r.Rankings {
		fmt.Fprintf(bw, "%-4d %-8d %-18.2f %-14.2f\n", rk.Rank, rk.Order, rk.ExpectedProfit, rk.GapToBest)
	}
	return bw.Flush()
}

// WriteDecisions prints the order each criterion would pick.
func WriteDecisions(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%-16s %-8s %-18s\n", "criterion", "order", "score$")
	for _, d := range r.Decisions {
		fmt.Fprintf(bw, "%-16s %-8d %-18.2f\n", d.Criterion, d.Order, d.Score)
	}
	return bw.Flush()
}
