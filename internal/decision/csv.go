package decision

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var ledgerHeader = []string{
	"order_index",
	"demand_index",
	"order",
	"demand",
	"outcome",
	"units_sold",
	"units_surplus",
	"probability",
	"profit",
	"expected_value",
	"cum_expected_profit",
}

func WriteLedgerCSV(path string, ledger []LedgerRow) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeLedgerCSV(f, ledger); err != nil {
		return err
	}
	return f.Close()
}

func EncodeLedgerCSV(out io.Writer, ledger []LedgerRow) error {
	w := csv.NewWriter(out)
	if err := w.Write(ledgerHeader); err != nil {
		return err
	}

	for _, r := range ledger {
		row := []string{
			strconv.Itoa(r.OrderIndex),
			strconv.Itoa(r.DemandIndex),
			strconv.Itoa(r.Order),
			strconv.Itoa(r.Demand),
			string(r.Outcome),
			strconv.Itoa(r.UnitsSold),
			strconv.Itoa(r.UnitsSurplus),
			fmtFloat(r.Probability),
			fmtFloat(r.Profit),
			fmtFloat(r.ExpectedValue),
			fmtFloat(r.CumExpectedProfit),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
