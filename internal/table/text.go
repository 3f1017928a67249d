package table

import (
	"bufio"
	"fmt"
	"io"
)

// Text renders fixed-width columns: a 12-wide left-aligned label column and
// 11-wide right-aligned value columns with two decimals.
type Text struct{}

func (Text) Name() string { return "text" }

func (Text) Render(w io.Writer, t Table) error {
	if err := t.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	corner := t.Corner
	if corner == "" {
		corner = DefaultCorner
	}

	fmt.Fprintf(bw, "%s\n", t.Title)
	fmt.Fprintf(bw, "%-12s", corner)
	for _, c := range t.ColLabels {
		fmt.Fprintf(bw, "%11s", c)
	}
	fmt.Fprint(bw, "\n")

	for i, row := range t.Values {
		fmt.Fprintf(bw, "%-12s", t.RowLabels[i])
		for _, v := range row {
			fmt.Fprintf(bw, "%11.2f", v)
		}
		fmt.Fprint(bw, "\n")
	}
	return bw.Flush()
}
