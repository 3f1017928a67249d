package table

import (
	"encoding/json"
	"io"
)

// Document is the JSON shape of a Table.
type Document struct {
	Title     string      `json:"title"`
	RowLabels []string    `json:"row_labels"`
	ColLabels []string    `json:"col_labels"`
	Values    [][]float64 `json:"values"`
}

// Document checks the table's shape and returns it in its JSON form.
// Empty label and value lists encode as [] rather than null.
func (t Table) Document() (Document, error) {
	if err := t.validate(); err != nil {
		return Document{}, err
	}
	values := [][]float64(t.Values)
	if values == nil {
		values = [][]float64{}
	}
	return Document{
		Title:     t.Title,
		RowLabels: nonNil(t.RowLabels),
		ColLabels: nonNil(t.ColLabels),
		Values:    values,
	}, nil
}

// JSON renders the table as a single indented JSON object.
type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Render(w io.Writer, t Table) error {
	doc, err := t.Document()
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
