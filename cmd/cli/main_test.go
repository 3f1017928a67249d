package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const defaultOutput = `Profit Matrix
Order\Demand        100        150        200        250        300
Order 100    2400000.00 2400000.00 2400000.00 2400000.00 2400000.00
Order 150    1900000.00 3600000.00 3600000.00 3600000.00 3600000.00
Order 200    1400000.00 3100000.00 4800000.00 4800000.00 4800000.00
Order 250     900000.00 2600000.00 4300000.00 6000000.00 6000000.00
Order 300     400000.00 2100000.00 3800000.00 5500000.00 7200000.00

Expected Values (eij*qj)
Order\Demand        100        150        200        250        300
Order 100     240000.00  360000.00  600000.00  720000.00  480000.00
Order 150     190000.00  540000.00  900000.00 1080000.00  720000.00
Order 200     140000.00  465000.00 1200000.00 1440000.00  960000.00
Order 250      90000.00  390000.00 1075000.00 1800000.00 1200000.00
Order 300      40000.00  315000.00  950000.00 1650000.00 1440000.00

Expected Profits:
For Order 100: Expected Profit = 2400000.00 dollars
For Order 150: Expected Profit = 3430000.00 dollars
For Order 200: Expected Profit = 4205000.00 dollars
For Order 250: Expected Profit = 4555000.00 dollars
For Order 300: Expected Profit = 4395000.00 dollars

Optimal order quantity: 250
Optimal expected profit: 4555000.00 dollars
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWithoutArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if stdout.String() != defaultOutput {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestRunExitCodes(t *testing.T) {
	mismatch := writeConfig(t, "scenario:\n  orders: [1]\n  demands: [1, 2]\n  probabilities: [1]\n")
	nanCost := writeConfig(t, "pricing:\n  unit_cost: .nan\n")
	infPrice := writeConfig(t, "pricing:\n  first_half_price: .inf\n")
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"help", []string{"help"}, 0},
		{"unknown subcommand", []string{"simulate"}, 2},
		{"bad flag", []string{"table", "--bogus"}, 2},
		{"bad format", []string{"table", "--format", "xml"}, 2},
		{"missing config", []string{"table", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, 1},
		{"dimension mismatch", []string{"rank", "--config", mismatch}, 1},
		{"nan unit cost", []string{"table", "--config", nanCost}, 1},
		{"infinite price", []string{"table", "--config", infPrice}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.want {
				t.Fatalf("exit %d, expected %d (stderr: %s)", code, tt.want, stderr.String())
			}
		})
	}
}

func TestRunEmptyScenario(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no orders", "scenario:\n  orders: []\n  demands: [100]\n  probabilities: [1]\n"},
		{"no demand levels", "scenario:\n  orders: [100, 200]\n  demands: []\n  probabilities: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := writeConfig(t, tt.body)
			var stdout, stderr bytes.Buffer
			if code := run([]string{"table", "--config", cfg}, &stdout, &stderr); code != 0 {
				t.Fatalf("exit %d, stderr: %s", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), "Optimal order quantity: none") {
				t.Fatalf("unexpected output:\n%s", stdout.String())
			}
		})
	}
}

func TestRunTableMachineFormats(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"table", "--format", "csv", "--evpi"}, &stdout, &stderr); code != 0 {
		t.Fatalf("csv exit %d, stderr: %s", code, stderr.String())
	}
	records, err := csv.NewReader(strings.NewReader(stdout.String())).ReadAll()
	if err != nil {
		t.Fatalf("csv output does not parse: %v\n%s", err, stdout.String())
	}
	if records[0][0] != "section" || strings.Contains(stdout.String(), "Expected Profits:") {
		t.Fatalf("unexpected csv output:\n%s", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"table", "--format", "json"}, &stdout, &stderr); code != 0 {
		t.Fatalf("json exit %d, stderr: %s", code, stderr.String())
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("json output does not parse: %v\n%s", err, stdout.String())
	}
	if _, ok := doc["optimal"]; !ok {
		t.Fatalf("json output missing optimal: %v", doc)
	}
}

func TestRunTableWithEVPI(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"table", "--evpi"}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	if !strings.HasSuffix(stdout.String(), "Expected value of perfect information: 665000.00 dollars\n") {
		t.Fatalf("unexpected output:\n%s", stdout.String())
	}
}

func TestRunLedger(t *testing.T) {
	out := filepath.Join(t.TempDir(), "results", "ledger.csv")
	var stdout, stderr bytes.Buffer
	if code := run([]string{"ledger", "--out", out}, &stdout, &stderr); code != 0 {
		t.Fatalf("exit %d, stderr: %s", code, stderr.String())
	}
	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read ledger: %v", err)
	}
	if lines := strings.Count(string(raw), "\n"); lines != 26 {
		t.Fatalf("ledger lines = %d, expected 26", lines)
	}
	if !strings.Contains(stdout.String(), "Optimal order=250") {
		t.Fatalf("unexpected output: %s", stdout.String())
	}
}

func TestRunRankAndCriteria(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"rank"}, &stdout, &stderr); code != 0 {
		t.Fatalf("rank exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	if len(lines) != 6 || !strings.HasPrefix(lines[1], "1    250") {
		t.Fatalf("unexpected ranking:\n%s", stdout.String())
	}

	stdout.Reset()
	if code := run([]string{"criteria"}, &stdout, &stderr); code != 0 {
		t.Fatalf("criteria exit %d", code)
	}
	if !strings.Contains(stdout.String(), "minimax_regret") {
		t.Fatalf("unexpected criteria output:\n%s", stdout.String())
	}
}
