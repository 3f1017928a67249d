package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"order-decision/internal/config"
	"order-decision/internal/decision"
	"order-decision/internal/logging"
	"order-decision/internal/model"
	"order-decision/internal/table"

	"github.com/rs/zerolog/log"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches a subcommand and returns the process exit status:
// 0 on success, 1 when the analysis fails validation, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	logging.Setup(stderr, "warn", true)

	if len(args) == 0 {
		return cmdTable(nil, stdout, stderr)
	}

	switch args[0] {
	case "table":
		return cmdTable(args[1:], stdout, stderr)
	case "ledger":
		return cmdLedger(args[1:], stdout, stderr)
	case "rank":
		return cmdRank(args[1:], stdout, stderr)
	case "criteria":
		return cmdCriteria(args[1:], stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return 0
	default:
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  cli                                   run the built-in scenario")
	fmt.Fprintln(w, "  cli table  --config examples/config.yaml --format text|csv|json [--evpi]")
	fmt.Fprintln(w, "  cli ledger --config examples/config.yaml --out results/ledger.csv")
	fmt.Fprintln(w, "  cli rank   --config examples/config.yaml")
	fmt.Fprintln(w, "  cli criteria --config examples/config.yaml")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "notes:")
	fmt.Fprintln(w, "  - without --config the built-in five-by-five scenario is used")
	fmt.Fprintln(w, "  - ledger outputs one CSV row per (order, demand) with outcome=SHORTAGE/MATCHED/SURPLUS")
}

type commonFlags struct {
	cfgPath *string
	verbose *bool
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return fs, commonFlags{
		cfgPath: fs.String("config", "", "Path to YAML config (default: built-in scenario)"),
		verbose: fs.Bool("v", false, "Enable debug logging"),
	}
}

func (f commonFlags) load(stderr io.Writer) (*config.Config, error) {
	if *f.verbose {
		logging.Setup(stderr, "debug", true)
	}
	if *f.cfgPath == "" {
		return config.Default(), nil
	}
	return config.Load(*f.cfgPath)
}

func cmdTable(args []string, stdout, stderr io.Writer) int {
	fs, common := newFlagSet("table", stderr)
	format := fs.String("format", "", "Table format: text, csv or json (default: config output.format)")
	evpi := fs.Bool("evpi", false, "Also print the expected value of perfect information (csv and json always include it)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, res, code := analyze(common, stderr)
	if code != 0 {
		return code
	}

	name := cfg.Output.Format
	if *format != "" {
		name = *format
	}
	rnd, err := table.ForFormat(name)
	if err != nil {
		log.Error().Err(err).Msg("invalid format")
		return 2
	}

	if err := decision.WriteReport(stdout, rnd, res); err != nil {
		log.Error().Err(err).Msg("write report")
		return 1
	}
	if *evpi && rnd.Name() == "text" {
		if err := decision.WriteValueOfInformation(stdout, res); err != nil {
			log.Error().Err(err).Msg("write report")
			return 1
		}
	}
	return 0
}

func cmdLedger(args []string, stdout, stderr io.Writer) int {
	fs, common := newFlagSet("ledger", stderr)
	outPath := fs.String("out", "results/ledger.csv", "Output CSV path")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, res, code := analyze(common, stderr)
	if code != 0 {
		return code
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Error().Err(err).Str("path", *outPath).Msg("create output directory")
		return 1
	}
	if err := decision.WriteLedgerCSV(*outPath, res.Ledger); err != nil {
		log.Error().Err(err).Str("path", *outPath).Msg("write ledger")
		return 1
	}

	fmt.Fprintf(stdout, "Wrote %d rows to %s\n", len(res.Ledger), *outPath)
	if res.HasOptimal {
		fmt.Fprintf(stdout, "Optimal order=%d Expected profit=$%.2f\n", res.Optimal.Order, res.Optimal.ExpectedProfit)
	}
	return 0
}

func cmdRank(args []string, stdout, stderr io.Writer) int {
	fs, common := newFlagSet("rank", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, res, code := analyze(common, stderr)
	if code != 0 {
		return code
	}
	if err := decision.WriteRanking(stdout, res); err != nil {
		log.Error().Err(err).Msg("write ranking")
		return 1
	}
	return 0
}

func cmdCriteria(args []string, stdout, stderr io.Writer) int {
	fs, common := newFlagSet("criteria", stderr)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	_, res, code := analyze(common, stderr)
	if code != 0 {
		return code
	}
	if len(res.Decisions) == 0 {
		fmt.Fprintln(stdout, "No order candidates or demand levels; nothing to decide.")
		return 0
	}
	if err := decision.WriteDecisions(stdout, res); err != nil {
		log.Error().Err(err).Msg("write criteria")
		return 1
	}
	return 0
}

func analyze(common commonFlags, stderr io.Writer) (*config.Config, *decision.Result, int) {
	cfg, err := common.load(stderr)
	if err != nil {
		log.Error().Err(err).Str("kind", string(model.KindOf(err))).Msg("load config")
		return nil, nil, 1
	}
	res, err := decision.New(cfg.Pricing.ToModel()).Run(cfg.Scenario.ToModel())
	if err != nil {
		log.Error().Err(err).Str("kind", string(model.KindOf(err))).Msg("analysis failed")
		return nil, nil, 1
	}
	return cfg, res, 0
}
