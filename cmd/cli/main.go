package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"compound-calc/internal/config"
	"compound-calc/internal/engine"
	"compound-calc/internal/history"
	"compound-calc/internal/model"
	"compound-calc/internal/validate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "calc":
		cmdCalc(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli calc --principal 10000 --rate 5 --years 3 --frequency annually [--start 2025-01-01] [--save] [--out results/breakdown.csv]")
	fmt.Println("  cli history list")
	fmt.Println("  cli history delete --id <record-id>")
	fmt.Println("  cli history clear")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - frequency is one of: annually, semi-annually, quarterly, monthly, weekly, daily, continuously")
	fmt.Println("  - --save appends the calculation to the history store from --config (default: file backend)")
}

func cmdCalc(args []string) {
	fs := flag.NewFlagSet("calc", flag.ExitOnError)
	principal := fs.Float64("principal", 0, "Initial amount invested")
	rate := fs.Float64("rate", 0, "Nominal annual interest rate in percent (5 means 5%)")
	years := fs.Int("years", 0, "Investment horizon in whole years")
	frequency := fs.String("frequency", "annually", "Compounding frequency")
	start := fs.String("start", "", "Optional start date (YYYY-MM-DD) to attach dates to the breakdown")
	cfgPath := fs.String("config", "", "Optional YAML config path (limits, history backend)")
	save := fs.Bool("save", false, "Persist the calculation to history")
	outPath := fs.String("out", "", "Optional output CSV path for the breakdown")
	_ = fs.Parse(args)

	cfg := loadConfig(*cfgPath)

	params := model.CalculationParams{
		Principal: *principal,
		Rate:      *rate,
		Time:      *years,
		Frequency: model.Frequency(*frequency),
	}
	if *start != "" {
		d, err := model.ParseDate(*start)
		if err != nil {
			fmt.Printf("invalid --start date: %v\n", err)
			os.Exit(2)
		}
		params.StartDate = &d
	}

	if errs := validate.CheckParams(cfg.Limits.ToLimits(), params); len(errs) > 0 {
		fmt.Println("invalid input:")
		for _, fe := range errs {
			fmt.Printf("  %s: %s\n", fe.Field, fe.Message)
		}
		os.Exit(2)
	}

	result, err := engine.New().Compute(params)
	if err != nil {
		panic(err)
	}

	printBreakdown(params, result)

	if *outPath != "" {
		if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
			panic(err)
		}
		if err := engine.WriteBreakdownCSV(*outPath, result.YearlyBreakdown); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(result.YearlyBreakdown), *outPath)
	}

	if *save {
		store := mustStore(cfg)
		rec, err := store.Save(params, *result)
		if err != nil {
			fmt.Printf("calculation completed but was not saved: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Saved as %s\n", rec.ID)
	}
}

func cmdHistory(args []string) {
	if len(args) < 1 {
		usage()
		os.Exit(2)
	}
	action := args[0]

	fs := flag.NewFlagSet("history", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Optional YAML config path (history backend)")
	id := fs.String("id", "", "Record id (for delete)")
	_ = fs.Parse(args[1:])

	store := mustStore(loadConfig(*cfgPath))

	switch action {
	case "list":
		records, err := store.List()
		if err != nil {
			panic(err)
		}
		if len(records) == 0 {
			fmt.Println("history is empty")
			return
		}
		for _, rec := range records {
			fmt.Printf("%s  %s  %.2f @ %.2f%% %s for %d years -> %.2f\n",
				rec.ID, rec.CreatedAt, rec.Principal, rec.Rate, rec.Frequency, rec.Time, rec.FinalAmount)
		}
	case "delete":
		if *id == "" {
			fmt.Println("--id is required")
			os.Exit(2)
		}
		if err := store.DeleteByID(*id); err != nil {
			panic(err)
		}
		fmt.Println("deleted")
	case "clear":
		if err := store.Clear(); err != nil {
			panic(err)
		}
		fmt.Println("history cleared")
	default:
		usage()
		os.Exit(2)
	}
}

func printBreakdown(params model.CalculationParams, result *model.CalculationResult) {
	if params.StartDate != nil {
		fmt.Printf("%-6s %-12s %16s %16s\n", "year", "date", "amount", "interest")
	} else {
		fmt.Printf("%-6s %16s %16s\n", "year", "amount", "interest")
	}
	for _, row := range result.YearlyBreakdown {
		if row.Date != nil {
			fmt.Printf("%-6d %-12s %16.2f %16.2f\n", row.Year, row.Date, row.Amount, row.InterestEarned)
		} else {
			fmt.Printf("%-6d %16.2f %16.2f\n", row.Year, row.Amount, row.InterestEarned)
		}
	}
	fmt.Printf("\nFinal amount:   %.2f\n", result.FinalAmount)
	fmt.Printf("Total interest: %.2f\n", result.TotalInterest)
	fmt.Printf("Formula:        %s\n", result.Formula)
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func mustStore(cfg *config.Config) history.Store {
	switch cfg.History.Backend {
	case "memory":
		return history.NewMemoryStore()
	case "sqlite":
		store, err := history.OpenSQLite(cfg.History.Path)
		if err != nil {
			panic(err)
		}
		return store
	default:
		return history.NewFileStore(cfg.History.Path)
	}
}
