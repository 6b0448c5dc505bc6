// Balance harness: plays full runs headlessly under each authored
// playstyle and reports where the economy lands. Used to keep the
// building purchase reachable for disciplined players and out of
// reach for comfortable ones.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"fromagerie/internal/building"
	"fromagerie/internal/config"
	"fromagerie/internal/content"
	"fromagerie/internal/runstore"
	"fromagerie/internal/sim"
	"fromagerie/internal/telemetry"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "run":
		if err := cmdRun(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "run failed:", err)
			os.Exit(1)
		}
	case "history":
		if err := cmdHistory(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "history failed:", err)
			os.Exit(1)
		}
	default:
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `usage:
  balance run     [-seed N] [-runs N] [-difficulty name] [-db path] [-stats]
  balance history [-db path] [-style name] [-limit N]`)
}

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	seed := fs.Int64("seed", 1, "base seed, run i uses seed+i")
	runs := fs.Int("runs", 1, "runs per playstyle")
	difficulty := fs.String("difficulty", "realistic", "realistic, forgiving or brutal")
	dbPath := fs.String("db", "", "sqlite file to record runs in, optional")
	showStats := fs.Bool("stats", false, "print event firing stats per run")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var bal config.Balance
	switch *difficulty {
	case "realistic":
		bal = config.Realistic()
	case "forgiving":
		bal = config.Forgiving()
	case "brutal":
		bal = config.Brutal()
	default:
		return fmt.Errorf("unknown difficulty %q", *difficulty)
	}

	catalog, err := content.NewCatalog(bal)
	if err != nil {
		return err
	}

	var store *runstore.Store
	if *dbPath != "" {
		store, err = runstore.Open(*dbPath)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "style\tseed\toutcome\tmonths\tbank@deadline\tbuilding\tfinal bank\tburnouts")

	deadlineBank := map[sim.Playstyle]int{}
	for _, style := range sim.Playstyles() {
		for i := 0; i < *runs; i++ {
			runSeed := *seed + int64(i)
			eng, err := sim.New(sim.Options{Balance: bal, Catalog: catalog, Seed: runSeed})
			if err != nil {
				return err
			}

			report, err := eng.RunUntil(building.DeadlineEventID, bal.TotalMonths, sim.PolicyFor(style))
			if err != nil {
				return err
			}

			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%d\t%v\t%d\t%d\n",
				style, runSeed, report.Outcome, report.MonthsPlayed,
				report.BankAtDeadline, report.Final.OwnsBuilding,
				report.Final.Bank, report.Final.BurnoutCount)

			if i == 0 {
				deadlineBank[style] = report.BankAtDeadline
			}
			if store != nil {
				if _, err := store.SaveRun(context.Background(), style, runSeed, report); err != nil {
					return err
				}
			}
			if *showStats {
				stats := telemetry.CalculateStats(report.Firings, catalog)
				fmt.Fprintf(tw, "\tfired %d, quiet %d, mandatory missed %d\n",
					stats.EventsFired, stats.QuietMonths, len(stats.MandatoryMissed))
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	// The headline number: the grind player should clear the building
	// price at the deadline, the family player should not.
	fmt.Printf("\ngrind bank at deadline: %d (price %d)\n", deadlineBank[sim.StyleGrind], bal.BuildingCost)
	fmt.Printf("family bank at deadline: %d\n", deadlineBank[sim.StyleFamilyFirst])
	return nil
}

func cmdHistory(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	dbPath := fs.String("db", "balance.db", "sqlite file to read")
	style := fs.String("style", "", "filter by playstyle, empty for all")
	limit := fs.Int("limit", 20, "max rows")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := runstore.Open(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.ListRuns(context.Background(), sim.Playstyle(*style), *limit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tplayed\tstyle\tseed\toutcome\tmonths\tbank@deadline\tfinal bank")
	for _, r := range runs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%d\t%d\t%d\n",
			r.ID, r.PlayedAt.Format("2006-01-02 15:04"), r.Playstyle, r.Seed,
			r.Outcome, r.MonthsPlayed, r.BankAtDeadline, r.FinalBank)
	}
	return tw.Flush()
}
