// Command santa scores Traveling Santa submissions.
//
// Usage:
//
//	santa -cities cities.csv -tour submission.csv [-tour other.csv] [-report]
//	santa -config santa.yaml
//
// Flags given on the command line override values from -config.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/santa/cities"
	"github.com/katalvlaran/santa/internal/config"
	"github.com/katalvlaran/santa/tour"
)

// tourList collects repeated -tour flags.
type tourList []string

func (l *tourList) String() string         { return strings.Join(*l, ",") }
func (l *tourList) Set(value string) error { *l = append(*l, value); return nil }

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[santa] %v", err)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tbl, err := loadCities(cfg.Cities)
	if err != nil {
		return err
	}

	limit := cfg.Scoring.PrimeLimit
	if limit == 0 {
		limit = tbl.Len()
	}
	specials := cities.PrimeSet(limit)
	log.Debugf("[santa] %d special cities below %d", specials.Len(), limit)

	ev, err := tour.NewEvaluator(tbl, specials,
		tour.WithPeriod(cfg.Scoring.Period),
		tour.WithPenalty(cfg.Scoring.Penalty),
	)
	if err != nil {
		return err
	}

	tours, err := loadTours(cfg, tbl.Len())
	if err != nil {
		return err
	}

	start := time.Now()
	scores, err := ev.CostAll(ctx, tours, cfg.Workers)
	if err != nil {
		return err
	}
	log.Infof("[santa] scored %d tour(s) in %v", len(tours), time.Since(start))

	var i int
	for i = range tours {
		fmt.Fprintf(out, "%s\t%.2f\n", cfg.Tours[i], scores[i])
		if cfg.Report {
			if err = report(out, ev, tours[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseArgs merges -config with explicitly set flags.
func parseArgs(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("santa", flag.ContinueOnError)
	var (
		cfgPath  = fs.String("config", "", "YAML configuration file")
		citiesP  = fs.String("cities", "", "cities CSV (CityId,X,Y)")
		start    = fs.Int("start", 0, "start city every tour must begin and end at")
		period   = fs.Int("period", 0, "surcharge cadence in steps")
		penalty  = fs.Float64("penalty", 0, "surcharge multiplier")
		primes   = fs.Int("prime-limit", 0, "special cities are primes below this id (0 = city count)")
		workers  = fs.Int("workers", 0, "concurrent tour evaluations (0 = GOMAXPROCS)")
		rep      = fs.Bool("report", false, "print a leg report per tour")
		strict   = fs.Bool("strict", false, "reject tours that are not valid submissions")
		logLevel = fs.String("log-level", "", "log level")
		tours    tourList
	)
	fs.Var(&tours, "tour", "submission file (repeatable)")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Read(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "cities":
			cfg.Cities = *citiesP
		case "start":
			cfg.Start = *start
		case "period":
			cfg.Scoring.Period = *period
		case "penalty":
			cfg.Scoring.Penalty = *penalty
		case "prime-limit":
			cfg.Scoring.PrimeLimit = *primes
		case "workers":
			cfg.Workers = *workers
		case "report":
			cfg.Report = *rep
		case "strict":
			cfg.Strict = *strict
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if len(tours) > 0 {
		cfg.Tours = tours
	}
	cfg.Tours = append(cfg.Tours, fs.Args()...)

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	if len(cfg.Tours) == 0 {
		return config.Config{}, fmt.Errorf("%w: no tour given", config.ErrInvalidConfig)
	}
	return cfg, nil
}

func loadCities(path string) (*cities.Table, error) {
	if st, err := os.Stat(path); err == nil {
		log.Infof("[santa] loading %s (%s)", path, humanize.Bytes(uint64(st.Size())))
	}
	tbl, err := cities.LoadCSV(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	b := tbl.Bound()
	log.WithFields(log.Fields{
		"cities": tbl.Len(),
		"min":    b.Min,
		"max":    b.Max,
	}).Info("[santa] cities loaded")
	return tbl, nil
}

func loadTours(cfg config.Config, n int) ([][]int, error) {
	tours := make([][]int, len(cfg.Tours))
	var i int
	for i = range cfg.Tours {
		tr, err := tour.LoadSubmission(cfg.Tours[i])
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", cfg.Tours[i], err)
		}
		if err = tour.ValidateClosed(tr, n, cfg.Start); err != nil {
			if cfg.Strict {
				return nil, fmt.Errorf("%s: %w", cfg.Tours[i], err)
			}
			log.Warnf("[santa] %s is not a valid submission: %v", cfg.Tours[i], err)
		}
		tours[i] = tr
	}
	return tours, nil
}

func report(out io.Writer, ev *tour.Evaluator, tr []int) error {
	legs, err := ev.Legs(tr)
	if err != nil {
		return err
	}
	s, err := tour.Summarize(legs)
	if err != nil {
		// A single-city tour has nothing to report.
		log.Debugf("[santa] %v", err)
		return nil
	}
	fmt.Fprintf(out, "  legs       %d (%d penalized every %d steps)\n", s.Legs, s.Penalized, ev.Period())
	fmt.Fprintf(out, "  raw        %.2f\n", s.Raw)
	fmt.Fprintf(out, "  surcharge  %.2f\n", s.Surcharge)
	fmt.Fprintf(out, "  leg mean   %.2f ± %.2f\n", s.Mean, s.StdDev)
	fmt.Fprintf(out, "  leg p50/p90/p99/max  %.2f / %.2f / %.2f / %.2f\n", s.Median, s.P90, s.P99, s.Max)
	return nil
}
