package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paologalligit/seatrank/dataset"
	"github.com/paologalligit/seatrank/persistence"
	"github.com/paologalligit/seatrank/ranking"
	"github.com/paologalligit/seatrank/report"
	"github.com/paologalligit/seatrank/utils"
)

const (
	SOURCE_SHOWINGS = "showings"
	SOURCE_SEAT_LOG = "seatlog"
	SOURCE_DB       = "db"
)

type rankOptions struct {
	source     string
	outputJSON bool
	outputFile string
}

func newRankCmd(a *app) *cobra.Command {
	opts := &rankOptions{}
	cmd := &cobra.Command{
		Use:   "rank [showings files...]",
		Short: "Print the sessions with the most seats",
		Long: "Load a showings dataset, flatten it into one entry per session and print the top N\n" +
			"sessions ordered by seats, highest first. Sessions with the same seat count keep\n" +
			"their dataset order.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRank(cmd, opts, args)
		},
	}

	cmd.Flags().IntP("top", "n", 0, "Number of sessions to print (default from TOP_N, 10)")
	cmd.Flags().Int("workers", 0, "Number of showings files read at once (default from WORKERS, 4)")
	cmd.Flags().String("seat-log-file", "", "Seat log to read with --source seatlog (default from SEAT_LOG_FILE)")
	cmd.Flags().StringVar(&opts.source, "source", SOURCE_SHOWINGS, "Dataset source: showings, seatlog or db")
	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "Output machine-readable JSON")
	cmd.Flags().StringVarP(&opts.outputFile, "output", "o", "", "Also write the ranked sessions as JSON to this file")
	_ = a.v.BindPFlag("TOP_N", cmd.Flags().Lookup("top"))
	_ = a.v.BindPFlag("WORKERS", cmd.Flags().Lookup("workers"))
	_ = a.v.BindPFlag("SEAT_LOG_FILE", cmd.Flags().Lookup("seat-log-file"))

	return cmd
}

func (a *app) runRank(cmd *cobra.Command, opts *rankOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	source, closeSource, err := a.openSource(ctx, opts.source, args)
	if err != nil {
		return err
	}
	defer closeSource()

	a.log.Debug("loading dataset", zap.String("source", opts.source), zap.Strings("files", args))
	movies, err := source.Load(ctx)
	if err != nil {
		a.log.Error("failed to load dataset", zap.String("source", opts.source), zap.Error(err))
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	a.log.Info("dataset loaded", zap.Int("movies", len(movies)))

	result := ranking.Rank(movies, a.cfg.TopN)
	a.log.Info("sessions ranked",
		zap.Int("total", result.Total),
		zap.Int("shown", len(result.Sessions)),
	)

	if opts.outputFile != "" {
		if err := utils.WriteSessionsToFile(result.Sessions, opts.outputFile); err != nil {
			return err
		}
		a.log.Info("results written", zap.String("file", opts.outputFile))
	}

	if opts.outputJSON {
		return report.WriteJSON(cmd.OutOrStdout(), result)
	}
	return report.WriteText(cmd.OutOrStdout(), result, a.cfg.TopN)
}

// openSource picks the dataset source. The returned func releases whatever
// the source holds and is never nil.
func (a *app) openSource(ctx context.Context, source string, args []string) (dataset.Source, func(), error) {
	noop := func() {}
	switch source {
	case SOURCE_SHOWINGS:
		paths := args
		if len(paths) == 0 {
			paths = []string{a.cfg.ShowingsFile}
		}
		return &dataset.MultiFileSource{Paths: paths, Workers: a.cfg.Workers}, noop, nil
	case SOURCE_SEAT_LOG:
		if len(args) > 0 {
			return nil, noop, fmt.Errorf("source %q does not take file arguments, use --seat-log-file", source)
		}
		return dataset.NewSeatLogSource(persistence.NewFileSeatLog(a.cfg.SeatLogFile)), noop, nil
	case SOURCE_DB:
		if len(args) > 0 {
			return nil, noop, fmt.Errorf("source %q does not take file arguments", source)
		}
		pool, err := persistence.NewPostgresPool(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, noop, fmt.Errorf("error creating postgres pool: %w", err)
		}
		a.log.Debug("postgres pool created")
		return dataset.NewSeatLogSource(persistence.NewPostgresSeatLog(pool)), pool.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown source %q (want %s, %s or %s)", source, SOURCE_SHOWINGS, SOURCE_SEAT_LOG, SOURCE_DB)
	}
}
