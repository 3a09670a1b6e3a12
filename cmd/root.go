package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/paologalligit/seatrank/config"
	"github.com/paologalligit/seatrank/logger"
)

// app carries what every subcommand needs once the root has run.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	log        *zap.Logger
}

// Execute runs the root cobra command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	cmd := &cobra.Command{
		Use:           "seatrank",
		Short:         "Rank cinema sessions by seat count",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "Path to a config file (yaml, json, toml or env)")
	cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("log-path", "", "Directory for the rotated log file")
	_ = a.v.BindPFlag("DEBUG", cmd.PersistentFlags().Lookup("debug"))
	_ = a.v.BindPFlag("LOG_PATH", cmd.PersistentFlags().Lookup("log-path"))

	cmd.AddCommand(newRankCmd(a))
	cmd.AddCommand(newInitDBCmd(a))

	return cmd
}

func (a *app) setup() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := logger.InitLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to init logger: %v. Using default production logger.\n", err)
		log, _ = zap.NewProduction()
	}
	a.log = logger.WithRunID(log)
	a.log.Debug("configuration loaded",
		zap.String("showings_file", cfg.ShowingsFile),
		zap.Int("top_n", cfg.TopN),
		zap.Int("workers", cfg.Workers),
		zap.Bool("debug", cfg.Debug),
	)
	return nil
}
