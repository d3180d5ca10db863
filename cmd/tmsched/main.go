package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"transit-mixer-scheduler/internal/config"
	"transit-mixer-scheduler/internal/platform/logging"
)

var (
	version = "dev"

	defaultsPath string
	logLevel     string
	rootCmd      = &cobra.Command{
		Use:   "tmsched",
		Short: "Transit mixer trip scheduler",
		Long: `tmsched computes the dispatch timetable for a fleet of transit mixers
serving one pour site: when each truck loads, leaves, arrives, pumps and returns.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			if !cmd.Flags().Changed("defaults") {
				defaultsPath = config.Get("DEFAULTS_PATH", "")
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = config.Get("LOG_LEVEL", "warn")
			}
			logging.Setup(logLevel, "console")
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&defaultsPath, "defaults", "", "TOML file with default schedule inputs (env DEFAULTS_PATH)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (env LOG_LEVEL)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
