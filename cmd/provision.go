package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nvim-bootstrap/internal/config"
	"nvim-bootstrap/internal/logger"
	"nvim-bootstrap/internal/prereq"
	"nvim-bootstrap/internal/provision"
	"nvim-bootstrap/internal/runner"
)

// configPath holds the path to the YAML configuration file.
// It's passed via the `--config` or `-c` flag; a missing file means
// the built-in defaults are used.
var configPath string

// logFilePath optionally overrides the log file location from the config.
var logFilePath string

// provisionCmd is the top-level command: it runs the prerequisite gate and
// then every provisioning stage in its required order.
var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Check prerequisites, then run all provisioning stages in order",
	Run: func(cmd *cobra.Command, args []string) {
		runStages(provision.Steps())
	},
}

// Granular subcommands run a single stage. The prerequisite gate still runs
// first — it is never skippable, whatever subset of stages is requested.

var provisionEditorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Install only the editor",
	Run: func(cmd *cobra.Command, args []string) {
		runStage("editor")
	},
}

var provisionFontCmd = &cobra.Command{
	Use:   "font",
	Short: "Install only the patched font",
	Run: func(cmd *cobra.Command, args []string) {
		runStage("font")
	},
}

var provisionDistributionCmd = &cobra.Command{
	Use:   "distribution",
	Short: "Replace only the editor distribution",
	Run: func(cmd *cobra.Command, args []string) {
		runStage("distribution")
	},
}

var provisionConfigsCmd = &cobra.Command{
	Use:   "configs",
	Short: "Place only the custom configuration files",
	Run: func(cmd *cobra.Command, args []string) {
		runStage("configs")
	},
}

var provisionLspCmd = &cobra.Command{
	Use:   "lsp",
	Short: "Install only the language servers",
	Run: func(cmd *cobra.Command, args []string) {
		runStage("language-servers")
	},
}

// runStage resolves a single named stage and runs it behind the gate.
func runStage(name string) {
	step, ok := provision.Named(name)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown stage: %s\n", name)
		os.Exit(1)
	}
	runStages([]provision.Step{step})
}

// runStages is the single process-exit point: execute reports every failure
// as an error (with the logger already flushed and closed), and only here is
// that turned into exit status 1.
func runStages(steps []provision.Step) {
	if err := execute(steps); err != nil {
		os.Exit(1)
	}
}

// execute performs one provisioning run: load config, open the log, run the
// prerequisite gate, run the given stages in order, write the run report.
// The logger is closed on every return path so error lines are durably
// written before the process exits.
func execute(steps []provision.Step) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return err
	}

	logPath := cfg.LogFile
	if logFilePath != "" {
		logPath = logFilePath
	}
	log, err := logger.New(logPath)
	if err != nil {
		// No log file, no run: nothing this tool does should go unrecorded.
		fmt.Fprintln(os.Stderr, err)
		return err
	}
	defer func() {
		if cerr := log.Close(); cerr != nil {
			fmt.Fprintln(os.Stderr, cerr)
		}
	}()
	if debug {
		log.EnableDebug()
	}

	run := runner.New(log)
	gate := prereq.New(log, run)

	rep := provision.Report{StartedAt: time.Now()}
	var results []provision.StepResult

	// The gate decides whether any stage may run at all; its failure is
	// already logged with an actionable message.
	ferr := gate.Check(cfg.Prerequisites)
	if ferr == nil {
		ctx := &provision.Context{Log: log, Runner: run, Cfg: &cfg}
		results, ferr = provision.Run(ctx, steps)
	}

	// The report is written for aborted runs too, so the partial run can be
	// inspected alongside the log.
	rep.FinishedAt = time.Now()
	rep.Success = ferr == nil
	rep.Steps = results
	provision.WriteReport(log, cfg.ReportFile, rep)

	if ferr != nil {
		return ferr
	}
	log.Info("Provisioning complete.")
	return nil
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	// Global flags for the provision command tree
	provisionCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to configuration file")
	provisionCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Override log file path")

	// Add subcommands for more granular control
	provisionCmd.AddCommand(provisionEditorCmd)
	provisionCmd.AddCommand(provisionFontCmd)
	provisionCmd.AddCommand(provisionDistributionCmd)
	provisionCmd.AddCommand(provisionConfigsCmd)
	provisionCmd.AddCommand(provisionLspCmd)
	// Register the `provision` command with the root command
	rootCmd.AddCommand(provisionCmd)
}
