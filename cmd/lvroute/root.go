package main

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvroute/scenario"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath   string
	logLevel     string
	logFormat    string
	scenarioPath string

	cfg    Config
	logger *slog.Logger
	runID  string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lvroute",
		Short:         "Least-cost routing and greedy capacitated allocation",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file (env "+envConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (env "+envLogLevel+")")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json (env "+envLogFormat+")")

	root.AddCommand(
		newPlanCmd(a),
		newAllocateCmd(a),
		newLintCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
		newMCPCmd(a),
	)

	return root
}

// setup resolves configuration and builds the run logger.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if !cmd.Flags().Changed("config") {
		path = envOr(envConfig, path)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	if err := applyEnv(&cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	a.runID = uuid.NewString()
	a.cfg = cfg
	a.logger = logger.With(slog.String("run_id", a.runID), slog.String("command", cmd.Name()))

	return nil
}

// addScenarioFlag registers the -s/--scenario flag on cmd.
func (a *app) addScenarioFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&a.scenarioPath, "scenario", "s", "", "scenario file (YAML or JSON)")
	_ = cmd.MarkFlagRequired("scenario")
}

func (a *app) loadScenario() (*scenario.Document, error) {
	doc, err := scenario.Load(a.scenarioPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Scenario loaded",
		"path", a.scenarioPath,
		"nodes", len(doc.Nodes),
		"assets", len(doc.Assets),
		"demands", len(doc.Demands))

	return doc, nil
}
