package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nowgo/cmd/nowgo/tui"
	"nowgo/internal/config"
	"nowgo/internal/export"
	"nowgo/internal/logging"
	"nowgo/internal/notify"
)

var version = "0.3.0"

var (
	// Global flags
	verbose    bool
	themeFlag  string
	exportDir  string
	configPath string

	logger *zap.Logger
)

// rootCmd launches the interactive onboarding TUI by default.
var rootCmd = &cobra.Command{
	Use:   "nowgo",
	Short: "NowGo AI - business onboarding and assistant dashboard",
	Long: `nowgo guides a company through the NowGo AI onboarding: company
profile, objectives, infrastructure, user profile and assistant
personalization, then opens a dashboard with a personalized assistant
and report export.

Run without arguments to start the interactive wizard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Interactive mode has its own file logging.
		if cmd.Use == "nowgo" && cmd.CalledAs() == "nowgo" {
			return nil
		}
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

// exportCmd re-renders a saved payload snapshot into a report file.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render a report from a saved payload snapshot",
	Long: `Reads a YAML payload snapshot (written with ctrl+y in the dashboard)
and renders it into the paginated text report, without starting the TUI.

Example:
  nowgo export --from exports/acme-corp-2024-03-15.yaml`,
	RunE: runExport,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the nowgo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nowgo %s\n", version)
	},
}

var fromPath string

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "", "UI theme (light or dark)")
	rootCmd.PersistentFlags().StringVar(&exportDir, "export-dir", "", "Directory for exported reports")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json (default: .nowgo/config.json)")

	exportCmd.Flags().StringVar(&fromPath, "from", "", "Payload snapshot to render (required)")
	_ = exportCmd.MarkFlagRequired("from")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configPath == "" {
		cfg, err = config.Global()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return nil, err
	}
	// Flags beat both file and environment.
	if themeFlag == "light" || themeFlag == "dark" {
		cfg.Theme = themeFlag
		os.Setenv(config.EnvTheme, themeFlag)
	}
	if exportDir != "" {
		cfg.ExportDir = exportDir
		os.Setenv(config.EnvExportDir, exportDir)
	}
	return cfg, nil
}

func runInteractive() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ws, err := config.FindWorkspaceRoot()
	if err == nil {
		if err := logging.Initialize(ws); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
		defer logging.CloseAll()
		logging.Boot("interactive session starting, workspace=%s", ws)
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen())

	// Live-reload the config file while the TUI runs.
	watchPath := configPath
	if watchPath == "" {
		watchPath = config.DefaultPath()
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if w, werr := config.NewWatcher(watchPath, func(c *config.Config) {
		p.Send(tui.ConfigReloadedMsg{Config: c})
	}); werr == nil {
		if serr := w.Start(ctx); serr == nil {
			defer w.Stop()
		}
	}

	_, err = p.Run()
	return err
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	payload, err := export.LoadPayload(fromPath)
	if err != nil {
		return err
	}
	if payload.GeneratedAt.IsZero() {
		payload.GeneratedAt = time.Now()
	}

	logger.Info("rendering report",
		zap.String("from", fromPath),
		zap.String("company", payload.CompanyName))

	exporter := &export.Exporter{
		Renderer:   export.TextRenderer{},
		Downloader: export.DirDownloader{Dir: cfg.GetExportDir()},
		Notifier: notify.Func(func(n notify.Notification) {
			if n.Severity == notify.SeverityError {
				logger.Error(n.Title, zap.String("detail", n.Description))
				return
			}
			logger.Info(n.Title, zap.String("detail", n.Description))
		}),
	}
	if err := exporter.Export(payload); err != nil {
		return err
	}

	name := export.Filename(payload.CompanyName, payload.GeneratedAt, "txt")
	fmt.Printf("Report written to %s\n", filepath.Join(cfg.GetExportDir(), name))
	return nil
}
