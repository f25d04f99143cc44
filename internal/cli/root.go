// Package cli implements studioctl, the operator command line for the price
// catalog and offline quotes.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studioo/internal/config"
	"studioo/internal/domain/pricing"
	"studioo/internal/i18n"
	"studioo/internal/logger"
)

// App holds the dependencies shared by every command. Tests replace the
// clock, seed and sleep to get deterministic output.
type App struct {
	Quote  config.QuoteConfig
	Logger *zap.Logger
	Now    func() time.Time
	Seed   func() string
	Sleep  func(time.Duration)

	catalog *pricing.Catalog
	lang    i18n.Language
}

// NewApp builds the App from the environment.
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	l, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return &App{
		Quote:  cfg.Quote,
		Logger: l,
		Now:    time.Now,
		Seed:   pricing.NewQuoteSeed,
		Sleep:  time.Sleep,
	}, nil
}

func NewRootCommand(app *App) *cobra.Command {
	var (
		catalogPath string
		lang        string
	)

	root := &cobra.Command{
		Use:           "studioctl",
		Short:         "Studio price catalog and quote tool",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := i18n.Parse(lang)
			if err != nil {
				return err
			}
			app.lang = l

			q := app.Quote
			if catalogPath != "" {
				q.CatalogPath = catalogPath
			}
			catalog, err := config.LoadCatalog(q)
			if err != nil {
				return err
			}
			app.catalog = catalog
			return nil
		},
	}
	root.PersistentFlags().StringVar(&catalogPath, "catalog", "", "price override file (yaml)")
	root.PersistentFlags().StringVar(&lang, "lang", "en", "output language: en or ar")

	root.AddCommand(newCatalogCommand(app))
	root.AddCommand(newQuoteCommand(app))
	return root
}

// Execute runs the root command and exits with its exit code.
func Execute() {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = app.Logger.Sync() }()

	os.Exit(run(app, os.Args[1:], os.Stdout, os.Stderr))
}

func run(app *App, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}
	if code, ok := IsExitError(err); ok {
		return code
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}
