// salesdash is a terminal client for the sales ERP. Run without arguments
// it opens the interactive dashboard; subcommands expose the same API for
// scripting.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"salesdash/internal/config"
	"salesdash/internal/erp"
	"salesdash/internal/session"
)

var (
	flagConfig   string
	flagAPI      string
	flagStateDir string
	flagVerbose  bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "salesdash",
	Short: "Terminal dashboard for the sales ERP",
	Long: `salesdash renders the sales ERP in the terminal: team management,
sales reporting, contests and performance tracking, all against the
remote REST API. Run it bare for the interactive dashboard, or use the
subcommands for scriptable access.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return err
		}
		// The dashboard owns the terminal; its logging goes to category
		// files instead of stderr.
		if cmd.Name() == cmd.Root().Name() {
			return nil
		}
		if flagVerbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the salesdash version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("salesdash %s\n", cfg.Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "API base URL override")
	rootCmd.PersistentFlags().StringVar(&flagStateDir, "state-dir", "", "state directory override")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
	rootCmd.AddCommand(employeesCmd)
	rootCmd.AddCommand(salesCmd)
}

// loadConfig reads the config file and applies flag overrides on top:
// flags beat environment, environment beats file.
func loadConfig() (*config.Config, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	c, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagAPI != "" {
		c.API.BaseURL = flagAPI
	}
	if flagStateDir != "" {
		c.State.Dir = flagStateDir
	}
	return c, nil
}

// newSession wires the store, session manager and API client together.
// The client reads the bearer token through the manager on every request.
func newSession(c *config.Config) (*session.Manager, *erp.Client) {
	store := session.NewStore(c.State.Dir)
	mgr := session.NewManager(store)
	mgr.Restore()

	var opts []erp.Option
	if d, err := time.ParseDuration(c.API.Timeout); err == nil && d > 0 {
		opts = append(opts, erp.WithTimeout(d))
	}
	client := erp.New(c.API.BaseURL, mgr.Token, opts...)
	mgr.AttachClient(client)
	return mgr, client
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
