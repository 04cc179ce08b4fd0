package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/charliek/cwlog/internal/cloudwatch"
	"github.com/charliek/cwlog/internal/config"
	"github.com/charliek/cwlog/internal/constants"
	"github.com/charliek/cwlog/internal/domain"
	"github.com/charliek/cwlog/internal/logging"
	"github.com/charliek/cwlog/internal/query"
	"github.com/charliek/cwlog/internal/session"
	"github.com/charliek/cwlog/internal/tui"
)

// Version is set during build
var Version = "dev"

// Replaceable in tests
var (
	newBackend = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
		return cloudwatch.New(ctx, cloudwatch.Options{
			Profile:      cfg.AWS.Profile,
			Region:       cfg.AWS.Region,
			MaxEvents:    cfg.Search.MaxEvents,
			PollInterval: cfg.PollInterval(),
			Logger:       logger,
		})
	}

	newPrompter = func(in io.Reader, out io.Writer) session.Prompter {
		return tui.NewPrompter(in, out)
	}

	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd()))
	}
)

// globalFlags are the persistent flags not routed through viper
type globalFlags struct {
	configPath string
	envFile    string
	jsonOutput bool
}

// appContext is what every command needs once flags and config are resolved
type appContext struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg        *config.Config
	logger     *slog.Logger
	builder    *query.Builder
	printer    *LogPrinter
	jsonOutput bool

	backend Backend
}

// viperFlags binds override keys to persistent flag names
var viperFlags = map[string]string{
	config.KeyProfile:  "profile",
	config.KeyRegion:   "region",
	config.KeyPrefix:   "prefix",
	config.KeyStage:    "stage",
	config.KeyLogLevel: "log-level",
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	// until the configured level is known
	logging.Init(false, logging.ParseLevel(constants.DefaultLogLevel))

	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	err := cmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, domain.ErrAborted) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return domain.ExitCode(err)
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}
	v := config.NewViper()
	app := &appContext{stdin: stdin, stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "cwlog",
		Short: "Browse and search CloudWatch log groups",
		Long: `cwlog is an interactive browser for AWS CloudWatch log groups. It supports:
  - Live follow and relative-time tail
  - Keyword, date-range and combined searches
  - Error detection with drill-down by execution id

Run without a subcommand for the interactive menu.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(flags, v,
				cmd.Flags().Changed("config"),
				cmd.Flags().Changed("env-file"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runInteractive(cmd.Context())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", constants.DefaultConfigFile, "Config file")
	pf.StringVar(&flags.envFile, "env-file", constants.DefaultEnvFile, "Dotenv file loaded into the environment")
	pf.String("profile", "", "AWS shared config profile (env "+constants.EnvProfile+")")
	pf.String("region", "", "AWS region (env "+constants.EnvRegion+")")
	pf.String("prefix", "", "Log group name prefix (env "+constants.EnvLogPrefix+")")
	pf.String("stage", "", "Only list log groups containing this string (env "+constants.EnvStage+")")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.BoolVar(&flags.jsonOutput, "json", false, "Print results as JSON")

	for key, name := range viperFlags {
		_ = v.BindPFlag(key, pf.Lookup(name))
	}

	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("cwlog version {{.Version}}\n")

	rootCmd.AddCommand(newGroupsCmd(app))
	rootCmd.AddCommand(newSearchCmd(app))
	rootCmd.AddCommand(newErrorsCmd(app))
	rootCmd.AddCommand(newTailCmd(app))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd represents the version command
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		// no config or credentials needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cwlog version %s\n", Version)
		},
	}
}

// setup resolves configuration in precedence order: defaults, YAML file,
// environment (including the dotenv file), then explicitly passed flags
func (a *appContext) setup(flags *globalFlags, v *viper.Viper, configExplicit, envExplicit bool) error {
	cfg, err := config.LoadOrDefault(flags.configPath, configExplicit)
	if err != nil {
		return err
	}

	envFile := cfg.EnvFile
	if envExplicit {
		envFile = flags.envFile
	}
	if err := config.ApplyEnvFile(envFile, envExplicit); err != nil {
		return err
	}

	if err := config.ApplyOverrides(cfg, v); err != nil {
		return err
	}

	a.logger = logging.New(a.stderr, flags.jsonOutput, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(a.logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.jsonOutput = flags.jsonOutput
	a.builder = query.NewBuilder(loc, cfg.KeywordWindow())
	a.printer = NewLogPrinter(a.stdout, loc)

	a.logger.Debug("configuration loaded",
		"config", flags.configPath,
		"env_file", envFile,
		"profile", cfg.AWS.Profile,
		"prefix", cfg.LogGroups.Prefix,
		"stage", cfg.LogGroups.Stage,
	)
	return nil
}

// Backend returns the log backend, creating it on first use
func (a *appContext) Backend(ctx context.Context) (Backend, error) {
	if a.backend != nil {
		return a.backend, nil
	}
	be, err := newBackend(ctx, a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	a.backend = be
	return be, nil
}

func (a *appContext) runInteractive(ctx context.Context) error {
	if !isTerminal() {
		return fmt.Errorf("%w: use a subcommand (groups, search, errors, tail) for scripted use", domain.ErrNotInteractive)
	}

	be, err := a.Backend(ctx)
	if err != nil {
		return err
	}

	app := NewApp(AppConfig{
		Backend:  be,
		Prompter: newPrompter(a.stdin, a.stdout),
		Builder:  a.builder,
		Printer:  a.printer,
		ErrOut:   a.stderr,
		Logger:   a.logger,
		Prefix:   a.cfg.LogGroups.Prefix,
		Stage:    a.cfg.LogGroups.Stage,
	})
	return app.Run(ctx)
}
