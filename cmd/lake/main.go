package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/goran-ethernal/BlockLake/internal/bootstrap"
	"github.com/goran-ethernal/BlockLake/internal/common"
	internalconfig "github.com/goran-ethernal/BlockLake/internal/config"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/progress"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
	"github.com/goran-ethernal/BlockLake/pkg/config"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║            BlockLake v%s               ║
║      Block streaming for EVM chains       ║
╚═══════════════════════════════════════════╝
`
	defaultRPCURL = "http://localhost:8545"
)

// options holds the global and run flags of one invocation.
type options struct {
	home       string
	configPath string

	rpcURL             string
	finality           string
	concurrency        uint16
	streamWhileSyncing bool
	validateGenesis    bool
	height             string

	// run starts the prepared run, bootstrap.Run outside tests
	run func(ctx context.Context, cfg *config.Config) error
}

func main() {
	if err := newRootCmd(bootstrap.Run).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(run func(ctx context.Context, cfg *config.Config) error) *cobra.Command {
	opts := &options{run: run}

	rootCmd := &cobra.Command{
		Use:   "lake",
		Short: "BlockLake - stream EVM blocks into a block lake",
		Long: `BlockLake streams blocks and receipts from an EVM node into a block lake at a chosen
finality, resuming from where the previous run stopped.`,
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.home, "home", config.DefaultHomeDir(), "home directory")
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"path to configuration file (defaults to <home>/config.yaml when present)")

	rootCmd.AddCommand(newRunCmd(opts), newInitCmd(opts), newConfigSchemaCmd())
	return rootCmd
}

func newRunCmd(opts *options) *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Stream blocks using the sync mode from the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithMode(cmd, opts, "", nil)
		},
	}

	flags := runCmd.PersistentFlags()
	flags.StringVar(&opts.rpcURL, "rpc-url", "", "JSON-RPC endpoint of the node")
	flags.StringVar(&opts.finality, "finality", "", "streaming finality: optimistic, near_final or final")
	flags.Uint16Var(&opts.concurrency, "concurrency", 1, "number of blocks fetched concurrently")
	flags.BoolVar(&opts.streamWhileSyncing, "stream-while-syncing", false,
		"start streaming before the node reports it is synced")
	flags.BoolVar(&opts.validateGenesis, "validate-genesis", false, "check the node's genesis block before streaming")

	fromInterruption := &cobra.Command{
		Use:   "sync-from-interruption",
		Short: "Resume after the last block persisted by the previous run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithMode(cmd, opts, syncpoint.ModeFromInterruption, nil)
		},
	}

	fromLatest := &cobra.Command{
		Use:   "sync-from-latest",
		Short: "Start at the final chain head",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWithMode(cmd, opts, syncpoint.ModeFromLatest, nil)
		},
	}

	fromBlock := &cobra.Command{
		Use:   "sync-from-block",
		Short: "Start at an explicit block height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			height, err := common.ParseUint64orHex(&opts.height)
			if err != nil {
				return fmt.Errorf("%w: invalid --height %q: %w", common.ErrInvalidConfiguration, opts.height, err)
			}
			return runWithMode(cmd, opts, syncpoint.ModeFromBlock, &height)
		},
	}
	fromBlock.Flags().StringVar(&opts.height, "height", "", "start height, decimal or 0x-prefixed hex")
	_ = fromBlock.MarkFlagRequired("height")

	runCmd.AddCommand(fromInterruption, fromLatest, fromBlock)
	return runCmd
}

func newInitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the home directory, a default config.yaml and the progress database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return initHome(cmd, opts.home)
		},
	}
}

func newConfigSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-schema",
		Short: "Print the JSON schema of the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			schema, err := internalconfig.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(schema))
			return err
		},
	}
}

// runWithMode loads the configuration, overlays the command line and starts the run.
// An empty mode keeps the sync mode of the configuration file.
func runWithMode(cmd *cobra.Command, opts *options, mode string, height *uint64) error {
	cfg, err := loadConfig(cmd, opts, mode, height)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), banner, version)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return opts.run(ctx, cfg)
}

// loadConfig decodes the configuration file, applies command line overrides and prepares the
// result. Nothing here touches the network.
func loadConfig(cmd *cobra.Command, opts *options, mode string, height *uint64) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		candidate := filepath.Join(opts.home, config.DefaultConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}

	cfg := &config.Config{}
	if path != "" {
		decoded, err := internalconfig.DecodeFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
		}
		cfg = decoded
	}

	flags := cmd.Flags()

	if flags.Changed("home") || cfg.Home == "" {
		cfg.Home = opts.home
	}
	if flags.Changed("rpc-url") {
		cfg.Chain.RPCURL = opts.rpcURL
	}
	if flags.Changed("finality") {
		if _, err := types.ParseFinalityLevel(opts.finality); err != nil {
			return nil, fmt.Errorf("%w: --finality: %w", common.ErrInvalidConfiguration, err)
		}
		cfg.Run.Finality = opts.finality
	}
	if flags.Changed("concurrency") {
		concurrency := opts.concurrency
		cfg.Run.Concurrency = &concurrency
	}
	if flags.Changed("stream-while-syncing") {
		cfg.Run.StreamWhileSyncing = opts.streamWhileSyncing
	}
	if flags.Changed("validate-genesis") {
		cfg.Run.ValidateGenesis = opts.validateGenesis
	}

	if mode != "" {
		cfg.Run.SyncMode = mode
		cfg.Run.StartHeight = height
	}

	if err := cfg.Prepare(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// initHome creates the home directory, writes a default config.yaml and migrates the progress
// database.
func initHome(cmd *cobra.Command, home string) error {
	if err := os.MkdirAll(home, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create home directory: %w", err)
	}

	cfg := &config.Config{
		Home:  home,
		Chain: config.ChainConfig{RPCURL: defaultRPCURL},
	}
	if err := cfg.Prepare(); err != nil {
		return err
	}

	configFile := filepath.Join(home, config.DefaultConfigFileName)
	if err := internalconfig.WriteYAML(configFile, cfg); err != nil {
		if !errors.Is(err, os.ErrExist) {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Keeping existing %s\n", configFile)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configFile)
	}

	store, err := progress.NewStore(cfg.DB, logger.NewComponentLoggerFromConfig(common.ComponentProgress, cfg.Logging))
	if err != nil {
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized progress database at %s\n", cfg.DB.Path)
	return nil
}
