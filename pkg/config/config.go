package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/logger"
	"github.com/goran-ethernal/BlockLake/internal/runconfig"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/internal/types"
)

const (
	// DefaultHomeDirName is the directory created under the user's home when no home is given.
	DefaultHomeDirName = ".blocklake"

	// DefaultConfigFileName is looked up inside the home directory.
	DefaultConfigFileName = "config.yaml"
)

// Config represents the complete configuration for BlockLake.
type Config struct {
	// Home is the directory holding the config file, the progress database and the local sink
	Home string `yaml:"home" json:"home" toml:"home"`

	// Chain contains the chain client configuration
	Chain ChainConfig `yaml:"chain" json:"chain" toml:"chain"`

	// Run contains the sync-mode, finality and concurrency settings of an indexing run
	Run RunConfig `yaml:"run" json:"run" toml:"run"`

	// Sink contains the block sink configuration
	Sink SinkConfig `yaml:"sink" json:"sink" toml:"sink"`

	// DB contains the progress database configuration
	DB DatabaseConfig `yaml:"db" json:"db" toml:"db"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`

	// API contains the status API configuration
	API *APIConfig `yaml:"api,omitempty" json:"api,omitempty" toml:"api,omitempty"`
}

// DefaultHomeDir returns ~/.blocklake, or a relative .blocklake when the user home is unknown.
func DefaultHomeDir() string {
	userHome, err := os.UserHomeDir()
	if err != nil || userHome == "" {
		return DefaultHomeDirName
	}
	return filepath.Join(userHome, DefaultHomeDirName)
}

// ChainConfig represents the configuration of the chain client.
type ChainConfig struct {
	// RPCURL is the JSON-RPC endpoint of the node
	RPCURL string `yaml:"rpc_url" json:"rpc_url" toml:"rpc_url"`

	// GenesisHash is the expected hash of block 0, checked when run.validate_genesis is set
	GenesisHash string `yaml:"genesis_hash,omitempty" json:"genesis_hash,omitempty" toml:"genesis_hash,omitempty"`

	// ChainID is the expected chain ID, checked with the genesis hash when run.validate_genesis
	// is set (0 = not checked)
	ChainID uint64 `yaml:"chain_id,omitempty" json:"chain_id,omitempty" toml:"chain_id,omitempty"`

	// ProbeTimeout bounds a single chain head probe (defaults to 10s)
	ProbeTimeout common.Duration `yaml:"probe_timeout" json:"probe_timeout" toml:"probe_timeout"`

	// Retry contains retry configuration for block fetches with exponential backoff.
	// Head probes are never retried.
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional chain configuration fields.
func (c *ChainConfig) ApplyDefaults() {
	if c.ProbeTimeout.Duration == 0 {
		c.ProbeTimeout = common.NewDuration(10 * time.Second) //nolint:mnd
	}
	if c.Retry == nil {
		c.Retry = &RetryConfig{}
	}
	c.Retry.ApplyDefaults()
}

// Validate checks if the chain configuration is valid.
func (c *ChainConfig) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("chain.rpc_url is required")
	}

	if c.GenesisHash != "" {
		raw, err := hexutil.Decode(c.GenesisHash)
		if err != nil || len(raw) != 32 { //nolint:mnd
			return fmt.Errorf("chain.genesis_hash must be a 0x-prefixed 32 byte hex string")
		}
	}

	if c.ProbeTimeout.Duration < 0 {
		return fmt.Errorf("chain.probe_timeout must not be negative")
	}

	if c.Retry != nil {
		if err := c.Retry.Validate(); err != nil {
			return fmt.Errorf("chain.retry: %w", err)
		}
	}

	return nil
}

// RetryConfig represents RPC retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff common.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff common.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = common.NewDuration(1 * time.Second)
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = common.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// Validate checks if the retry configuration is valid.
func (r *RetryConfig) Validate() error {
	if r.MaxAttempts < 1 {
		return fmt.Errorf("max_attempts must be at least 1")
	}
	if r.MaxBackoff.Duration < r.InitialBackoff.Duration {
		return fmt.Errorf("max_backoff must not be lower than initial_backoff")
	}
	if r.BackoffMultiplier < 1 {
		return fmt.Errorf("backoff_multiplier must be at least 1")
	}
	return nil
}

// RunConfig represents the settings of a single indexing run.
type RunConfig struct {
	// SyncMode selects the starting point: "from_interruption", "from_latest" or "from_block"
	SyncMode string `yaml:"sync_mode" json:"sync_mode" toml:"sync_mode"`

	// StartHeight is the block height for the "from_block" sync mode
	StartHeight *uint64 `yaml:"start_height,omitempty" json:"start_height,omitempty" toml:"start_height,omitempty"`

	// Finality selects the streaming finality: "optimistic", "near_final" or "final"
	Finality string `yaml:"finality" json:"finality" toml:"finality"`

	// StreamWhileSyncing starts streaming before the node reports it is fully synced
	StreamWhileSyncing bool `yaml:"stream_while_syncing" json:"stream_while_syncing" toml:"stream_while_syncing"`

	// ValidateGenesis checks the node's genesis block before streaming
	ValidateGenesis bool `yaml:"validate_genesis" json:"validate_genesis" toml:"validate_genesis"`

	// Concurrency bounds the number of block fetches in flight. Must be at least 1.
	// Values of 2 and above may lead to ordering warnings between blocks and receipts.
	Concurrency *uint16 `yaml:"concurrency,omitempty" json:"concurrency,omitempty" toml:"concurrency,omitempty"`

	// PollInterval is how long the coordinator waits when caught up with the chain
	// or while waiting for the node to sync
	PollInterval common.Duration `yaml:"poll_interval" json:"poll_interval" toml:"poll_interval"`
}

// ApplyDefaults sets default values for optional run configuration fields.
func (r *RunConfig) ApplyDefaults() {
	if r.SyncMode == "" {
		r.SyncMode = syncpoint.ModeFromInterruption
	}
	if r.Finality == "" {
		r.Finality = types.DefaultFinalityLevel.String()
	}
	if r.Concurrency == nil {
		concurrency := uint16(1)
		r.Concurrency = &concurrency
	}
	if r.PollInterval.Duration == 0 {
		r.PollInterval = common.NewDuration(2 * time.Second) //nolint:mnd
	}
}

// Validate checks if the run configuration is valid.
func (r *RunConfig) Validate() error {
	if _, err := r.ParseSyncMode(); err != nil {
		return fmt.Errorf("run.sync_mode: %w", err)
	}

	if _, err := types.ParseFinalityLevel(r.Finality); err != nil {
		return fmt.Errorf("run.finality: %w", err)
	}

	if r.Concurrency != nil {
		if _, err := runconfig.NewConcurrencyLevel(*r.Concurrency); err != nil {
			return fmt.Errorf("run.concurrency: %w", err)
		}
	}

	if r.PollInterval.Duration <= 0 {
		return fmt.Errorf("run.poll_interval must be positive")
	}

	return nil
}

// ParseSyncMode converts the configured sync mode into its typed form.
func (r *RunConfig) ParseSyncMode() (syncpoint.SyncMode, error) {
	return syncpoint.ParseSyncMode(r.SyncMode, r.StartHeight)
}

// ConcurrencyLevel returns the configured concurrency, 1 when unset.
func (r *RunConfig) ConcurrencyLevel() (runconfig.ConcurrencyLevel, error) {
	if r.Concurrency == nil {
		return runconfig.ConcurrencyLevel{}, nil
	}
	return runconfig.NewConcurrencyLevel(*r.Concurrency)
}

// AwaitPolicy translates StreamWhileSyncing into the run's await policy.
func (r *RunConfig) AwaitPolicy() runconfig.AwaitPolicy {
	if r.StreamWhileSyncing {
		return runconfig.StreamWhileSyncing
	}
	return runconfig.WaitForFullSync
}

// SinkConfig represents the block sink configuration.
type SinkConfig struct {
	// Path is the root directory blocks are written to (defaults to <home>/blocks)
	Path string `yaml:"path" json:"path" toml:"path"`
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	// Path is the file path to the SQLite database (defaults to <home>/data/progress.db)
	Path string `yaml:"path" json:"path" toml:"path"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "NORMAL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 4
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	if d.Path == "" {
		return fmt.Errorf("db.path is required")
	}

	journalModes := []string{"WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY"}
	if !slices.Contains(journalModes, d.JournalMode) {
		return fmt.Errorf("db.journal_mode must be one of: WAL, DELETE, TRUNCATE, PERSIST, MEMORY")
	}

	if !slices.Contains([]string{"FULL", "NORMAL", "OFF"}, d.Synchronous) {
		return fmt.Errorf("db.synchronous must be one of: FULL, NORMAL, OFF")
	}

	return nil
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components
	// Available components:
	//   - bootstrap: Run start-up and resolution pipeline
	//   - head-probe: Chain head queries
	//   - sync-resolver: Sync-point resolution
	//   - coordinator: Block fetch and publish loop
	//   - progress-store: Persisted progress marker
	//   - sink: Block sink
	//   - api: Status API
	//   - metrics: Metrics server
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := common.AllComponents[common.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[common.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if level, ok := l.ComponentLevels[component]; ok {
		return common.ToLowerWithTrim(level)
	}
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	return common.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	// Format: "host:port" or ":port"
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.ListenAddress == "" {
			return fmt.Errorf("listen_address is required when metrics are enabled")
		}
		if m.Path == "" {
			return fmt.Errorf("path is required when metrics are enabled")
		}
		if m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// APIConfig configures the status API server.
type APIConfig struct {
	// Enabled controls whether the API server runs
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address the API server binds to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// ReadTimeout is the maximum duration for reading the entire request
	ReadTimeout common.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout common.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request
	IdleTimeout common.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`

	// CORS contains cross-origin settings
	CORS CORSConfig `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross-origin resource sharing for the API.
type CORSConfig struct {
	// Enabled turns on CORS headers
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// AllowedOrigins lists the allowed origins, "*" allows any
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":8080"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = common.NewDuration(15 * time.Second) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = common.NewDuration(60 * time.Second) //nolint:mnd
	}
	if a.CORS.AllowedOrigins == nil {
		a.CORS.AllowedOrigins = []string{"*"}
	}
}

// Validate checks if the API configuration is valid.
func (a *APIConfig) Validate() error {
	if a.Enabled && a.ListenAddress == "" {
		return fmt.Errorf("listen_address is required when the API is enabled")
	}
	if a.CORS.Enabled && len(a.CORS.AllowedOrigins) == 0 {
		return fmt.Errorf("cors.allowed_origins must not be empty when CORS is enabled")
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	if c.Home == "" {
		c.Home = DefaultHomeDir()
	}

	c.Chain.ApplyDefaults()
	c.Run.ApplyDefaults()

	if c.Sink.Path == "" {
		c.Sink.Path = filepath.Join(c.Home, "blocks")
	}

	if c.DB.Path == "" {
		c.DB.Path = filepath.Join(c.Home, "data", "progress.db")
	}
	c.DB.ApplyDefaults()

	if c.Logging == nil {
		c.Logging = &LoggingConfig{}
	}
	c.Logging.ApplyDefaults()

	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}

	if c.API != nil {
		c.API.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Home == "" {
		return fmt.Errorf("home is required")
	}

	if err := c.Chain.Validate(); err != nil {
		return err
	}

	if err := c.Run.Validate(); err != nil {
		return err
	}

	if c.Sink.Path == "" {
		return fmt.Errorf("sink.path is required")
	}

	if err := c.DB.Validate(); err != nil {
		return err
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	if c.API != nil {
		if err := c.API.Validate(); err != nil {
			return fmt.Errorf("api: %w", err)
		}
	}

	return nil
}

// Prepare applies defaults and validates the configuration.
// Validation failures wrap common.ErrInvalidConfiguration.
func (c *Config) Prepare() error {
	c.ApplyDefaults()

	if err := c.Validate(); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfiguration, err)
	}

	return nil
}
