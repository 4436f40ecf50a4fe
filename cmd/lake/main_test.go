package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/BlockLake/internal/common"
	"github.com/goran-ethernal/BlockLake/internal/syncpoint"
	"github.com/goran-ethernal/BlockLake/pkg/config"
	"github.com/stretchr/testify/require"
)

// execute runs the command tree with args and returns the configuration handed to the run.
func execute(t *testing.T, args ...string) (*config.Config, string, error) {
	t.Helper()

	var captured *config.Config
	root := newRootCmd(func(_ context.Context, cfg *config.Config) error {
		captured = cfg
		return nil
	})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return captured, out.String(), err
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const baseYAML = `
chain:
  rpc_url: http://node.internal:8545
run:
  sync_mode: from_block
  start_height: 500
  finality: final
`

func TestRun_UsesConfigFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "lake.yaml", baseYAML)

	cfg, _, err := execute(t, "--home", home, "--config", path, "run")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, home, cfg.Home)
	require.Equal(t, "http://node.internal:8545", cfg.Chain.RPCURL)
	require.Equal(t, syncpoint.ModeFromBlock, cfg.Run.SyncMode)
	require.Equal(t, uint64(500), *cfg.Run.StartHeight)
	require.Equal(t, filepath.Join(home, "data", "progress.db"), cfg.DB.Path)
}

func TestRun_DefaultConfigInHome(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, config.DefaultConfigFileName, baseYAML)

	cfg, _, err := execute(t, "--home", home, "run", "sync-from-latest")
	require.NoError(t, err)
	require.Equal(t, syncpoint.ModeFromLatest, cfg.Run.SyncMode)
	require.Nil(t, cfg.Run.StartHeight)
}

func TestRun_FlagsOverrideFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "lake.yaml", baseYAML)

	cfg, _, err := execute(t,
		"--home", home, "--config", path,
		"run", "--finality", "near_final", "--concurrency", "4", "--stream-while-syncing", "--validate-genesis",
		"--rpc-url", "http://other:8545",
		"sync-from-block", "--height", "0x10",
	)
	require.NoError(t, err)

	require.Equal(t, "near_final", cfg.Run.Finality)
	require.Equal(t, uint16(4), *cfg.Run.Concurrency)
	require.True(t, cfg.Run.StreamWhileSyncing)
	require.True(t, cfg.Run.ValidateGenesis)
	require.Equal(t, "http://other:8545", cfg.Chain.RPCURL)
	require.Equal(t, syncpoint.ModeFromBlock, cfg.Run.SyncMode)
	require.Equal(t, uint64(16), *cfg.Run.StartHeight)
}

func TestRun_InvalidInputAbortsBeforeRun(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, home, "lake.yaml", baseYAML)

	tests := []struct {
		name string
		args []string
	}{
		{name: "bad finality", args: []string{"--config", path, "run", "--finality", "soon"}},
		{name: "bad height", args: []string{"--config", path, "run", "sync-from-block", "--height", "0xZZ"}},
		{name: "zero concurrency", args: []string{"--config", path, "run", "--concurrency", "0"}},
		{name: "missing rpc url", args: []string{"--home", t.TempDir(), "run", "sync-from-latest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _, err := execute(t, tt.args...)
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrInvalidConfiguration)
			require.Nil(t, cfg)
		})
	}

	t.Run("missing height flag", func(t *testing.T) {
		cfg, _, err := execute(t, "--config", path, "run", "sync-from-block")
		require.ErrorContains(t, err, "height")
		require.Nil(t, cfg)
	})

	t.Run("unknown field in file", func(t *testing.T) {
		bad := writeConfig(t, home, "bad.yaml", baseYAML+"unknown_section: true\n")
		cfg, _, err := execute(t, "--config", bad, "run")
		require.ErrorIs(t, err, common.ErrInvalidConfiguration)
		require.Nil(t, cfg)
	})
}

func TestInit(t *testing.T) {
	home := filepath.Join(t.TempDir(), "lake-home")

	_, out, err := execute(t, "--home", home, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Wrote")
	require.FileExists(t, filepath.Join(home, config.DefaultConfigFileName))
	require.FileExists(t, filepath.Join(home, "data", "progress.db"))

	// a second init keeps the existing file
	_, out, err = execute(t, "--home", home, "init")
	require.NoError(t, err)
	require.Contains(t, out, "Keeping existing")
}

func TestConfigSchema(t *testing.T) {
	_, out, err := execute(t, "config-schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &schema))
	require.Equal(t, "BlockLake configuration", schema["title"])
}
