package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlushAndLoad(t *testing.T) {
	root := t.TempDir()
	r, err := Default(root)
	require.Nil(t, err)
	r.Config.Tx.ConfirmTimeout = Duration(90 * time.Second)
	r.Config.Wallet.Keystore = "keystore/wallet.json"
	require.Nil(t, r.Flush())

	loaded, err := Load(root)
	require.Nil(t, err)
	assert.Equal(t, r.Config, loaded.Config)
	assert.Equal(t, 90*time.Second, loaded.Config.Tx.ConfirmTimeout.ToDuration())
	assert.Equal(t, filepath.Join(root, "keystore/wallet.json"), loaded.KeystorePath())
}

func TestLoadWithoutConfigFile(t *testing.T) {
	root := t.TempDir()
	r, err := Load(root)
	require.Nil(t, err)
	assert.Equal(t, DefaultConfig(), r.Config)
	assert.Equal(t, "", r.KeystorePath())
}

func TestLoadEnvOverride(t *testing.T) {
	root := t.TempDir()
	r, err := Default(root)
	require.Nil(t, err)
	require.Nil(t, r.Flush())

	t.Setenv("UGPT_STAKING_RPC_URL", "http://127.0.0.1:8545")
	t.Setenv("UGPT_STAKING_TX_POLL_INTERVAL", "250ms")

	loaded, err := Load(root)
	require.Nil(t, err)
	assert.Equal(t, "http://127.0.0.1:8545", loaded.Config.RPC.URL)
	assert.Equal(t, 250*time.Millisecond, loaded.Config.Tx.PollInterval.ToDuration())
}

func TestLoadRejectsBadConfig(t *testing.T) {
	root := t.TempDir()
	err := os.WriteFile(filepath.Join(root, CfgFileName), []byte("[rpc]\nchain_id = \"sepolia\"\n"), 0644)
	require.Nil(t, err)
	_, err = Load(root)
	assert.NotNil(t, err)

	r, err := Default(root)
	require.Nil(t, err)
	r.Config.Contracts.Vault = "not-an-address"
	require.Nil(t, r.Flush())
	_, err = Load(root)
	assert.ErrorContains(t, err, "contracts.vault")
}

func TestLoadRepoRootFromEnv(t *testing.T) {
	p, err := LoadRepoRootFromEnv("/tmp/explicit")
	require.Nil(t, err)
	assert.Equal(t, "/tmp/explicit", p)

	t.Setenv(rootPathEnvVar, "/tmp/from-env")
	p, err = LoadRepoRootFromEnv("")
	require.Nil(t, err)
	assert.Equal(t, "/tmp/from-env", p)
}

func TestConfigCheck(t *testing.T) {
	cfg := DefaultConfig()
	require.Nil(t, cfg.Check())

	cfg.Tx.ConfirmTimeout = Duration(time.Millisecond)
	assert.NotNil(t, cfg.Check())

	cfg = DefaultConfig()
	cfg.RPC.URL = ""
	assert.NotNil(t, cfg.Check())
}
