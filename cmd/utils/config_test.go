package utils

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setenv(t *testing.T, key, value string) {
	old, ok := os.LookupEnv(key)
	require.NoError(t, os.Setenv(key, value))
	t.Cleanup(func() {
		if ok {
			_ = os.Setenv(key, old)
		} else {
			_ = os.Unsetenv(key)
		}
	})
}

func TestParseConfig_EnvOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, ioutil.WriteFile(file, []byte(`{
		"exchange": {"name": "gatecoin", "label": "main", "key": "file-key", "secret": "file-secret"},
		"output": "balances.jsonl"
	}`), 0644))

	setenv(t, EnvPublicKey, "")
	setenv(t, EnvPrivateKey, "")
	c, err := ParseConfig(file)
	require.NoError(t, err)
	require.Equal(t, "file-key", c.Exchange.Key)
	require.Equal(t, "file-secret", c.Exchange.Secret)
	require.Equal(t, "balances.jsonl", c.Output)

	setenv(t, EnvPublicKey, "env-key")
	setenv(t, EnvPrivateKey, "env-secret")
	c, err = ParseConfig(file)
	require.NoError(t, err)
	require.Equal(t, "env-key", c.Exchange.Key)
	require.Equal(t, "env-secret", c.Exchange.Secret)
	require.Equal(t, "main", c.Exchange.Label)
}

func TestParseConfig_MissingFile(t *testing.T) {
	_, err := ParseConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
