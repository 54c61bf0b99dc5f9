package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	cmdconfig "fjacquet/nexo-cointracker/cmd/config"
	"fjacquet/nexo-cointracker/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	root.Cmd.AddCommand(cmdconfig.Cmd)
	os.Exit(m.Run())
}

func TestConfigCommand_PrintsEffectiveConfiguration(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("NEXO_LOG_FORMAT", "json")
	{
		origWD, wdErr := os.Getwd()
		if wdErr != nil {
			t.Fatal(wdErr)
		}
		if chErr := os.Chdir(home); chErr != nil {
			t.Fatal(chErr)
		}
		t.Cleanup(func() { _ = os.Chdir(origWD) })
	}

	configFile := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("log:\n  level: warn\nconversion:\n  mined_deposits: true\n"), 0600))

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs([]string{"config", "--config", configFile, "--log-level", "debug"})
	require.NoError(t, root.Cmd.Execute())

	assert.Equal(t, "log:\n    level: debug\n    format: json\nconversion:\n    mined_deposits: true\n", out.String())
}
