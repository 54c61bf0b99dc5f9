package root_test

import (
	"bytes"
	"os"
	"testing"

	"fjacquet/nexo-cointracker/cmd/root"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("NEXO_LOG_LEVEL", "")
	t.Setenv("NEXO_LOG_FORMAT", "")
	{
		origWD, wdErr := os.Getwd()
		if wdErr != nil {
			t.Fatal(wdErr)
		}
		if chErr := os.Chdir(dir); chErr != nil {
			t.Fatal(chErr)
		}
		t.Cleanup(func() { _ = os.Chdir(origWD) })
	}
	resetFlags(root.Cmd)

	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&out)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	return out.String(), err
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "nexo-cointracker", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "Nexo transaction exports to CoinTracker")
	assert.Contains(t, root.Cmd.Long, `"split" command`)
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	for _, name := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, root.Cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestAddConversionFlags(t *testing.T) {
	var flags root.CommonFlags
	cmd := &cobra.Command{Use: "test"}
	root.AddConversionFlags(cmd, &flags)

	require.NoError(t, cmd.ParseFlags([]string{"--nexo", "in.csv", "-o", "out.csv", "-v"}))
	assert.Equal(t, root.CommonFlags{Input: "in.csv", Output: "out.csv", Validate: true}, flags)

	nexo := cmd.Flags().Lookup("nexo")
	require.NotNil(t, nexo)
	assert.Equal(t, []string{"true"}, nexo.Annotations[cobra.BashCompOneRequiredFlag])
}

func TestRootCommand_LoadsConfiguration(t *testing.T) {
	out, err := execute(t, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage:")

	require.NotNil(t, root.AppConfig)
	assert.Equal(t, "debug", root.AppConfig.Log.Level)
	assert.Equal(t, "json", root.AppConfig.Log.Format)
	require.NotNil(t, root.AppContainer)
	assert.Same(t, root.AppConfig, root.AppContainer.GetConfig())
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestRootCommand_MissingConfigFile(t *testing.T) {
	_, err := execute(t, "--config", "does-not-exist.yaml")
	assert.Error(t, err)
}
