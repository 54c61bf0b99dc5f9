// Package split handles Nexo exports with separate input and output columns
package split

import (
	"fjacquet/nexo-cointracker/cmd/common"
	"fjacquet/nexo-cointracker/cmd/root"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"

	"github.com/spf13/cobra"
)

var flags root.CommonFlags

// Cmd represents the split command
var Cmd = &cobra.Command{
	Use:   "split",
	Short: "Convert a Nexo export with Input/Output Currency and Amount columns",
	Long: `Convert a Nexo export with the columns
Date / Time, Type, Input Currency, Input Amount, Output Currency, Output Amount, USD Equivalent.

This layout does not carry the sent amount of exchanges. Those rows are written
with a "<replace with actual amount of TICKER for this transaction>" marker that
has to be completed by hand before importing.`,
	Args: cobra.NoArgs,
	RunE: splitFunc,
}

func init() {
	root.AddConversionFlags(Cmd, &flags)
}

func splitFunc(cmd *cobra.Command, args []string) error {
	root.Log.Debug("Split export conversion called",
		logging.F(logging.FieldInputFile, flags.Input),
		logging.F(logging.FieldOutputFile, flags.Output))

	conv, err := root.AppContainer.GetConverter(models.SchemaSplit)
	if err != nil {
		return err
	}

	_, err = common.ProcessFile(conv, flags.Input, flags.Output, flags.Validate, cmd.OutOrStdout(), root.Log)
	return err
}
