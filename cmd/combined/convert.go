// Package combined handles Nexo exports with single currency and amount columns
package combined

import (
	"fjacquet/nexo-cointracker/cmd/common"
	"fjacquet/nexo-cointracker/cmd/root"
	"fjacquet/nexo-cointracker/internal/classifier"
	"fjacquet/nexo-cointracker/internal/converter"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"

	"github.com/spf13/cobra"
)

var (
	flags root.CommonFlags
	mined bool
)

// Cmd represents the combined command
var Cmd = &cobra.Command{
	Use:   "combined",
	Short: "Convert a Nexo export with single Currency and Amount columns",
	Long: `Convert a Nexo export with the columns
Date / Time, Type, Currency, Amount, USD Equivalent.

Exchanges carry both legs as "SENT/RECEIVED" in Currency and "-sent/+received"
in Amount. With --mined every deposit is tagged as mined income.`,
	Args: cobra.NoArgs,
	RunE: combinedFunc,
}

func init() {
	root.AddConversionFlags(Cmd, &flags)
	Cmd.Flags().BoolVarP(&mined, "mined", "m", false, "Tag deposits as mined income (default from conversion.mined_deposits)")
}

func combinedFunc(cmd *cobra.Command, args []string) error {
	root.Log.Debug("Combined export conversion called",
		logging.F(logging.FieldInputFile, flags.Input),
		logging.F(logging.FieldOutputFile, flags.Output))

	var (
		conv *converter.Converter
		err  error
	)
	if cmd.Flags().Changed("mined") {
		conv, err = root.AppContainer.NewConverter(classifier.Options{
			Schema:        models.SchemaCombined,
			MinedDeposits: mined,
		})
	} else {
		conv, err = root.AppContainer.GetConverter(models.SchemaCombined)
	}
	if err != nil {
		return err
	}

	_, err = common.ProcessFile(conv, flags.Input, flags.Output, flags.Validate, cmd.OutOrStdout(), root.Log)
	return err
}
