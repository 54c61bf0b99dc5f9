package models

// Schema identifies one of the Nexo export layouts. Layouts are not
// self-describing, so the caller always selects one explicitly.
type Schema string

const (
	// SchemaSplit is the layout with separate input and output legs:
	// Date / Time, Type, Input Currency, Input Amount, Output Currency,
	// Output Amount, USD Equivalent.
	SchemaSplit Schema = "split"

	// SchemaCombined is the layout with a single currency/amount pair:
	// Date / Time, Type, Currency, Amount, USD Equivalent. Exchange rows
	// carry "SENT/RECEIVED" pairs in both fields.
	SchemaCombined Schema = "combined"
)

// Column names of the Nexo export.
const (
	ColumnDateTime       = "Date / Time"
	ColumnType           = "Type"
	ColumnCurrency       = "Currency"
	ColumnAmount         = "Amount"
	ColumnInputCurrency  = "Input Currency"
	ColumnInputAmount    = "Input Amount"
	ColumnOutputCurrency = "Output Currency"
	ColumnOutputAmount   = "Output Amount"
	ColumnUSDEquivalent  = "USD Equivalent"
)

// Schemas lists every supported schema.
func Schemas() []Schema {
	return []Schema{SchemaSplit, SchemaCombined}
}

// RequiredColumns returns the header columns the schema reads.
func (s Schema) RequiredColumns() []string {
	switch s {
	case SchemaSplit:
		return []string{
			ColumnDateTime, ColumnType,
			ColumnInputCurrency, ColumnInputAmount,
			ColumnOutputCurrency, ColumnOutputAmount,
			ColumnUSDEquivalent,
		}
	case SchemaCombined:
		return []string{
			ColumnDateTime, ColumnType,
			ColumnCurrency, ColumnAmount,
			ColumnUSDEquivalent,
		}
	default:
		return nil
	}
}

// SupportsMinedDeposits reports whether deposits can be tagged as mined income
// for this schema.
func (s Schema) SupportsMinedDeposits() bool {
	return s == SchemaCombined
}

func (s Schema) String() string {
	return string(s)
}
