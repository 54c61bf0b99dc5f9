// Package classifier maps Nexo source records onto CoinTracker rows.
//
// Each record is routed by its transaction type. Interest becomes staking
// income, deposits and withdrawals become single-leg transfers, exchanges become
// trades, and everything else (locking term deposits, unknown types) is
// suppressed. Tickers are normalised before they are emitted.
package classifier

import (
	"fmt"
	"strings"

	"fjacquet/nexo-cointracker/internal/currencyutils"
	"fjacquet/nexo-cointracker/internal/dateutils"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
	"fjacquet/nexo-cointracker/internal/parsererror"
)

// withdrawalFee is the fee amount CoinTracker receives for every withdrawal;
// Nexo exports do not report the network fee separately.
const withdrawalFee = "0"

// Options selects the mapping rules.
type Options struct {
	Schema models.Schema

	// MinedDeposits tags every deposit as mined income. Only the combined
	// schema supports it.
	MinedDeposits bool
}

// Validate checks that the options describe a supported combination.
func (o Options) Validate() error {
	if o.Schema.RequiredColumns() == nil {
		return &parsererror.ValidationError{Field: "schema", Reason: fmt.Sprintf("unsupported schema %q", o.Schema)}
	}
	if o.MinedDeposits && !o.Schema.SupportsMinedDeposits() {
		return &parsererror.ValidationError{
			Field:  "mined",
			Reason: fmt.Sprintf("treating deposits as mined income is not supported by the %s schema", o.Schema),
		}
	}
	return nil
}

// Classifier converts source records of one schema.
type Classifier struct {
	opts   Options
	logger logging.Logger
}

// New returns a Classifier for opts.
func New(opts Options, logger logging.Logger) (*Classifier, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Classifier{opts: opts, logger: logger}, nil
}

// Options returns the options the classifier was built with.
func (c *Classifier) Options() Options {
	return c.opts
}

// Classify maps one record. It returns nil, nil when the record produces no
// CoinTracker row.
func (c *Classifier) Classify(rec models.SourceRecord) (*models.OutputRecord, error) {
	var (
		out *models.OutputRecord
		err error
	)
	switch rec.Type {
	case models.TypeInterest, models.TypeFixedTermInterest:
		out, err = c.interest(rec)
	case models.TypeExchange:
		out, err = c.exchange(rec)
	case models.TypeDeposit:
		out = c.deposit(rec)
	case models.TypeWithdrawal:
		out = c.withdrawal(rec)
	default:
		// LockingTermDeposit moves funds inside Nexo and is not a taxable
		// event; unknown types are skipped the same way.
	}
	if err != nil {
		return nil, err
	}

	if out == nil {
		c.logger.Debug("Row suppressed",
			logging.F(logging.FieldRow, rec.Row),
			logging.F(logging.FieldType, string(rec.Type)))
		return nil, nil
	}
	out.Date = dateutils.FormatCointracker(rec.Timestamp)
	return out, nil
}

// ClassifyAll maps records in order, dropping suppressed ones. The first error
// aborts the whole conversion.
func (c *Classifier) ClassifyAll(records []models.SourceRecord) ([]models.OutputRecord, error) {
	out := make([]models.OutputRecord, 0, len(records))
	for _, rec := range records {
		mapped, err := c.Classify(rec)
		if err != nil {
			return nil, err
		}
		if mapped != nil {
			out = append(out, *mapped)
		}
	}

	c.logger.Info("Classified records",
		logging.F(logging.FieldCount, len(out)),
		logging.F(logging.FieldSuppressed, len(records)-len(out)))
	return out, nil
}

func (c *Classifier) interest(rec models.SourceRecord) (*models.OutputRecord, error) {
	amount, currency := rec.Amount, rec.Currency
	if c.opts.Schema == models.SchemaSplit {
		amount, currency = rec.OutputAmount, rec.OutputCurrency

		// Loan interest is exported as a non-positive amount and is not income.
		positive, err := currencyutils.IsPositive(amount)
		if err != nil {
			return nil, &parsererror.ParseError{
				Parser: "classifier",
				Row:    rec.Row,
				Field:  models.ColumnOutputAmount,
				Value:  amount,
				Err:    err,
			}
		}
		if !positive {
			return nil, nil
		}
	}

	return &models.OutputRecord{
		ReceivedQuantity: strings.TrimSpace(amount),
		ReceivedCurrency: currencyutils.NormalizeTicker(currency),
		Tag:              models.TagStaked,
	}, nil
}

func (c *Classifier) exchange(rec models.SourceRecord) (*models.OutputRecord, error) {
	pairField, pairValue := models.ColumnCurrency, rec.Currency
	if c.opts.Schema == models.SchemaSplit {
		pairField, pairValue = models.ColumnInputCurrency, rec.InputCurrency
	}

	tickers, ok := splitPair(pairValue)
	if !ok {
		return nil, &parsererror.MalformedExchangePairError{Row: rec.Row, Field: pairField, Value: pairValue}
	}
	sent := currencyutils.NormalizeTicker(tickers[0])
	received := currencyutils.NormalizeTicker(tickers[1])

	var sentQuantity, receivedQuantity string
	switch c.opts.Schema {
	case models.SchemaSplit:
		// The split layout only carries the received amount; the sent amount
		// has to be completed by hand after import.
		sentQuantity = ManualAmountPlaceholder(sent)
		receivedQuantity = strings.TrimSpace(rec.OutputAmount)
	default:
		amounts, ok := splitPair(rec.Amount)
		if !ok {
			return nil, &parsererror.MalformedExchangePairError{Row: rec.Row, Field: models.ColumnAmount, Value: rec.Amount}
		}
		sentQuantity = currencyutils.StripSign(amounts[0])
		receivedQuantity = currencyutils.StripSign(amounts[1])
	}

	return &models.OutputRecord{
		ReceivedQuantity: receivedQuantity,
		ReceivedCurrency: received,
		SentQuantity:     sentQuantity,
		SentCurrency:     sent,
	}, nil
}

func (c *Classifier) deposit(rec models.SourceRecord) *models.OutputRecord {
	amount, currency := rec.Amount, rec.Currency
	if c.opts.Schema == models.SchemaSplit {
		amount, currency = rec.OutputAmount, rec.OutputCurrency
	}

	out := &models.OutputRecord{
		ReceivedQuantity: strings.TrimSpace(amount),
		ReceivedCurrency: currencyutils.NormalizeTicker(currency),
	}
	if c.opts.MinedDeposits {
		out.Tag = models.TagMined
	}
	return out
}

func (c *Classifier) withdrawal(rec models.SourceRecord) *models.OutputRecord {
	amount, currency := rec.Amount, rec.Currency
	if c.opts.Schema == models.SchemaSplit {
		amount, currency = rec.InputAmount, rec.InputCurrency
	}

	ticker := currencyutils.NormalizeTicker(currency)
	return &models.OutputRecord{
		SentQuantity: currencyutils.StripSign(amount),
		SentCurrency: ticker,
		FeeAmount:    withdrawalFee,
		FeeCurrency:  ticker,
	}
}

// splitPair splits "A/B" into its two trimmed halves. Anything other than
// exactly two non-empty halves is rejected.
func splitPair(value string) ([2]string, bool) {
	parts := strings.Split(strings.TrimSpace(value), "/")
	if len(parts) != 2 {
		return [2]string{}, false
	}
	a, b := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	if a == "" || b == "" {
		return [2]string{}, false
	}
	return [2]string{a, b}, true
}

// ManualAmountPlaceholder is emitted in place of an amount the export does not
// carry. It marks the row as requiring manual completion before the
// CoinTracker import is final.
func ManualAmountPlaceholder(ticker string) string {
	return fmt.Sprintf("<replace with actual amount of %s for this transaction>", ticker)
}
