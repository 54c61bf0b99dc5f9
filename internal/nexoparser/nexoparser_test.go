package nexoparser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/nexo-cointracker/internal/dateutils"
	"fjacquet/nexo-cointracker/internal/logging"
	"fjacquet/nexo-cointracker/internal/models"
	"fjacquet/nexo-cointracker/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const splitCSV = `Transaction,Type,Input Currency,Input Amount,Output Currency,Output Amount,USD Equivalent,Details,Outstanding Loan,Date / Time
NXT1,Interest,NEXONEXO,0.5,NEXONEXO,0.5,$1.20,approved / Interest,$0.00,2021-05-02 06:00:01
NXT2,Exchange,BTC/ETH,-0.01,ETH,0.15,$450.00,approved / Exchange,$0.00,2021-05-01 10:00:00
NXT3,Withdrawal,USDTERC,-100,USDTERC,-100,$100.00,approved / Withdrawal,$0.00,2021-06-10 09:00:00
`

const combinedCSV = `Date / Time,Type,Currency,Amount,USD Equivalent
2021-05-01 10:00:00,Deposit,NEXONEXO,5,12.50
2021-04-30 08:00:00,Exchange,BTC/ETH,-0.01/+0.15,450
2021-07-01 00:00:00,LockingTermDeposit,NEXO,50,500
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func newParser(t *testing.T, schema models.Schema) *Parser {
	t.Helper()
	p, err := NewParser(schema, logging.NewMockLogger())
	require.NoError(t, err)
	return p
}

func TestNewParser_UnknownSchema(t *testing.T) {
	_, err := NewParser(models.Schema("auto"), nil)
	assert.Error(t, err)
}

func TestNewParser_NilLoggerUsesDefault(t *testing.T) {
	p, err := NewParser(models.SchemaSplit, nil)
	require.NoError(t, err)
	assert.NotNil(t, p.GetLogger())
	assert.Equal(t, models.SchemaSplit, p.Schema())
}

func TestParseFile_Split(t *testing.T) {
	path := writeFile(t, "nexo_split.csv", splitCSV)

	records, err := newParser(t, models.SchemaSplit).ParseFile(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Rows keep file order; sorting is a separate stage.
	first := records[0]
	assert.Equal(t, 1, first.Row)
	assert.Equal(t, models.TypeInterest, first.Type)
	assert.Equal(t, time.Date(2021, 5, 2, 6, 0, 1, 0, time.UTC), first.Timestamp)
	assert.Equal(t, "NEXONEXO", first.InputCurrency)
	assert.Equal(t, "0.5", first.InputAmount)
	assert.Equal(t, "NEXONEXO", first.OutputCurrency)
	assert.Equal(t, "0.5", first.OutputAmount)
	assert.Equal(t, "$1.20", first.USDEquivalent)
	assert.Empty(t, first.Currency)
	assert.Empty(t, first.Amount)

	exchange := records[1]
	assert.Equal(t, models.TypeExchange, exchange.Type)
	assert.Equal(t, "BTC/ETH", exchange.InputCurrency)
	assert.Equal(t, "0.15", exchange.OutputAmount)
}

func TestParse_Combined(t *testing.T) {
	records, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(combinedCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, models.SourceRecord{
		Row:           1,
		Timestamp:     time.Date(2021, 5, 1, 10, 0, 0, 0, time.UTC),
		Type:          models.TypeDeposit,
		Currency:      "NEXONEXO",
		Amount:        "5",
		USDEquivalent: "12.50",
	}, records[0])
	assert.Equal(t, "-0.01/+0.15", records[1].Amount)
	assert.Equal(t, models.TypeLockingTermDeposit, records[2].Type)
}

func TestParse_UnknownTypeIsKept(t *testing.T) {
	input := "Date / Time,Type,Currency,Amount,USD Equivalent\n2021-01-01 00:00:00,Airdrop,ABC,1,0\n"

	records, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.TransactionType("Airdrop"), records[0].Type)
}

func TestParse_ByteOrderMark(t *testing.T) {
	input := "\xEF\xBB\xBF" + combinedCSV

	records, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestParse_HeaderOnly(t *testing.T) {
	input := "Date / Time,Type,Currency,Amount,USD Equivalent\n"

	records, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestParse_EmptyInput(t *testing.T) {
	_, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(""))

	var invalid *parsererror.InvalidFormatError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, readerPath, invalid.FilePath)
}

func TestParse_InvalidTimestampAbortsRun(t *testing.T) {
	input := "Date / Time,Type,Currency,Amount,USD Equivalent\n" +
		"2021-05-01 10:00:00,Deposit,NEXO,5,12.50\n" +
		"01/05/2021 10:00,Deposit,NEXO,5,12.50\n"

	records, err := newParser(t, models.SchemaCombined).Parse(strings.NewReader(input))
	assert.Nil(t, records)

	var parseErr *parsererror.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Row)
	assert.Equal(t, "Date / Time", parseErr.Field)
	assert.Equal(t, "01/05/2021 10:00", parseErr.Value)
	assert.True(t, errors.Is(err, dateutils.ErrInvalidTimestamp))
}

func TestParse_SchemaMismatch(t *testing.T) {
	// A combined export fed to the split parser.
	_, err := newParser(t, models.SchemaSplit).Parse(strings.NewReader(combinedCSV))

	var mismatch *parsererror.SchemaMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "split", mismatch.Schema)
	assert.Equal(t, []string{"Input Currency", "Input Amount", "Output Currency", "Output Amount"}, mismatch.Missing)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := newParser(t, models.SchemaSplit).ParseFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestValidateFormat(t *testing.T) {
	split := writeFile(t, "split.csv", splitCSV)
	combined := writeFile(t, "combined.csv", combinedCSV)
	empty := writeFile(t, "empty.csv", "")

	splitParser := newParser(t, models.SchemaSplit)
	combinedParser := newParser(t, models.SchemaCombined)

	ok, err := splitParser.ValidateFormat(split)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = splitParser.ValidateFormat(combined)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = combinedParser.ValidateFormat(combined)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = combinedParser.ValidateFormat(empty)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = combinedParser.ValidateFormat(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestSetLogger(t *testing.T) {
	p := newParser(t, models.SchemaCombined)
	mock := logging.NewMockLogger()
	p.SetLogger(mock)
	p.SetLogger(nil)

	_, err := p.Parse(strings.NewReader(combinedCSV))
	require.NoError(t, err)

	entries := mock.GetEntriesByLevel("INFO")
	require.NotEmpty(t, entries)
	schema, ok := entries[len(entries)-1].FieldValue(logging.FieldSchema)
	assert.True(t, ok)
	assert.Equal(t, "combined", schema)
}
