package models

import "time"

// TransactionType is the Nexo "Type" column. The set is open: values not
// listed here are valid input and produce no output row.
type TransactionType string

const (
	TypeInterest           TransactionType = "Interest"
	TypeFixedTermInterest  TransactionType = "FixedTermInterest"
	TypeExchange           TransactionType = "Exchange"
	TypeDeposit            TransactionType = "Deposit"
	TypeWithdrawal         TransactionType = "Withdrawal"
	TypeLockingTermDeposit TransactionType = "LockingTermDeposit"
)

// CoinTracker tags.
const (
	TagStaked = "staked"
	TagMined  = "mined"
)

// SourceRecord is one row of a Nexo export.
//
// The combined schema fills Currency and Amount; the split schema fills the
// Input* and Output* fields. Amounts are kept as text exactly as exported.
type SourceRecord struct {
	Row       int // 1-based data row, header excluded
	Timestamp time.Time
	Type      TransactionType

	Currency string
	Amount   string

	InputCurrency  string
	InputAmount    string
	OutputCurrency string
	OutputAmount   string

	USDEquivalent string
}

// OutputRecord is one row of the CoinTracker import file. Field order and csv
// tags define the output header.
type OutputRecord struct {
	Date             string `csv:"Date"`
	ReceivedQuantity string `csv:"Received Quantity"`
	ReceivedCurrency string `csv:"Received Currency"`
	SentQuantity     string `csv:"Sent Quantity"`
	SentCurrency     string `csv:"Sent Currency"`
	FeeAmount        string `csv:"Fee Amount"`
	FeeCurrency      string `csv:"Fee Currency"`
	Tag              string `csv:"Tag"`
}

// OutputHeader is the CoinTracker header, in column order.
var OutputHeader = []string{
	"Date",
	"Received Quantity",
	"Received Currency",
	"Sent Quantity",
	"Sent Currency",
	"Fee Amount",
	"Fee Currency",
	"Tag",
}
