package constants

const (
	// Statuses
	StatusCompleted = "Completed"
	StatusAuthorize = "Authorize"
	StatusPending   = "Pending"
	StatusDeclined  = "Declined"
	StatusExpired   = "Expired"

	// Currencies
	CurrencyCash    = "Cash"
	UnknownCurrency = "Unknown Currency"

	// Transaction types that describe a peer-to-peer transfer
	TypeSendMoney  = "Send Money"
	TypeSendCrypto = "Send Crypto"

	UnknownUser        = "Unknown User"
	MissingDescription = "N/A"

	// Date Layout
	DateFormat = "2006-01-02"
	TimeFormat = "15:04:05.000Z"
)

// KnownCurrencies is the fixed list shown in the balance summary of a report.
var KnownCurrencies = []string{
	"Cash", "Procurrency", "Bitcoin", "Stellar", "Ethereum",
	"Litecoin", "Cosmos", "USDC", "BAT",
}
