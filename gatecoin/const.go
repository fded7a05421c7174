package gatecoin

const DefaultHost = "https://api.gatecoin.com/"

const (
	GET    = "GET"
	POST   = "POST"
	DELETE = "DELETE"
)

const MIMEJSON = "application/json"

// request headers
const (
	HeaderPublicKey = "API_PUBLIC_KEY"
	HeaderSignature = "API_REQUEST_SIGNATURE"
	HeaderDate      = "API_REQUEST_DATE"
)

// endpoint paths, relative to the host
const (
	pathCurrencyPairs = "v1/Reference/CurrencyPairs"
	pathMarketDepth   = "v1/Public/MarketDepth/%s"
	pathOrderBook     = "v1/%s/OrderBook"
	pathTransactions  = "v1/Public/Transactions/%s"
	pathBalances      = "v1/Balance/Balances"
	pathOrders        = "v1/Trade/Orders"
	pathOrder         = "v1/Trade/Orders/%s"
	pathTradeHistory  = "v1/Trade/TradeHistory"
)

const (
	StatusOK                  = "OK"
	StatusInvalidCurrencyCode = "Invalid currency code"
)

type OrderWay string

const (
	Bid OrderWay = "Bid"
	Ask OrderWay = "Ask"
)

func (w OrderWay) Valid() bool {
	return w == Bid || w == Ask
}
