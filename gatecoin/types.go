package gatecoin

import (
	"time"

	"github.com/shopspring/decimal"
)

type ResponseError struct {
	ErrorCode string `json:"errorCode,omitempty"`
	FieldName string `json:"fieldName,omitempty"`
	Message   string `json:"message,omitempty"`
}

// ResponseStatus is the status envelope the server attaches to most responses.
type ResponseStatus struct {
	ErrorCode  string          `json:"errorCode,omitempty"`
	Message    string          `json:"message"`
	StackTrace string          `json:"stackTrace,omitempty"`
	Errors     []ResponseError `json:"errors,omitempty"`
}

// OK reports whether the server accepted the request. A nil status is not OK.
func (s *ResponseStatus) OK() bool {
	return s != nil && s.Message == StatusOK
}

type CurrencyPair struct {
	TradingCode        string `json:"tradingCode"`
	BaseCurrency       string `json:"baseCurrency"`
	QuoteCurrency      string `json:"quoteCurrency"`
	DisplayName        string `json:"displayName"`
	PriceDecimalPlaces int64  `json:"priceDecimalPlaces"`
	Name               string `json:"name"`
}

// Limit is one price level of the market depth or the order book.
type Limit struct {
	Price  decimal.Decimal `json:"price"`
	Volume decimal.Decimal `json:"volume"`
}

// Transaction is a public trade.
type Transaction struct {
	TransactionID   int64           `json:"transactionId"`
	TransactionTime time.Time       `json:"transactionTime"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrencyPair    string          `json:"currencyPair"`
	Way             string          `json:"way"`
	AskOrderID      string          `json:"askOrderId"`
	BidOrderID      string          `json:"bidOrderId"`
}

type AccountBalance struct {
	Currency         string          `json:"currency"`
	Balance          decimal.Decimal `json:"balance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	PendingIncoming  decimal.Decimal `json:"pendingIncoming"`
	PendingOutgoing  decimal.Decimal `json:"pendingOutgoing"`
	OpenOrder        decimal.Decimal `json:"openOrder"`
	Pledging         decimal.Decimal `json:"pledging"`
	IsDigital        bool            `json:"isDigital"`
}

// TraderTransaction is a trade of the authenticated account.
type TraderTransaction struct {
	TransactionID   int64           `json:"transactionId"`
	TransactionTime time.Time       `json:"transactionTime"`
	AskOrderID      string          `json:"askOrderId"`
	BidOrderID      string          `json:"bidOrderId"`
	Price           decimal.Decimal `json:"price"`
	Quantity        decimal.Decimal `json:"quantity"`
	CurrencyPair    string          `json:"currencyPair"`
	Way             string          `json:"way"`
	FeeRole         string          `json:"feeRole"`
	FeeRate         decimal.Decimal `json:"feeRate"`
	FeeAmount       decimal.Decimal `json:"feeAmount"`
}

type OpenOrder struct {
	Code              string          `json:"code"`
	ClOrderID         string          `json:"clOrderId"`
	Side              int64           `json:"side"`
	Price             decimal.Decimal `json:"price"`
	InitialQuantity   decimal.Decimal `json:"initialQuantity"`
	RemainingQuantity decimal.Decimal `json:"remainingQuantity"`
	Status            int64           `json:"status"`
	StatusDesc        string          `json:"statusDesc"`
	Type              int64           `json:"type"`
	Date              time.Time       `json:"date"`

	// empty for orders without fills
	TransactionSequenceNumber int64               `json:"tranSeqNo,omitempty"`
	Trades                    []TraderTransaction `json:"trades,omitempty"`
}

// API responses

type CurrencyPairsResponse struct {
	Status        *ResponseStatus `json:"responseStatus"`
	CurrencyPairs []CurrencyPair  `json:"currencyPairs"`
}

type MarketDepthResponse struct {
	Status *ResponseStatus `json:"responseStatus"`
	Asks   []Limit         `json:"asks"`
	Bids   []Limit         `json:"bids"`
}

// OrderBookResponse has a status only when the server rejects the request.
type OrderBookResponse struct {
	Status *ResponseStatus `json:"responseStatus,omitempty"`
	Asks   []Limit         `json:"asks"`
	Bids   []Limit         `json:"bids"`
}

type RecentTransactionsResponse struct {
	Status       *ResponseStatus `json:"responseStatus"`
	Transactions []Transaction   `json:"transactions"`
}

type BalancesResponse struct {
	Status   *ResponseStatus  `json:"responseStatus"`
	Balances []AccountBalance `json:"balances"`
}

type BalanceResponse struct {
	Status  *ResponseStatus `json:"responseStatus"`
	Balance *AccountBalance `json:"balance"`
}

type OpenOrdersResponse struct {
	Status *ResponseStatus `json:"responseStatus"`
	Orders []OpenOrder     `json:"orders"`
}

type OpenOrderResponse struct {
	Status *ResponseStatus `json:"responseStatus"`
	Order  *OpenOrder      `json:"order"`
}

type CreateOrderResponse struct {
	Status    *ResponseStatus `json:"responseStatus"`
	ClOrderID string          `json:"clOrderId"`
}

type CancelOrderResponse struct {
	Status *ResponseStatus `json:"responseStatus"`
}

type TradeHistoryResponse struct {
	Status       *ResponseStatus     `json:"responseStatus"`
	Transactions []TraderTransaction `json:"transactions"`
	TotalCount   int64               `json:"totalCount"`
}

// OrderRequest describes a new order. Amount and SpendAmount are alternatives; nil ones
// are left out of the request body.
type OrderRequest struct {
	Pair            string
	Way             OrderWay
	Price           decimal.Decimal
	Amount          *decimal.Decimal
	SpendAmount     *decimal.Decimal
	ExternalOrderID string
	ValidationCode  string
}
