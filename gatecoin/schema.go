package gatecoin

import (
	"github.com/buger/jsonparser"
)

// Every load function maps one raw payload. It yields the typed response when all fields
// mapped cleanly, and only the field errors otherwise.

func loadCurrencyPairs(data []byte) (*CurrencyPairsResponse, FieldErrors) {
	d := newDecoder(data)
	r := &CurrencyPairsResponse{Status: loadStatus(d)}
	d.Objects("currencyPairs", false, func(d *decoder) {
		r.CurrencyPairs = append(r.CurrencyPairs, loadCurrencyPair(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.CurrencyPairs = nil
	}
	return r, nil
}

func loadMarketDepth(data []byte) (*MarketDepthResponse, FieldErrors) {
	d := newDecoder(data)
	r := &MarketDepthResponse{Status: loadStatus(d)}
	d.Objects("asks", false, func(d *decoder) {
		r.Asks = append(r.Asks, loadLimit(d))
	})
	d.Objects("bids", false, func(d *decoder) {
		r.Bids = append(r.Bids, loadLimit(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Asks, r.Bids = nil, nil
	}
	return r, nil
}

// loadOrderBook maps asks and bids sent as positional [price, volume] pairs. The status
// is optional here; a book without one is a success.
func loadOrderBook(data []byte) (*OrderBookResponse, FieldErrors) {
	d := newDecoder(data)
	r := &OrderBookResponse{
		Status: loadStatus(d),
		Asks:   loadPairs(d, "asks"),
		Bids:   loadPairs(d, "bids"),
	}
	if d.failed() {
		return nil, *d.errs
	}
	if r.Status != nil && !r.Status.OK() {
		r.Asks, r.Bids = nil, nil
	}
	return r, nil
}

func loadRecentTransactions(data []byte) (*RecentTransactionsResponse, FieldErrors) {
	d := newDecoder(data)
	r := &RecentTransactionsResponse{Status: loadStatus(d)}
	d.Objects("transactions", false, func(d *decoder) {
		r.Transactions = append(r.Transactions, loadTransaction(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Transactions = nil
	}
	return r, nil
}

func loadBalances(data []byte) (*BalancesResponse, FieldErrors) {
	d := newDecoder(data)
	r := &BalancesResponse{Status: loadStatus(d)}
	d.Objects("balances", false, func(d *decoder) {
		r.Balances = append(r.Balances, loadAccountBalance(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Balances = nil
	}
	return r, nil
}

func loadOpenOrders(data []byte) (*OpenOrdersResponse, FieldErrors) {
	d := newDecoder(data)
	r := &OpenOrdersResponse{Status: loadStatus(d)}
	d.Objects("orders", false, func(d *decoder) {
		r.Orders = append(r.Orders, loadOpenOrder(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Orders = nil
	}
	return r, nil
}

func loadOpenOrderResponse(data []byte) (*OpenOrderResponse, FieldErrors) {
	d := newDecoder(data)
	r := &OpenOrderResponse{Status: loadStatus(d)}
	d.Object("order", false, func(d *decoder) {
		o := loadOpenOrder(d)
		r.Order = &o
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Order = nil
	}
	return r, nil
}

func loadCreateOrder(data []byte) (*CreateOrderResponse, FieldErrors) {
	d := newDecoder(data)
	r := &CreateOrderResponse{
		Status:    loadStatus(d),
		ClOrderID: d.String("clOrderId", false),
	}
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.ClOrderID = ""
	}
	return r, nil
}

func loadCancelOrder(data []byte) (*CancelOrderResponse, FieldErrors) {
	d := newDecoder(data)
	r := &CancelOrderResponse{Status: loadStatus(d)}
	if d.failed() {
		return nil, *d.errs
	}
	return r, nil
}

func loadTradeHistory(data []byte) (*TradeHistoryResponse, FieldErrors) {
	d := newDecoder(data)
	r := &TradeHistoryResponse{
		Status:     loadStatus(d),
		TotalCount: d.Int("totalCount", false),
	}
	d.Objects("transactions", false, func(d *decoder) {
		r.Transactions = append(r.Transactions, loadTraderTransaction(d))
	})
	if d.failed() {
		return nil, *d.errs
	}
	if !r.Status.OK() {
		r.Transactions, r.TotalCount = nil, 0
	}
	return r, nil
}

// records

func loadStatus(d *decoder) *ResponseStatus {
	var s *ResponseStatus
	d.Object("responseStatus", false, func(d *decoder) {
		s = &ResponseStatus{
			ErrorCode:  d.String("errorCode", false),
			Message:    d.String("message", false),
			StackTrace: d.String("stackTrace", false),
		}
		d.Objects("errors", false, func(d *decoder) {
			s.Errors = append(s.Errors, ResponseError{
				ErrorCode: d.String("errorCode", false),
				FieldName: d.String("fieldName", false),
				Message:   d.String("message", false),
			})
		})
	})
	return s
}

func loadCurrencyPair(d *decoder) CurrencyPair {
	return CurrencyPair{
		TradingCode:        d.String("tradingCode", true),
		BaseCurrency:       d.String("baseCurrency", true),
		QuoteCurrency:      d.String("quoteCurrency", true),
		DisplayName:        d.String("displayName", true),
		PriceDecimalPlaces: d.Int("priceDecimalPlaces", true),
		Name:               d.String("name", true),
	}
}

func loadLimit(d *decoder) Limit {
	return Limit{
		Price:  d.Decimal("price", true),
		Volume: d.Decimal("volume", true),
	}
}

// loadPairs reads a list of [price, volume] pairs. An entry with any other element count
// is an error for that entry only.
func loadPairs(d *decoder, key string) []Limit {
	var limits []Limit
	d.Array(key, false, func(path string, value []byte, t jsonparser.ValueType) {
		if t != jsonparser.Array {
			d.errorf(path, "expected [price, volume] pair, got %s", t)
			return
		}
		type element struct {
			v []byte
			t jsonparser.ValueType
		}
		var elems []element
		_, err := jsonparser.ArrayEach(value, func(v []byte, t jsonparser.ValueType, _ int, _ error) {
			elems = append(elems, element{v, t})
		})
		if err != nil {
			d.errorf(path, "%s", err)
			return
		}
		if len(elems) != 2 {
			d.errorf(path, "expected [price, volume] pair, got %d elements", len(elems))
			return
		}
		limits = append(limits, Limit{
			Price:  d.decimalAt(path+".price", elems[0].v, elems[0].t),
			Volume: d.decimalAt(path+".volume", elems[1].v, elems[1].t),
		})
	})
	return limits
}

func loadTransaction(d *decoder) Transaction {
	return Transaction{
		TransactionID:   d.Int("transactionId", true),
		TransactionTime: d.Time("transactionTime", true),
		Price:           d.Decimal("price", true),
		Quantity:        d.Decimal("quantity", true),
		CurrencyPair:    d.String("currencyPair", true),
		Way:             d.String("way", true),
		AskOrderID:      d.String("askOrderId", true),
		BidOrderID:      d.String("bidOrderId", true),
	}
}

func loadAccountBalance(d *decoder) AccountBalance {
	return AccountBalance{
		Currency:         d.String("currency", true),
		Balance:          d.Decimal("balance", true),
		AvailableBalance: d.Decimal("availableBalance", true),
		PendingIncoming:  d.Decimal("pendingIncoming", true),
		PendingOutgoing:  d.Decimal("pendingOutgoing", true),
		OpenOrder:        d.Decimal("openOrder", true),
		Pledging:         d.Decimal("pledging", true),
		IsDigital:        d.Bool("isDigital", true),
	}
}

func loadTraderTransaction(d *decoder) TraderTransaction {
	return TraderTransaction{
		TransactionID:   d.Int("transactionId", true),
		TransactionTime: d.Time("transactionTime", true),
		AskOrderID:      d.String("askOrderId", true),
		BidOrderID:      d.String("bidOrderId", true),
		Price:           d.Decimal("price", true),
		Quantity:        d.Decimal("quantity", true),
		CurrencyPair:    d.String("currencyPair", true),
		Way:             d.String("way", true),
		FeeRole:         d.String("feeRole", true),
		FeeRate:         d.Decimal("feeRate", true),
		FeeAmount:       d.Decimal("feeAmount", true),
	}
}

func loadOpenOrder(d *decoder) OpenOrder {
	o := OpenOrder{
		Code:                      d.String("code", true),
		ClOrderID:                 d.String("clOrderId", true),
		Side:                      d.Int("side", true),
		Price:                     d.Decimal("price", true),
		InitialQuantity:           d.Decimal("initialQuantity", true),
		RemainingQuantity:         d.Decimal("remainingQuantity", true),
		Status:                    d.Int("status", true),
		StatusDesc:                d.String("statusDesc", true),
		Type:                      d.Int("type", true),
		Date:                      d.Time("date", true),
		TransactionSequenceNumber: d.Int("tranSeqNo", false),
	}
	d.Objects("trades", false, func(d *decoder) {
		o.Trades = append(o.Trades, loadTraderTransaction(d))
	})
	return o
}
