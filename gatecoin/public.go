package gatecoin

import (
	"fmt"
	"net/url"
)

// The public endpoints need no credentials.

func (c *Client) CurrencyPairs() (*CurrencyPairsResponse, error) {
	data, err := c.request(GET, pathCurrencyPairs, nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadCurrencyPairs(data)
	if errs != nil {
		return nil, c.schemaError("currency pairs", data, errs)
	}
	return r, nil
}

// MarketDepth returns the aggregated depth of pair, e.g. "BTCUSD".
func (c *Client) MarketDepth(pair string) (*MarketDepthResponse, error) {
	data, err := c.request(GET, fmt.Sprintf(pathMarketDepth, url.PathEscape(pair)), nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadMarketDepth(data)
	if errs != nil {
		return nil, c.schemaError("market depth", data, errs)
	}
	return r, nil
}

func (c *Client) OrderBook(pair string) (*OrderBookResponse, error) {
	data, err := c.request(GET, fmt.Sprintf(pathOrderBook, url.PathEscape(pair)), nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadOrderBook(data)
	if errs != nil {
		return nil, c.schemaError("order book", data, errs)
	}
	return r, nil
}

func (c *Client) RecentTransactions(pair string) (*RecentTransactionsResponse, error) {
	data, err := c.request(GET, fmt.Sprintf(pathTransactions, url.PathEscape(pair)), nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadRecentTransactions(data)
	if errs != nil {
		return nil, c.schemaError("recent transactions", data, errs)
	}
	return r, nil
}
