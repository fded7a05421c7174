package gatecoin

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// The trading endpoints need credentials. Without valid ones the server answers with a
// failure status, which is returned as is.

func (c *Client) Balances() (*BalancesResponse, error) {
	data, err := c.request(GET, pathBalances, nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadBalances(data)
	if errs != nil {
		return nil, c.schemaError("balances", data, errs)
	}
	return r, nil
}

// Balance fetches all balances and keeps the one of currency. There is no remote endpoint
// for a single balance.
func (c *Client) Balance(currency string) (*BalanceResponse, error) {
	all, err := c.Balances()
	if err != nil {
		return nil, err
	}
	return filterBalance(all, currency), nil
}

func filterBalance(all *BalancesResponse, currency string) *BalanceResponse {
	if !all.Status.OK() {
		return &BalanceResponse{Status: all.Status}
	}
	for i := range all.Balances {
		if all.Balances[i].Currency == currency {
			b := all.Balances[i]
			return &BalanceResponse{Status: all.Status, Balance: &b}
		}
	}
	return &BalanceResponse{Status: &ResponseStatus{Message: StatusInvalidCurrencyCode}}
}

func (c *Client) OpenOrders() (*OpenOrdersResponse, error) {
	data, err := c.request(GET, pathOrders, nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadOpenOrders(data)
	if errs != nil {
		return nil, c.schemaError("open orders", data, errs)
	}
	return r, nil
}

func (c *Client) OpenOrder(orderID string) (*OpenOrderResponse, error) {
	data, err := c.request(GET, fmt.Sprintf(pathOrder, url.PathEscape(orderID)), nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadOpenOrderResponse(data)
	if errs != nil {
		return nil, c.schemaError("open order", data, errs)
	}
	return r, nil
}

// CreateOrder places a new order. The returned ClOrderID identifies it for OpenOrder and
// CancelOrder.
func (c *Client) CreateOrder(o OrderRequest) (*CreateOrderResponse, error) {
	params, err := orderParams(o)
	if err != nil {
		return nil, err
	}
	data, err := c.request(POST, pathOrders, params)
	if err != nil {
		return nil, err
	}
	r, errs := loadCreateOrder(data)
	if errs != nil {
		return nil, c.schemaError("create order", data, errs)
	}
	return r, nil
}

func orderParams(o OrderRequest) (map[string]interface{}, error) {
	if o.Pair == "" {
		return nil, errors.New("order needs a currency pair")
	}
	if !o.Way.Valid() {
		return nil, errors.Errorf("bad order way %q, want %q or %q", o.Way, Bid, Ask)
	}
	// decimals go out as JSON numbers, not strings
	params := map[string]interface{}{
		"Code":  o.Pair,
		"Way":   string(o.Way),
		"Price": json.Number(o.Price.String()),
	}
	if o.Amount != nil {
		params["Amount"] = json.Number(o.Amount.String())
	}
	if o.SpendAmount != nil {
		params["SpendAmount"] = json.Number(o.SpendAmount.String())
	}
	if o.ExternalOrderID != "" {
		params["ExternalOrderId"] = o.ExternalOrderID
	}
	if o.ValidationCode != "" {
		params["ValidationCode"] = o.ValidationCode
	}
	return params, nil
}

func (c *Client) CancelOrder(orderID string) (*CancelOrderResponse, error) {
	params := map[string]interface{}{"OrderID": orderID}
	data, err := c.request(DELETE, fmt.Sprintf(pathOrder, url.PathEscape(orderID)), params)
	if err != nil {
		return nil, err
	}
	r, errs := loadCancelOrder(data)
	if errs != nil {
		return nil, c.schemaError("cancel order", data, errs)
	}
	return r, nil
}

func (c *Client) CancelAllOrders() (*CancelOrderResponse, error) {
	data, err := c.request(DELETE, pathOrders, nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadCancelOrder(data)
	if errs != nil {
		return nil, c.schemaError("cancel all orders", data, errs)
	}
	return r, nil
}

func (c *Client) TradeHistory() (*TradeHistoryResponse, error) {
	data, err := c.request(GET, pathTradeHistory, nil)
	if err != nil {
		return nil, err
	}
	r, errs := loadTradeHistory(data)
	if errs != nil {
		return nil, c.schemaError("trade history", data, errs)
	}
	return r, nil
}
