package types

import "time"

// for mongo
//	_id: label:transaction id, unique per account
//	tradeId: transaction id
//	orderId: our side of the trade (bid order for Bid, ask order for Ask)
//	pair: currency pair
//	way: Bid or Ask
//	price, quantity: decimal strings, kept exact
//	date: transaction time in UTC
type Trade struct {
	Id        string    `bson:"_id" json:"-"`
	TradeId   int64     `bson:"tradeId" json:"tradeId"`
	OrderId   string    `bson:"orderId" json:"orderId"`
	Label     string    `bson:"label" json:"label"`
	Pair      string    `bson:"pair" json:"pair"`
	Way       string    `bson:"way" json:"way"`
	Price     string    `bson:"price" json:"price"`
	Quantity  string    `bson:"quantity" json:"quantity"`
	Total     string    `bson:"total" json:"total"` // signed: negative when quote currency is spent
	Date      time.Time `bson:"date" json:"date"`
	FeeRole   string    `bson:"feeRole" json:"feeRole"`
	FeeRate   string    `bson:"feeRate" json:"feeRate"`
	FeeAmount string    `bson:"feeAmount" json:"feeAmount"`
}

// balance of currency, one line of a snapshot
type Balance struct {
	Exchange  string `json:"exchange"`
	Account   string `json:"account"`
	Currency  string `json:"currency"`
	Balance   string `json:"balance"`
	Available string `json:"available"`
	Pending   string `json:"pending"` // incoming minus outgoing
	OpenOrder string `json:"openOrder"`
	IsDigital bool   `json:"isDigital"`
	Time      string `json:"time"`
}
