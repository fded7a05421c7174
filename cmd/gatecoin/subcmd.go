package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"github.com/xyths/gatecoin/cmd/utils"
	"github.com/xyths/gatecoin/gatecoin"
	"github.com/xyths/gatecoin/history"
	"github.com/xyths/gatecoin/snapshot"
	"github.com/xyths/hs"
)

var (
	pairsCommand = &cli.Command{
		Action: pairs,
		Name:   "pairs",
		Usage:  "List the tradable currency pairs",
	}
	depthCommand = &cli.Command{
		Action: depth,
		Name:   "depth",
		Usage:  "Show the market depth of a pair",
		Flags:  []cli.Flag{utils.PairFlag},
	}
	bookCommand = &cli.Command{
		Action: book,
		Name:   "book",
		Usage:  "Show the order book of a pair",
		Flags:  []cli.Flag{utils.PairFlag},
	}
	transactionsCommand = &cli.Command{
		Action: transactions,
		Name:   "transactions",
		Usage:  "Show recent public trades of a pair",
		Flags:  []cli.Flag{utils.PairFlag},
	}
	balancesCommand = &cli.Command{
		Action: balances,
		Name:   "balances",
		Usage:  "Show all balances of the account",
	}
	balanceCommand = &cli.Command{
		Action: balance,
		Name:   "balance",
		Usage:  "Show the balance of one currency",
		Flags:  []cli.Flag{utils.CurrencyFlag},
	}
	ordersCommand = &cli.Command{
		Action: orders,
		Name:   "orders",
		Usage:  "List open orders",
	}
	orderCommand = &cli.Command{
		Action: order,
		Name:   "order",
		Usage:  "Show one open order",
		Flags:  []cli.Flag{utils.OrderIdFlag},
	}
	createCommand = &cli.Command{
		Action: create,
		Name:   "create",
		Usage:  "Place a limit order",
		Flags: []cli.Flag{
			utils.PairFlag,
			utils.WayFlag,
			utils.PriceFlag,
			utils.AmountFlag,
			utils.SpendAmountFlag,
			utils.ExternalIdFlag,
			utils.ValidationCodeFlag,
		},
	}
	cancelCommand = &cli.Command{
		Action: cancelOrder,
		Name:   "cancel",
		Usage:  "Cancel one order",
		Flags:  []cli.Flag{utils.OrderIdFlag},
	}
	cancelAllCommand = &cli.Command{
		Action: cancelAll,
		Name:   "cancel-all",
		Usage:  "Cancel all open orders",
	}
	tradesCommand = &cli.Command{
		Action: trades,
		Name:   "trades",
		Usage:  "Show the trade history of the account",
	}
	historyCommand = &cli.Command{
		Name:  "history",
		Usage: "Manage trading history",
		Subcommands: []*cli.Command{
			{
				Action: pull,
				Name:   "pull",
				Usage:  "Pull trading history from exchange into mongo",
			},
			{
				Action: export,
				Name:   "export",
				Usage:  "Export trading history to csv",
				Flags: []cli.Flag{
					utils.StartTimeFlag,
					utils.EndTimeFlag,
					utils.CsvFlag,
				},
			},
			{
				Action: profit,
				Name:   "profit",
				Usage:  "Summary profit from trading history",
				Flags: []cli.Flag{
					utils.StartTimeFlag,
					utils.EndTimeFlag,
				},
			},
		},
	}
	snapshotCommand = &cli.Command{
		Action: snap,
		Name:   "snapshot",
		Usage:  "Append a snapshot of the balances to the output file",
	}
)

func getConfig(ctx *cli.Context) (utils.Config, error) {
	return utils.ParseConfig(ctx.String(utils.ConfigFlag.Name))
}

func getClient(ctx *cli.Context) (*gatecoin.Client, error) {
	cfg, err := getConfig(ctx)
	if err != nil {
		return nil, err
	}
	l, err := hs.NewZapLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	e := cfg.Exchange
	return gatecoin.New(e.Key, e.Secret, e.Host, l.Sugar()), nil
}

func output(ctx *cli.Context, v interface{}, err error) error {
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(b))
	return err
}

func pairs(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.CurrencyPairs()
	return output(ctx, r, err)
}

func depth(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.MarketDepth(ctx.String(utils.PairFlag.Name))
	return output(ctx, r, err)
}

func book(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.OrderBook(ctx.String(utils.PairFlag.Name))
	return output(ctx, r, err)
}

func transactions(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.RecentTransactions(ctx.String(utils.PairFlag.Name))
	return output(ctx, r, err)
}

func balances(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.Balances()
	return output(ctx, r, err)
}

func balance(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.Balance(ctx.String(utils.CurrencyFlag.Name))
	return output(ctx, r, err)
}

func orders(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.OpenOrders()
	return output(ctx, r, err)
}

func order(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.OpenOrder(ctx.String(utils.OrderIdFlag.Name))
	return output(ctx, r, err)
}

// optionalDecimal returns nil when the flag was not given.
func optionalDecimal(ctx *cli.Context, name string) (*decimal.Decimal, error) {
	if !ctx.IsSet(name) {
		return nil, nil
	}
	d, err := decimal.NewFromString(ctx.String(name))
	if err != nil {
		return nil, errors.Wrapf(err, "bad %s", name)
	}
	return &d, nil
}

func create(ctx *cli.Context) error {
	price, err := decimal.NewFromString(ctx.String(utils.PriceFlag.Name))
	if err != nil {
		return errors.Wrap(err, "bad price")
	}
	amount, err := optionalDecimal(ctx, utils.AmountFlag.Name)
	if err != nil {
		return err
	}
	spend, err := optionalDecimal(ctx, utils.SpendAmountFlag.Name)
	if err != nil {
		return err
	}
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.CreateOrder(gatecoin.OrderRequest{
		Pair:            ctx.String(utils.PairFlag.Name),
		Way:             gatecoin.OrderWay(ctx.String(utils.WayFlag.Name)),
		Price:           price,
		Amount:          amount,
		SpendAmount:     spend,
		ExternalOrderID: ctx.String(utils.ExternalIdFlag.Name),
		ValidationCode:  ctx.String(utils.ValidationCodeFlag.Name),
	})
	return output(ctx, r, err)
}

func cancelOrder(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.CancelOrder(ctx.String(utils.OrderIdFlag.Name))
	return output(ctx, r, err)
}

func cancelAll(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.CancelAllOrders()
	return output(ctx, r, err)
}

func trades(ctx *cli.Context) error {
	c, err := getClient(ctx)
	if err != nil {
		return err
	}
	r, err := c.TradeHistory()
	return output(ctx, r, err)
}

func getHistory(ctx *cli.Context) (*history.History, error) {
	cfg, err := getConfig(ctx)
	if err != nil {
		return nil, err
	}
	h, err := history.New(history.Config{
		Exchange: cfg.Exchange,
		Mongo:    cfg.Mongo,
		Log:      cfg.Log,
		History:  cfg.History,
	})
	if err != nil {
		return nil, err
	}
	if err = h.Init(ctx.Context); err != nil {
		return nil, err
	}
	return h, nil
}

func pull(ctx *cli.Context) error {
	h, err := getHistory(ctx)
	if err != nil {
		return err
	}
	defer h.Close(ctx.Context)
	return h.Pull(ctx.Context)
}

func export(ctx *cli.Context) error {
	start := ctx.String(utils.StartTimeFlag.Name)
	end := ctx.String(utils.EndTimeFlag.Name)
	csvfile := ctx.String(utils.CsvFlag.Name)
	h, err := getHistory(ctx)
	if err != nil {
		return err
	}
	defer h.Close(ctx.Context)
	return h.Export(ctx.Context, start, end, csvfile)
}

func profit(ctx *cli.Context) error {
	start := ctx.String(utils.StartTimeFlag.Name)
	end := ctx.String(utils.EndTimeFlag.Name)
	h, err := getHistory(ctx)
	if err != nil {
		return err
	}
	defer h.Close(ctx.Context)
	return h.Profit(ctx.Context, start, end, ctx.App.Writer)
}

func snap(ctx *cli.Context) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}
	s, err := snapshot.New(snapshot.Config{
		Exchange: cfg.Exchange,
		Log:      cfg.Log,
		Output:   cfg.Output,
	})
	if err != nil {
		return err
	}
	defer s.Close()
	return s.Log()
}
