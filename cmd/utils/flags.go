package utils

import "github.com/urfave/cli/v2"

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Value:   "config.json",
		Usage:   "load configuration from `file`",
	}
	PairFlag = &cli.StringFlag{
		Name:    "pair",
		Aliases: []string{"p"},
		Value:   "BTCUSD",
		Usage:   "currency `pair`, e.g. BTCUSD",
	}
	CurrencyFlag = &cli.StringFlag{
		Name:     "currency",
		Usage:    "currency `code`, e.g. USD",
		Required: true,
	}
	OrderIdFlag = &cli.StringFlag{
		Name:     "id",
		Usage:    "order `id` (clOrderId)",
		Required: true,
	}
	WayFlag = &cli.StringFlag{
		Name:     "way",
		Aliases:  []string{"w"},
		Usage:    "order `way`: Bid or Ask",
		Required: true,
	}
	PriceFlag = &cli.StringFlag{
		Name:     "price",
		Usage:    "limit `price`",
		Required: true,
	}
	AmountFlag = &cli.StringFlag{
		Name:  "amount",
		Usage: "order `amount` in base currency",
	}
	SpendAmountFlag = &cli.StringFlag{
		Name:  "spend",
		Usage: "`amount` of quote currency to spend",
	}
	ExternalIdFlag = &cli.StringFlag{
		Name:  "external-id",
		Usage: "client side order `id`",
	}
	ValidationCodeFlag = &cli.StringFlag{
		Name:  "validation-code",
		Usage: "validation `code` for the order",
	}

	StartTimeFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Value:   "",
		Usage:   "start `time`, UTC, " + TimeLayout,
	}
	EndTimeFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Value:   "",
		Usage:   "end `time`, UTC, " + TimeLayout,
	}
	CsvFlag = &cli.StringFlag{
		Name:  "csv",
		Value: "history.csv",
		Usage: "export to `file`",
	}
)
