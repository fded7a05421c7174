package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/urfave/cli/v2"
	"github.com/xyths/gatecoin/cmd/utils"
)

var app *cli.App

func init() {
	app = &cli.App{
		Name:    filepath.Base(os.Args[0]),
		Usage:   "the Gatecoin exchange command line client",
		Version: "0.1.0",
	}

	app.Commands = []*cli.Command{
		pairsCommand,
		depthCommand,
		bookCommand,
		transactionsCommand,
		balancesCommand,
		balanceCommand,
		ordersCommand,
		orderCommand,
		createCommand,
		cancelCommand,
		cancelAllCommand,
		tradesCommand,
		historyCommand,
		snapshotCommand,
	}
	app.Flags = []cli.Flag{
		utils.ConfigFlag,
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
		<-ch
		cancel()
	}()

	if err := app.RunContext(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
