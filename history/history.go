package history

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/xyths/gatecoin/cmd/utils"
	"github.com/xyths/gatecoin/gatecoin"
	"github.com/xyths/gatecoin/types"
	"github.com/xyths/hs"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	Log      hs.LogConf
	History  hs.HistoryConf
}

// History keeps a copy of the account's trade history in mongo.
type History struct {
	config Config
	Sugar  *zap.SugaredLogger

	db *mongo.Database
	ex *gatecoin.Client

	interval time.Duration
}

func New(cfg Config) (*History, error) {
	d, err := time.ParseDuration(cfg.History.Interval)
	if err != nil {
		return nil, errors.Wrap(err, "parse history interval")
	}
	if d <= 0 {
		return nil, errors.Errorf("history interval must be positive, got %s", d)
	}
	return &History{
		config:   cfg,
		interval: d,
	}, nil
}

func (h *History) Init(ctx context.Context) error {
	l, err := hs.NewZapLogger(h.config.Log)
	if err != nil {
		return err
	}
	h.Sugar = l.Sugar()
	h.Sugar.Info("Logger initialized")

	db, err := hs.ConnectMongo(ctx, h.config.Mongo)
	if err != nil {
		return err
	}
	h.db = db
	h.Sugar.Info("Mongo connected")

	e := h.config.Exchange
	h.ex = gatecoin.New(e.Key, e.Secret, e.Host, h.Sugar)
	h.Sugar.Infof("Exchange %s-%s initialized", e.Name, e.Label)
	return nil
}

func (h *History) Close(ctx context.Context) {
	if h.db != nil {
		_ = h.db.Client().Disconnect(ctx)
	}
	if h.Sugar != nil {
		_ = h.Sugar.Sync()
	}
}

// Pull stores new trades once, then again every interval until ctx is done.
func (h *History) Pull(ctx context.Context) error {
	if err := h.getHistoryOnce(ctx); err != nil {
		h.Sugar.Errorf("error when getHistory: %s", err)
	}

	for {
		select {
		case <-ctx.Done():
			h.Sugar.Info(ctx.Err())
			return nil
		case <-time.After(h.interval):
			if err := h.getHistoryOnce(ctx); err != nil {
				h.Sugar.Errorf("error when getHistory: %s", err)
			}
		}
	}
}

const collNameHistory = "history"

func (h *History) getHistoryOnce(ctx context.Context) error {
	history, err := h.ex.TradeHistory()
	if err != nil {
		return err
	}
	if !history.Status.OK() {
		return errors.Errorf("trade history failed: %s", history.Status.Message)
	}

	all := len(history.Transactions)
	success := 0
	duplicate := 0
	fail := 0

	coll := h.db.Collection(collNameHistory)
	for _, t := range history.Transactions {
		trade := Convert(h.config.Exchange.Label, t)
		h.Sugar.Debugw("got trade", "trade", trade)

		if c, err := coll.CountDocuments(ctx, bson.D{{Key: "_id", Value: trade.Id}}); err != nil {
			h.Sugar.Errorw("count error", "tradeId", trade.TradeId, "error", err)
			fail++
		} else if c == 0 {
			if _, err1 := coll.InsertOne(ctx, &trade); err1 != nil {
				h.Sugar.Errorw("insert error", "tradeId", trade.TradeId, "error", err1)
				fail++
			} else {
				success++
			}
		} else {
			duplicate++
		}
	}
	h.Sugar.Infof("get history for %s-%s finish now, all: %d, success: %d, duplicate: %d, fail: %d",
		h.config.Exchange.Name, h.config.Exchange.Label, all, success, duplicate, fail)
	return nil
}

// Convert turns a trade of the account into its stored form.
func Convert(label string, t gatecoin.TraderTransaction) types.Trade {
	trade := types.Trade{
		Id:        tradeKey(label, t.TransactionID),
		TradeId:   t.TransactionID,
		Label:     label,
		Pair:      t.CurrencyPair,
		Way:       t.Way,
		Price:     t.Price.String(),
		Quantity:  t.Quantity.String(),
		Date:      t.TransactionTime,
		FeeRole:   t.FeeRole,
		FeeRate:   t.FeeRate.String(),
		FeeAmount: t.FeeAmount.String(),
	}
	total := t.Price.Mul(t.Quantity)
	switch gatecoin.OrderWay(t.Way) {
	case gatecoin.Bid:
		trade.OrderId = t.BidOrderID
		trade.Total = total.Neg().String()
	case gatecoin.Ask:
		trade.OrderId = t.AskOrderID
		trade.Total = total.String()
	default:
		trade.Total = total.String()
	}
	return trade
}

func tradeKey(label string, tradeId int64) string {
	return label + ":" + strconv.FormatInt(tradeId, 10)
}

func (h *History) Export(ctx context.Context, start, end, csvfile string) error {
	startTime, endTime, err := utils.ParseStartEndTime(start, end)
	if err != nil {
		h.Sugar.Error(err)
		return err
	}
	f, err := os.Create(csvfile)
	if err != nil {
		h.Sugar.Error(err)
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	trades, err := h.getTrades(ctx, startTime, endTime)
	if err != nil {
		h.Sugar.Errorf("error when getTrades: %s", err)
		return err
	}
	if err = WriteCSV(f, trades); err != nil {
		return err
	}
	h.Sugar.Infof("exported %d trades to %s", len(trades), csvfile)
	return nil
}

var csvHeader = []string{"account", "time", "pair", "way", "price", "quantity", "total", "feeRole", "feeAmount", "tradeId", "orderId"}

func WriteCSV(out io.Writer, trades []types.Trade) error {
	w := csv.NewWriter(out)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(err, "write csv header")
	}
	for _, t := range trades {
		record := []string{
			t.Label,
			t.Date.UTC().Format(utils.TimeLayout),
			t.Pair,
			t.Way,
			t.Price,
			t.Quantity,
			t.Total,
			t.FeeRole,
			t.FeeAmount,
			strconv.FormatInt(t.TradeId, 10),
			t.OrderId,
		}
		if err := w.Write(record); err != nil {
			return errors.Wrapf(err, "write trade %d", t.TradeId)
		}
	}
	w.Flush()
	return w.Error()
}

func (h *History) getTrades(ctx context.Context, start, end time.Time) (trades []types.Trade, err error) {
	coll := h.db.Collection(collNameHistory)
	cursor, err := coll.Find(ctx, bson.D{
		{Key: "label", Value: h.config.Exchange.Label},
		{Key: "date", Value: bson.D{
			{Key: "$gte", Value: start},
			{Key: "$lte", Value: end},
		}},
	})
	if err != nil {
		return
	}
	err = cursor.All(ctx, &trades)

	return
}
