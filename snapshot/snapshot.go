package snapshot

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xyths/gatecoin/gatecoin"
	"github.com/xyths/gatecoin/types"
	"github.com/xyths/hs"
	"go.uber.org/zap"
)

type Config struct {
	Exchange hs.ExchangeConf
	Log      hs.LogConf
	Output   string
}

type Snapshot struct {
	config Config
	Sugar  *zap.SugaredLogger
	ex     *gatecoin.Client
}

func New(cfg Config) (*Snapshot, error) {
	l, err := hs.NewZapLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	l.Sugar().Info("Logger initialized")
	e := cfg.Exchange
	s := &Snapshot{
		config: cfg,
		Sugar:  l.Sugar(),
	}
	s.ex = gatecoin.New(e.Key, e.Secret, e.Host, s.Sugar)
	return s, nil
}

// Balances converts the account balances into snapshot lines, all stamped with now.
func Balances(ex *gatecoin.Client, e hs.ExchangeConf, now time.Time) (balances []types.Balance, err error) {
	r, err := ex.Balances()
	if err != nil {
		return nil, err
	}
	if !r.Status.OK() {
		return nil, errors.Errorf("balances failed: %s", r.Status.Message)
	}
	ts := now.UTC().Format(time.RFC3339)
	for _, b := range r.Balances {
		balances = append(balances, types.Balance{
			Exchange:  e.Name,
			Account:   e.Label,
			Currency:  strings.ToUpper(b.Currency),
			Balance:   b.Balance.String(),
			Available: b.AvailableBalance.String(),
			Pending:   b.PendingIncoming.Sub(b.PendingOutgoing).String(),
			OpenOrder: b.OpenOrder.String(),
			IsDigital: b.IsDigital,
			Time:      ts,
		})
	}
	return
}

// Write appends one JSON document per line.
func Write(out io.Writer, balances []types.Balance) error {
	for _, b := range balances {
		b2, err := json.Marshal(b)
		if err != nil {
			return errors.Wrapf(err, "marshal %s", b.Currency)
		}
		if _, err = fmt.Fprintf(out, "%s\n", string(b2)); err != nil {
			return err
		}
	}
	return nil
}

// Log appends the current balances to the output file. Nothing is written, and the file
// is not created, when the balances cannot be fetched.
func (s *Snapshot) Log() error {
	balances, err := Balances(s.ex, s.config.Exchange, time.Now())
	if err != nil {
		s.Sugar.Errorf("balance error: %s", err)
		return err
	}

	f, err := os.OpenFile(s.config.Output, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		s.Sugar.Error(err)
		return err
	}
	defer f.Close()

	if err = Write(f, balances); err != nil {
		s.Sugar.Error(err)
		return err
	}
	s.Sugar.Infof("snapshot of %d currencies written to %s", len(balances), s.config.Output)
	return nil
}

func (s *Snapshot) Close() {
	_ = s.Sugar.Sync()
}
