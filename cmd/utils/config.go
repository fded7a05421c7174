package utils

import (
	"os"

	"github.com/pkg/errors"
	"github.com/xyths/hs"
)

// environment variables that override the credentials of the config file
const (
	EnvPublicKey  = "GATECOIN_PUBLIC_KEY"
	EnvPrivateKey = "GATECOIN_PRIVATE_KEY"
)

type Config struct {
	Exchange hs.ExchangeConf
	Mongo    hs.MongoConf
	Log      hs.LogConf
	History  hs.HistoryConf
	Output   string
}

func ParseConfig(filename string) (c Config, err error) {
	if err = hs.ParseJsonConfig(filename, &c); err != nil {
		return c, errors.Wrapf(err, "parse config %s", filename)
	}
	if key := os.Getenv(EnvPublicKey); key != "" {
		c.Exchange.Key = key
	}
	if secret := os.Getenv(EnvPrivateKey); secret != "" {
		c.Exchange.Secret = secret
	}
	return c, nil
}
