package config

import (
	"flag"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Address        string        `env:"RUN_ADDRESS"         envDefault:"localhost:8080"`
	BinanceAddress string        `env:"BINANCE_API_ADDRESS" envDefault:"https://api.binance.com"`
	LogLvl         string        `env:"LOG_LVL"             envDefault:"info"`
	SettleDelay    time.Duration `env:"SETTLE_DELAY"        envDefault:"3s"`
	MiningTick     time.Duration `env:"MINING_TICK"         envDefault:"1s"`
	PayoutRate     float64       `env:"PAYOUT_RATE"         envDefault:"0.85"`
	GCoinRate      float64       `env:"GCOIN_RATE"          envDefault:"0.85"`
}

func New() *Config {
	cfg := &Config{}

	env.Parse(cfg)

	flag.StringVar(&cfg.Address, "a", cfg.Address, "address and port to run server")
	flag.StringVar(&cfg.BinanceAddress, "b", cfg.BinanceAddress, "market data seed address")
	flag.StringVar(&cfg.LogLvl, "l", cfg.LogLvl, "log level")
	flag.Parse()

	if !strings.HasPrefix(cfg.BinanceAddress, "http://") && !strings.HasPrefix(cfg.BinanceAddress, "https://") {
		cfg.BinanceAddress = "https://" + cfg.BinanceAddress
	}

	return cfg
}
