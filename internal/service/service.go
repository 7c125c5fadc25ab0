package service

import (
	"github.com/nickmuds954-code/Nexus-trade/internal/config"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/miningservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/profileservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/tradeservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/vaultservice"
)

type Services struct {
	Ledger  *ledgerservice.Service
	Trade   *tradeservice.Service
	Mining  *miningservice.Service
	Profile *profileservice.Service
	Vault   *vaultservice.Service
}

// New wires the service graph around the single ledger aggregate. The
// ledger is the only component allowed to mutate balances; every other
// service goes through it.
func New(cfg *config.Config, prices tradeservice.PriceSource) *Services {
	ledger := ledgerservice.New()

	return &Services{
		Ledger: ledger,
		Trade: tradeservice.New(ledger, prices,
			tradeservice.WithSettleDelay(cfg.SettleDelay),
			tradeservice.WithPayoutRate(cfg.PayoutRate),
		),
		Mining:  miningservice.New(ledger, cfg.MiningTick),
		Profile: profileservice.New(ledger),
		Vault:   vaultservice.New(ledger),
	}
}
