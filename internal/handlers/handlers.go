package handlers

import (
	"net/http"

	_ "github.com/nickmuds954-code/Nexus-trade/docs"
	accounthandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/account"
	mininghandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/mining"
	profilehandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/profile"
	tradinghandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/trading"
	vaulthandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/vault"
	wallethandlers "github.com/nickmuds954-code/Nexus-trade/internal/handlers/wallet"
	"github.com/nickmuds954-code/Nexus-trade/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AccountHandler interface {
	Switch(w http.ResponseWriter, r *http.Request)
	GetBalances(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	Exchange(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type TradingHandler interface {
	Place(w http.ResponseWriter, r *http.Request)
	GetPosition(w http.ResponseWriter, r *http.Request)
	GetAssets(w http.ResponseWriter, r *http.Request)
	GetCandles(w http.ResponseWriter, r *http.Request)
	GetSignal(w http.ResponseWriter, r *http.Request)
}

type MiningHandler interface {
	Subscribe(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Stop(w http.ResponseWriter, r *http.Request)
	Collect(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
}

type ProfileHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type VaultHandler interface {
	Unlock(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AccountHandler AccountHandler
	WalletHandler  WalletHandler
	TradingHandler TradingHandler
	MiningHandler  MiningHandler
	ProfileHandler ProfileHandler
	VaultHandler   VaultHandler
}

func New(s *service.Services, market tradinghandlers.Market, gcoinRate float64) *Handlers {
	return &Handlers{
		AccountHandler: accounthandlers.New(s.Ledger),
		WalletHandler:  wallethandlers.New(s.Ledger, gcoinRate),
		TradingHandler: tradinghandlers.New(s.Trade, market),
		MiningHandler:  mininghandlers.New(s.Ledger, s.Mining),
		ProfileHandler: profilehandlers.New(s.Profile),
		VaultHandler:   vaulthandlers.New(s.Vault),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/account", func(r chi.Router) {
			r.Post("/switch", h.AccountHandler.Switch)
			r.Get("/balances", h.AccountHandler.GetBalances)
		})
		r.Route("/wallet", func(r chi.Router) {
			r.Post("/deposit", h.WalletHandler.Deposit)
			r.Post("/withdraw", h.WalletHandler.Withdraw)
			r.Post("/exchange", h.WalletHandler.Exchange)
			r.Get("/history", h.WalletHandler.History)
		})
		r.Route("/trade", func(r chi.Router) {
			r.Post("/", h.TradingHandler.Place)
			r.Get("/position", h.TradingHandler.GetPosition)
		})
		r.Route("/market", func(r chi.Router) {
			r.Get("/assets", h.TradingHandler.GetAssets)
			r.Get("/{symbol}/candles", h.TradingHandler.GetCandles)
			r.Get("/{symbol}/signal", h.TradingHandler.GetSignal)
		})
		r.Route("/mining", func(r chi.Router) {
			r.Post("/subscribe", h.MiningHandler.Subscribe)
			r.Post("/start", h.MiningHandler.Start)
			r.Post("/stop", h.MiningHandler.Stop)
			r.Post("/collect", h.MiningHandler.Collect)
			r.Get("/status", h.MiningHandler.Status)
		})
		r.Route("/profile", func(r chi.Router) {
			r.Get("/", h.ProfileHandler.Get)
			r.Put("/", h.ProfileHandler.Update)
		})
		r.Route("/vault", func(r chi.Router) {
			r.Post("/unlock", h.VaultHandler.Unlock)
			r.Post("/withdraw", h.VaultHandler.Withdraw)
		})
	})

	return r
}
