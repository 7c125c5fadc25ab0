package domain

import "time"

type AccountType string

const (
	AccountDemo AccountType = "DEMO"
	AccountReal AccountType = "REAL"
)

type Currency string

const (
	CurrencyUSD   Currency = "USD"
	CurrencyGCoin Currency = "GCOIN"
)

// Country selects the deposit gateway: mobile money regions settle to a
// phone number, everywhere else to a bank or card identifier. An empty
// value defaults to the mobile money gateway.
type Country string

var mobileMoneyRegions = map[Country]bool{
	"Kenya":    true,
	"Ghana":    true,
	"Nigeria":  true,
	"Uganda":   true,
	"Tanzania": true,
	"Rwanda":   true,
}

func (c Country) IsMobileMoneyRegion() bool {
	return c == "" || mobileMoneyRegions[c]
}

type TransactionType string

const (
	TxDeposit      TransactionType = "DEPOSIT"
	TxWithdraw     TransactionType = "WITHDRAW"
	TxMiningReward TransactionType = "MINING_REWARD"
	TxTradeWin     TransactionType = "TRADE_WIN"
	TxTradeLoss    TransactionType = "TRADE_LOSS"
	TxSubscription TransactionType = "SUBSCRIPTION"
	TxGCoinSale    TransactionType = "GCOIN_SALE"
)

type TransactionStatus string

const (
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusPending   TransactionStatus = "PENDING"
	StatusFailed    TransactionStatus = "FAILED"
)

// Transaction is immutable once created; the ledger only ever prepends,
// newest first. Amount sign encodes credit/debit.
type Transaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	Currency    Currency          `json:"currency"`
	AccountType AccountType       `json:"account_type"`
	Date        time.Time         `json:"date"`
	Status      TransactionStatus `json:"status"`
}

type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

type PositionState string

const (
	PositionPending PositionState = "PENDING"
	PositionWon     PositionState = "WON"
	PositionLost    PositionState = "LOST"
)

// Position is a single fixed-delay contract. Payout is the gross amount
// returned on a win (stake plus profit), zero on a loss.
type Position struct {
	ID         string        `json:"id"`
	Asset      string        `json:"asset"`
	Direction  Direction     `json:"direction"`
	Stake      float64       `json:"stake"`
	Currency   Currency      `json:"currency"`
	Account    AccountType   `json:"account"`
	OpenPrice  float64       `json:"open_price"`
	ClosePrice float64       `json:"close_price,omitempty"`
	State      PositionState `json:"state"`
	OpenedAt   time.Time     `json:"opened_at"`
	SettledAt  time.Time     `json:"settled_at,omitempty"`
	Payout     float64       `json:"payout"`
}

type Asset struct {
	Symbol   string  `json:"symbol"`
	Name     string  `json:"name"`
	Pair     string  `json:"pair"`
	Color    string  `json:"color"`
	Fallback float64 `json:"-"`
}

var SupportedAssets = []Asset{
	{Symbol: "BTC", Name: "Bitcoin", Pair: "BTCUSDT", Color: "#F7931A", Fallback: 68000},
	{Symbol: "ETH", Name: "Ethereum", Pair: "ETHUSDT", Color: "#627EEA", Fallback: 3500},
	{Symbol: "SOL", Name: "Solana", Pair: "SOLUSDT", Color: "#14F195", Fallback: 145},
	{Symbol: "BNB", Name: "Binance Coin", Pair: "BNBUSDT", Color: "#F3BA2F", Fallback: 145},
	{Symbol: "XRP", Name: "Ripple", Pair: "XRPUSDT", Color: "#23292F", Fallback: 145},
	{Symbol: "ADA", Name: "Cardano", Pair: "ADAUSDT", Color: "#0033AD", Fallback: 145},
	{Symbol: "DOGE", Name: "Dogecoin", Pair: "DOGEUSDT", Color: "#C2A633", Fallback: 145},
}

func FindAsset(symbol string) (Asset, bool) {
	for _, a := range SupportedAssets {
		if a.Symbol == symbol {
			return a, true
		}
	}
	return Asset{}, false
}

type Candle struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

type MarketStats struct {
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	ChangePct float64 `json:"change_pct"`
	Volume    float64 `json:"volume"`
}

type SignalType string

const (
	SignalBuy     SignalType = "BUY"
	SignalSell    SignalType = "SELL"
	SignalNeutral SignalType = "NEUTRAL"
)

type Signal struct {
	Type       SignalType `json:"type"`
	Confidence int        `json:"confidence"`
}

type Profile struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Verified     bool   `json:"verified"`
}

// BalanceSnapshot is a point-in-time copy of the four balances plus the
// derived active pair.
type BalanceSnapshot struct {
	Active           AccountType `json:"active"`
	USDDemo          float64     `json:"usd_demo"`
	USDReal          float64     `json:"usd_real"`
	GCoinDemo        float64     `json:"gcoin_demo"`
	GCoinReal        float64     `json:"gcoin_real"`
	ActiveUSD        float64     `json:"active_usd"`
	ActiveGCoin      float64     `json:"active_gcoin"`
	MiningSubscribed bool        `json:"mining_subscribed"`
}
