package tradeservice

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockLedger, *MockPriceSource) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)
	prices := NewMockPriceSource(ctrl)
	service := New(ledger, prices, WithSettleDelay(10*time.Millisecond))
	defer ctrl.Finish()
	return service, ledger, prices
}

func waitSettled(t *testing.T, service *Service) domain.Position {
	t.Helper()
	assert.Eventually(t, func() bool {
		pos, ok := service.Position()
		return ok && pos.State != domain.PositionPending
	}, time.Second, 5*time.Millisecond)
	pos, _ := service.Position()
	return pos
}

func TestPlaceValidation(t *testing.T) {
	tests := []struct {
		name          string
		asset         string
		direction     domain.Direction
		stake         float64
		prepareMock   func(ledger *MockLedger, prices *MockPriceSource)
		expectedError error
	}{
		{
			name:          "Unknown direction",
			asset:         "BTC",
			direction:     "SIDEWAYS",
			stake:         10,
			expectedError: ErrInvalidStake,
		},
		{
			name:          "Zero stake",
			asset:         "BTC",
			direction:     domain.DirectionUp,
			stake:         0,
			expectedError: ErrInvalidStake,
		},
		{
			name:          "Negative stake",
			asset:         "BTC",
			direction:     domain.DirectionDown,
			stake:         -5,
			expectedError: ErrInvalidStake,
		},
		{
			name:          "Unknown asset",
			asset:         "SHIB",
			direction:     domain.DirectionUp,
			stake:         10,
			expectedError: ErrUnknownAsset,
		},
		{
			name:      "Stake exceeds balance",
			asset:     "BTC",
			direction: domain.DirectionUp,
			stake:     10,
			prepareMock: func(ledger *MockLedger, prices *MockPriceSource) {
				ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(5.0)
			},
			expectedError: ErrInsufficientFunds,
		},
		{
			name:      "Price feed down at entry",
			asset:     "BTC",
			direction: domain.DirectionUp,
			stake:     10,
			prepareMock: func(ledger *MockLedger, prices *MockPriceSource) {
				ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
				prices.EXPECT().LastPrice("BTC").Return(0.0, errors.New("feed down"))
			},
			expectedError: ErrPriceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledger, prices := NewMock(t)
			if tt.prepareMock != nil {
				tt.prepareMock(ledger, prices)
			}

			_, err := service.Place(tt.asset, tt.direction, tt.stake, domain.CurrencyUSD)
			assert.ErrorIs(t, err, tt.expectedError)

			_, ok := service.Position()
			assert.False(t, ok)
		})
	}
}

func TestPlaceOpensPendingContract(t *testing.T) {
	service, ledger, prices := NewMock(t)
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil)
	prices.EXPECT().LastPrice("BTC").Return(68100.0, nil)
	ledger.EXPECT().Record(domain.TxTradeWin, 8.5, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	pos, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)

	assert.NotEmpty(t, pos.ID)
	assert.Equal(t, domain.PositionPending, pos.State)
	assert.Equal(t, 68000.0, pos.OpenPrice)
	assert.Equal(t, domain.AccountDemo, pos.Account)

	settled := waitSettled(t, service)
	assert.Equal(t, domain.PositionWon, settled.State)
	assert.Equal(t, 68100.0, settled.ClosePrice)
	assert.InDelta(t, 18.5, settled.Payout, 1e-9)
}

func TestSettleLossDebitsStake(t *testing.T) {
	service, ledger, prices := NewMock(t)
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo)
	prices.EXPECT().LastPrice("ETH").Return(3500.0, nil)
	prices.EXPECT().LastPrice("ETH").Return(3400.0, nil)
	ledger.EXPECT().Record(domain.TxTradeLoss, -10.0, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	_, err := service.Place("ETH", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)

	settled := waitSettled(t, service)
	assert.Equal(t, domain.PositionLost, settled.State)
	assert.Equal(t, 0.0, settled.Payout)
	assert.Equal(t, 1, service.LossStreak())
}

func TestSettleDownDirectionWin(t *testing.T) {
	service, ledger, prices := NewMock(t)
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountReal)
	prices.EXPECT().LastPrice("SOL").Return(145.0, nil)
	prices.EXPECT().LastPrice("SOL").Return(144.2, nil)
	ledger.EXPECT().Record(domain.TxTradeWin, 17.0, domain.CurrencyUSD, domain.AccountReal).Return(domain.Transaction{})

	_, err := service.Place("SOL", domain.DirectionDown, 20, domain.CurrencyUSD)
	require.NoError(t, err)

	settled := waitSettled(t, service)
	assert.Equal(t, domain.PositionWon, settled.State)
	assert.Equal(t, 0, service.LossStreak())
}

func TestSecondPlaceWhilePendingRejected(t *testing.T) {
	service, ledger, prices := NewMock(t)
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil)
	prices.EXPECT().LastPrice("BTC").Return(67000.0, nil)
	ledger.EXPECT().Record(domain.TxTradeLoss, -10.0, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)

	_, err = service.Place("ETH", domain.DirectionUp, 10, domain.CurrencyUSD)
	assert.ErrorIs(t, err, ErrTradeInProgress)

	waitSettled(t, service)
}

func TestForcedWinAfterLossStreak(t *testing.T) {
	service, ledger, prices := NewMock(t)

	// Four natural losses: price never moves up.
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(1000.0).Times(5)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo).Times(5)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil).Times(10)
	ledger.EXPECT().Record(domain.TxTradeLoss, -10.0, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{}).Times(4)
	ledger.EXPECT().Record(domain.TxTradeWin, 8.5, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	for i := 0; i < 4; i++ {
		_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
		require.NoError(t, err)
		settled := waitSettled(t, service)
		require.Equal(t, domain.PositionLost, settled.State)
	}
	require.Equal(t, 4, service.LossStreak())

	// Fifth contract would lose naturally but the streak forces a win.
	_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)

	settled := waitSettled(t, service)
	assert.Equal(t, domain.PositionWon, settled.State)
	assert.Equal(t, 0, service.LossStreak())
}

func TestWinResetsLossStreak(t *testing.T) {
	service, ledger, prices := NewMock(t)

	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(1000.0).Times(3)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo).Times(3)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil).Times(2)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil).Times(2)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil)
	prices.EXPECT().LastPrice("BTC").Return(68500.0, nil)
	ledger.EXPECT().Record(domain.TxTradeLoss, -10.0, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{}).Times(2)
	ledger.EXPECT().Record(domain.TxTradeWin, 8.5, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	for i := 0; i < 2; i++ {
		_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
		require.NoError(t, err)
		waitSettled(t, service)
	}
	require.Equal(t, 2, service.LossStreak())

	_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)
	settled := waitSettled(t, service)

	assert.Equal(t, domain.PositionWon, settled.State)
	assert.Equal(t, 0, service.LossStreak())
}

func TestSettleWithFeedDownFallsBackToOpenPrice(t *testing.T) {
	service, ledger, prices := NewMock(t)
	ledger.EXPECT().ActiveBalance(domain.CurrencyUSD).Return(100.0)
	ledger.EXPECT().ActiveAccount().Return(domain.AccountDemo)
	prices.EXPECT().LastPrice("BTC").Return(68000.0, nil)
	prices.EXPECT().LastPrice("BTC").Return(0.0, errors.New("feed down"))
	ledger.EXPECT().Record(domain.TxTradeLoss, -10.0, domain.CurrencyUSD, domain.AccountDemo).Return(domain.Transaction{})

	_, err := service.Place("BTC", domain.DirectionUp, 10, domain.CurrencyUSD)
	require.NoError(t, err)

	settled := waitSettled(t, service)
	assert.Equal(t, domain.PositionLost, settled.State)
	assert.Equal(t, 68000.0, settled.ClosePrice)
}

func TestPositionEmptyBeforeFirstTrade(t *testing.T) {
	service, _, _ := NewMock(t)

	_, ok := service.Position()
	assert.False(t, ok)
	assert.Equal(t, 0, service.LossStreak())
}
