package vaultservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
)

func newFundedLedger(t *testing.T, subscriptions int) *ledgerservice.Service {
	t.Helper()
	ledger := ledgerservice.New()
	ledger.Record(domain.TxDeposit, 100, domain.CurrencyUSD, domain.AccountReal)
	for i := 0; i < subscriptions; i++ {
		ok, err := ledger.SubscribeMining("0712345678")
		require.NoError(t, err)
		require.True(t, ok)
	}
	return ledger
}

func TestUnlock(t *testing.T) {
	tests := []struct {
		name          string
		passcode      string
		expectedError error
	}{
		{name: "Correct passcode", passcode: "2473651738"},
		{name: "Wrong passcode", passcode: "0000000000", expectedError: ErrVaultLocked},
		{name: "Empty passcode", passcode: "", expectedError: ErrVaultLocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := New(ledgerservice.New())

			err := service.Unlock(tt.passcode)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFunds(t *testing.T) {
	service := New(newFundedLedger(t, 3))

	funds, err := service.Funds("2473651738")
	assert.NoError(t, err)
	assert.Equal(t, 3.0, funds)

	_, err = service.Funds("1111111111")
	assert.ErrorIs(t, err, ErrVaultLocked)
}

func TestWithdraw(t *testing.T) {
	tests := []struct {
		name           string
		subscriptions  int
		passcode       string
		expectedAmount float64
		expectedError  error
	}{
		{
			name:           "Sweeps accumulated fees",
			subscriptions:  2,
			passcode:       "2473651738",
			expectedAmount: 2.0,
		},
		{
			name:          "Empty vault",
			subscriptions: 0,
			passcode:      "2473651738",
			expectedError: ErrVaultEmpty,
		},
		{
			name:          "Wrong passcode",
			subscriptions: 2,
			passcode:      "9999999999",
			expectedError: ErrVaultLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := newFundedLedger(t, tt.subscriptions)
			service := New(ledger)

			amount, destination, err := service.Withdraw(tt.passcode)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Equal(t, float64(tt.subscriptions), ledger.DeveloperFunds())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedAmount, amount)
			assert.Equal(t, "0706371846", destination)
			assert.Equal(t, 0.0, ledger.DeveloperFunds())
		})
	}
}

type drainedLedger struct{}

func (drainedLedger) DeveloperFunds() float64         { return 2.0 }
func (drainedLedger) WithdrawDeveloperFunds() float64 { return 0 }

func TestWithdrawReportsEmptyOnZeroSweep(t *testing.T) {
	// The sweep itself decides emptiness; a stale nonzero read from a
	// concurrent drain must not produce a zero-amount payout.
	service := New(drainedLedger{})

	_, _, err := service.Withdraw("2473651738")

	assert.ErrorIs(t, err, ErrVaultEmpty)
}

func TestWithdrawTwice(t *testing.T) {
	service := New(newFundedLedger(t, 1))

	_, _, err := service.Withdraw("2473651738")
	require.NoError(t, err)

	_, _, err = service.Withdraw("2473651738")
	assert.ErrorIs(t, err, ErrVaultEmpty)
}
