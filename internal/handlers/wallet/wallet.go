package wallet

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

type Service interface {
	Deposit(amount float64, destination string, country domain.Country) (domain.Transaction, error)
	Withdraw(amount float64, destination string) (domain.Transaction, error)
	ExchangeGCoin(gAmount, usdGain float64) (usdLeg, gcoinLeg domain.Transaction)
	ActiveAccount() domain.AccountType
	ActiveBalance(currency domain.Currency) float64
	Query(account domain.AccountType, typeFilter domain.TransactionType, from, to *time.Time) []domain.Transaction
}

type WalletHandler struct {
	walletService Service
	gcoinRate     float64
}

func New(walletService Service, gcoinRate float64) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		gcoinRate:     gcoinRate,
	}
}

// Deposit godoc
//
//	@Summary		Deposit USD into the active account
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.DepositRequestDTO	true	"Deposit payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or destination"
//	@Router			/api/wallet/deposit [post]
func (h *WalletHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.walletService.Deposit(req.Amount, req.Destination, domain.Country(req.Country))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// Withdraw godoc
//
//	@Summary		Withdraw USD from the active account
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.WithdrawRequestDTO	true	"Withdrawal payload"
//	@Success		200		{object}	dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount or destination"
//	@Failure		402		{object}	utils.Response	"Insufficient balance"
//	@Router			/api/wallet/withdraw [post]
func (h *WalletHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.WithdrawRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	tx, err := h.walletService.Withdraw(req.Amount, req.Destination)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toTransactionDTO(tx))
}

// Exchange godoc
//
//	@Summary		Sell G-Coin for USD at the fixed rate
//	@Tags			Wallet
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ExchangeRequestDTO	true	"Exchange payload"
//	@Success		200		{object}	dto.ExchangeResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid amount"
//	@Failure		402		{object}	utils.Response	"Insufficient G-Coin balance"
//	@Router			/api/wallet/exchange [post]
func (h *WalletHandler) Exchange(w http.ResponseWriter, r *http.Request) {
	var req dto.ExchangeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.GAmount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be positive")
		return
	}
	if req.GAmount > h.walletService.ActiveBalance(domain.CurrencyGCoin) {
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient G-Coin balance")
		return
	}

	usdGain := req.GAmount * h.gcoinRate
	h.walletService.ExchangeGCoin(req.GAmount, usdGain)

	utils.RespondWithJSON(w, http.StatusOK, dto.ExchangeResponseDTO{
		GAmount: req.GAmount,
		USDGain: usdGain,
		Rate:    h.gcoinRate,
	})
}

// History godoc
//
//	@Summary		Transaction history for the active account
//	@Description	Filter by type and an inclusive date range (YYYY-MM-DD).
//	@Tags			Wallet
//	@Produce		json
//	@Param			type	query		string	false	"Transaction type or ALL"
//	@Param			from	query		string	false	"Start date"
//	@Param			to		query		string	false	"End date"
//	@Success		200		{array}		dto.TransactionResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid date"
//	@Router			/api/wallet/history [get]
func (h *WalletHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var typeFilter domain.TransactionType
	if t := q.Get("type"); t != "" && t != "ALL" {
		typeFilter = domain.TransactionType(t)
	}

	from, err := parseDay(q.Get("from"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid from date")
		return
	}
	to, err := parseDay(q.Get("to"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid to date")
		return
	}

	txs := h.walletService.Query(h.walletService.ActiveAccount(), typeFilter, from, to)
	response := make([]dto.TransactionResponseDTO, len(txs))
	for i, tx := range txs {
		response[i] = toTransactionDTO(tx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func parseDay(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	day, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, err
	}
	return &day, nil
}

func toTransactionDTO(tx domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Currency:    string(tx.Currency),
		AccountType: string(tx.AccountType),
		Date:        tx.Date,
		Status:      string(tx.Status),
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgerservice.ErrInsufficientFunds):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, ledgerservice.ErrInvalidInput):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
