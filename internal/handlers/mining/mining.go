package mining

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/ledgerservice"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/miningservice"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

// Subscriber is the ledger-side subscription operation; Miner is the
// accumulator lifecycle.
type Subscriber interface {
	SubscribeMining(mobile string) (bool, error)
	IsMiningSubscribed() bool
}

type Miner interface {
	Start() error
	Stop() error
	Collect() domain.Transaction
	Accumulated() float64
	Running() bool
}

type MiningHandler struct {
	subscriber Subscriber
	miner      Miner
}

func New(subscriber Subscriber, miner Miner) *MiningHandler {
	return &MiningHandler{
		subscriber: subscriber,
		miner:      miner,
	}
}

// Subscribe godoc
//
//	@Summary	Pay the one-time fee from the REAL balance and unlock mining
//	@Tags		Mining
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SubscribeMiningRequestDTO	true	"Top-up mobile number"
//	@Success	200		{object}	dto.MiningStatusResponseDTO
//	@Failure	400		{object}	utils.Response	"Invalid mobile number"
//	@Failure	402		{object}	utils.Response	"Insufficient REAL balance"
//	@Router		/api/mining/subscribe [post]
func (h *MiningHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req dto.SubscribeMiningRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	ok, err := h.subscriber.SubscribeMining(req.Mobile)
	if err != nil {
		if errors.Is(err, ledgerservice.ErrInvalidInput) {
			utils.RespondWithError(w, http.StatusBadRequest, "valid mobile number required")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !ok {
		utils.RespondWithError(w, http.StatusPaymentRequired, "insufficient REAL account balance, top up $1.00 first")
		return
	}
	h.respondStatus(w)
}

// Start godoc
//
//	@Summary	Start the mining accumulator
//	@Tags		Mining
//	@Produce	json
//	@Success	200	{object}	dto.MiningStatusResponseDTO
//	@Failure	402	{object}	utils.Response	"Subscription required"
//	@Failure	409	{object}	utils.Response	"Already running"
//	@Router		/api/mining/start [post]
func (h *MiningHandler) Start(w http.ResponseWriter, r *http.Request) {
	if err := h.miner.Start(); err != nil {
		switch {
		case errors.Is(err, miningservice.ErrNotSubscribed):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, miningservice.ErrAlreadyRunning):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	h.respondStatus(w)
}

// Stop godoc
//
//	@Summary	Halt the accumulator without collecting
//	@Tags		Mining
//	@Produce	json
//	@Success	200	{object}	dto.MiningStatusResponseDTO
//	@Failure	409	{object}	utils.Response	"Not running"
//	@Router		/api/mining/stop [post]
func (h *MiningHandler) Stop(w http.ResponseWriter, r *http.Request) {
	if err := h.miner.Stop(); err != nil {
		utils.RespondWithError(w, http.StatusConflict, err.Error())
		return
	}
	h.respondStatus(w)
}

// Collect godoc
//
//	@Summary	Move the accumulated reward into the active account's ledger
//	@Tags		Mining
//	@Produce	json
//	@Success	200	{object}	dto.TransactionResponseDTO
//	@Router		/api/mining/collect [post]
func (h *MiningHandler) Collect(w http.ResponseWriter, r *http.Request) {
	tx := h.miner.Collect()
	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResponseDTO{
		ID:          tx.ID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Currency:    string(tx.Currency),
		AccountType: string(tx.AccountType),
		Date:        tx.Date,
		Status:      string(tx.Status),
	})
}

// Status godoc
//
//	@Summary	Accumulator state
//	@Tags		Mining
//	@Produce	json
//	@Success	200	{object}	dto.MiningStatusResponseDTO
//	@Router		/api/mining/status [get]
func (h *MiningHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.respondStatus(w)
}

func (h *MiningHandler) respondStatus(w http.ResponseWriter) {
	utils.RespondWithJSON(w, http.StatusOK, dto.MiningStatusResponseDTO{
		Subscribed:  h.subscriber.IsMiningSubscribed(),
		Running:     h.miner.Running(),
		Accumulated: h.miner.Accumulated(),
	})
}
