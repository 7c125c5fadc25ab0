package account

import (
	"encoding/json"
	"net/http"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

type Service interface {
	SetActiveAccount(account domain.AccountType) error
	Balances() domain.BalanceSnapshot
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// Switch godoc
//
//	@Summary	Select the active DEMO or REAL account
//	@Tags		Account
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.SwitchAccountRequestDTO	true	"Account selector"
//	@Success	200		{object}	dto.BalancesResponseDTO
//	@Failure	400		{object}	utils.Response	"Unknown account type"
//	@Router		/api/account/switch [post]
func (h *AccountHandler) Switch(w http.ResponseWriter, r *http.Request) {
	var req dto.SwitchAccountRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.accountService.SetActiveAccount(domain.AccountType(req.Account)); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "unknown account type")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toBalancesDTO(h.accountService.Balances()))
}

// GetBalances godoc
//
//	@Summary	All four balances plus the active pair
//	@Tags		Account
//	@Produce	json
//	@Success	200	{object}	dto.BalancesResponseDTO
//	@Router		/api/account/balances [get]
func (h *AccountHandler) GetBalances(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toBalancesDTO(h.accountService.Balances()))
}

func toBalancesDTO(b domain.BalanceSnapshot) dto.BalancesResponseDTO {
	return dto.BalancesResponseDTO{
		Active:           string(b.Active),
		USDDemo:          b.USDDemo,
		USDReal:          b.USDReal,
		GCoinDemo:        b.GCoinDemo,
		GCoinReal:        b.GCoinReal,
		ActiveUSD:        b.ActiveUSD,
		ActiveGCoin:      b.ActiveGCoin,
		MiningSubscribed: b.MiningSubscribed,
	}
}
