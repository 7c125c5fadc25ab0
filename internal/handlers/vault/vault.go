package vault

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/internal/service/vaultservice"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

type Service interface {
	Funds(passcode string) (float64, error)
	Withdraw(passcode string) (amount float64, destination string, err error)
}

type VaultHandler struct {
	vaultService Service
}

func New(vaultService Service) *VaultHandler {
	return &VaultHandler{vaultService: vaultService}
}

// Unlock godoc
//
//	@Summary	Check the vault passcode and report accumulated revenue
//	@Tags		Vault
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.VaultRequestDTO	true	"Passcode"
//	@Success	200		{object}	dto.VaultFundsResponseDTO
//	@Failure	403		{object}	utils.Response	"Passcode rejected"
//	@Router		/api/vault/unlock [post]
func (h *VaultHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	var req dto.VaultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	funds, err := h.vaultService.Funds(req.Passcode)
	if err != nil {
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VaultFundsResponseDTO{Funds: funds})
}

// Withdraw godoc
//
//	@Summary	Sweep the entire vault to the developer payout number
//	@Tags		Vault
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.VaultRequestDTO	true	"Passcode"
//	@Success	200		{object}	dto.VaultWithdrawResponseDTO
//	@Failure	403		{object}	utils.Response	"Passcode rejected"
//	@Failure	409		{object}	utils.Response	"Vault empty"
//	@Router		/api/vault/withdraw [post]
func (h *VaultHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req dto.VaultRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	amount, destination, err := h.vaultService.Withdraw(req.Passcode)
	if err != nil {
		switch {
		case errors.Is(err, vaultservice.ErrVaultLocked):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, vaultservice.ErrVaultEmpty):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VaultWithdrawResponseDTO{
		Amount:      amount,
		Destination: destination,
	})
}
