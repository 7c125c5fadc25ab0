package profile

import (
	"encoding/json"
	"net/http"

	"github.com/nickmuds954-code/Nexus-trade/internal/domain"
	"github.com/nickmuds954-code/Nexus-trade/internal/dto"
	"github.com/nickmuds954-code/Nexus-trade/pkg/utils"
)

type Service interface {
	Get() domain.Profile
	Update(name, email, mobile string) domain.Profile
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get godoc
//
//	@Summary	Identity fields and verification state
//	@Tags		Profile
//	@Produce	json
//	@Success	200	{object}	dto.ProfileResponseDTO
//	@Router		/api/profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(h.profileService.Get()))
}

// Update godoc
//
//	@Summary	Update identity fields; verification is rederived
//	@Tags		Profile
//	@Accept		json
//	@Produce	json
//	@Param		request	body		dto.UpdateProfileRequestDTO	true	"Profile payload"
//	@Success	200		{object}	dto.ProfileResponseDTO
//	@Router		/api/profile [put]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile := h.profileService.Update(req.Name, req.Email, req.Mobile)
	utils.RespondWithJSON(w, http.StatusOK, toProfileDTO(profile))
}

func toProfileDTO(p domain.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		Name:     p.Name,
		Email:    p.Email,
		Mobile:   p.MobileNumber,
		Verified: p.Verified,
	}
}
