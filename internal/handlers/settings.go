package handlers

import (
	"net/http"

	"energyai/internal/models"

	"github.com/gin-gonic/gin"
)

const errSettingsFailed = "failed to load settings"

// settingsRequest updates alert thresholds. Pointers distinguish "absent"
// from zero so partial updates keep existing values.
type settingsRequest struct {
	HighConsumptionThreshold *float64 `json:"high_consumption_threshold,omitempty"`
	CostThreshold            *float64 `json:"cost_threshold,omitempty"`
	NormalConsumption        *float64 `json:"normal_consumption,omitempty"`
	EmailAlertsEnabled       *bool    `json:"email_alerts_enabled,omitempty"`
}

// @Summary      Get alert settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  models.UserSettings
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings [get]
// @Security     BearerAuth
func (h *Handler) getSettings(c *gin.Context) {
	userID, _ := currentUserID(c)

	settings, err := h.services.Settings.Get(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSettingsFailed, "get_settings_failed", err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// @Summary      Update alert settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.UserSettings
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/settings [put]
// @Security     BearerAuth
func (h *Handler) updateSettings(c *gin.Context) {
	var req settingsRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	userID, _ := currentUserID(c)
	settings, err := h.services.Settings.Get(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSettingsFailed, "get_settings_failed", err)
		return
	}

	applySettingsRequest(&settings, req)
	settings.UserID = userID

	if err := h.services.Settings.Update(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func applySettingsRequest(s *models.UserSettings, req settingsRequest) {
	if req.HighConsumptionThreshold != nil {
		s.HighConsumptionThreshold = *req.HighConsumptionThreshold
	}
	if req.CostThreshold != nil {
		s.CostThreshold = *req.CostThreshold
	}
	if req.NormalConsumption != nil {
		s.NormalConsumption = *req.NormalConsumption
	}
	if req.EmailAlertsEnabled != nil {
		s.EmailAlertsEnabled = *req.EmailAlertsEnabled
	}
}
