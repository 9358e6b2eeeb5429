package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	errInsightsFailed   = "failed to compute insights"
	errEfficiencyFailed = "failed to compute efficiency"
	errExportFailed     = "failed to export predictions"
)

// @Summary      Analytics insights
// @Description  Insights and recommendations over recent prediction history
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  service.InsightsReport
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/analytics/insights [get]
// @Security     BearerAuth
func (h *Handler) getInsights(c *gin.Context) {
	userID, _ := currentUserID(c)

	report, err := h.services.Analytics.Insights(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errInsightsFailed, "insights_failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Efficiency score
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  service.EfficiencyReport
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/analytics/efficiency [get]
// @Security     BearerAuth
func (h *Handler) getEfficiency(c *gin.Context) {
	userID, _ := currentUserID(c)

	report, err := h.services.Analytics.Efficiency(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errEfficiencyFailed, "efficiency_failed", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary      Export predictions as CSV
// @Tags         analytics
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/export/csv [get]
// @Security     BearerAuth
func (h *Handler) exportCSV(c *gin.Context) {
	userID, _ := currentUserID(c)

	data, err := h.services.Analytics.ExportCSV(c.Request.Context(), userID)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errExportFailed, "export_csv_failed", err)
		return
	}

	filename := "predictions-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// @Summary      Current weather
// @Tags         weather
// @Produce      json
// @Success      200  {object}  models.Weather
// @Router       /weather [get]
func (h *Handler) getWeather(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Weather.Current(c.Request.Context()))
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
