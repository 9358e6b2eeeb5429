package handlers

import (
	"net/http"
	"strconv"

	"energyai/internal/models"
	"energyai/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errPredictFailed = "prediction service unavailable"
	errStoreFailed   = "failed to store prediction"
	errListFailed    = "failed to load predictions"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// predictRequest is the household-parameter payload forwarded to the ML service.
type predictRequest struct {
	Temperature   float64 `json:"temperature" binding:"required"`
	HouseholdSize int     `json:"household_size" binding:"required,min=1"`
	Season        string  `json:"season" binding:"required"`
	Date          string  `json:"date,omitempty"`       // YYYY-MM-DD
	StartTime     string  `json:"start_time,omitempty"` // HH:MM
	ApplianceType string  `json:"appliance_type,omitempty"`
}

// storePredictionRequest mirrors the record fields a client submits after a
// prediction run. Cost is optional; carbon is derived server-side when absent.
type storePredictionRequest struct {
	Temperature          float64              `json:"temperature"`
	HouseholdSize        int                  `json:"household_size" binding:"required,min=1"`
	Season               string               `json:"season" binding:"required"`
	Date                 string               `json:"date"`
	Devices              []models.DeviceUsage `json:"devices,omitempty"`
	PredictedConsumption float64              `json:"predicted_consumption" binding:"required"`
	ModelUsed            string               `json:"model_used"`
	Confidence           float64              `json:"confidence"`
	Cost                 float64              `json:"cost,omitempty"`
}

// @Summary      Run an ML prediction
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Success      200  {object}  service.PredictResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/predict [post]
// @Security     BearerAuth
func (h *Handler) predict(c *gin.Context) {
	var req predictRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	resp, err := h.services.Predictions.Predict(c.Request.Context(), service.PredictRequest{
		Temperature:   req.Temperature,
		HouseholdSize: req.HouseholdSize,
		Season:        req.Season,
		Date:          req.Date,
		StartTime:     req.StartTime,
		ApplianceType: req.ApplianceType,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusBadGateway, errPredictFailed, "predict_failed", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary      Store a prediction record
// @Tags         predictions
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "message, id"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/predictions [post]
// @Security     BearerAuth
func (h *Handler) storePrediction(c *gin.Context) {
	var req storePredictionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	userID, _ := currentUserID(c)
	rec := models.PredictionRecord{
		UserID:               &userID,
		Temperature:          req.Temperature,
		HouseholdSize:        req.HouseholdSize,
		Season:               req.Season,
		Date:                 req.Date,
		Devices:              req.Devices,
		PredictedConsumption: req.PredictedConsumption,
		ModelUsed:            req.ModelUsed,
		Confidence:           req.Confidence,
		Cost:                 req.Cost,
	}

	id, err := h.services.Predictions.Store(c.Request.Context(), rec)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errStoreFailed, "store_prediction_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Prediction stored successfully", "id": id})
}

// @Summary      List recent predictions
// @Tags         predictions
// @Produce      json
// @Param        limit  query  int  false  "max records (default 10)"
// @Success      200  {array}   models.PredictionRecord
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/predictions [get]
// @Security     BearerAuth
func (h *Handler) listPredictions(c *gin.Context) {
	userID, _ := currentUserID(c)

	limit := 0
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			limit = v
		}
	}

	records, err := h.services.Predictions.Recent(c.Request.Context(), userID, limit)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListFailed, "list_predictions_failed", err)
		return
	}
	c.JSON(http.StatusOK, records)
}
