package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/repository"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	disasterService     service.IncidentService
	reportService       service.ReportService
	geocodeService      service.GeocodeService
	verificationService service.VerificationService
	resourceService     service.ResourceService
	bulletinService     service.BulletinService
	socialService       service.SocialService
	logger              *logrus.Logger
	validate            *validator.Validate
	cfg                 *config.Config
}

// Services - набор сервисов, обслуживаемых HTTP-слоем
type Services struct {
	Disasters    service.IncidentService
	Reports      service.ReportService
	Geocode      service.GeocodeService
	Verification service.VerificationService
	Resources    service.ResourceService
	Bulletins    service.BulletinService
	Social       service.SocialService
}

func NewHandler(services Services, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		disasterService:     services.Disasters,
		reportService:       services.Reports,
		geocodeService:      services.Geocode,
		verificationService: services.Verification,
		resourceService:     services.Resources,
		bulletinService:     services.Bulletins,
		socialService:       services.Social,
		logger:              logger,
		validate:            validator.New(),
		cfg:                 cfg,
	}
}

// @Summary Geocode free-form text
// @Description Extract a location name from free-form text and resolve it to coordinates.
// @Tags Geocoding
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body GeocodeRequest true "Text to geocode"
// @Success 200 {object} GeocodeResponse
// @Failure 400 {object} map[string]string "Invalid request body or no location found"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /geocode [post]
func (h *Handler) geocodeText(c *gin.Context) {
	var input GeocodeRequest
	log := h.logger.WithField("method", "geocodeText")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.geocodeService.GeocodeText(c.Request.Context(), input.Text)
	if err != nil {
		// Ненайденная локация - ошибка запроса, а не сбой сервиса
		if errors.Is(err, service.ErrNoLocation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no location could be determined from text"})
			return
		}
		log.WithError(err).Error("Failed to geocode text in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, GeocodeResponse{
		LocationName: result.LocationName,
		Coordinates:  CoordinatesDTO{Lat: result.Coordinates.Lat, Lng: result.Coordinates.Lng},
	})
}

// @Summary Create a new disaster
// @Description Create a new disaster incident in the system. Requires API key.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param disaster body CreateDisasterRequest true "Disaster creation request"
// @Success 201 {object} DisasterResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters [post]
func (h *Handler) createDisaster(c *gin.Context) {
	var input CreateDisasterRequest
	log := h.logger.WithField("method", "createDisaster")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToDisasterModel(input)
	if err := h.disasterService.CreateIncident(c.Request.Context(), model); err != nil {
		log.WithError(err).Error("Failed to create disaster in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToDisasterResponse(model))
}

// @Summary Get a list of disasters
// @Description Get a paginated list of all disasters. Requires API key.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} DisasterResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters [get]
func (h *Handler) listDisasters(c *gin.Context) {
	log := h.logger.WithField("method", "listDisasters")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	disasters, err := h.disasterService.ListIncidents(c.Request.Context(), page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list disasters from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToDisasterResponses(disasters))
}

// @Summary Get disaster by ID
// @Description Get a single disaster by its ID. Requires API key.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Success 200 {object} DisasterResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id} [get]
func (h *Handler) getDisaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "getDisaster").WithField("id", id)

	disaster, err := h.disasterService.GetIncident(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disaster not found"})
			return
		}
		log.WithError(err).Error("Failed to get disaster from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDisasterResponse(disaster))
}

// @Summary Update an existing disaster
// @Description Update an existing disaster by ID. Appends an audit trail entry. Requires API key.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Param disaster body UpdateDisasterRequest true "Disaster update request"
// @Success 200 {object} DisasterResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id} [put]
func (h *Handler) updateDisaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "updateDisaster").WithField("id", id)

	var input UpdateDisasterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model := DTOToDisasterModel(input)
	model.ID = id

	updated, err := h.disasterService.UpdateIncident(c.Request.Context(), model, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disaster not found"})
			return
		}
		log.WithError(err).Error("Failed to update disaster in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDisasterResponse(updated))
}

// @Summary Delete a disaster
// @Description Delete a disaster by its ID. Requires API key.
// @Tags Disasters
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Param user_id query string true "Acting user ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Disaster not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id} [delete]
func (h *Handler) deleteDisaster(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "deleteDisaster").WithField("id", id)

	if err := h.disasterService.DeleteIncident(c.Request.Context(), id, c.Query("user_id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "disaster not found"})
			return
		}
		log.WithError(err).Error("Failed to delete disaster in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Create a report for a disaster
// @Description Submit a citizen report attached to a disaster. Verification status always starts as pending. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Param report body CreateReportRequest true "Report creation request"
// @Success 201 {object} ReportResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/reports [post]
func (h *Handler) createReport(c *gin.Context) {
	disasterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "createReport").WithField("disaster_id", disasterID)

	var input CreateReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := &models.Report{
		DisasterID: disasterID,
		UserID:     input.UserID,
		Content:    input.Content,
		ImageURL:   input.ImageURL,
	}
	if err := h.reportService.CreateReport(c.Request.Context(), report); err != nil {
		log.WithError(err).Error("Failed to create report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToReportResponse(report))
}

// @Summary List reports for a disaster
// @Description Get all citizen reports attached to a disaster. Requires API key.
// @Tags Reports
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Success 200 {array} ReportResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/reports [get]
func (h *Handler) listReports(c *gin.Context) {
	disasterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "listReports").WithField("disaster_id", disasterID)

	reports, err := h.reportService.ListReports(c.Request.Context(), disasterID)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToReportResponses(reports))
}

// @Summary Find resources for a disaster
// @Description List aid resources for a disaster, optionally ordered by proximity to a point. Requires API key.
// @Tags Resources
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Param lat query number false "Latitude of the search origin"
// @Param lng query number false "Longitude of the search origin"
// @Param radius query int false "Search radius in meters" default(10000)
// @Success 200 {array} ResourceResponse
// @Failure 400 {object} map[string]string "Invalid disaster ID or coordinates"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/resources [get]
func (h *Handler) listResources(c *gin.Context) {
	disasterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "listResources").WithField("disaster_id", disasterID)

	var query models.ResourceQuery
	if latStr, lngStr := c.Query("lat"), c.Query("lng"); latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid coordinates"})
			return
		}
		query.Lat = &lat
		query.Lng = &lng
	}
	if radiusStr := c.Query("radius"); radiusStr != "" {
		radius, radiusErr := strconv.Atoi(radiusStr)
		if radiusErr != nil || radius <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid radius"})
			return
		}
		query.RadiusMeters = radius
	}

	resources, err := h.resourceService.FindResources(c.Request.Context(), disasterID, query)
	if err != nil {
		log.WithError(err).Error("Failed to find resources in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelsToResourceResponses(resources))
}

// @Summary Verify a report image
// @Description Assess the authenticity of an image by URL and update the verification status of all reports carrying it. Requires API key.
// @Tags Verification
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Param request body VerifyImageRequest true "Image verification request"
// @Success 200 {object} VerificationResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /disasters/{id}/verify-image [post]
func (h *Handler) verifyImage(c *gin.Context) {
	disasterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "verifyImage").WithField("disaster_id", disasterID)

	var input VerifyImageRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.verificationService.VerifyImage(c.Request.Context(), disasterID, input.ImageURL)
	if err != nil {
		log.WithError(err).Error("Failed to verify image in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, VerificationResponse{
		Score:     result.Score,
		Reasoning: result.Reasoning,
		Status:    result.Status,
	})
}

// @Summary Get social media signal for a disaster
// @Description Fetch third-party social posts mentioning a disaster. Emits a realtime event on success. Requires API key.
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Disaster ID"
// @Success 200 {array} models.SocialPost
// @Failure 400 {object} map[string]string "Invalid disaster ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /disasters/{id}/social-media [get]
func (h *Handler) getSocialPosts(c *gin.Context) {
	disasterID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid disaster ID"})
		return
	}
	log := h.logger.WithField("method", "getSocialPosts").WithField("disaster_id", disasterID)

	posts, err := h.socialService.GetSocialPosts(c.Request.Context(), disasterID)
	if err != nil {
		log.WithError(err).Error("Failed to get social posts from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary Get official updates
// @Description Get the cached snapshot of official disaster bulletins. Requires API key.
// @Tags Updates
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.Bulletin
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /updates [get]
func (h *Handler) getUpdates(c *gin.Context) {
	c.JSON(http.StatusOK, h.bulletinService.OfficialUpdates(c.Request.Context()))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
