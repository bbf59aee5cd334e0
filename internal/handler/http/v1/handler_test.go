package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/disaster_response_system/internal/config"
	"github.com/shenikar/disaster_response_system/internal/models"
	"github.com/shenikar/disaster_response_system/internal/repository"
	"github.com/shenikar/disaster_response_system/internal/service"
	"github.com/shenikar/disaster_response_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testMocks - набор мокированных сервисов для тестов хендлера
type testMocks struct {
	disasters    *mocks.MockIncidentService
	reports      *mocks.MockReportService
	geocode      *mocks.MockGeocodeService
	verification *mocks.MockVerificationService
	resources    *mocks.MockResourceService
	bulletins    *mocks.MockBulletinService
	social       *mocks.MockSocialService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		disasters:    mocks.NewMockIncidentService(ctrl),
		reports:      mocks.NewMockReportService(ctrl),
		geocode:      mocks.NewMockGeocodeService(ctrl),
		verification: mocks.NewMockVerificationService(ctrl),
		resources:    mocks.NewMockResourceService(ctrl),
		bulletins:    mocks.NewMockBulletinService(ctrl),
		social:       mocks.NewMockSocialService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	handler := NewHandler(Services{
		Disasters:    m.disasters,
		Reports:      m.reports,
		Geocode:      m.geocode,
		Verification: m.verification,
		Resources:    m.resources,
		Bulletins:    m.bulletins,
		Social:       m.social,
	}, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGeocodeText_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := GeocodeRequest{Text: "Flooding near Manhattan, NYC"}
	expected := &models.GeocodeResult{
		LocationName: "Manhattan, NYC",
		Coordinates:  models.Coordinates{Lat: 40.7831, Lng: -73.9712},
	}

	m.geocode.EXPECT().GeocodeText(gomock.Any(), reqBody.Text).Return(expected, nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GeocodeResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "Manhattan, NYC", resp.LocationName)
	assert.Equal(t, 40.7831, resp.Coordinates.Lat)
	assert.Equal(t, -73.9712, resp.Coordinates.Lng)
}

func TestGeocodeText_NoLocation(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := GeocodeRequest{Text: "we need water and blankets"}

	m.geocode.EXPECT().GeocodeText(gomock.Any(), reqBody.Text).Return(nil, service.ErrNoLocation).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	// Ненайденная локация - ошибка запроса, а не 500
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no location could be determined")
}

func TestGeocodeText_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := GeocodeRequest{} // Отсутствует Text

	m.geocode.EXPECT().GeocodeText(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Text' failed on the 'required' tag")
}

func TestGeocodeText_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.geocode.EXPECT().GeocodeText(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/geocode", bytes.NewBufferString(`{"text": "test"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateDisaster_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := CreateDisasterRequest{
		Title:        "Наводнение на набережной",
		LocationName: "Manhattan, NYC",
		Description:  "Вода поднимается",
		Tags:         []string{"flood"},
		OwnerID:      "user-123",
	}

	m.disasters.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID
			inc.ID = disasterID
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/disasters", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp DisasterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, disasterID, resp.ID)
	assert.Equal(t, reqBody.Title, resp.Title)
}

func TestCreateDisaster_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateDisasterRequest{ // Отсутствует Title
		OwnerID: "user-123",
	}

	m.disasters.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/disasters", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Title' failed on the 'required' tag")
}

func TestCreateDisaster_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateDisasterRequest{
		Title:   "Наводнение",
		OwnerID: "user-123",
	}
	serviceError := errors.New("failed to create disaster in service")

	m.disasters.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Return(serviceError).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/disasters", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetDisaster_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	expected := &models.Incident{
		ID:    disasterID,
		Title: "Полученный инцидент",
	}

	m.disasters.EXPECT().GetIncident(gomock.Any(), disasterID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DisasterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, disasterID, resp.ID)
	assert.Equal(t, expected.Title, resp.Title)
}

func TestGetDisaster_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.disasters.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/disasters/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid disaster ID")
}

func TestGetDisaster_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	notFound := fmt.Errorf("service: could not get incident: %w", repository.ErrNotFound)

	m.disasters.EXPECT().GetIncident(gomock.Any(), disasterID).Return(nil, notFound).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "disaster not found")
}

func TestGetDisaster_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	serviceError := errors.New("database error")

	m.disasters.EXPECT().GetIncident(gomock.Any(), disasterID).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), nil)

	// Неизвестная ошибка сервиса - 500, а не 404
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListDisasters_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Incident{
		{ID: uuid.New(), Title: "Инцидент 1"},
		{ID: uuid.New(), Title: "Инцидент 2"},
	}

	m.disasters.EXPECT().ListIncidents(gomock.Any(), 1, 20).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/disasters", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []DisasterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, expected[0].Title, resp[0].Title)
}

func TestUpdateDisaster_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := UpdateDisasterRequest{
		Title:  "Обновленное название",
		UserID: "user-456",
	}
	updated := &models.Incident{ID: disasterID, Title: reqBody.Title}

	m.disasters.EXPECT().
		UpdateIncident(gomock.Any(), gomock.Any(), "user-456").
		DoAndReturn(func(_ context.Context, inc *models.Incident, _ string) (*models.Incident, error) {
			assert.Equal(t, disasterID, inc.ID)
			assert.Equal(t, reqBody.Title, inc.Title)
			return updated, nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DisasterResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reqBody.Title, resp.Title)
}

func TestUpdateDisaster_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := UpdateDisasterRequest{
		Title:  "Обновленное название",
		UserID: "user-456",
	}
	notFound := fmt.Errorf("service: incident not found for update: %w", repository.ErrNotFound)

	m.disasters.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), "user-456").Return(nil, notFound).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "disaster not found")
}

func TestDeleteDisaster_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()

	m.disasters.EXPECT().DeleteIncident(gomock.Any(), disasterID, "user-123").Return(nil).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/disasters/%s?user_id=user-123", disasterID.String()), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteDisaster_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	notFound := fmt.Errorf("service: incident not found for delete: %w", repository.ErrNotFound)

	m.disasters.EXPECT().DeleteIncident(gomock.Any(), disasterID, gomock.Any()).Return(notFound).Times(1)

	w := makeRequest(router, "DELETE", fmt.Sprintf("/api/v1/disasters/%s", disasterID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "disaster not found")
}

func TestCreateReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reportID := uuid.New()
	reqBody := CreateReportRequest{
		UserID:   "user-123",
		Content:  "Мост через реку разрушен",
		ImageURL: "https://example.com/bridge.jpg",
	}

	m.reports.EXPECT().
		CreateReport(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			assert.Equal(t, disasterID, r.DisasterID)
			r.ID = reportID
			r.VerificationStatus = models.VerificationPending
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/disasters/%s/reports", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, reportID, resp.ID)
	assert.Equal(t, models.VerificationPending, resp.VerificationStatus)
}

func TestCreateReport_InvalidImageURL(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := CreateReportRequest{
		UserID:   "user-123",
		Content:  "Отчет",
		ImageURL: "not-a-url",
	}

	m.reports.EXPECT().CreateReport(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/disasters/%s/reports", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ImageURL' failed on the 'url' tag")
}

func TestListReports_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	expected := []*models.Report{
		{ID: uuid.New(), DisasterID: disasterID, Content: "Отчет 1"},
	}

	m.reports.EXPECT().ListReports(gomock.Any(), disasterID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s/reports", disasterID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ReportResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestListResources_WithCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	distance := 120.5
	expected := []*models.Resource{
		{ID: uuid.New(), DisasterID: disasterID, Name: "Убежище", DistanceMeters: &distance},
	}

	m.resources.EXPECT().
		FindResources(gomock.Any(), disasterID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, query models.ResourceQuery) ([]*models.Resource, error) {
			require.NotNil(t, query.Lat)
			require.NotNil(t, query.Lng)
			assert.Equal(t, 40.78, *query.Lat)
			assert.Equal(t, -73.97, *query.Lng)
			assert.Equal(t, 500, query.RadiusMeters)
			return expected, nil
		}).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s/resources?lat=40.78&lng=-73.97&radius=500", disasterID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []ResourceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	require.NotNil(t, resp[0].DistanceMeters)
	assert.Equal(t, distance, *resp[0].DistanceMeters)
}

func TestListResources_WithoutCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()

	m.resources.EXPECT().
		FindResources(gomock.Any(), disasterID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, query models.ResourceQuery) ([]*models.Resource, error) {
			assert.Nil(t, query.Lat)
			assert.Nil(t, query.Lng)
			return []*models.Resource{}, nil
		}).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s/resources", disasterID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListResources_InvalidCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()

	m.resources.EXPECT().FindResources(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s/resources?lat=abc&lng=-73.97", disasterID.String()), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid coordinates")
}

func TestVerifyImage_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := VerifyImageRequest{ImageURL: "https://example.com/flood.jpg"}
	expected := &models.VerificationResult{
		Score:     8,
		Reasoning: "Снимок выглядит подлинным.",
		Status:    models.VerificationVerified,
	}

	m.verification.EXPECT().
		VerifyImage(gomock.Any(), disasterID, reqBody.ImageURL).
		Return(expected, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/disasters/%s/verify-image", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp VerificationResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expected.Score, resp.Score)
	assert.Equal(t, models.VerificationVerified, resp.Status)
}

func TestVerifyImage_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := VerifyImageRequest{ImageURL: "not-a-url"}

	m.verification.EXPECT().VerifyImage(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/disasters/%s/verify-image", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'ImageURL' failed on the 'url' tag")
}

func TestVerifyImage_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	reqBody := VerifyImageRequest{ImageURL: "https://example.com/flood.jpg"}
	serviceError := errors.New("could not update report statuses")

	m.verification.EXPECT().
		VerifyImage(gomock.Any(), disasterID, reqBody.ImageURL).
		Return(nil, serviceError).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/disasters/%s/verify-image", disasterID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetSocialPosts_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	disasterID := uuid.New()
	expected := []*models.SocialPost{
		{ID: "p-1", User: "citizen1", Content: "Вода поднимается"},
	}

	m.social.EXPECT().GetSocialPosts(gomock.Any(), disasterID).Return(expected, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/disasters/%s/social-media", disasterID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.SocialPost
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "citizen1", resp[0].User)
}

func TestGetUpdates_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expected := []*models.Bulletin{
		{ID: "b-1", Title: "Эвакуация северного района"},
	}

	m.bulletins.EXPECT().OfficialUpdates(gomock.Any()).Return(expected).Times(1)

	w := makeRequest(router, "GET", "/api/v1/updates", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []models.Bulletin
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 1)
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}
