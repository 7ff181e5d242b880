package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"villa-backend/controllers"
	"villa-backend/dto"
	"villa-backend/models"
	"villa-backend/repositories"
	"villa-backend/services"
)

var testDBSeq int64

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	n := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:routetest%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Property{}, &models.RoomNumber{}))

	propertyRepo := repositories.NewPropertyRepository(db)
	roomNumberRepo := repositories.NewRoomNumberRepository(db)
	pc := controllers.NewPropertyController(services.NewPropertyService(propertyRepo))
	rc := controllers.NewRoomNumberController(services.NewRoomNumberService(roomNumberRepo, propertyRepo))
	return SetupRouter(pc, rc)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.APIResponse {
	t.Helper()
	var resp dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPropertyLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	// Create
	w := doJSON(t, r, http.MethodPost, "/api/properties", dto.PropertyCreateDto{
		Name: "Villa Real", Rate: 200, Occupancy: 5, Area: 50,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeEnvelope(t, w)
	assert.True(t, created.Success)

	var createdView dto.PropertyDto
	rawResult, _ := json.Marshal(created.Result)
	require.NoError(t, json.Unmarshal(rawResult, &createdView))
	require.NotZero(t, createdView.ID)
	assert.Equal(t, "Villa Real", createdView.Name)
	id := createdView.ID

	// List
	w = doJSON(t, r, http.MethodGet, "/api/properties", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Get one
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/properties/%d", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Full update
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/properties/%d", id), dto.PropertyUpdateDto{
		ID: id, Name: "Villa Real", Detail: "Renovated", Rate: 250, Occupancy: 6, Area: 55,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Patch
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/api/properties/%d", id), dto.PatchDocument{
		{Op: "replace", Path: "/detail", Value: json.RawMessage(`"Patched"`)},
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Delete: 204, no body
	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/properties/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// Gone
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/properties/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPropertyGetZeroAndNonNumericID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/properties/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/properties/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPropertyCreateMalformedJSON(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/properties", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.ErrorMessages)
}

func TestRoomNumberForeignKeyCheckOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/roomnumbers", dto.RoomNumberCreateDto{
		RoomNo: 101, PropertyID: 12345,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.NotEmpty(t, resp.ErrorMessages)
	assert.Contains(t, resp.ErrorMessages[0], "does not exist")
}

func TestRoomNumberLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/properties", dto.PropertyCreateDto{
		Name: "Villa Real", Rate: 200, Occupancy: 5, Area: 50,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeEnvelope(t, w)
	var property dto.PropertyDto
	rawResult, _ := json.Marshal(created.Result)
	require.NoError(t, json.Unmarshal(rawResult, &property))

	w = doJSON(t, r, http.MethodPost, "/api/roomnumbers", dto.RoomNumberCreateDto{
		RoomNo: 101, PropertyID: property.ID, SpecialDetail: "sea view",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/roomnumbers/101", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/roomnumbers/101", dto.RoomNumberUpdateDto{
		RoomNo: 101, PropertyID: property.ID, SpecialDetail: "renovated",
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodDelete, "/api/roomnumbers/101", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
