package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arukavina95/CityVoice/config"
	"github.com/arukavina95/CityVoice/models"
	"github.com/arukavina95/CityVoice/routes"
	"github.com/arukavina95/CityVoice/utils"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupRouter prepares an in-memory database seeded like production and a
// gin engine with the full route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "controller-test-secret")
	t.Setenv("MEDIA_ROOT", t.TempDir())

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.AuthRoutes(r)
	routes.ProblemRoutes(r)
	routes.UserRoutes(r)
	routes.LookupRoutes(r)
	return r
}

func createUser(t *testing.T, username string, role models.RoleName) models.User {
	t.Helper()
	var r models.Role
	require.NoError(t, config.DB.Where("name = ?", string(role)).First(&r).Error)

	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		RoleID:   r.ID,
	}
	require.NoError(t, user.SetPassword("password123"))
	require.NoError(t, config.DB.Create(&user).Error)
	user.Role = r
	return user
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := utils.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func statusID(t *testing.T, name string) uint {
	t.Helper()
	var s models.Status
	require.NoError(t, config.DB.Where("name = ?", name).First(&s).Error)
	return s.ID
}

func seedProblem(t *testing.T, reporter models.User, lat, lon float64, status string) models.Problem {
	t.Helper()
	problem := models.Problem{
		Title:         "Seeded problem",
		Description:   "Seeded description",
		ReportedAt:    time.Now().UTC(),
		Latitude:      lat,
		Longitude:     lon,
		ReporterID:    reporter.ID,
		ProblemTypeID: 1,
		StatusID:      statusID(t, status),
	}
	require.NoError(t, config.DB.Create(&problem).Error)
	return problem
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	return doRequest(t, r, method, path, token, body, "application/json")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// problemForm builds a multipart report submission with optional image.
func problemForm(t *testing.T, fields map[string]string, imageName string, imageContent []byte) (io.Reader, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(imageContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func validProblemFields() map[string]string {
	return map[string]string{
		"title":         "Pothole on Main Street",
		"description":   "Deep pothole near the crosswalk",
		"latitude":      "45.0",
		"longitude":     "15.0",
		"problemTypeId": "1",
	}
}

func pathFor(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
