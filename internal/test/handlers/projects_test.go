package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty-admin-backend/internal/database"
	"realty-admin-backend/internal/handlers"
	"realty-admin-backend/internal/models"
	"realty-admin-backend/internal/services"
	"realty-admin-backend/internal/storage"
)

type memStore struct {
	mu       sync.Mutex
	projects map[uuid.UUID]models.Project
}

func newMemStore() *memStore {
	return &memStore{projects: make(map[uuid.UUID]models.Project)}
}

func (m *memStore) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row := *p
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	m.projects[row.ID] = row
	return &row, nil
}

func (m *memStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, ok := m.projects[id]
	if !ok {
		return nil, database.ErrProjectNotFound
	}
	return &row, nil
}

func (m *memStore) ListProjects(ctx context.Context) ([]models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Project, 0, len(m.projects))
	for _, row := range m.projects {
		out = append(out, row)
	}
	return out, nil
}

func (m *memStore) UpdateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	old, ok := m.projects[p.ID]
	if !ok {
		return nil, database.ErrProjectNotFound
	}
	row := *p
	row.CreatedAt = old.CreatedAt
	row.UpdatedAt = time.Now()
	m.projects[row.ID] = row
	return &row, nil
}

func (m *memStore) DeleteProject(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return database.ErrProjectNotFound
	}
	delete(m.projects, id)
	return nil
}

func newRouter(t *testing.T) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := newMemStore()
	publicDir := t.TempDir()
	svc := services.NewProjectService(store, storage.NewLocalUploader(publicDir), nil, publicDir)
	h := handlers.NewProjectsHandler(svc)

	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/projects", h.CreateProject)
	api.GET("/projects", h.ListProjects)
	api.GET("/projects/:project_id", h.GetProject)
	api.PUT("/projects/:project_id", h.UpdateProject)
	api.DELETE("/projects/:project_id", h.DeleteProject)
	return router, store
}

func baseFields() map[string]string {
	return map[string]string{
		"title":            "Test Towers",
		"description":      "Premium luxury apartments in the heart of the city",
		"location":         "Downtown Area",
		"price":            "₹1.2 Cr - ₹2.5 Cr",
		"propertyType":     "Apartment",
		"amenities":        `["Prime Location","Gated Society"]`,
		"isReraRegistered": "true",
		"reraNumbers":      `["RERA123456"]`,
		"landmark":         "Mall",
		"landmarkDistance": "500m",
		"latitude":         "18.5204",
		"longitude":        "73.8567",
		"otherUrls":        `[]`,
	}
}

func submitForm(t *testing.T, router *gin.Engine, method, target string, fields map[string]string, files map[string][]byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	for field, data := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="photo.jpg"`)
		header.Set("Content-Type", "image/jpeg")
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, _ := http.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateProject_WithNewImages(t *testing.T) {
	router, _ := newRouter(t)

	fields := baseFields()
	fields["newImages[0][description]"] = "front"
	fields["newImages[0][isPrimary]"] = "true"
	fields["newImages[1][description]"] = "rear"
	fields["newImages[1][isPrimary]"] = "false"
	files := map[string][]byte{
		"newImages[0][file]": []byte("image one"),
		"newImages[1][file]": []byte("image two"),
	}

	rec := submitForm(t, router, "POST", "/api/v1/projects", fields, files)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.StatusActive, resp.Status)
	require.Len(t, resp.Images, 2)

	primaries := 0
	for _, img := range resp.Images {
		assert.Contains(t, img.URL, "/uploads/")
		if img.IsPrimary {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestCreateProject_ValidationFailure(t *testing.T) {
	router, _ := newRouter(t)

	fields := baseFields()
	fields["title"] = "ab" // below minimum length

	rec := submitForm(t, router, "POST", "/api/v1/projects", fields, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation failed")
}

func TestCreateProject_MalformedImageKeyIgnored(t *testing.T) {
	router, _ := newRouter(t)

	fields := baseFields()
	fields["newImages[abc][description]"] = "bad index, silently skipped"
	fields["newImages[0][description]"] = "good"
	fields["newImages[0][isPrimary]"] = "true"
	files := map[string][]byte{"newImages[0][file]": []byte("image")}

	rec := submitForm(t, router, "POST", "/api/v1/projects", fields, files)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "good", resp.Images[0].Description)
}

func TestGetProject_NotFound(t *testing.T) {
	router, _ := newRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/projects/"+uuid.New().String(), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProject_InvalidID(t *testing.T) {
	router, _ := newRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/projects/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProject_TogglesStatus(t *testing.T) {
	router, _ := newRouter(t)

	rec := submitForm(t, router, "POST", "/api/v1/projects", baseFields(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	fields := baseFields()
	fields["status"] = models.StatusInactive
	rec = submitForm(t, router, "PUT", "/api/v1/projects/"+created.ID, fields, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, models.StatusInactive, updated.Status)
}

func TestUpdateProject_KeepsExistingImage(t *testing.T) {
	router, _ := newRouter(t)

	fields := baseFields()
	fields["newImages[0][isPrimary]"] = "true"
	rec := submitForm(t, router, "POST", "/api/v1/projects", fields, map[string][]byte{
		"newImages[0][file]": []byte("original"),
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Images, 1)
	originalURL := created.Images[0].URL

	// Resubmit the persisted image unchanged plus one new file.
	fields = baseFields()
	fields["existingImages[0][url]"] = originalURL
	fields["existingImages[0][isPrimary]"] = "true"
	fields["newImages[0][description]"] = "added later"
	rec = submitForm(t, router, "PUT", "/api/v1/projects/"+created.ID, fields, map[string][]byte{
		"newImages[0][file]": []byte("second image"),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var updated models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	require.Len(t, updated.Images, 2)
	assert.Equal(t, originalURL, updated.Images[0].URL)
	assert.NotEqual(t, originalURL, updated.Images[1].URL)
}

func TestDeleteProject_ThenGetNotFound(t *testing.T) {
	router, _ := newRouter(t)

	rec := submitForm(t, router, "POST", "/api/v1/projects", baseFields(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var created models.ProjectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	req, _ := http.NewRequest("DELETE", "/api/v1/projects/"+created.ID, nil)
	del := httptest.NewRecorder()
	router.ServeHTTP(del, req)
	require.Equal(t, http.StatusOK, del.Code)

	req, _ = http.NewRequest("GET", "/api/v1/projects/"+created.ID, nil)
	get := httptest.NewRecorder()
	router.ServeHTTP(get, req)
	assert.Equal(t, http.StatusNotFound, get.Code)
}

func TestListProjects(t *testing.T) {
	router, _ := newRouter(t)

	rec := submitForm(t, router, "POST", "/api/v1/projects", baseFields(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	req, _ := http.NewRequest("GET", "/api/v1/projects", nil)
	list := httptest.NewRecorder()
	router.ServeHTTP(list, req)
	require.Equal(t, http.StatusOK, list.Code)

	var resp models.ProjectListResponse
	require.NoError(t, json.Unmarshal(list.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 1)
	assert.Equal(t, "Test Towers", resp.Projects[0].Title)
}
