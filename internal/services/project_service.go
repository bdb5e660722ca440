package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"realty-admin-backend/internal/cache"
	"realty-admin-backend/internal/images"
	"realty-admin-backend/internal/models"
	"realty-admin-backend/internal/storage"
)

// localURLPrefix identifies image URLs that point at files on local disk.
// Only those are removed when a project is deleted; remote object-storage
// URLs are left untouched.
const localURLPrefix = "/" + storage.Namespace + "/"

// ValidationError reports an out-of-constraint field value. It is raised
// before any upload or persistence side effect.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ProjectStore is the persistence surface the service drives. Implemented by
// database.Client.
type ProjectStore interface {
	CreateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	UpdateProject(ctx context.Context, p *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// ProjectService owns the create/update/delete lifecycle of project rows,
// delegating image handling to the reconciliation pipeline and listing
// freshness to the cache.
type ProjectService struct {
	store     ProjectStore
	uploader  storage.Uploader
	listCache *cache.ListingCache // nil when caching is disabled
	publicDir string
}

func NewProjectService(store ProjectStore, uploader storage.Uploader, listCache *cache.ListingCache, publicDir string) *ProjectService {
	return &ProjectService{
		store:     store,
		uploader:  uploader,
		listCache: listCache,
		publicDir: publicDir,
	}
}

// Create validates and persists a new project. Status is forced to Active
// regardless of caller input.
func (s *ProjectService) Create(ctx context.Context, form *models.ProjectForm, existing []images.ExistingImage, fresh []images.NewImage) (*models.ProjectResponse, error) {
	row, err := s.buildRow(ctx, uuid.New(), form, existing, fresh)
	if err != nil {
		return nil, err
	}
	row.Status = models.StatusActive

	created, err := s.store.CreateProject(ctx, row)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, created.ID)
	resp := models.NewProjectResponse(created)
	return &resp, nil
}

// Update replaces the full field set of an existing project. Status is taken
// from caller input, allowing Active/Inactive toggling.
func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, form *models.ProjectForm, existing []images.ExistingImage, fresh []images.NewImage) (*models.ProjectResponse, error) {
	row, err := s.buildRow(ctx, id, form, existing, fresh)
	if err != nil {
		return nil, err
	}
	row.Status = form.Status
	if row.Status == "" {
		row.Status = models.StatusActive
	}

	updated, err := s.store.UpdateProject(ctx, row)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, updated.ID)
	resp := models.NewProjectResponse(updated)
	return &resp, nil
}

// Delete removes a project and, best-effort, the locally-stored image files
// its record references. File cleanup failures are logged and never abort
// the deletion; remotely-stored images are not touched.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return err
	}

	if project.Images.Valid {
		var records []models.ImageRecord
		if err := json.Unmarshal([]byte(project.Images.String), &records); err == nil {
			for _, img := range records {
				s.removeLocalFile(img.URL)
			}
		}
	}

	if err := s.store.DeleteProject(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.ProjectResponse, error) {
	if s.listCache != nil {
		if cached, ok := s.listCache.GetProject(ctx, id); ok {
			return cached, nil
		}
	}

	project, err := s.store.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := models.NewProjectResponse(project)
	if s.listCache != nil {
		if err := s.listCache.SetProject(ctx, &resp); err != nil {
			log.Printf("Warning: failed to cache project %s: %v", id, err)
		}
	}
	return &resp, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.ProjectResponse, error) {
	if s.listCache != nil {
		if cached, ok := s.listCache.GetList(ctx); ok {
			return cached, nil
		}
	}

	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProjectResponse, len(projects))
	for i := range projects {
		responses[i] = models.NewProjectResponse(&projects[i])
	}

	if s.listCache != nil {
		if err := s.listCache.SetList(ctx, responses); err != nil {
			log.Printf("Warning: failed to cache listing: %v", err)
		}
	}
	return responses, nil
}

// buildRow validates the decoded array fields, runs image reconciliation
// (uploading any new files), and assembles the row with every array field
// JSON-encoded. Validation happens before any upload is attempted.
func (s *ProjectService) buildRow(ctx context.Context, id uuid.UUID, form *models.ProjectForm, existing []images.ExistingImage, fresh []images.NewImage) (*models.Project, error) {
	amenities, err := decodeStringArray(form.Amenities)
	if err != nil {
		return nil, &ValidationError{Field: "amenities", Message: "must be a JSON array of strings"}
	}
	if len(amenities) == 0 {
		return nil, &ValidationError{Field: "amenities", Message: "select at least one amenity"}
	}

	reraNumbers, err := decodeStringArray(form.ReraNumbers)
	if err != nil {
		return nil, &ValidationError{Field: "reraNumbers", Message: "must be a JSON array of strings"}
	}

	otherUrls, err := decodeStringArray(form.OtherUrls)
	if err != nil {
		return nil, &ValidationError{Field: "otherUrls", Message: "must be a JSON array of strings"}
	}

	records, err := images.Reconcile(ctx, s.uploader, existing, fresh)
	if err != nil {
		return nil, fmt.Errorf("failed to process images: %w", err)
	}

	row := &models.Project{
		ID:               id,
		Title:            form.Title,
		Description:      form.Description,
		Location:         form.Location,
		Price:            form.Price,
		PropertyType:     form.PropertyType,
		Amenities:        encodeStrings(amenities),
		IsReraRegistered: form.IsReraRegistered == "true",
		ReraNumbers:      nullString(encodeStrings(reraNumbers)),
		Landmark:         nullString(form.Landmark),
		LandmarkDistance: nullString(form.LandmarkDistance),
		Latitude:         nullString(form.Latitude),
		Longitude:        nullString(form.Longitude),
		OtherUrls:        nullString(encodeStrings(otherUrls)),
	}

	encodedImages, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to encode images: %w", err)
	}
	row.Images = nullString(string(encodedImages))

	return row, nil
}

func (s *ProjectService) removeLocalFile(url string) {
	if !strings.HasPrefix(url, localURLPrefix) {
		return
	}
	path := filepath.Join(s.publicDir, filepath.FromSlash(strings.TrimPrefix(url, "/")))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to remove image file %s: %v", path, err)
	}
}

func (s *ProjectService) invalidate(ctx context.Context, id uuid.UUID) {
	if s.listCache == nil {
		return
	}
	if err := s.listCache.Invalidate(ctx, id); err != nil {
		log.Printf("Warning: failed to invalidate listing cache: %v", err)
	}
}

func decodeStringArray(encoded string) ([]string, error) {
	if encoded == "" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func encodeStrings(values []string) string {
	if values == nil {
		values = []string{}
	}
	data, _ := json.Marshal(values)
	return string(data)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
