package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"realty-admin-backend/internal/database"
	"realty-admin-backend/internal/images"
	"realty-admin-backend/internal/models"
	"realty-admin-backend/internal/services"
)

// maxSubmissionMemory bounds in-memory multipart parsing (32MB).
const maxSubmissionMemory = 32 << 20

type ProjectsHandler struct {
	service *services.ProjectService
}

func NewProjectsHandler(service *services.ProjectService) *ProjectsHandler {
	return &ProjectsHandler{service: service}
}

// CreateProject godoc
// @Summary     Create a project
// @Description Creates a real-estate project from a multipart form submission.
// @Description Image collections follow the existingImages[i][...] / newImages[i][...]
// @Description field-naming convention; new image files are uploaded before the
// @Description record is persisted. Status is always Active on create.
// @Tags        projects
// @Accept      multipart/form-data
// @Produce     json
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	form, existing, fresh, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	project, err := h.service.Create(c.Request.Context(), form, existing, fresh)
	if err != nil {
		h.writeOperationError(c, "failed to create project", err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// UpdateProject godoc
// @Summary     Update a project
// @Description Full-record replacement: every field is resent on every update.
// @Description Unlike create, status is honored from the submission.
// @Tags        projects
// @Accept      multipart/form-data
// @Produce     json
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [put]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	form, existing, fresh, ok := h.bindSubmission(c)
	if !ok {
		return
	}

	project, err := h.service.Update(c.Request.Context(), projectID, form, existing, fresh)
	if err != nil {
		h.writeOperationError(c, "failed to update project", err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary     Delete a project
// @Description Deletes a project by id. Locally-stored image files referenced by
// @Description the record are removed best-effort; remote images are left in place.
// @Tags        projects
// @Produce     json
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} map[string]string
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects/{project_id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), projectID); err != nil {
		h.writeOperationError(c, "failed to delete project", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "project deleted successfully"})
}

// ListProjects godoc
// @Summary     List all projects
// @Tags        projects
// @Produce     json
// @Success     200 {object} models.ProjectListResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	projects, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to list projects",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ProjectListResponse{Projects: projects})
}

// GetProject godoc
// @Summary     Get a project by id
// @Tags        projects
// @Produce     json
// @Param       project_id path string true "Project ID (UUID)"
// @Success     200 {object} models.ProjectResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /projects/{project_id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid project id"})
		return
	}

	project, err := h.service.Get(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, database.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "failed to get project",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, project)
}

// bindSubmission parses the multipart form, validates the scalar fields and
// reconstructs the image collections. On failure it writes the error response
// and returns ok=false.
func (h *ProjectsHandler) bindSubmission(c *gin.Context) (*models.ProjectForm, []images.ExistingImage, []images.NewImage, bool) {
	if err := c.Request.ParseMultipartForm(maxSubmissionMemory); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to parse multipart form",
			Message: err.Error(),
		})
		return nil, nil, nil, false
	}

	var form models.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Message: validationMessage(err),
		})
		return nil, nil, nil, false
	}

	existing, fresh, err := images.ParseSubmission(c.Request.MultipartForm)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "failed to read image submission",
			Message: err.Error(),
		})
		return nil, nil, nil, false
	}

	return &form, existing, fresh, true
}

func (h *ProjectsHandler) writeOperationError(c *gin.Context, fallback string, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation failed",
			Message: validationErr.Error(),
		})
	case errors.Is(err, database.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "project not found"})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   fallback,
			Message: err.Error(),
		})
	}
}

// validationMessage flattens binding errors into field-level messages.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	msg := ""
	for i, fe := range fieldErrs {
		if i > 0 {
			msg += "; "
		}
		msg += fe.Field() + " failed on " + fe.Tag()
	}
	return msg
}
