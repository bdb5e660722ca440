package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"realty-admin-backend/internal/models"
)

const (
	listKey          = "projects:list"  // Cached full listing
	projectKeyPrefix = "projects:"      // Per-project cache: projects:{project_id}
	entryTTL         = 10 * time.Minute // Reads are eventually-consistent refreshes
)

// ListingCache keeps the project listing and individual project responses in
// Redis. Mutations invalidate; reads repopulate on miss.
type ListingCache struct {
	client *redis.Client
}

func NewListingCache(client *redis.Client) *ListingCache {
	return &ListingCache{client: client}
}

func (c *ListingCache) projectKey(id uuid.UUID) string {
	return projectKeyPrefix + id.String()
}

// GetList returns the cached listing, or (nil, false) on a miss.
func (c *ListingCache) GetList(ctx context.Context) ([]models.ProjectResponse, bool) {
	data, err := c.client.Get(ctx, listKey).Result()
	if err != nil {
		return nil, false
	}

	var projects []models.ProjectResponse
	if err := json.Unmarshal([]byte(data), &projects); err != nil {
		return nil, false
	}
	return projects, true
}

func (c *ListingCache) SetList(ctx context.Context, projects []models.ProjectResponse) error {
	data, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	if err := c.client.Set(ctx, listKey, data, entryTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache listing: %w", err)
	}
	return nil
}

// GetProject returns the cached response for one project, or (nil, false).
func (c *ListingCache) GetProject(ctx context.Context, id uuid.UUID) (*models.ProjectResponse, bool) {
	data, err := c.client.Get(ctx, c.projectKey(id)).Result()
	if err != nil {
		return nil, false
	}

	var project models.ProjectResponse
	if err := json.Unmarshal([]byte(data), &project); err != nil {
		return nil, false
	}
	return &project, true
}

func (c *ListingCache) SetProject(ctx context.Context, project *models.ProjectResponse) error {
	id, err := uuid.Parse(project.ID)
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", project.ID, err)
	}
	data, err := json.Marshal(project)
	if err != nil {
		return fmt.Errorf("failed to marshal project: %w", err)
	}
	if err := c.client.Set(ctx, c.projectKey(id), data, entryTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache project: %w", err)
	}
	return nil
}

// Invalidate drops the listing and the per-project entry after a mutation so
// subsequent reads reflect the change.
func (c *ListingCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if err := c.client.Del(ctx, listKey, c.projectKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cache: %w", err)
	}
	return nil
}
