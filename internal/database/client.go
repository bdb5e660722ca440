package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"realty-admin-backend/internal/models"
)

// ErrProjectNotFound is returned when a project id does not exist.
var ErrProjectNotFound = errors.New("project not found")

type Client struct {
	db *sql.DB
}

func NewClient(connectionString string) (*Client, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Client{db: db}, nil
}

const projectColumns = `id, title, description, location, price, property_type, status,
	amenities, is_rera_registered, rera_numbers, landmark, landmark_distance,
	latitude, longitude, images, other_urls, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Location, &p.Price, &p.PropertyType,
		&p.Status, &p.Amenities, &p.IsReraRegistered, &p.ReraNumbers, &p.Landmark,
		&p.LandmarkDistance, &p.Latitude, &p.Longitude, &p.Images, &p.OtherUrls,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	row := c.db.QueryRowContext(ctx, `
		INSERT INTO projects (id, title, description, location, price, property_type, status,
			amenities, is_rera_registered, rera_numbers, landmark, landmark_distance,
			latitude, longitude, images, other_urls)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+projectColumns+`
	`, p.ID, p.Title, p.Description, p.Location, p.Price, p.PropertyType, p.Status,
		p.Amenities, p.IsReraRegistered, p.ReraNumbers, p.Landmark, p.LandmarkDistance,
		p.Latitude, p.Longitude, p.Images, p.OtherUrls)

	created, err := scanProject(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

func (c *Client) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		WHERE id = $1
	`, id)

	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT `+projectColumns+`
		FROM projects
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}

	return projects, rows.Err()
}

// UpdateProject replaces every mutable column of the row. There is no
// partial-patch path; callers resend the full field set.
func (c *Client) UpdateProject(ctx context.Context, p *models.Project) (*models.Project, error) {
	row := c.db.QueryRowContext(ctx, `
		UPDATE projects
		SET title = $2, description = $3, location = $4, price = $5, property_type = $6,
			status = $7, amenities = $8, is_rera_registered = $9, rera_numbers = $10,
			landmark = $11, landmark_distance = $12, latitude = $13, longitude = $14,
			images = $15, other_urls = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING `+projectColumns+`
	`, p.ID, p.Title, p.Description, p.Location, p.Price, p.PropertyType, p.Status,
		p.Amenities, p.IsReraRegistered, p.ReraNumbers, p.Landmark, p.LandmarkDistance,
		p.Latitude, p.Longitude, p.Images, p.OtherUrls)

	updated, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

func (c *Client) DeleteProject(ctx context.Context, id uuid.UUID) error {
	res, err := c.db.ExecContext(ctx, `
		DELETE FROM projects
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}
