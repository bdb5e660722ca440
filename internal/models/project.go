package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Project statuses. Create always starts a project as Active; update may
// toggle it to Inactive.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Project is a row in the projects table. Array-valued fields (amenities,
// rera_numbers, images, other_urls) are stored as JSON-encoded text.
type Project struct {
	ID               uuid.UUID
	Title            string
	Description      string
	Location         string
	Price            string
	PropertyType     string
	Status           string
	Amenities        string
	IsReraRegistered bool
	ReraNumbers      sql.NullString
	Landmark         sql.NullString
	LandmarkDistance sql.NullString
	Latitude         sql.NullString
	Longitude        sql.NullString
	Images           sql.NullString
	OtherUrls        sql.NullString
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ImageRecord is one entry of a project's images column: a resolved URL
// (root-relative for local files, fully qualified for object storage), an
// optional caption, and the primary-thumbnail flag.
type ImageRecord struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	IsPrimary   bool   `json:"isPrimary"`
}
