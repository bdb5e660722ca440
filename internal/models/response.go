package models

import "time"

type ProjectResponse struct {
	ID               string        `json:"project_id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Location         string        `json:"location"`
	Price            string        `json:"price"`
	PropertyType     string        `json:"property_type"`
	Status           string        `json:"status"`
	Amenities        []string      `json:"amenities"`
	IsReraRegistered bool          `json:"is_rera_registered"`
	ReraNumbers      []string      `json:"rera_numbers,omitempty"`
	Landmark         string        `json:"landmark,omitempty"`
	LandmarkDistance string        `json:"landmark_distance,omitempty"`
	Latitude         string        `json:"latitude,omitempty"`
	Longitude        string        `json:"longitude,omitempty"`
	Images           []ImageRecord `json:"images"`
	OtherUrls        []string      `json:"other_urls,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
