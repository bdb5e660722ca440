// Command seed wipes the projects table and inserts a set of sample
// listings for local development.
package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"realty-admin-backend/internal/config"
	"realty-admin-backend/internal/database"
	"realty-admin-backend/internal/models"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize migrator: %v", err)
	}
	if err := migrator.Run(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	migrator.Close()

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("DELETE FROM projects"); err != nil {
		log.Fatalf("Failed to clear projects: %v", err)
	}

	client, err := database.NewClient(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize database client: %v", err)
	}
	defer client.Close()

	ctx := context.Background()
	for _, p := range defaultProjects() {
		if _, err := client.CreateProject(ctx, &p); err != nil {
			log.Fatalf("Failed to seed project %q: %v", p.Title, err)
		}
		log.Printf("Seeded project: %s", p.Title)
	}
}

func defaultProjects() []models.Project {
	return []models.Project{
		{
			ID:               uuid.New(),
			Title:            "Luxury Apartments",
			Description:      "Premium luxury apartments in the heart of the city",
			Location:         "Downtown Area",
			Price:            "₹1.2 Cr - ₹2.5 Cr",
			PropertyType:     "Apartment",
			Status:           models.StatusActive,
			Amenities:        `["Luxury Lifestyle","Prime Location","Gated Society","Ample Parking"]`,
			IsReraRegistered: true,
			ReraNumbers:      sql.NullString{String: `["RERA123456","RERA789012"]`, Valid: true},
			Landmark:         sql.NullString{String: "Mall", Valid: true},
			LandmarkDistance: sql.NullString{String: "500m", Valid: true},
			Latitude:         sql.NullString{String: "18.5204", Valid: true},
			Longitude:        sql.NullString{String: "73.8567", Valid: true},
			Images:           sql.NullString{String: "[]", Valid: true},
			OtherUrls:        sql.NullString{String: "[]", Valid: true},
		},
		{
			ID:               uuid.New(),
			Title:            "Green Valley Villas",
			Description:      "Spacious villas with modern amenities",
			Location:         "Suburban Area",
			Price:            "₹80 Lac - ₹1.5 Cr",
			PropertyType:     "Villa",
			Status:           models.StatusActive,
			Amenities:        `["Peaceful vicinity","Well Ventilated","Spacious","Family"]`,
			IsReraRegistered: true,
			ReraNumbers:      sql.NullString{String: `["RERA345678"]`, Valid: true},
			Landmark:         sql.NullString{String: "Park", Valid: true},
			LandmarkDistance: sql.NullString{String: "200m", Valid: true},
			Latitude:         sql.NullString{String: "18.5314", Valid: true},
			Longitude:        sql.NullString{String: "73.8446", Valid: true},
			Images:           sql.NullString{String: "[]", Valid: true},
			OtherUrls:        sql.NullString{String: "[]", Valid: true},
		},
		{
			ID:               uuid.New(),
			Title:            "City Center Plaza",
			Description:      "Commercial spaces for business growth",
			Location:         "Business District",
			Price:            "₹2.5 Cr - ₹4 Cr",
			PropertyType:     "Commercial",
			Status:           models.StatusInactive,
			Amenities:        `["Near City Center","Investment Opportunity","Prime Location"]`,
			IsReraRegistered: true,
			ReraNumbers:      sql.NullString{String: `["RERA901234"]`, Valid: true},
			Landmark:         sql.NullString{String: "Metro Station", Valid: true},
			LandmarkDistance: sql.NullString{String: "100m", Valid: true},
			Latitude:         sql.NullString{String: "18.5642", Valid: true},
			Longitude:        sql.NullString{String: "73.9087", Valid: true},
			Images:           sql.NullString{String: "[]", Valid: true},
			OtherUrls:        sql.NullString{String: "[]", Valid: true},
		},
	}
}
