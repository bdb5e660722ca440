package models

import "encoding/json"

// NewProjectResponse decodes a projects row into its API shape. The
// JSON-encoded text columns are decoded leniently: a column that fails to
// decode yields an empty slice rather than an error, matching how the
// listing UI treats legacy rows.
func NewProjectResponse(p *Project) ProjectResponse {
	resp := ProjectResponse{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Location:         p.Location,
		Price:            p.Price,
		PropertyType:     p.PropertyType,
		Status:           p.Status,
		Amenities:        decodeStrings(p.Amenities),
		IsReraRegistered: p.IsReraRegistered,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	if p.ReraNumbers.Valid {
		resp.ReraNumbers = decodeStrings(p.ReraNumbers.String)
	}
	if p.Landmark.Valid {
		resp.Landmark = p.Landmark.String
	}
	if p.LandmarkDistance.Valid {
		resp.LandmarkDistance = p.LandmarkDistance.String
	}
	if p.Latitude.Valid {
		resp.Latitude = p.Latitude.String
	}
	if p.Longitude.Valid {
		resp.Longitude = p.Longitude.String
	}
	if p.Images.Valid {
		var records []ImageRecord
		if err := json.Unmarshal([]byte(p.Images.String), &records); err == nil {
			resp.Images = records
		}
	}
	if resp.Images == nil {
		resp.Images = []ImageRecord{}
	}
	if p.OtherUrls.Valid {
		resp.OtherUrls = decodeStrings(p.OtherUrls.String)
	}

	return resp
}

func decodeStrings(encoded string) []string {
	var out []string
	if err := json.Unmarshal([]byte(encoded), &out); err != nil {
		return []string{}
	}
	return out
}
