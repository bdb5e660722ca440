package models

// ProjectForm carries the scalar fields of a create/update submission.
// Array-valued logical fields (amenities, reraNumbers, otherUrls) travel as
// JSON-encoded strings and are decoded after binding; image fields follow the
// existingImages[i][...] / newImages[i][...] convention and are parsed
// separately from the multipart form.
type ProjectForm struct {
	Title            string `form:"title" binding:"required,min=3,max=100"`
	Description      string `form:"description" binding:"required,min=10,max=1000"`
	Location         string `form:"location" binding:"required,min=3,max=100"`
	Price            string `form:"price" binding:"required,max=50"`
	PropertyType     string `form:"propertyType" binding:"required,min=2,max=50"`
	Status           string `form:"status" binding:"omitempty,oneof=Active Inactive"`
	Amenities        string `form:"amenities" binding:"required"`
	IsReraRegistered string `form:"isReraRegistered"`
	ReraNumbers      string `form:"reraNumbers"`
	Landmark         string `form:"landmark" binding:"omitempty,min=2"`
	LandmarkDistance string `form:"landmarkDistance"`
	Latitude         string `form:"latitude"`
	Longitude        string `form:"longitude"`
	OtherUrls        string `form:"otherUrls"`
}
