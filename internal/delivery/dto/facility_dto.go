package dto

// FacilitySearchRequest uses pointers so a missing coordinate is told apart
// from 0.
type FacilitySearchRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Type      string   `json:"type" validate:"required,oneof=Clinic Hospital Pharmacy Dentist"`
}

type FacilityResponse struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone,omitempty"`
	Email     string  `json:"email,omitempty"`
	Website   string  `json:"website,omitempty"`
	Contact   string  `json:"contact"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	MapLink   string  `json:"map_link"`
}

type FacilityListResponse struct {
	Types             []string           `json:"types"`
	Facilities        []FacilityResponse `json:"facilities"`
	Total             int                `json:"total"`
	GeolocationDenied bool               `json:"geolocation_denied"`
	Error             string             `json:"error,omitempty"`
}
