package entity

type FacilityType string

const (
	FacilityTypeClinic   FacilityType = "Clinic"
	FacilityTypeHospital FacilityType = "Hospital"
	FacilityTypePharmacy FacilityType = "Pharmacy"
	FacilityTypeDentist  FacilityType = "Dentist"
)

var FacilityTypes = []FacilityType{FacilityTypeClinic, FacilityTypeHospital, FacilityTypePharmacy, FacilityTypeDentist}

// Facility is a search result. It is never persisted by the client and only
// lives as long as the search response that produced it.
type Facility struct {
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formattedAddress"`
	Phone            string  `json:"phone,omitempty"`
	Email            string  `json:"email,omitempty"`
	Website          string  `json:"website,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
}

// Coordinates of the device performing a facility search.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// FacilityQuery is the body of a nearby facility search.
type FacilityQuery struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Type      FacilityType `json:"type"`
}
