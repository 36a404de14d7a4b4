package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/healthcalc"
)

// FacilityToResponse converts a Facility search result to FacilityResponse DTO
func FacilityToResponse(facility entity.Facility) dto.FacilityResponse {
	return dto.FacilityResponse{
		Name:      facility.Name,
		Address:   facility.FormattedAddress,
		Phone:     facility.Phone,
		Email:     facility.Email,
		Website:   facility.Website,
		Contact:   healthcalc.FacilityContact(facility),
		Latitude:  facility.Latitude,
		Longitude: facility.Longitude,
		MapLink:   healthcalc.MapLink(facility),
	}
}

func FacilitiesToResponses(facilities []entity.Facility) []dto.FacilityResponse {
	responses := make([]dto.FacilityResponse, len(facilities))
	for i, facility := range facilities {
		responses[i] = FacilityToResponse(facility)
	}
	return responses
}

// SearchRequestToQuery converts a validated search form to the remote query body
func SearchRequestToQuery(req *dto.FacilitySearchRequest) entity.FacilityQuery {
	query := entity.FacilityQuery{Type: entity.FacilityType(req.Type)}
	if req.Latitude != nil {
		query.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		query.Longitude = *req.Longitude
	}
	return query
}
