package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
)

func ContactToResponse(contact entity.EmergencyContact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:           contact.ID,
		Name:         contact.Name,
		PhoneNumber:  contact.PhoneNumber,
		Relationship: contact.Relationship,
	}
}

func ContactsToResponses(contacts []entity.EmergencyContact) []dto.ContactResponse {
	responses := make([]dto.ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = ContactToResponse(contact)
	}
	return responses
}
