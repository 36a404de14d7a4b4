package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/healthcalc"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:           appointment.ID,
		Title:        appointment.Title,
		Description:  appointment.Description,
		Location:     appointment.Location,
		NotifyAt:     appointment.NotifyAt.Raw,
		ScheduledFor: healthcalc.FormatSchedule(appointment.NotifyAt),
		Status:       string(appointment.Status),
		StatusLabel:  healthcalc.StatusLabel(appointment.Status),
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = AppointmentToResponse(appointment)
	}
	return responses
}
