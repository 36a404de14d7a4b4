package converter

import (
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/healthcalc"
)

func ReminderToResponse(reminder entity.MedicineReminder) dto.ReminderResponse {
	return dto.ReminderResponse{
		ID:             reminder.ID,
		Name:           reminder.Name,
		Dosage:         reminder.Dosage,
		Frequency:      string(reminder.Frequency),
		FrequencyLabel: healthcalc.FrequencyLabel(reminder.Frequency),
		Description:    reminder.Description,
		NotifyAt:       reminder.NotifyAt.Raw,
		ScheduledFor:   healthcalc.FormatSchedule(reminder.NotifyAt),
	}
}

func RemindersToResponses(reminders []entity.MedicineReminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i, reminder := range reminders {
		responses[i] = ReminderToResponse(reminder)
	}
	return responses
}
