package dto

// Request DTOs. They double as the payload sent to the remote service.

type CreateAppointmentRequest struct {
	Title           string `json:"title" validate:"notblank,max=200"`
	Description     string `json:"description" validate:"max=2000"`
	Location        string `json:"location" validate:"max=200"`
	AppointmentTime string `json:"appointmentTime" validate:"notblank"`
}

type CreateContactRequest struct {
	Name     string `json:"name" validate:"notblank,max=100"`
	Phone    string `json:"phone" validate:"notblank,max=30"`
	Relation string `json:"relation" validate:"notblank,max=50"`
}

type CreateReminderRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Dosage      string `json:"dosage" validate:"notblank,max=100"`
	Frequency   string `json:"frequency" validate:"required,oneof=daily twice-daily weekly monthly"`
	Description string `json:"description" validate:"max=2000"`
	NotifyAt    string `json:"notifyAt"`
}

// Response DTOs

type AppointmentResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	NotifyAt     string `json:"notify_at"`
	ScheduledFor string `json:"scheduled_for"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
}

type ContactResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Relationship string `json:"relationship"`
}

type ReminderResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	FrequencyLabel string `json:"frequency_label"`
	Description    string `json:"description"`
	NotifyAt       string `json:"notify_at"`
	ScheduledFor   string `json:"scheduled_for"`
}

// ListResponse is what a list view renders: the controller state, the
// items, the error string and the current form values.
type ListResponse[V any, P any] struct {
	State string `json:"state"`
	Items []V    `json:"items"`
	Total int    `json:"total"`
	Error string `json:"error,omitempty"`
	Form  P      `json:"form"`
}

type HistoryResponse struct {
	Filter string                `json:"filter"`
	State  string                `json:"state"`
	Items  []AppointmentResponse `json:"items"`
	Total  int                   `json:"total"`
	Error  string                `json:"error,omitempty"`
}
