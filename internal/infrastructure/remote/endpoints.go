package remote

import "net/http"

// Kind names a remote resource collection.
type Kind string

const (
	KindAppointment      Kind = "appointment"
	KindEmergencyContact Kind = "emergency contact"
	KindMedicineReminder Kind = "medicine reminder"
	KindFacility         Kind = "facility"
	KindUser             Kind = "user"
)

// Route is one HTTP call on the remote service. Path is relative to the base
// URL and may contain an {id} placeholder.
type Route struct {
	Method string
	Path   string
}

// Endpoints is the endpoint set of one resource kind. A zero Route means the
// operation is not offered for that kind.
type Endpoints struct {
	Singular string
	Plural   string
	List     Route
	Create   Route
	Delete   Route
}

var DefaultEndpoints = map[Kind]Endpoints{
	KindAppointment: {
		Singular: "appointment",
		Plural:   "appointments",
		List:     Route{http.MethodGet, "/reminder-list"},
		Create:   Route{http.MethodPost, "/reminder"},
		Delete:   Route{http.MethodDelete, "/reminder/{id}"},
	},
	KindEmergencyContact: {
		Singular: "contact",
		Plural:   "emergency contacts",
		List:     Route{http.MethodGet, "/contacts"},
		Create:   Route{http.MethodPost, "/contact"},
		Delete:   Route{http.MethodDelete, "/contact/{id}"},
	},
	KindMedicineReminder: {
		Singular: "reminder",
		Plural:   "medicine reminders",
		List:     Route{http.MethodGet, "/reminder"},
		Create:   Route{http.MethodPost, "/reminder"},
		Delete:   Route{http.MethodDelete, "/reminder/{id}"},
	},
	KindFacility: {
		Singular: "facility",
		Plural:   "facilities",
		List:     Route{http.MethodPost, "/save-location"},
	},
	KindUser: {
		Singular: "account",
		Plural:   "profile",
		List:     Route{http.MethodGet, "/user/profile"},
		Create:   Route{http.MethodPost, "/create/user"},
	},
}

type operation string

const (
	opList   operation = "load"
	opCreate operation = "create"
	opDelete operation = "delete"
)

// defaultMessage is used when the remote answer carries no message of its own.
func (e Endpoints) defaultMessage(op operation) string {
	if op == opList {
		return "Failed to " + string(op) + " " + e.Plural
	}
	return "Failed to " + string(op) + " " + e.Singular
}
