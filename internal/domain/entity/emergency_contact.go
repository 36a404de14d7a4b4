package entity

type EmergencyContact struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	PhoneNumber  string `json:"phoneNumber"`
	Relationship string `json:"relationship"`
}

func (c EmergencyContact) Identifier() string {
	return c.ID
}
