package entity

// BloodType is one of the eight ABO/Rh groups.
type BloodType string

const (
	BloodTypeAPositive  BloodType = "A+"
	BloodTypeANegative  BloodType = "A-"
	BloodTypeBPositive  BloodType = "B+"
	BloodTypeBNegative  BloodType = "B-"
	BloodTypeABPositive BloodType = "AB+"
	BloodTypeABNegative BloodType = "AB-"
	BloodTypeOPositive  BloodType = "O+"
	BloodTypeONegative  BloodType = "O-"
)

var BloodTypes = []BloodType{
	BloodTypeAPositive, BloodTypeANegative,
	BloodTypeBPositive, BloodTypeBNegative,
	BloodTypeABPositive, BloodTypeABNegative,
	BloodTypeOPositive, BloodTypeONegative,
}

func (b BloodType) Valid() bool {
	for _, known := range BloodTypes {
		if b == known {
			return true
		}
	}
	return false
}

// Gender constants
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// User is the account holder of the current session. The remote service owns
// the record, the client only caches it for display.
type User struct {
	ID        string    `json:"_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Age       int       `json:"age"`
	Height    float64   `json:"height"` // cm
	Weight    float64   `json:"weight"` // kg
	BloodType BloodType `json:"bloodType"`
	Gender    string    `json:"gender"`
}

// HasBodyMetrics reports whether height and weight are usable for BMI.
func (u *User) HasBodyMetrics() bool {
	return u.Height > 0 && u.Weight > 0
}

// Registration is the signup payload: the account fields plus a password.
type Registration struct {
	User
	Password string `json:"password"`
}
