package dto

// Request DTOs

type SignupRequest struct {
	Name      string  `json:"name" validate:"notblank,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=6"`
	Age       int     `json:"age" validate:"gt=0,lte=150"`
	Height    float64 `json:"height" validate:"gt=0,lte=300"`
	Weight    float64 `json:"weight" validate:"gt=0,lte=700"`
	BloodType string  `json:"bloodType" validate:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Gender    string  `json:"gender" validate:"required,oneof=Male Female"`
}

// LoginRequest carries the user record to store in the session. Token is the
// remote session credential when the caller already holds one.
type LoginRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required"`
	Name      string  `json:"name" validate:"max=100"`
	Age       int     `json:"age" validate:"gte=0,lte=150"`
	Height    float64 `json:"height" validate:"gte=0,lte=300"`
	Weight    float64 `json:"weight" validate:"gte=0,lte=700"`
	BloodType string  `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Gender    string  `json:"gender" validate:"omitempty,oneof=Male Female"`
	Token     string  `json:"token"`
}

// Response DTOs

type UserResponse struct {
	ID        string  `json:"id,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Age       int     `json:"age"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	BloodType string  `json:"blood_type"`
	Gender    string  `json:"gender"`
}

type BMIResponse struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
}

type ProfileResponse struct {
	User  UserResponse `json:"user"`
	BMI   *BMIResponse `json:"bmi,omitempty"`
	Error string       `json:"error,omitempty"`
}
