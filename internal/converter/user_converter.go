package converter

import (
	"strings"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/healthcalc"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Age:       user.Age,
		Height:    user.Height,
		Weight:    user.Weight,
		BloodType: string(user.BloodType),
		Gender:    user.Gender,
	}
}

// UserToProfileResponse adds the BMI when height and weight are known
func UserToProfileResponse(user entity.User) *dto.ProfileResponse {
	response := &dto.ProfileResponse{User: UserToResponse(user)}
	if user.HasBodyMetrics() {
		if bmi, err := healthcalc.ComputeBMI(user.Weight, user.Height); err == nil {
			response.BMI = &dto.BMIResponse{Value: bmi.Value, Category: string(bmi.Category)}
		}
	}
	return response
}

// SignupRequestToRegistration converts the signup form to the remote payload
func SignupRequestToRegistration(req *dto.SignupRequest) *entity.Registration {
	return &entity.Registration{
		User: entity.User{
			Name:      strings.TrimSpace(req.Name),
			Email:     strings.ToLower(strings.TrimSpace(req.Email)),
			Age:       req.Age,
			Height:    req.Height,
			Weight:    req.Weight,
			BloodType: entity.BloodType(req.BloodType),
			Gender:    req.Gender,
		},
		Password: req.Password,
	}
}

// LoginRequestToUser builds the session user from the login form
func LoginRequestToUser(req *dto.LoginRequest) entity.User {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" {
		name = email
	}
	return entity.User{
		Name:      name,
		Email:     email,
		Age:       req.Age,
		Height:    req.Height,
		Weight:    req.Weight,
		BloodType: entity.BloodType(req.BloodType),
		Gender:    req.Gender,
	}
}
