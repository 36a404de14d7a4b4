package usecase

import (
	"context"
	"strings"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/repository"
	"healthhub/internal/session"
	"healthhub/pkg/apperror"
	"healthhub/pkg/validator"

	"github.com/sirupsen/logrus"
)

// CredentialSetter stores the remote session credential.
type CredentialSetter interface {
	SetCredential(token string)
}

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
	Logout()
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
}

type authUsecase struct {
	log         *logrus.Logger
	validator   *validator.CustomValidator
	session     *session.Session
	profileRepo repository.ProfileRepository
	credentials CredentialSetter
}

func NewAuthUsecase(
	log *logrus.Logger,
	validator *validator.CustomValidator,
	session *session.Session,
	profileRepo repository.ProfileRepository,
	credentials CredentialSetter,
) AuthUsecase {
	return &authUsecase{
		log:         log,
		validator:   validator,
		session:     session,
		profileRepo: profileRepo,
		credentials: credentials,
	}
}

// Signup creates the account on the remote service. It does not log in.
func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) error {
	if err := u.validator.Validate(req); err != nil {
		return err
	}

	if err := u.profileRepo.Signup(ctx, converter.SignupRequestToRegistration(req)); err != nil {
		u.log.WithError(err).Warn("Signup failed")
		return err
	}

	u.log.Info("Account created")
	return nil
}

// Login stores the submitted user in the session without verifying it
// against the remote service.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	if err := u.validator.Validate(req); err != nil {
		return nil, err
	}

	user := converter.LoginRequestToUser(req)
	if err := u.session.Login(user); err != nil {
		return nil, err
	}
	if token := strings.TrimSpace(req.Token); token != "" {
		u.credentials.SetCredential(token)
	}

	response := converter.UserToResponse(user)
	return &response, nil
}

func (u *authUsecase) Logout() {
	u.session.Logout()
}

// GetProfile returns the remote copy of the profile when it can be fetched,
// otherwise the session copy together with the fetch error.
func (u *authUsecase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	user, err := u.session.RequireUser()
	if err != nil {
		return nil, err
	}

	remoteUser, err := u.profileRepo.FindCurrent(ctx)
	if err != nil {
		u.log.WithError(err).Warn("Failed to fetch profile, using session copy")
		response := converter.UserToProfileResponse(user)
		response.Error = apperror.UserMessage(err)
		return response, nil
	}

	return converter.UserToProfileResponse(*remoteUser), nil
}
