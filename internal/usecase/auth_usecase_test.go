package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"healthhub/internal/delivery/dto"
	"healthhub/internal/domain/entity"
	"healthhub/internal/session"
	"healthhub/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProfileRepository struct {
	registered []*entity.Registration
	signupErr  error
	current    *entity.User
	findErr    error
}

func (f *fakeProfileRepository) Signup(ctx context.Context, registration *entity.Registration) error {
	if f.signupErr != nil {
		return f.signupErr
	}
	f.registered = append(f.registered, registration)
	return nil
}

func (f *fakeProfileRepository) FindCurrent(ctx context.Context) (*entity.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.current, nil
}

type fakeCredentials struct {
	token   string
	cleared int
}

func (f *fakeCredentials) SetCredential(token string) { f.token = token }

func (f *fakeCredentials) ClearCredentials() {
	f.token = ""
	f.cleared++
}

func newTestAuth(repo *fakeProfileRepository) (AuthUsecase, *session.Session, *fakeCredentials) {
	creds := &fakeCredentials{}
	sess := session.New(creds)
	return NewAuthUsecase(testLogger(), testValidator, sess, repo, creds), sess, creds
}

func validSignup() *dto.SignupRequest {
	return &dto.SignupRequest{
		Name:      "Jane Doe",
		Email:     "Jane@Example.com",
		Password:  "secret1",
		Age:       30,
		Height:    165,
		Weight:    60,
		BloodType: "O+",
		Gender:    "Female",
	}
}

func TestAuthUsecase_Signup(t *testing.T) {
	t.Run("Creates Account Without Logging In", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		auth, sess, _ := newTestAuth(repo)

		require.NoError(t, auth.Signup(context.Background(), validSignup()))
		require.Len(t, repo.registered, 1)
		assert.Equal(t, "jane@example.com", repo.registered[0].Email)
		assert.Equal(t, entity.BloodType("O+"), repo.registered[0].BloodType)
		assert.False(t, sess.IsAuthenticated())
	})

	t.Run("Invalid Blood Type Is Rejected Locally", func(t *testing.T) {
		repo := &fakeProfileRepository{}
		auth, _, _ := newTestAuth(repo)
		req := validSignup()
		req.BloodType = "C+"

		err := auth.Signup(context.Background(), req)
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "bloodType")
		assert.Empty(t, repo.registered)
	})

	t.Run("Remote Message Is Surfaced", func(t *testing.T) {
		repo := &fakeProfileRepository{signupErr: apperror.NewRemoteError(http.StatusBadRequest, "User already exists")}
		auth, _, _ := newTestAuth(repo)

		err := auth.Signup(context.Background(), validSignup())
		assert.Equal(t, "User already exists", apperror.UserMessage(err))
	})
}

func TestAuthUsecase_LoginLogout(t *testing.T) {
	auth, sess, creds := newTestAuth(&fakeProfileRepository{})

	user, err := auth.Login(context.Background(), &dto.LoginRequest{Email: "Ann@Example.com", Password: "x", Token: "remote-token"})
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Equal(t, "ann@example.com", user.Name)
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "remote-token", creds.token)

	auth.Logout()
	assert.False(t, sess.IsAuthenticated())
	assert.Empty(t, creds.token)
	assert.Equal(t, 1, creds.cleared)
}

func TestAuthUsecase_LoginRequiresEmail(t *testing.T) {
	auth, sess, _ := newTestAuth(&fakeProfileRepository{})

	_, err := auth.Login(context.Background(), &dto.LoginRequest{Password: "x"})
	require.Error(t, err)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthUsecase_GetProfile(t *testing.T) {
	t.Run("Unauthenticated", func(t *testing.T) {
		auth, _, _ := newTestAuth(&fakeProfileRepository{})
		_, err := auth.GetProfile(context.Background())
		assert.ErrorIs(t, err, session.ErrUnauthenticated)
	})

	t.Run("Remote Copy With BMI", func(t *testing.T) {
		repo := &fakeProfileRepository{current: &entity.User{Name: "Ann", Email: "ann@example.com", Height: 170, Weight: 65}}
		auth, _, _ := newTestAuth(repo)
		_, err := auth.Login(context.Background(), &dto.LoginRequest{Email: "ann@example.com", Password: "x"})
		require.NoError(t, err)

		profile, err := auth.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Ann", profile.User.Name)
		require.NotNil(t, profile.BMI)
		assert.Equal(t, 22.5, profile.BMI.Value)
		assert.Equal(t, "Normal weight", profile.BMI.Category)
	})

	t.Run("Falls Back To Session Copy", func(t *testing.T) {
		repo := &fakeProfileRepository{findErr: apperror.NewTransportError("load user", "Failed to load profile", errors.New("down"))}
		auth, _, _ := newTestAuth(repo)
		_, err := auth.Login(context.Background(), &dto.LoginRequest{Email: "ann@example.com", Password: "x", Name: "Ann"})
		require.NoError(t, err)

		profile, err := auth.GetProfile(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Ann", profile.User.Name)
		assert.Nil(t, profile.BMI)
		assert.Equal(t, "Failed to load profile", profile.Error)
	})
}
