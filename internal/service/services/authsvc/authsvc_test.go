package authsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/corray333/backend-labs/cafe/internal/dal/cafeapi"
	mock_icafeapi "github.com/corray333/backend-labs/cafe/internal/dal/interfaces/icafeapi/mock"
	"github.com/corray333/backend-labs/cafe/internal/service/models/user"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*AuthService, *mock_icafeapi.MockIAuthAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mock_icafeapi.NewMockIAuthAPI(ctrl)

	return MustNewAuthService(WithAuthAPI(api)), api
}

func TestLoginRedirectsByRole(t *testing.T) {
	cases := map[user.Role]string{
		user.RoleCustomer: "/customer",
		user.RoleKitchen:  "/kitchen",
		user.RoleWaiter:   "/waiter",
		user.RoleAdmin:    "/admin/dashboard",
	}

	for role, route := range cases {
		t.Run(string(role), func(t *testing.T) {
			svc, api := newService(t)
			creds := user.Credentials{Email: "a@b.c", Password: "pw"}
			api.EXPECT().Login(gomock.Any(), creds).Return(user.User{ID: "7", Name: "Ann", Role: role}, nil)

			sess, err := svc.Login(context.Background(), creds)
			require.NoError(t, err)
			assert.Equal(t, route, sess.Redirect)
			assert.Equal(t, "Ann", sess.User.Name)
		})
	}
}

func TestLoginUnknownRole(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user.User{Role: "chef"}, nil)

	_, err := svc.Login(context.Background(), user.Credentials{})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestLoginFailureCarriesDetail(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(user.User{}, &cafeapi.StatusError{Code: 401, Detail: "Invalid credentials"})

	_, err := svc.Login(context.Background(), user.Credentials{})
	require.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestLoginFailureFallbackDetail(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user.User{}, &cafeapi.StatusError{Code: 500})

	_, err := svc.Login(context.Background(), user.Credentials{})
	require.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Authentication failed", err.Error())
}

func TestLoginTransportError(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Login(gomock.Any(), gomock.Any()).Return(user.User{}, errors.New("connection refused"))

	_, err := svc.Login(context.Background(), user.Credentials{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrAuthFailed)
}

func TestSignup(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Signup(gomock.Any(), user.Signup{Name: "Ann", Email: "ann@cafe.io", Password: "pw"}).Return("42", nil)

	id, err := svc.Signup(context.Background(), user.Signup{Name: " Ann ", Email: "ann@cafe.io", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "42", id)
}

func TestSignupValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Signup(context.Background(), user.Signup{Email: "ann@cafe.io", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = svc.Signup(context.Background(), user.Signup{Name: "Ann", Email: "nope", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidSignup)
}

func TestSignupConflict(t *testing.T) {
	svc, api := newService(t)
	api.EXPECT().Signup(gomock.Any(), gomock.Any()).
		Return("", &cafeapi.StatusError{Code: 409, Detail: "Email already registered"})

	_, err := svc.Signup(context.Background(), user.Signup{Name: "Ann", Email: "ann@cafe.io", Password: "pw"})
	require.ErrorIs(t, err, ErrAuthFailed)
	assert.Equal(t, "Email already registered", err.Error())
}
