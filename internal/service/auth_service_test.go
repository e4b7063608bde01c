package service

import (
	"Pulse/internal/api/dto"
	"Pulse/internal/model"
	"Pulse/internal/pkg/security"
	"Pulse/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	repository.UserRepo
	byEmail map[string]*model.User
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func newAuthServiceForTest(users ...*model.User) AuthService {
	byEmail := make(map[string]*model.User)
	for _, user := range users {
		byEmail[user.Email] = user
	}
	return NewAuthService(&fakeUserRepo{byEmail: byEmail}, nil)
}

func testUser(t *testing.T, email string, password string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	return &model.User{
		ID:          1,
		Email:       email,
		Password:    &hash,
		DisplayName: "测试用户",
		UserRoles: []model.UserRole{
			{UserID: 1, RoleID: 1, Role: model.Role{ID: 1, Name: model.RoleViewer}},
		},
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := newAuthServiceForTest(testUser(t, "a@b.com", "secret-pw"))

	session, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "a@b.com", Password: "secret-pw"})
	require.NoError(t, err)

	assert.Equal(t, dto.SessionSignedIn, session.State)
	assert.NotEmpty(t, session.Token)
	require.NotNil(t, session.User)
	assert.Equal(t, "a@b.com", session.User.Email)
	assert.Equal(t, []string{model.RoleViewer}, session.User.Roles)

	claims, err := security.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthServiceForTest(testUser(t, "a@b.com", "secret-pw"))

	_, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "a@b.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newAuthServiceForTest()

	_, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "ghost@b.com", Password: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLoginOAuthOnlyUserHasNoPassword(t *testing.T) {
	user := testUser(t, "a@b.com", "unused")
	user.Password = nil
	svc := newAuthServiceForTest(user)

	_, err := svc.Login(context.Background(), &dto.LoginDTO{Email: "a@b.com", Password: "anything"})
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}
