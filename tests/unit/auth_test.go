package unit

import (
	"context"
	"errors"
	"testing"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/security"
	"carrental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(userID int32, email, role string) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) Validate(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "new@test.com").Return(nil, errors.New("not found"))
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.User).ID = 7
		}).Return(nil)
		tokens.On("Generate", int32(7), "new@test.com", "USER").Return("signed-token", nil)

		user, token, err := svc.Register(ctx, "New User", "new@test.com", "password123", "1995-04-10", "2015-04-10")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, domain.RoleUser, user.Role)
		assert.NotEqual(t, "password123", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 1, Email: "taken@test.com"}, nil)

		_, _, err := svc.Register(ctx, "Name", "taken@test.com", "password123", "1995-04-10", "2015-04-10")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
	})

	t.Run("Bad Date Of Birth", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Register(ctx, "Name", "new@test.com", "password123", "10-04-1995", "2015-04-10")
		assert.Error(t, err)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	actor := domain.Principal{UserID: 7, Email: "user@test.com", Role: domain.RoleUser}

	current := func() *domain.User {
		hash, _ := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.MinCost)
		return &domain.User{ID: 7, Email: "user@test.com", PasswordHash: string(hash), Name: "Old Name", Role: domain.RoleUser}
	}

	t.Run("Changes Name And Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByID", ctx, int32(7)).Return(current(), nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.UpdateProfile(ctx, actor, "New Name", "", "newpassword")
		assert.NoError(t, err)
		assert.Equal(t, "New Name", user.Name)
		// Untouched fields keep their current value.
		assert.Equal(t, "user@test.com", user.Email)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("newpassword")))
		userRepo.AssertCalled(t, "Update", ctx, mock.AnythingOfType("*domain.User"))
	})

	t.Run("New Email Taken", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByID", ctx, int32(7)).Return(current(), nil)
		userRepo.On("GetByEmail", ctx, "taken@test.com").Return(&domain.User{ID: 2, Email: "taken@test.com"}, nil)

		_, err := svc.UpdateProfile(ctx, actor, "", "taken@test.com", "")
		assert.ErrorIs(t, err, service.ErrEmailTaken)
		userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("Empty Password Keeps Hash", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		before := current()
		userRepo.On("GetByID", ctx, int32(7)).Return(before, nil)
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.UpdateProfile(ctx, actor, "New Name", "", "")
		assert.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("oldpassword")))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	user := &domain.User{ID: 7, Email: "user@test.com", PasswordHash: string(hash), Role: domain.RoleUser}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)
		tokens.On("Generate", int32(7), "user@test.com", "USER").Return("signed-token", nil)

		token, err := svc.Login(ctx, "user@test.com", "password123")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)

		_, err := svc.Login(ctx, "user@test.com", "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		tokens := new(MockTokenManager)
		svc := service.NewAuthService(userRepo, tokens)

		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, errors.New("not found"))

		_, err := svc.Login(ctx, "ghost@test.com", "password123")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
