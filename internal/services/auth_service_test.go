package services_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"butik/internal/apperrors"
	"butik/internal/models"
	"butik/internal/services"
)

func TestAuthService_RegisterUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "secret")

	user := &models.User{Name: "Asha", Email: "asha@example.com", Phone: 9876543210, Password: "plaintext"}

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil).Once()
	err := service.RegisterUser(user)
	assert.NoError(t, err)
	// The stored password must be a verifiable hash, never the plaintext.
	assert.NotEqual(t, "plaintext", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("plaintext")))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "secret")

	user := &models.User{Name: "Asha", Email: "asha@example.com", Phone: 9876543210, Password: "plaintext"}

	mockRepo.On("Create", mock.AnythingOfType("*models.User")).
		Return(apperrors.ErrConflict).Once()
	err := service.RegisterUser(user)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	mockRepo.AssertExpectations(t)
}

func TestAuthService_LoginUser(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "secret")

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	user := &models.User{ID: "user-1", Email: "asha@example.com", Password: string(hashed)}

	// Successful login yields a token carrying the user id.
	mockRepo.On("GetByEmail", "asha@example.com").Return(user, nil).Once()
	token, err := service.LoginUser("asha@example.com", "correct horse")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims["user_id"])

	// Wrong password.
	mockRepo.On("GetByEmail", "asha@example.com").Return(user, nil).Once()
	_, err = service.LoginUser("asha@example.com", "wrong")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	// Unknown email must fail identically, without leaking existence.
	mockRepo.On("GetByEmail", "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()
	_, err = service.LoginUser("ghost@example.com", "whatever")
	assert.True(t, errors.Is(err, apperrors.ErrInvalidCredentials))

	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewAuthService(mockRepo, "secret")

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	mockRepo := new(MockUserRepository)
	issuer := services.NewAuthService(mockRepo, "secret-a")
	verifier := services.NewAuthService(mockRepo, "secret-b")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("pw123456"), bcrypt.DefaultCost)
	user := &models.User{ID: "user-1", Email: "a@example.com", Password: string(hashed)}
	mockRepo.On("GetByEmail", "a@example.com").Return(user, nil).Once()

	token, err := issuer.LoginUser("a@example.com", "pw123456")
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}
