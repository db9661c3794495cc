package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/CDavidSV/URL-shortener-api/internal/apiclient"
	"github.com/CDavidSV/URL-shortener-api/internal/models"
	"github.com/CDavidSV/URL-shortener-api/internal/service"
	"github.com/CDavidSV/URL-shortener-api/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setupAuthService создаёт тестовое окружение с моковым API клиентом
func setupAuthService() (service.AuthService, *mocks.MockAPIClient) {
	api := mocks.NewMockAPIClient()
	authService := service.NewAuthService(api, zap.NewNop())
	return authService, api
}

// TestAuthService_Login_Success проверяет успешный логин
func TestAuthService_Login_Success(t *testing.T) {
	authService, api := setupAuthService()
	api.LoginToken = "abc"

	token, err := authService.Login(context.Background(), models.Credentials{
		Username: "dave",
		Password: "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	require.Len(t, api.LoginCalls, 1)
	assert.Equal(t, "dave", api.LoginCalls[0].Username)
}

// TestAuthService_Login_Failure проверяет проброс ошибки бэкенда
func TestAuthService_Login_Failure(t *testing.T) {
	authService, api := setupAuthService()
	api.LoginErr = &apiclient.APIError{
		StatusCode: 401,
		Detail:     "Incorrect username or password",
	}

	token, err := authService.Login(context.Background(), models.Credentials{
		Username: "dave",
		Password: "bad",
	})

	assert.Empty(t, token)
	require.Error(t, err)

	fe := service.LoginFormError(err)
	assert.Equal(t, "Incorrect username or password", fe.Message)
	assert.True(t, fe.Invalid(models.FieldUsername))
	assert.True(t, fe.Invalid(models.FieldPassword))
}

// TestAuthService_SignUp_InvalidEmail проверяет, что невалидный email
// блокирует отправку без сетевого вызова
func TestAuthService_SignUp_InvalidEmail(t *testing.T) {
	authService, api := setupAuthService()

	token, err := authService.SignUp(context.Background(), models.SignupRequest{
		Email:    "plainaddress",
		Username: "dave",
	})

	assert.Empty(t, token)
	assert.ErrorIs(t, err, service.ErrInvalidEmail)
	assert.Empty(t, api.SignupCalls)

	fe := service.SignupFormError(err)
	assert.Equal(t, "Invalid Email Address", fe.Message)
	assert.True(t, fe.Invalid(models.FieldEmail))
	assert.False(t, fe.Invalid(models.FieldUsername))
}

// TestAuthService_SignUp_Success проверяет успешную регистрацию
func TestAuthService_SignUp_Success(t *testing.T) {
	authService, api := setupAuthService()
	api.SignupToken = "xyz"

	token, err := authService.SignUp(context.Background(), models.SignupRequest{
		Email:     "dave@example.com",
		Username:  "dave",
		FirstName: "Dave",
		LastName:  "Smith",
		Password:  "s3cret",
	})

	require.NoError(t, err)
	assert.Equal(t, "xyz", token)
	require.Len(t, api.SignupCalls, 1)
}

// TestSignupFormError_StructuredCode проверяет выбор поля по code
func TestSignupFormError_StructuredCode(t *testing.T) {
	fe := service.SignupFormError(&apiclient.APIError{
		StatusCode: 409,
		Code:       apiclient.CodeEmailTaken,
		Detail:     "This address cannot be used",
	})
	assert.Equal(t, "This address cannot be used", fe.Message)
	assert.True(t, fe.Invalid(models.FieldEmail))
	assert.False(t, fe.Invalid(models.FieldUsername))

	fe = service.SignupFormError(&apiclient.APIError{
		StatusCode: 409,
		Code:       apiclient.CodeUsernameTaken,
		Detail:     "Name cannot be used",
	})
	assert.True(t, fe.Invalid(models.FieldUsername))
	assert.False(t, fe.Invalid(models.FieldEmail))
}

// TestSignupFormError_DetailSubstring проверяет разбор старого контракта
// по подстроке в detail
func TestSignupFormError_DetailSubstring(t *testing.T) {
	fe := service.SignupFormError(&apiclient.APIError{
		StatusCode: 409,
		Detail:     "Email already in use",
	})
	assert.Equal(t, "Email already in use", fe.Message)
	assert.True(t, fe.Invalid(models.FieldEmail))
	assert.False(t, fe.Invalid(models.FieldUsername))

	fe = service.SignupFormError(&apiclient.APIError{
		StatusCode: 409,
		Detail:     "Username is already in use",
	})
	assert.True(t, fe.Invalid(models.FieldUsername))
	assert.False(t, fe.Invalid(models.FieldEmail))
}

// TestSignupFormError_UnrecognizedDetail проверяет, что ошибка без
// опознанного поля всё равно показывается пользователю
func TestSignupFormError_UnrecognizedDetail(t *testing.T) {
	fe := service.SignupFormError(&apiclient.APIError{
		StatusCode: 400,
		Detail:     "Password is too short",
	})
	assert.Equal(t, "Password is too short", fe.Message)
	assert.False(t, fe.Invalid(models.FieldEmail))
	assert.False(t, fe.Invalid(models.FieldUsername))
}

// TestSignupFormError_TransportError проверяет подсветку обоих полей
// при транспортной ошибке
func TestSignupFormError_TransportError(t *testing.T) {
	fe := service.SignupFormError(errors.New("connection refused"))
	assert.Equal(t, "connection refused", fe.Message)
	assert.True(t, fe.Invalid(models.FieldEmail))
	assert.True(t, fe.Invalid(models.FieldUsername))
}
