package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	result, status := doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "newuser@example.com",
		"password": "password123",
		"fullname": "New User",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])
	assert.NotEmpty(t, result["user"])

	result, status = doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "NewUser@Example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)
	assert.NotEmpty(t, result["token"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, status := doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "dupe@example.com",
		"password": "password123",
	})
	require.Equal(t, fiber.StatusOK, status)

	_, status = doJSON(t, "POST", "/api/auth/register", "", map[string]string{
		"email":    "DUPE@example.com",
		"password": "password456",
	})
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestLoginBadCredentials(t *testing.T) {
	_, status := doJSON(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "whatever",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestUpdateProfileRequiresAuth(t *testing.T) {
	_, status := doJSON(t, "PUT", "/api/auth/profile/1", "", map[string]string{
		"bio": "unauthorized",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}
