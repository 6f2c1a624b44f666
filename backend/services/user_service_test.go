package services

import (
	"testing"

	"lms/backend/models"
	"lms/backend/stores"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestUserService(t *testing.T) (*UserService, *gorm.DB) {
	db := setupTestDB(t)
	return NewUserService(stores.NewUserStore(db), testLogger()), db
}

func TestRegisterCreatesUserAndProfile(t *testing.T) {
	svc, db := newTestUserService(t)

	user, err := svc.Register("Alice@Example.com", "secret123", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	var profile models.Profile
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register("alice@example.com", "secret123", "Alice")
	require.NoError(t, err)

	_, err = svc.Register("ALICE@EXAMPLE.COM", "other456", "Alice Again")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginRoundTrip(t *testing.T) {
	svc, _ := newTestUserService(t)

	registered, err := svc.Register("bob@example.com", "hunter22", "Bob")
	require.NoError(t, err)

	user, err := svc.Login("Bob@Example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register("carol@example.com", "pass1234", "Carol")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("carol@example.com", "wrong")
	_, noSuchUser := svc.Login("nobody@example.com", "pass1234")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, noSuchUser, ErrInvalidCredentials)
}

func TestUpdateProfilePartial(t *testing.T) {
	svc, _ := newTestUserService(t)

	user, err := svc.Register("dave@example.com", "pass1234", "Dave")
	require.NoError(t, err)

	bio := "Gopher"
	title := "Engineer"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{Bio: &bio, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Gopher", updated.Profile.Bio)
	assert.Equal(t, "Engineer", updated.Profile.Title)
	assert.Equal(t, "Dave", updated.Fullname)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Register("erin@example.com", "pass1234", "Erin")
	require.NoError(t, err)
	frank, err := svc.Register("frank@example.com", "pass1234", "Frank")
	require.NoError(t, err)

	taken := "erin@example.com"
	_, err = svc.UpdateProfile(frank.ID, ProfileUpdate{Email: &taken})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)

	bio := "ghost"
	_, err := svc.UpdateProfile(999, ProfileUpdate{Bio: &bio})
	assert.ErrorIs(t, err, ErrNotFound)
}
