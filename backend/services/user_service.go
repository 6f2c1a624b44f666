package services

import (
	"errors"
	"log"
	"strings"

	"lms/backend/models"
	"lms/backend/stores"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Users  stores.UserStore
	Logger *log.Logger
}

func NewUserService(users stores.UserStore, logger *log.Logger) *UserService {
	return &UserService{Users: users, Logger: logger}
}

type ProfileUpdate struct {
	Fullname *string `json:"fullname"`
	Email    *string `json:"email"`
	Bio      *string `json:"bio"`
	Title    *string `json:"title"`
	Avatar   *string `json:"avatar"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

// Register creates a user with a bcrypt-hashed password plus an empty
// profile. Emails are stored lowercase; a duplicate yields ErrConflict.
func (s *UserService) Register(email, password, fullname string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.Users.GetByEmail(email); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashedPassword),
		Fullname:     fullname,
	}
	if err := s.Users.Create(user); err != nil {
		// Insert race on the unique email index still reports a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if err := s.Users.CreateProfile(&models.Profile{UserID: user.ID}); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials. Unknown email and wrong password both come
// back as ErrInvalidCredentials; the difference is visible only in the log.
func (s *UserService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.Logger.Printf("login failed: no user for %s", email)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.Logger.Printf("login failed: bad password for %s", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.Users.List()
}

func (s *UserService) GetUser(userID uint) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile applies a partial update to the user and their profile,
// creating the profile row on demand.
func (s *UserService) UpdateProfile(userID uint, patch ProfileUpdate) (*models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if patch.Fullname != nil {
		user.Fullname = *patch.Fullname
	}
	if patch.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*patch.Email))
		if email != user.Email {
			if _, err := s.Users.GetByEmail(email); err == nil {
				return nil, ErrConflict
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
			user.Email = email
		}
	}
	if err := s.Users.Update(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}

	profile, err := s.Users.GetProfile(userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
		if err := s.Users.CreateProfile(profile); err != nil {
			return nil, err
		}
	}

	if patch.Bio != nil {
		profile.Bio = *patch.Bio
	}
	if patch.Title != nil {
		profile.Title = *patch.Title
	}
	if patch.Avatar != nil {
		profile.Avatar = *patch.Avatar
	}
	if patch.LinkedIn != nil {
		profile.LinkedIn = *patch.LinkedIn
	}
	if patch.GitHub != nil {
		profile.GitHub = *patch.GitHub
	}
	if err := s.Users.SaveProfile(profile); err != nil {
		return nil, err
	}

	return s.Users.GetByID(userID)
}
