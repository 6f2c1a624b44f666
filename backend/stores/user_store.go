package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// UserStore owns users and their profiles.
type UserStore interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	CreateProfile(profile *models.Profile) error
	GetProfile(userID uint) (*models.Profile, error)
	SaveProfile(profile *models.Profile) error
}

type GormUserStore struct {
	DB *gorm.DB
}

func NewUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{DB: db}
}

func (s *GormUserStore) Create(user *models.User) error {
	return s.DB.Create(user).Error
}

func (s *GormUserStore) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.Preload("Profile").First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormUserStore) Update(user *models.User) error {
	return s.DB.Save(user).Error
}

func (s *GormUserStore) CreateProfile(profile *models.Profile) error {
	return s.DB.Create(profile).Error
}

func (s *GormUserStore) GetProfile(userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := s.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (s *GormUserStore) SaveProfile(profile *models.Profile) error {
	return s.DB.Save(profile).Error
}
