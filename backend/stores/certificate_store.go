package stores

import (
	"lms/backend/models"

	"gorm.io/gorm"
)

// CertificateStore owns issued certificates.
type CertificateStore interface {
	Create(cert *models.Certificate) error
	GetByUserAndCourse(userID, courseID uint) (*models.Certificate, error)
	GetByCode(code string) (*models.Certificate, error)
	ListByUser(userID uint) ([]models.Certificate, error)
	CountByUser(userID uint) (int64, error)
}

type GormCertificateStore struct {
	DB *gorm.DB
}

func NewCertificateStore(db *gorm.DB) *GormCertificateStore {
	return &GormCertificateStore{DB: db}
}

func (s *GormCertificateStore) Create(cert *models.Certificate) error {
	return s.DB.Create(cert).Error
}

func (s *GormCertificateStore) GetByUserAndCourse(userID, courseID uint) (*models.Certificate, error) {
	var cert models.Certificate
	err := s.DB.Where("user_id = ? AND course_id = ?", userID, courseID).First(&cert).Error
	if err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *GormCertificateStore) GetByCode(code string) (*models.Certificate, error) {
	var cert models.Certificate
	if err := s.DB.Where("certificate_code = ?", code).First(&cert).Error; err != nil {
		return nil, err
	}
	return &cert, nil
}

func (s *GormCertificateStore) ListByUser(userID uint) ([]models.Certificate, error) {
	var certs []models.Certificate
	if err := s.DB.Where("user_id = ?", userID).Find(&certs).Error; err != nil {
		return nil, err
	}
	return certs, nil
}

func (s *GormCertificateStore) CountByUser(userID uint) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Certificate{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
