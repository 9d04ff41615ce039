package identity

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/example/wardrobe/internal/models"
	"github.com/example/wardrobe/internal/utils"
)

// Service manages roles and accounts. Password hashing happens here; callers
// hand over plaintext credentials and never see the hash.
type Service struct {
	db *gorm.DB
}

// NewService constructs an identity Service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// RoleExists reports whether a role with the given name exists.
func (s *Service) RoleExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&models.Role{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateRole persists a new role.
func (s *Service) CreateRole(name string) error {
	role := models.Role{Name: name}
	if err := s.db.Create(&role).Error; err != nil {
		return fmt.Errorf("create role %q: %w", name, err)
	}
	return nil
}

// FindByEmail returns the account with the given email, or nil when none exists.
func (s *Service) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateAccount persists a new account with a bcrypt-hashed password.
func (s *Service) CreateAccount(email, username, password string) (*models.User, error) {
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:        email,
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create account %q: %w", email, err)
	}
	return &user, nil
}

// IsInRole reports whether the user holds the named role.
func (s *Service) IsInRole(user *models.User, roleName string) (bool, error) {
	var roles []models.Role
	if err := s.db.Model(user).Association("Roles").Find(&roles); err != nil {
		return false, err
	}
	for _, role := range roles {
		if role.Name == roleName {
			return true, nil
		}
	}
	return false, nil
}

// AddToRole grants the named role to the user. The role must already exist.
func (s *Service) AddToRole(user *models.User, roleName string) error {
	var role models.Role
	if err := s.db.Where("name = ?", roleName).First(&role).Error; err != nil {
		return fmt.Errorf("find role %q: %w", roleName, err)
	}
	if err := s.db.Model(user).Association("Roles").Append(&role); err != nil {
		return fmt.Errorf("grant role %q to %q: %w", roleName, user.Email, err)
	}
	return nil
}
