package repository

import (
	"github.com/NBFYayI/Todo/internal/database"
	"github.com/NBFYayI/Todo/internal/models"
	"github.com/NBFYayI/Todo/internal/utils"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves users ordered by ID with pagination
func (r *GormUserRepository) List(skip, limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("id ASC").
		Scopes(database.Paginate(utils.PaginationParams{Skip: skip, Limit: limit})).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}
