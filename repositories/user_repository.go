package repositories

import (
	"strings"

	"gorm.io/gorm"

	"socialnet-api/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Email and name collisions surface as
// gorm.ErrDuplicatedKey via the unique indexes.
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up by normalized email. The input is normalized
// here so callers never have to care about case.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", models.NormalizeEmail(email)).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIDs(ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Search filters users by name substring (case-insensitive) and/or exact
// normalized email. Both filters are optional and combine with AND. Ordering
// by id keeps pages stable across repeated reads of the same query.
func (r *UserRepository) Search(namePattern, emailExact string, page, limit int) ([]models.User, int64, error) {
	query := r.db.Model(&models.User{})

	if namePattern != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(namePattern)+"%")
	}
	if emailExact != "" {
		query = query.Where("email = ?", models.NormalizeEmail(emailExact))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit

	var users []models.User
	if err := query.Order("id").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// UpdateName changes the display name, the only mutable profile field in
// scope. A collision with another user's name surfaces as
// gorm.ErrDuplicatedKey.
func (r *UserRepository) UpdateName(id, name string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("name", name).Error
}
