package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"socialnet-api/models"
	"socialnet-api/repositories"
	"socialnet-api/utils"
)

// AccountService owns signup, login and the user directory. The acting
// identity is always an explicit parameter; nothing here reads ambient
// session state.
type AccountService struct {
	users *repositories.UserRepository
}

func NewAccountService(users *repositories.UserRepository) *AccountService {
	return &AccountService{users: users}
}

// Register creates a user with a normalized email and a bcrypt-hashed
// password. All input validation happens before the store is touched.
func (as *AccountService) Register(name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = models.NormalizeEmail(email)

	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidation)
	}
	if !utils.IsValidPassword(password) {
		return nil, fmt.Errorf("%w: password too weak", ErrValidation)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New().String(),
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := as.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email or name already registered", ErrDuplicateIdentity)
		}
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("user registered")
	return user, nil
}

// Authenticate verifies email+password and returns the user. Unknown email
// and bad password are indistinguishable to the caller.
func (as *AccountService) Authenticate(email, password string) (*models.User, error) {
	user, err := as.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrUnauthenticated
	}

	return user, nil
}

func (as *AccountService) GetProfile(userID string) (*models.User, error) {
	user, err := as.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateName changes the display name, the only mutable profile field.
func (as *AccountService) UpdateName(userID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	if err := as.users.UpdateName(userID, name); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: name already taken", ErrDuplicateIdentity)
		}
		return err
	}
	return nil
}

// Search pages through the directory by name substring and/or exact email,
// both case-insensitive.
func (as *AccountService) Search(namePattern, emailExact string, page, limit int) ([]models.User, int64, error) {
	page, limit = utils.ClampPagination(page, limit, 10)
	return as.users.Search(namePattern, emailExact, page, limit)
}
