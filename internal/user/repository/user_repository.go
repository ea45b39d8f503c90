package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"vidtube-backend/internal/user/domain"
)

// userRepository implements UserRepository using GORM
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUsernameOrEmail(username, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.Where("username = ? OR email = ?", username, email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateRefreshToken writes only the refresh_token column so unrelated fields
// are never validated or rehashed on session mutations.
func (r *userRepository) UpdateRefreshToken(userID, refreshToken string) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"refresh_token": refreshToken,
			"updated_at":    time.Now(),
		}).Error
}

// RotateRefreshToken is a conditional write: the stored token is replaced only
// while it still equals expected. Concurrent refreshes racing on the same
// stale token lose by seeing zero affected rows.
func (r *userRepository) RotateRefreshToken(userID, expected, replacement string) (bool, error) {
	result := r.db.Model(&domain.User{}).
		Where("id = ? AND refresh_token = ?", userID, expected).
		Updates(map[string]interface{}{
			"refresh_token": replacement,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *userRepository) UpdatePasswordHash(userID, passwordHash string) error {
	return r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"password_hash": passwordHash,
			"updated_at":    time.Now(),
		}).Error
}

func (r *userRepository) UpdateAccount(userID, fullName, email string) (*domain.User, error) {
	err := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"full_name":  fullName,
			"email":      email,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(userID)
}

func (r *userRepository) UpdateAvatar(userID, avatarURL string) (*domain.User, error) {
	err := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"avatar_url": avatarURL,
			"updated_at": time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(userID)
}

func (r *userRepository) UpdateCoverImage(userID, coverImageURL string) (*domain.User, error) {
	err := r.db.Model(&domain.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"cover_image_url": coverImageURL,
			"updated_at":      time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(userID)
}

// HashPassword hashes a password using bcrypt. Called only at the two call
// sites that change a password; profile and session updates are
// column-targeted and cannot rehash.
func HashPassword(password string, cost int) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash. A mismatch is a false
// return, not an error.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
