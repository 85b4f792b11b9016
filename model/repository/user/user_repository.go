package user

import (
	"time"

	"gorm.io/gorm"

	entity "github.com/Eboreg/klaatu-go/model/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByActiveToken returns the user owning a non-revoked access token,
// updating the token's last-used timestamp.
func (r *UserRepository) FindByActiveToken(token string) (*entity.User, error) {
	var t entity.AccessToken
	err := r.db.Preload("User").Where("token = ? AND revoked = ?", token, false).First(&t).Error
	if err != nil {
		return nil, err
	}
	// Orphaned token row; sqlite does not enforce the FK by default
	if t.User == nil {
		return nil, gorm.ErrRecordNotFound
	}
	now := time.Now()
	r.db.Model(&t).Update("last_used", &now)
	return t.User, nil
}

// FindByUsername returns an active user by username.
func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	err := r.db.Where("username = ? AND is_active = ?", username, true).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// List returns users, optionally filtered on is_active ("1" or "0"; any
// other value means no filter), like an admin boolean list filter.
func (r *UserRepository) List(isActive string) ([]entity.User, error) {
	var users []entity.User
	q := r.db.Order("user_id")
	switch isActive {
	case "1":
		q = q.Where("is_active = ?", true)
	case "0":
		q = q.Where("is_active = ?", false)
	}
	err := q.Find(&users).Error
	return users, err
}
