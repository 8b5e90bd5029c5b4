package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mfrancor/characters-api/database"
)

// ErrNotFound is the repository-level not-found condition. The service maps
// it to ErrUserNotFound.
var ErrNotFound = errors.New("user: not found")

// Repository is the persistence contract for users.
type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*User, error)
	Delete(ctx context.Context, id string) (*User, error)
}

type gormRepository struct {
	db *database.DB
}

// NewRepository creates a GORM-backed user repository.
func NewRepository(db *database.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Save(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) FindByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *gormRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*User, error) {
	res := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *gormRepository) Delete(ctx context.Context, id string) (*User, error) {
	u, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Delete(u).Error; err != nil {
		return nil, err
	}
	return u, nil
}
