package user

import (
	"context"
	"errors"

	"github.com/mfrancor/characters-api/auth"
	apperrors "github.com/mfrancor/characters-api/errors"
	"github.com/mfrancor/characters-api/logger"
	"github.com/mfrancor/characters-api/util"
)

// Service holds user business logic. Signup hashes passwords through the
// auth hasher; lookups strip the hash before anything leaves this package,
// except FindUserByUsernameWithPassword which exists for the auth core.
type Service struct {
	repo   Repository
	hasher auth.Hasher
	log    *logger.Logger
}

// NewService creates the user service.
func NewService(repo Repository, hasher auth.Hasher, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		log:    log.WithComponent("user"),
	}
}

// Create registers a new user with a hashed password.
func (s *Service) Create(ctx context.Context, dto CreateUserDTO) (*User, error) {
	if err := util.ValidateStruct(dto); err != nil {
		return nil, ErrUserDataRequired
	}

	if _, err := s.repo.FindByUsername(ctx, dto.Username); err == nil {
		return nil, ErrUserAlreadyExists(dto.Username)
	} else if !errors.Is(err, ErrNotFound) {
		return nil, apperrors.Internal(err)
	}

	hash, err := s.hasher.Hash(dto.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	u := &User{Name: dto.Name, Username: dto.Username, Password: hash}
	if err := s.repo.Save(ctx, u); err != nil {
		s.log.WithError(err).Error("failed to save user", map[string]interface{}{
			"username": dto.Username,
		})
		return nil, apperrors.Internal(err)
	}

	return cleanPassword(u), nil
}

// FindByID retrieves a user by id, without the password hash.
func (s *Service) FindByID(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrUserDataRequired
	}
	u, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return cleanPassword(u), nil
}

// Update changes a user's name or username.
func (s *Service) Update(ctx context.Context, id string, dto UpdateUserDTO) (*User, error) {
	if id == "" || (dto.Name == "" && dto.Username == "") {
		return nil, ErrUserDataRequired
	}

	updates := map[string]interface{}{}
	if dto.Name != "" {
		updates["name"] = dto.Name
	}
	if dto.Username != "" {
		updates["username"] = dto.Username
	}

	u, err := s.repo.Update(ctx, id, updates)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return cleanPassword(u), nil
}

// Delete soft-deletes a user by id.
func (s *Service) Delete(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, ErrUserDataRequired
	}
	u, err := s.repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return cleanPassword(u), nil
}

// FindUserByUsernameWithPassword resolves a user including the stored hash.
// It implements auth.UserLookup and is the only lookup that keeps the hash.
func (s *Service) FindUserByUsernameWithPassword(ctx context.Context, username string) (auth.StoredUser, error) {
	if username == "" {
		return auth.StoredUser{}, ErrUserDataRequired
	}
	u, err := s.repo.FindByUsername(ctx, username)
	if errors.Is(err, ErrNotFound) {
		return auth.StoredUser{}, ErrUserNotFound
	}
	if err != nil {
		return auth.StoredUser{}, err
	}
	return auth.StoredUser{ID: u.ID, Username: u.Username, Password: u.Password}, nil
}

// cleanPassword strips the hash from a user record before it leaves the service.
func cleanPassword(u *User) *User {
	u.Password = ""
	return u
}
