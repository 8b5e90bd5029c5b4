package user

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/mfrancor/characters-api/auth"
	"github.com/mfrancor/characters-api/logger"
)

// memoryRepository is an in-memory Repository for service tests.
type memoryRepository struct {
	users  map[string]*User
	nextID int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{users: map[string]*User{}}
}

func (r *memoryRepository) Save(_ context.Context, u *User) error {
	if u.ID == "" {
		r.nextID++
		u.ID = string(rune('0' + r.nextID))
	}
	clone := *u
	r.users[u.ID] = &clone
	return nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	for _, u := range r.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryRepository) Update(_ context.Context, id string, updates map[string]interface{}) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if name, ok := updates["name"].(string); ok {
		u.Name = name
	}
	if username, ok := updates["username"].(string); ok {
		u.Username = username
	}
	clone := *u
	return &clone, nil
}

func (r *memoryRepository) Delete(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.users, id)
	return u, nil
}

func newTestService() (*Service, *memoryRepository) {
	repo := newMemoryRepository()
	hasher := auth.NewBcryptHasher(auth.WithCost(bcrypt.MinCost))
	return NewService(repo, hasher, logger.NewDefault("test")), repo
}

func TestServiceCreate(t *testing.T) {
	svc, repo := newTestService()

	u, err := svc.Create(context.Background(), CreateUserDTO{
		Name: "Morty Smith", Username: "morty", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if u.ID == "" {
		t.Error("Create() returned user without id")
	}
	if u.Password != "" {
		t.Errorf("Create() returned password %q, want it stripped", u.Password)
	}

	stored, err := repo.FindByID(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if stored.Password == "" || stored.Password == "s3cret" {
		t.Errorf("stored password = %q, want a hash", stored.Password)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	tests := []struct {
		name string
		dto  CreateUserDTO
	}{
		{"all missing", CreateUserDTO{}},
		{"missing password", CreateUserDTO{Name: "Morty", Username: "morty"}},
		{"missing username", CreateUserDTO{Name: "Morty", Password: "s3cret"}},
		{"missing name", CreateUserDTO{Username: "morty", Password: "s3cret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			_, err := svc.Create(context.Background(), tt.dto)
			if !errors.Is(err, ErrUserDataRequired) {
				t.Errorf("Create() error = %v, want ErrUserDataRequired", err)
			}
		})
	}
}

func TestServiceCreateDuplicateUsername(t *testing.T) {
	svc, _ := newTestService()
	dto := CreateUserDTO{Name: "Morty Smith", Username: "morty", Password: "s3cret"}

	if _, err := svc.Create(context.Background(), dto); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(context.Background(), dto)
	if err == nil {
		t.Fatal("second Create() error = nil, want duplicate username error")
	}
	if err.Error() != "The username morty already exists" {
		t.Errorf("error = %q, want duplicate username message", err.Error())
	}
}

func TestServiceFindByID(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), CreateUserDTO{
		Name: "Morty Smith", Username: "morty", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := svc.FindByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Username != "morty" || found.Password != "" {
		t.Errorf("FindByID() = %+v, want morty with stripped password", found)
	}

	if _, err := svc.FindByID(context.Background(), "missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestServiceUpdate(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), CreateUserDTO{
		Name: "Morty Smith", Username: "morty", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateUserDTO{Name: "Mortimer Smith"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != "Mortimer Smith" || updated.Username != "morty" {
		t.Errorf("Update() = %+v, want renamed user with same username", updated)
	}

	if _, err := svc.Update(context.Background(), created.ID, UpdateUserDTO{}); !errors.Is(err, ErrUserDataRequired) {
		t.Errorf("Update() with empty dto error = %v, want ErrUserDataRequired", err)
	}
	if _, err := svc.Update(context.Background(), "missing", UpdateUserDTO{Name: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestServiceDelete(t *testing.T) {
	svc, repo := newTestService()
	created, err := svc.Create(context.Background(), CreateUserDTO{
		Name: "Morty Smith", Username: "morty", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deleted, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deleted.ID != created.ID {
		t.Errorf("Delete() id = %q, want %q", deleted.ID, created.ID)
	}
	if _, err := repo.FindByID(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("user still present after delete, err = %v", err)
	}

	if _, err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("second Delete() error = %v, want ErrUserNotFound", err)
	}
}

func TestServiceFindUserByUsernameWithPassword(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), CreateUserDTO{
		Name: "Morty Smith", Username: "morty", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	stored, err := svc.FindUserByUsernameWithPassword(context.Background(), "morty")
	if err != nil {
		t.Fatalf("FindUserByUsernameWithPassword() error = %v", err)
	}
	if stored.ID != created.ID || stored.Username != "morty" {
		t.Errorf("stored = %+v, want created user", stored)
	}
	// This is the one lookup that keeps the hash for the login comparison.
	if stored.Password == "" || stored.Password == "s3cret" {
		t.Errorf("stored password = %q, want the hash", stored.Password)
	}

	if _, err := svc.FindUserByUsernameWithPassword(context.Background(), "rick"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown username error = %v, want ErrUserNotFound", err)
	}

	var _ auth.UserLookup = svc
}
