package auth

import (
	"context"

	apperrors "github.com/mfrancor/characters-api/errors"
	"github.com/mfrancor/characters-api/logger"
)

// Credentials is a transient username/password pair. It exists only for the
// duration of a login call and is never persisted.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// StoredUser is the subset of the user record the auth core reads. Password
// is the stored hash, never plaintext.
type StoredUser struct {
	ID       string
	Username string
	Password string
}

// UserLookup is the capability the auth core consumes from the user module.
type UserLookup interface {
	FindUserByUsernameWithPassword(ctx context.Context, username string) (StoredUser, error)
}

// UserLogin is returned to the caller on a successful login. It never
// includes the password or its hash.
type UserLogin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Service verifies credentials and issues tokens.
type Service struct {
	users  UserLookup
	hasher Hasher
	signer TokenSigner
	log    *logger.Logger
}

// NewService creates the credential verifier.
func NewService(users UserLookup, hasher Hasher, signer TokenSigner, log *logger.Logger) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		signer: signer,
		log:    log.WithComponent("auth"),
	}
}

// Login validates the credentials, compares the password against the stored
// hash, and issues a token. Steps short-circuit: no token is issued unless
// presence validation and the password comparison both succeed, and no state
// is created on failure.
//
// A lookup failure (including unknown username) is reported as an opaque
// internal error so that the response is indistinguishable across usernames.
func (s *Service) Login(ctx context.Context, credentials Credentials) (UserLogin, error) {
	username, password := credentials.Username, credentials.Password
	if username == "" || password == "" {
		return UserLogin{}, ErrCredentialsRequired
	}

	user, err := s.users.FindUserByUsernameWithPassword(ctx, username)
	if err != nil {
		s.log.WithError(err).Warn("user lookup failed", map[string]interface{}{
			"username": username,
		})
		return UserLogin{}, apperrors.Internal(err)
	}

	ok, err := s.hasher.Compare(password, user.Password)
	if err != nil {
		return UserLogin{}, apperrors.Internal(err)
	}
	if !ok {
		return UserLogin{}, ErrInvalidCredentials
	}

	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return UserLogin{}, apperrors.Internal(err)
	}

	return UserLogin{ID: user.ID, Username: username, Token: token}, nil
}
