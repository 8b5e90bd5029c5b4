// Package auth implements the authentication core: bcrypt password hashing,
// issuing and verifying signed expiring tokens, credential verification
// against the user store, and the Gin guard that protects routes.
//
// The pieces are wired by constructor injection:
//
//	hasher := auth.NewBcryptHasher(auth.WithCost(cfg.BcryptCost))
//	codec, err := auth.NewTokenCodec(cfg)
//	svc := auth.NewService(users, hasher, codec, log)
//	guard := auth.NewGuard(codec, log)
//
// A token is valid iff its signature verifies against the configured secret
// and its embedded expiry has not elapsed. Verification is stateless and
// idempotent; there is no server-side session store.
package auth
