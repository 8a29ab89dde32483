// accounts.go - Registration, login and admin seeding

package service // Declares the package name

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus" // Structured logging

	"dress-suggestion-backend/database" // ErrNotFound
	"dress-suggestion-backend/hasher"   // Password hashing
	"dress-suggestion-backend/models"   // User documents
)

// Messages returned to clients
const (
	MsgUserExists     = "User with this email already exists."
	MsgUserNotFound   = "User not found."
	MsgAdminNotFound  = "Admin not found."
	MsgBadCredentials = "Invalid credentials."
	MsgPasswordLength = "Password must be at most 72 bytes."
)

// UserStore is the subset of database.Store the account service needs
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	FindAdminByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) (string, error)
	CountAdmins(ctx context.Context) (int64, error)
}

type Accounts struct {
	store  UserStore
	hasher hasher.Hasher
	log    logrus.FieldLogger
}

func NewAccounts(store UserStore, h hasher.Hasher, log logrus.FieldLogger) *Accounts {
	return &Accounts{store: store, hasher: h, log: log}
}

// Register creates a non-admin user. The email check and the insert are two
// separate operations, so concurrent registrations can still race.
func (a *Accounts) Register(ctx context.Context, userName, email, password string) (*models.User, error) {
	_, err := a.store.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, newError(KindConflict, MsgUserExists, nil)
	case !errors.Is(err, database.ErrNotFound):
		return nil, infraError(err)
	}

	user, err := a.newUser(userName, email, password, false)
	if err != nil {
		return nil, err
	}
	if _, err := a.store.CreateUser(ctx, user); err != nil {
		return nil, infraError(err)
	}

	a.log.WithField("user_id", user.ID).Info("user registered")
	return user, nil
}

// Login checks credentials against any account and reports whether it is an admin.
func (a *Accounts) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := a.store.FindUserByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, newError(KindNotFound, MsgUserNotFound, nil)
	}
	if err != nil {
		return nil, infraError(err)
	}
	if !a.hasher.Verify(password, user.Password) {
		return nil, newError(KindUnauthorized, MsgBadCredentials, nil)
	}
	return user, nil
}

// AdminLogin only considers accounts with the admin flag set.
func (a *Accounts) AdminLogin(ctx context.Context, email, password string) (*models.User, error) {
	admin, err := a.store.FindAdminByEmail(ctx, email)
	if errors.Is(err, database.ErrNotFound) {
		return nil, newError(KindNotFound, MsgAdminNotFound, nil)
	}
	if err != nil {
		return nil, infraError(err)
	}
	if !a.hasher.Verify(password, admin.Password) {
		return nil, newError(KindUnauthorized, MsgBadCredentials, nil)
	}
	return admin, nil
}

// EnsureAdmin creates an admin account when none exists yet.
// It reports whether an account was created.
func (a *Accounts) EnsureAdmin(ctx context.Context, userName, email, password string) (bool, error) {
	count, err := a.store.CountAdmins(ctx)
	if err != nil {
		return false, infraError(err)
	}
	if count > 0 {
		return false, nil
	}

	admin, err := a.newUser(userName, email, password, true)
	if err != nil {
		return false, err
	}
	if _, err := a.store.CreateUser(ctx, admin); err != nil {
		return false, infraError(err)
	}

	a.log.WithField("email", email).Info("default admin created")
	return true, nil
}

func (a *Accounts) newUser(userName, email, password string, isAdmin bool) (*models.User, error) {
	hash, err := a.hasher.Hash(password)
	if errors.Is(err, hasher.ErrPasswordTooLong) {
		return nil, newError(KindInvalid, MsgPasswordLength, err)
	}
	if err != nil {
		return nil, infraError(err)
	}
	return &models.User{UserName: userName, Email: email, Password: hash, IsAdmin: isAdmin}, nil
}
