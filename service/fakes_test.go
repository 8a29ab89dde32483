package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"dress-suggestion-backend/database"
	"dress-suggestion-backend/models"
)

var errDown = errors.New("store down")

// fakeStore is an in-memory store; set fail to make every call error
type fakeStore struct {
	mu      sync.Mutex
	users   []models.User
	themes  []models.DressTheme
	pages   []models.HomePage
	fail    bool
	inserts int
}

func (f *fakeStore) err() error {
	if f.fail {
		return errDown
	}
	return nil
}

func (f *fakeStore) HomePages(context.Context) ([]models.HomePage, error) {
	return f.pages, f.err()
}

func (f *fakeStore) RandomDressTheme(context.Context) ([]models.DressTheme, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	if len(f.themes) == 0 {
		return nil, nil
	}
	return f.themes[:1], nil
}

func (f *fakeStore) CreateDressTheme(_ context.Context, theme *models.DressTheme) (string, error) {
	if err := f.err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	theme.ID = fmt.Sprintf("theme-%d", f.inserts)
	f.themes = append(f.themes, *theme)
	return theme.ID, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u models.User) bool { return u.Email == email })
}

func (f *fakeStore) FindAdminByEmail(_ context.Context, email string) (*models.User, error) {
	return f.find(func(u models.User) bool { return u.Email == email && u.IsAdmin })
}

func (f *fakeStore) find(match func(models.User) bool) (*models.User, error) {
	if err := f.err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if match(u) {
			u := u
			return &u, nil
		}
	}
	return nil, database.ErrNotFound
}

func (f *fakeStore) CreateUser(_ context.Context, user *models.User) (string, error) {
	if err := f.err(); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inserts++
	user.ID = fmt.Sprintf("user-%d", f.inserts)
	f.users = append(f.users, *user)
	return user.ID, nil
}

func (f *fakeStore) CountAdmins(context.Context) (int64, error) {
	if err := f.err(); err != nil {
		return 0, err
	}
	var n int64
	for _, u := range f.users {
		if u.IsAdmin {
			n++
		}
	}
	return n, nil
}

// fakePublisher records published events
type fakePublisher struct {
	topics   []string
	payloads []interface{}
	err      error
}

func (p *fakePublisher) Publish(topic string, payload interface{}) error {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return p.err
}

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
