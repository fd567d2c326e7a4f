// Package identity tracks registered users and the active session. The
// session record is a denormalized snapshot of the user taken at login time;
// later edits to the users record are not reflected in it.
package identity

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/theLastOfCats/bookstore-go/internal/model"
	"github.com/theLastOfCats/bookstore-go/internal/storage"
)

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

type Manager struct {
	store  *storage.Store
	secret []byte
	now    func() time.Time
}

// New builds a Manager. With a non-empty secret the session snapshot is
// persisted as a signed token; otherwise it is stored as plain JSON.
func New(store *storage.Store, secret []byte) *Manager {
	return &Manager{store: store, secret: secret, now: time.Now}
}

// Register appends a new user and makes it the active session. The users
// record is left untouched when the username is already taken.
func (m *Manager) Register(name, username, password string) (*model.User, error) {
	users := m.store.Users()
	for _, u := range users {
		if u.Username == username {
			return nil, ErrUsernameTaken
		}
	}

	user := model.User{
		ID:       m.now().UnixMilli(),
		Name:     name,
		Username: username,
		Password: password,
	}
	users = append(users, user)
	if err := m.store.SetUsers(users); err != nil {
		return nil, err
	}
	if err := m.setSession(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login matches username and password exactly. The session is only written
// on success; a failed attempt leaves it as it was.
func (m *Manager) Login(username, password string) (*model.User, error) {
	for _, u := range m.store.Users() {
		if u.Username == username && u.Password == password {
			if err := m.setSession(&u); err != nil {
				return nil, err
			}
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

func (m *Manager) Logout() error {
	return m.store.RemoveCurrentUser()
}

// Current returns the session snapshot, or nil when no session exists or the
// stored record does not parse (or verify, in signed mode).
func (m *Manager) Current() *model.User {
	raw, ok := m.store.CurrentUserRaw()
	if !ok {
		return nil
	}

	if len(m.secret) > 0 {
		user, err := parseSessionToken(raw, m.secret)
		if err != nil {
			return nil
		}
		return user
	}

	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil
	}
	return &user
}

func (m *Manager) setSession(user *model.User) error {
	if len(m.secret) > 0 {
		token, err := signSessionToken(user, m.secret)
		if err != nil {
			return err
		}
		return m.store.SetCurrentUserRaw(token)
	}

	buf, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return m.store.SetCurrentUserRaw(string(buf))
}
