package identity_test

import (
	"strings"
	"testing"

	"github.com/theLastOfCats/bookstore-go/internal/identity"
	"github.com/theLastOfCats/bookstore-go/internal/testutil"
)

func TestRegisterNewUser(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	user, err := m.Register("Ann Smith", "ann", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Error("Register assigned zero id")
	}

	users := store.Users()
	if len(users) != 1 {
		t.Fatalf("users record has %d entries, want 1", len(users))
	}
	if users[0].Username != "ann" || users[0].Password != "secret" {
		t.Errorf("stored user = %+v, want ann/secret", users[0])
	}

	current := m.Current()
	if current == nil || current.Username != "ann" {
		t.Errorf("Current after register = %v, want ann", current)
	}
}

func TestRegisterDuplicateUsernameChangesNothing(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	m.Logout()

	_, err := m.Register("Impostor", "ann", "other")
	if err != identity.ErrUsernameTaken {
		t.Fatalf("Register duplicate = %v, want ErrUsernameTaken", err)
	}

	users := store.Users()
	if len(users) != 1 {
		t.Errorf("users record has %d entries after duplicate register, want 1", len(users))
	}
	if got := m.Current(); got != nil {
		t.Errorf("Current after failed register = %v, want nil", got)
	}
}

func TestLogin(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	if _, err := m.Login("ann", "secret"); err != nil {
		t.Fatalf("Login with correct credentials: %v", err)
	}
	if got := m.Current(); got == nil || got.Username != "ann" {
		t.Errorf("Current after login = %v, want ann", got)
	}
}

func TestLoginFailureLeavesSessionUntouched(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := m.Register("Bob", "bob", "pw"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	// Bob is the active session now.

	if _, err := m.Login("ann", "wrong"); err != identity.ErrInvalidCredentials {
		t.Fatalf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if got := m.Current(); got == nil || got.Username != "bob" {
		t.Errorf("Current after failed login = %v, want bob unchanged", got)
	}

	if _, err := m.Login("nobody", "pw"); err != identity.ErrInvalidCredentials {
		t.Fatalf("Login with unknown user = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := m.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if got := m.Current(); got != nil {
		t.Errorf("Current after logout = %v, want nil", got)
	}

	// Logging out twice is fine.
	if err := m.Logout(); err != nil {
		t.Errorf("Second logout: %v", err)
	}
}

func TestSessionSnapshotIsDenormalized(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, nil)

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Mutate the underlying user record behind the session's back.
	users := store.Users()
	users[0].Name = "Renamed"
	if err := store.SetUsers(users); err != nil {
		t.Fatalf("SetUsers: %v", err)
	}

	if got := m.Current(); got == nil || got.Name != "Ann" {
		t.Errorf("Current = %v, want the stale Ann snapshot", got)
	}
}

func TestSignedSessions(t *testing.T) {
	store := testutil.SetupTestStore(t)
	m := identity.New(store, []byte("test-secret"))

	if _, err := m.Register("Ann", "ann", "secret"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	raw, ok := store.CurrentUserRaw()
	if !ok {
		t.Fatal("session record missing after register")
	}
	if !strings.HasPrefix(raw, "eyJ") {
		t.Errorf("session record = %q, want a signed token", raw)
	}

	if got := m.Current(); got == nil || got.Username != "ann" {
		t.Errorf("Current from signed session = %v, want ann", got)
	}

	// A tampered token reads as no session.
	if err := store.SetCurrentUserRaw(raw + "x"); err != nil {
		t.Fatalf("SetCurrentUserRaw: %v", err)
	}
	if got := m.Current(); got != nil {
		t.Errorf("Current from tampered token = %v, want nil", got)
	}

	// A token signed with a different secret reads as no session too.
	other := identity.New(store, []byte("other-secret"))
	if err := store.SetCurrentUserRaw(raw); err != nil {
		t.Fatalf("SetCurrentUserRaw: %v", err)
	}
	if got := other.Current(); got != nil {
		t.Errorf("Current with wrong secret = %v, want nil", got)
	}
}
