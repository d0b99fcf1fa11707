package authgate

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolve(t *testing.T) {
	alice := &User{ID: "u1", Email: "alice@example.com"}

	tests := []struct {
		name   string
		id     Identity
		policy Policy
		want   State
	}{
		{"anonymous", Identity{}, AllowAny, StateUnauthenticated},
		{"session without account", Identity{Authenticated: true}, AllowAny, StateDenied},
		{"any signed-in account", Identity{Authenticated: true, User: alice}, AllowAny, StateAuthorized},
		{"allowlisted email", Identity{Authenticated: true, User: alice}, Allowlist([]string{"Alice@Example.com"}), StateAuthorized},
		{"email not on allowlist", Identity{Authenticated: true, User: alice}, Allowlist([]string{"bob@example.com"}), StateDenied},
		{"empty allowlist denies everyone", Identity{Authenticated: true, User: alice}, Allowlist(nil), StateDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.id, tt.policy); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		path     string
		target   string
		redirect bool
	}{
		{"unauthenticated keeps login", StateUnauthenticated, LoginPath, "", false},
		{"unauthenticated leaves bikes", StateUnauthenticated, "/rental-bikes", LoginPath, true},
		{"unauthenticated leaves denied page", StateUnauthenticated, DeniedPath, LoginPath, true},
		{"unauthenticated leaves root", StateUnauthenticated, "/", LoginPath, true},

		{"denied keeps denied page", StateDenied, DeniedPath, "", false},
		{"denied may log out", StateDenied, LogoutPath, "", false},
		{"denied leaves bookings", StateDenied, "/rental-bookings", DeniedPath, true},
		{"denied leaves login", StateDenied, LoginPath, DeniedPath, true},

		{"authorized keeps workshops", StateAuthorized, "/workshops", "", false},
		{"authorized keeps bike sub-path", StateAuthorized, "/rental-bikes/abc/toggle", "", false},
		{"authorized keeps bookings", StateAuthorized, "/rental-bookings", "", false},
		{"authorized may log out", StateAuthorized, LogoutPath, "", false},
		{"authorized leaves login for default page", StateAuthorized, LoginPath, DefaultPath, true},
		{"authorized leaves denied page", StateAuthorized, DeniedPath, DefaultPath, true},
		{"authorized leaves root for default page", StateAuthorized, "/", DefaultPath, true},
		{"prefix match needs a separator", StateAuthorized, "/rental-bikeshed", DefaultPath, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, redirect := RedirectTarget(tt.state, tt.path)
			if redirect != tt.redirect || target != tt.target {
				t.Errorf("RedirectTarget(%v, %q) = (%q, %v), want (%q, %v)",
					tt.state, tt.path, target, redirect, tt.target, tt.redirect)
			}
		})
	}
}

func TestPublic(t *testing.T) {
	for _, path := range []string{RentalPath, "/health", "/static/app.css", CallbackPath} {
		if !Public(path) {
			t.Errorf("Public(%q) = false, want true", path)
		}
	}
	for _, path := range []string{LoginPath, "/rental-bikes", "/"} {
		if Public(path) {
			t.Errorf("Public(%q) = true, want false", path)
		}
	}
}

func TestMiddleware(t *testing.T) {
	identity := Identity{}
	var sawUser *User
	var sawState State
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawUser = UserFromContext(r.Context())
		sawState = StateFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	gate := New(func(*http.Request) Identity { return identity }, AllowAny)
	handler := gate.Middleware(next)

	t.Run("unauthenticated request is redirected to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rental-bikes", nil))

		if rec.Code != http.StatusFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
		}
		if loc := rec.Header().Get("Location"); loc != LoginPath {
			t.Errorf("Location = %q, want %q", loc, LoginPath)
		}
	})

	t.Run("public path bypasses the gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RentalPath, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})

	t.Run("authorized request carries state and user", func(t *testing.T) {
		identity = Identity{Authenticated: true, User: &User{ID: "u1", Email: "alice@example.com"}}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rental-bookings", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if sawState != StateAuthorized {
			t.Errorf("state in context = %v, want %v", sawState, StateAuthorized)
		}
		if sawUser == nil || sawUser.Email != "alice@example.com" {
			t.Errorf("user in context = %+v, want alice", sawUser)
		}
	})
}
