package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	api "github.com/lucas-barreto/foodcheck/internal/http"
	handler "github.com/lucas-barreto/foodcheck/internal/http/handlers"
)

func TestRegisterHandler_NewEmailYieldsResolvableToken(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/user/register", handler.RegisterRequest{
		Email:    "a@b.com",
		Password: "pw",
	}, "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.TokenType != "bearer" {
		t.Errorf("expected token_type 'bearer', got %q", resp.TokenType)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a non-empty access_token")
	}

	// The freshly minted token must resolve back to the registered user.
	me := doJSON(r, http.MethodPost, "/user/me", nil, resp.AccessToken)
	if me.Code != http.StatusOK {
		t.Fatalf("expected 200 OK from /user/me, got %d", me.Code)
	}

	var user handler.UserResponse
	if err := json.NewDecoder(me.Body).Decode(&user); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if user.Email != "a@b.com" {
		t.Errorf("expected email 'a@b.com', got %q", user.Email)
	}
	if user.DateCreated.IsZero() {
		t.Error("expected date_created to be set")
	}
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	r := api.NewRouter()

	first := doJSON(r, http.MethodPost, "/user/register", handler.RegisterRequest{Email: "dup@b.com", Password: "pw"}, "")
	if first.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", first.Code)
	}

	second := doJSON(r, http.MethodPost, "/user/register", handler.RegisterRequest{Email: "dup@b.com", Password: "pw"}, "")
	if second.Code != http.StatusConflict {
		t.Errorf("expected 409 Conflict, got %d", second.Code)
	}
}

func TestRegisterHandler_MissingFields(t *testing.T) {
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.RegisterRequest
	}{
		{name: "no email", payload: handler.RegisterRequest{Password: "pw"}},
		{name: "no password", payload: handler.RegisterRequest{Email: "x@y.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(r, http.MethodPost, "/user/register", tt.payload, "")
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400 Bad Request, got %d", w.Code)
			}
		})
	}
}

func TestTokenHandler_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	r := api.NewRouter()

	responses := map[string]*httptest.ResponseRecorder{}
	for name, creds := range map[string][2]string{
		"wrong password": {"admin@example.com", "not-the-password"},
		"unknown email":  {"nobody@example.com", "secret"},
	} {
		form := url.Values{}
		form.Set("username", creds[0])
		form.Set("password", creds[1])

		req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		responses[name] = w
	}

	for name, w := range responses {
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected 401 Unauthorized, got %d", name, w.Code)
		}
		if body := strings.TrimSpace(w.Body.String()); body != "Invalid Credentials" {
			t.Errorf("%s: expected body 'Invalid Credentials', got %q", name, body)
		}
	}

	if responses["wrong password"].Body.String() != responses["unknown email"].Body.String() {
		t.Error("wrong-password and unknown-email responses must be identical")
	}
}

func TestTokenHandler_ValidCredentials(t *testing.T) {
	r := api.NewRouter()

	got, err := generateToken(r, "admin@example.com", "secret")
	if err != nil {
		t.Fatalf("error generating token: %v", err)
	}
	if got == "" {
		t.Fatal("expected a non-empty token")
	}
}

func TestMeHandler_NoToken(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/user/me", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "Invalid Credentials" {
		t.Errorf("expected body 'Invalid Credentials', got %q", body)
	}
}

func TestMeHandler_UsesResolvedUserFromContext(t *testing.T) {
	user, err := userRepo.GetByEmail("admin@example.com")
	if err != nil {
		t.Fatalf("error fetching user: %v", err)
	}

	// No Authorization header: the handler must rely on the user the
	// middleware resolved, not parse the token again.
	req := httptest.NewRequest(http.MethodPost, "/user/me", nil)
	req = req.WithContext(handler.WithUser(req.Context(), user))
	w := httptest.NewRecorder()
	handler.MeHandler(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.UserResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Email != "admin@example.com" {
		t.Errorf("expected email 'admin@example.com', got %q", resp.Email)
	}
}

func TestMeHandler_TamperedToken(t *testing.T) {
	r := api.NewRouter()

	w := doJSON(r, http.MethodPost, "/user/me", nil, token+"x")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 Unauthorized, got %d", w.Code)
	}
}
