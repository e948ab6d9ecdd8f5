package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucas-barreto/foodcheck/internal/auth"
	"github.com/lucas-barreto/foodcheck/internal/models"
	"github.com/lucas-barreto/foodcheck/internal/repo"
)

// RegisterHandler godoc
// @Summary Register new user and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body RegisterRequest true "email and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 409 {string} string "Email already registered"
// @Router /user/register [post]
func RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "missing credentials", http.StatusBadRequest)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := userRepo.CreateUser(models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		DateCreated:  time.Now().UTC(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// TokenHandler godoc
// @Summary Authenticate with form credentials and return a bearer token
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "email"
// @Param password formData string true "password"
// @Success 200 {object} TokenResponse
// @Failure 401 {string} string "Invalid Credentials"
// @Router /user/token [post]
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	email := r.PostFormValue("username")
	password := r.PostFormValue("password")

	// Unknown email and wrong password answer identically.
	user, err := userRepo.GetByEmail(email)
	if err != nil {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"}); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}

// MeHandler godoc
// @Summary Return the user identified by the bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {string} string "Invalid Credentials"
// @Router /user/me [post]
func MeHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r)
	if !ok {
		http.Error(w, "Invalid Credentials", http.StatusUnauthorized)
		return
	}

	resp := UserResponse{ID: user.ID, Email: user.Email, DateCreated: user.DateCreated}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
