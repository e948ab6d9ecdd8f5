package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucas-barreto/foodcheck/internal/auth"
	api "github.com/lucas-barreto/foodcheck/internal/http"
	handler "github.com/lucas-barreto/foodcheck/internal/http/handlers"
	"github.com/lucas-barreto/foodcheck/internal/models"
	"github.com/lucas-barreto/foodcheck/internal/repo"
)

var (
	token       string
	userRepo    *repo.InMemoryUserRepository
	companyRepo *repo.InMemoryCompanyRepository
	productRepo *repo.InMemoryProductRepository
	checkRepo   *repo.InMemoryProductCheckRepository
)

func init() {
	auth.Configure("test-secret", time.Hour)
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin@example.com", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)
	api.SetUserRepo(userRepo)

	companyRepo = repo.NewInMemoryCompanyRepository()
	handler.SetCompanyRepo(companyRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	checkRepo = repo.NewInMemoryProductCheckRepository()
	handler.SetCheckRepo(checkRepo)

	handler.SetRefChecker(&repo.InMemoryRefChecker{
		Companies: companyRepo,
		Products:  productRepo,
	})

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		DateCreated:  time.Now().UTC(),
	})
}

func clearAllCompanies() {
	companyRepo.Clear()
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllChecks() {
	checkRepo.Clear()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req := httptest.NewRequest(http.MethodPost, "/user/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.AccessToken, nil
}

func doJSON(r http.Handler, method, path string, payload any, bearer string) *httptest.ResponseRecorder {
	var body bytes.Buffer
	if payload != nil {
		json.NewEncoder(&body).Encode(payload)
	}

	req := httptest.NewRequest(method, path, &body)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createCompany(r http.Handler, c handler.CompanyRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/companies", c, token)
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p, token)
}

func createCheck(r http.Handler, c handler.CheckRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products/check", c, token)
}
