package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kheireldine/ai-investor-portal/internal/config"
	"github.com/kheireldine/ai-investor-portal/internal/handlers"
	"github.com/kheireldine/ai-investor-portal/internal/logger"
	"github.com/kheireldine/ai-investor-portal/internal/middleware"
	"github.com/kheireldine/ai-investor-portal/internal/models"
	"github.com/kheireldine/ai-investor-portal/internal/services"
	"github.com/kheireldine/ai-investor-portal/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB        *gorm.DB
	Router    *gin.Engine
	Tokens    *middleware.TokenManager
	Generator *stubGenerator
}

// stubGenerator stands in for the Gemini upstream.
type stubGenerator struct {
	lastPrompt string
	response   string
	err        error
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

var _ services.Generator = (*stubGenerator)(nil)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Investor{},
		&models.PortfolioItem{},
		&models.CapitalRequest{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	investorService := services.NewInvestorService(db, config.DefaultSeed())
	portfolioService := services.NewPortfolioService(db)
	requestService := services.NewRequestService(db)

	tokens := middleware.NewTokenManager("integration-test-secret", time.Hour)
	generator := &stubGenerator{response: "# Generated\n\nMarkdown body."}

	authHandler := handlers.NewAuthHandler(investorService, tokens)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
	requestHandler := handlers.NewRequestHandler(requestService)
	aiHandler := handlers.NewAIHandler(generator, "\n\nFormat the entire answer as Markdown.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.POST("/signup", authHandler.Signup)
	router.POST("/token", authHandler.Login)

	protected := router.Group("/")
	protected.Use(tokens.AuthMiddleware())
	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/portfolio", portfolioHandler.GetPortfolio)
	protected.POST("/requests", requestHandler.CreateRequest)
	protected.GET("/requests", requestHandler.ListRequests)
	protected.POST("/ai", aiHandler.Generate)

	return &testApp{DB: db, Router: router, Tokens: tokens, Generator: generator}
}

// --- request helpers ---

func doJSON(app *testApp, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func doForm(app *testApp, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// signup registers an investor and fails the test on any non-201 response.
func signup(t *testing.T, app *testApp, email, password, name string) {
	t.Helper()

	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":%q}`, email, password, name)
	rec := doJSON(app, "POST", "/signup", "", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("signup failed with %d: %s", rec.Code, rec.Body.String())
	}
}

// login issues a bearer token and fails the test on any non-200 response.
func login(t *testing.T, app *testApp, email, password string) string {
	t.Helper()

	rec := doForm(app, "/token", url.Values{
		"username": {email},
		"password": {password},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed with %d: %s", rec.Code, rec.Body.String())
	}

	result := parseJSON(t, rec)
	token, _ := result["access_token"].(string)
	if token == "" {
		t.Fatal("login returned empty access_token")
	}
	return token
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response JSON: %v (body: %s)", err, rec.Body.String())
	}
	return result
}

func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response JSON array: %v (body: %s)", err, rec.Body.String())
	}
	return result
}
