//go:build e2e
// +build e2e

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	authRouter "github.com/fablite/fablite/internal/auth/router"
	"github.com/fablite/fablite/internal/auth/token"
	"github.com/fablite/fablite/internal/database/migrate"
	"github.com/fablite/fablite/internal/health"
	teamRouter "github.com/fablite/fablite/internal/team/router"
)

const inviteBase = "http://site.ru"

// E2ETestSuite runs the HTTP API against a real PostgreSQL instance.
// The server itself runs in-process so migrations and routing are exercised
// without an application image.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	httpClient  *http.Client
}

// SetupSuite runs once before all tests
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:12-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	// Apply the real SQL migrations, the same path the server takes on boot.
	os.Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(s.T(), migrate.Migrate(db), "failed to apply migrations")

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	log := zap.NewNop().Sugar()
	tokens := token.NewManager("e2e-secret", time.Hour)

	healthHandler := health.New(db, log)
	engine.GET("/health", healthHandler.Check)

	authRouter.RegisterRoutes(engine, db, tokens, log)
	teamRouter.RegisterRoutes(engine, db, tokens, log, inviteBase)

	s.server = httptest.NewServer(engine)
	s.httpClient = &http.Client{Timeout: 30 * time.Second}
}

// TearDownSuite runs once after all tests
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest runs before each test
func (s *E2ETestSuite) SetupTest() {
	s.cleanDatabase()
}

// cleanDatabase truncates all tables
func (s *E2ETestSuite) cleanDatabase() {
	s.db.Exec("TRUNCATE TABLE user_team CASCADE")
	s.db.Exec("TRUNCATE TABLE teams RESTART IDENTITY CASCADE")
	s.db.Exec("TRUNCATE TABLE users RESTART IDENTITY CASCADE")
}

// Helper methods for HTTP requests

// doRequest performs an HTTP request with an optional bearer token
func (s *E2ETestSuite) doRequest(method, path, bearerToken string, body interface{}) (*http.Response, []byte) {
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.T(), err, "failed to marshal request body")
		buf = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, s.server.URL+path, buf)
	require.NoError(s.T(), err, "failed to create request")

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// register creates a user account via the API
func (s *E2ETestSuite) register(email, password, name, surname string) {
	resp, respBody := s.doRequest("POST", "/auth/register", "", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
		"surname":  surname,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "register failed: %s", string(respBody))
}

// login authenticates and returns the access token
func (s *E2ETestSuite) login(email, password string) string {
	resp, respBody := s.doRequest("POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, "login failed: %s", string(respBody))

	var result struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal login response")
	require.NotEmpty(s.T(), result.AccessToken)
	return result.AccessToken
}

// createTeam creates a team and returns the invite link
func (s *E2ETestSuite) createTeam(bearerToken, teamName string) string {
	resp, respBody := s.doRequest("POST", "/new_team", bearerToken, map[string]string{
		"team_name": teamName,
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, "create team failed: %s", string(respBody))

	var result struct {
		InviteLink string `json:"invite_link"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal team response")
	return result.InviteLink
}

type memberEntry struct {
	Name    *string `json:"name"`
	Surname *string `json:"surname"`
	Role    string  `json:"role"`
}

// listMembers fetches the public member listing of a team
func (s *E2ETestSuite) listMembers(teamName string) []memberEntry {
	resp, respBody := s.doRequest("GET", "/"+teamName, "", nil)
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, "list members failed: %s", string(respBody))

	var result struct {
		Members []memberEntry `json:"members"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &result), "failed to unmarshal members response")
	return result.Members
}

// parseErrorResponse extracts the error message from a response body
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) string {
	var errResp struct {
		Error string `json:"error"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &errResp), "failed to unmarshal error response")
	return errResp.Error
}
