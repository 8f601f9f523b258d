package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	v1 "github.com/solarplanner-api/api/v1"
	"github.com/solarplanner-api/models"
	"github.com/solarplanner-api/repositories"
	"github.com/solarplanner-api/services"
)

const testSchemaPrefix = "test_planner"

// JWTSecret is the signing key used by all tests
const JWTSecret = "solarplanner-test-jwt-secret"

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// SetupTestDB creates a test database connection using a dedicated test
// schema. Each test gets an isolated schema that is dropped afterwards.
// Tests are skipped when no database is reachable.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	godotenv.Load()
	os.Setenv("JWT_SECRET", JWTSecret)

	host := getEnv("DB_HOST", "127.0.0.1")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "solarplanner")

	baseDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)

	// Create a unique test schema for isolation
	schemaName := fmt.Sprintf("%s_%d", testSchemaPrefix, time.Now().UnixNano()%1000000)

	// First: create schema using a temporary connection
	setupDB, err := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	if err := setupDB.Exec(fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", schemaName)).Error; err != nil {
		t.Skipf("test database unavailable: %v", err)
	}
	sqlSetup, _ := setupDB.DB()
	sqlSetup.Close()

	// Second: open connection with search_path in DSN so all pooled
	// connections use the test schema
	testDSN := fmt.Sprintf("%s search_path=%s", baseDSN, schemaName)
	db, err := gorm.Open(postgres.Open(testDSN), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	// Migrate test tables
	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Terrace{},
		&models.Structure{},
		&models.SolarPanel{},
		&models.Layout{},
	)
	if err != nil {
		t.Fatalf("Failed to migrate test tables: %v", err)
	}

	// Cleanup on test completion
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		// Reconnect to drop the schema
		cleanDB, cleanErr := gorm.Open(postgres.Open(baseDSN), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if cleanErr == nil {
			cleanDB.Exec(fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schemaName))
			sqlClean, _ := cleanDB.DB()
			if sqlClean != nil {
				sqlClean.Close()
			}
		}
	})

	return db
}

// NewRouter wires the full application against the given database and
// returns a test engine
func NewRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	userRepo := repositories.NewUserRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	terraceRepo := repositories.NewTerraceRepository(db)
	structureRepo := repositories.NewStructureRepository(db)
	panelRepo := repositories.NewPanelRepository(db)
	layoutRepo := repositories.NewLayoutRepository(db)

	authService := services.NewAuthService(userRepo)
	projectService := services.NewProjectService(projectRepo)
	designService := services.NewDesignService(projectRepo, terraceRepo, structureRepo, panelRepo, layoutRepo)

	v1.RegisterRoutes(
		r.Group("/api/v1"),
		v1.NewAuthController(authService),
		v1.NewProjectController(projectService),
		v1.NewDesignController(designService),
	)

	return r
}

// DoRequest executes an HTTP request against the test router
func DoRequest(r *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, _ := http.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// DoRawRequest executes a request with a raw JSON body, for payloads
// that intentionally fail to bind
func DoRawRequest(r *gin.Engine, method, path, rawBody, token string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(rawBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ParseResponse parses the JSON response body into a map
func ParseResponse(w *httptest.ResponseRecorder) map[string]interface{} {
	var result map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &result)
	return result
}

// RegisterAndLogin creates a user through the API and returns a bearer token
func RegisterAndLogin(t *testing.T, r *gin.Engine, username, email, password string) string {
	t.Helper()

	w := DoRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("registration failed: status %d, body %s", w.Code, w.Body.String())
	}

	w = DoRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: status %d, body %s", w.Code, w.Body.String())
	}

	data := ParseResponse(w)["data"].(map[string]interface{})
	return data["token"].(string)
}

// CreateProject creates a project through the API and returns its id
func CreateProject(t *testing.T, r *gin.Engine, token, name string) string {
	t.Helper()

	w := DoRequest(r, http.MethodPost, "/api/v1/projects", map[string]string{
		"name": name,
	}, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("project creation failed: status %d, body %s", w.Code, w.Body.String())
	}

	data := ParseResponse(w)["data"].(map[string]interface{})
	return data["id"].(string)
}
