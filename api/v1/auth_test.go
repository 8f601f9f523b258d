package v1_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/solarplanner-api/testutil"
)

func TestRegisterThenLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "marta",
		"email":    "marta@example.com",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "marta",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := testutil.ParseResponse(w)["data"].(map[string]interface{})
	if data["token"] == "" {
		t.Fatal("expected a session token")
	}
	user := data["user"].(map[string]interface{})
	if _, exposed := user["password"]; exposed {
		t.Fatal("password hash must never be serialized")
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	payload := map[string]string{
		"username": "marta",
		"email":    "marta@example.com",
		"password": "secret123",
	}
	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	// Same username, different email
	payload["email"] = "other@example.com"
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate username must fail, got %d", w.Code)
	}

	// Same email, different username
	payload["username"] = "other"
	payload["email"] = "marta@example.com"
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/register", payload, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate email must fail, got %d", w.Code)
	}
}

func TestRegisterStorageFailureIs500(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	// Kill the connection pool so every query fails as a storage error
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get connection pool: %v", err)
	}
	sqlDB.Close()

	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"username": "marta",
		"email":    "marta@example.com",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("storage failure must be a 500, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "sql:") {
		t.Fatalf("storage error text leaked: %s", w.Body.String())
	}
}

func TestLoginFailureIsGeneric(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	testutil.RegisterAndLogin(t, r, "marta", "marta@example.com", "secret123")

	// Wrong password
	w := testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "marta",
		"password": "wrong",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	wrongPassword := testutil.ParseResponse(w)["error"]

	// Unknown username
	w = testutil.DoRequest(r, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": "nobody",
		"password": "secret123",
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	unknownUser := testutil.ParseResponse(w)["error"]

	// The two failure modes must be indistinguishable
	if wrongPassword != unknownUser {
		t.Fatalf("login failures must not be distinguishable: %q vs %q", wrongPassword, unknownUser)
	}
}

func TestMeRequiresAuth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := testutil.NewRouter(db)

	w := testutil.DoRequest(r, http.MethodGet, "/api/v1/auth/me", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token := testutil.RegisterAndLogin(t, r, "marta", "marta@example.com", "secret123")
	w = testutil.DoRequest(r, http.MethodGet, "/api/v1/auth/me", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d: %s", w.Code, w.Body.String())
	}

	user := testutil.ParseResponse(w)["user"].(map[string]interface{})
	if user["username"] != "marta" {
		t.Fatalf("expected current user marta, got %v", user["username"])
	}
}
