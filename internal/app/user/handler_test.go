package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *testEnv) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	env := newTestEnv(t)
	r := gin.New()
	RegisterRoutes(r, NewHandler(env.svc, zap.NewNop()))
	return r, env
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func postForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRegisterAndTokenEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := postJSON(r, "/register", `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("register status %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["token_type"] != "bearer" || body["access_token"] == "" {
		t.Fatalf("unexpected register body %v", body)
	}
	if len(body) != 2 {
		t.Fatalf("expected exactly access_token and token_type, got %v", body)
	}

	rec = postForm(r, "/token", url.Values{"username": {"alice"}, "password": {"pw1"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("token status %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRegisterDuplicateReturns400(t *testing.T) {
	r, _ := newTestRouter(t)
	postJSON(r, "/register", `{"username":"alice","password":"pw1"}`)

	rec := postJSON(r, "/register", `{"username":"alice","password":"pw2"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Username already registered") {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	r, _ := newTestRouter(t)
	for _, body := range []string{`{}`, `{"username":"alice"}`, `not json`} {
		if rec := postJSON(r, "/register", body); rec.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestTokenBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	postJSON(r, "/register", `{"username":"alice","password":"pw1"}`)

	rec := postForm(r, "/token", url.Values{"username": {"alice"}, "password": {"wrong"}})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if rec.Header().Get("WWW-Authenticate") != "Bearer" {
		t.Fatal("missing WWW-Authenticate header")
	}
	if rec.Body.String() != `{"detail":"Incorrect username or password"}` {
		t.Fatalf("unexpected body %s", rec.Body.String())
	}

	rec = postForm(r, "/token", url.Values{"username": {"alice"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
}

func TestTokenThrottled(t *testing.T) {
	r, env := newTestRouter(t)
	env.limiter.blocked["alice"] = true

	rec := postForm(r, "/token", url.Values{"username": {"alice"}, "password": {"pw1"}})
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}
