package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sheetsync/internal/logger"

	"github.com/gin-gonic/gin"
)

const testSecret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

func signToken(t *testing.T, secret string, claims map[string]any) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	body := header + "." + base64.RawURLEncoding.EncodeToString(payload)
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(body))
	return body + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

func adminRouter() *gin.Engine {
	r := gin.New()
	r.Use(Recovery(logger.New("error")))
	r.GET("/admin", RequireAdmin(testSecret), func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		c.JSON(http.StatusOK, gin.H{"sub": claims.Subject})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func TestRequireAdmin(t *testing.T) {
	future := float64(time.Now().Add(time.Hour).Unix())
	past := float64(time.Now().Add(-time.Hour).Unix())

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"malformed", "Bearer a.b", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signToken(t, "other", map[string]any{"capabilities": []string{AdminCapability}}), http.StatusUnauthorized},
		{"expired", "Bearer " + signToken(t, testSecret, map[string]any{"capabilities": []string{AdminCapability}, "exp": past}), http.StatusUnauthorized},
		{"missing capability", "Bearer " + signToken(t, testSecret, map[string]any{"capabilities": []string{"edit_posts"}}), http.StatusForbidden},
		{"admin list", "Bearer " + signToken(t, testSecret, map[string]any{"sub": "1", "capabilities": []string{AdminCapability}, "exp": future}), http.StatusOK},
		{"admin map", "Bearer " + signToken(t, testSecret, map[string]any{"capabilities": map[string]bool{AdminCapability: true}}), http.StatusOK},
	}

	r := adminRouter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestVerifySignature(t *testing.T) {
	r := gin.New()
	r.POST("/hook", VerifySignature(testSecret), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	body := `{"product_id":1}`
	tests := []struct {
		name      string
		signature string
		want      int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong", Sign("other", []byte(body)), http.StatusUnauthorized},
		{"no prefix", strings.TrimPrefix(Sign(testSecret, []byte(body)), "sha256="), http.StatusUnauthorized},
		{"valid", Sign(testSecret, []byte(body)), http.StatusOK},
		{"uppercase hex", "sha256=" + strings.ToUpper(strings.TrimPrefix(Sign(testSecret, []byte(body)), "sha256=")), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader(body))
			if tt.signature != "" {
				req.Header.Set(SignatureHeader, tt.signature)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusOK && w.Body.String() != body {
				t.Fatalf("expected body to reach the handler, got %q", w.Body.String())
			}
		})
	}
}

func TestVerifySignatureOpenWithoutSecret(t *testing.T) {
	r := gin.New()
	r.POST("/hook", VerifySignature(""), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/hook", strings.NewReader("{}")))
	if w.Code != http.StatusOK {
		t.Fatalf("expected open route, got %d", w.Code)
	}
}

func TestRecoveryReturnsJSON(t *testing.T) {
	w := httptest.NewRecorder()
	adminRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["success"] != false {
		t.Fatalf("expected JSON failure body, got %q", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://admin.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://admin.test")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 for preflight, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://admin.test" {
		t.Fatalf("unexpected allow-origin %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Fatalf("expected plain response without CORS headers, got %d %q", w.Code, w.Header().Get("Access-Control-Allow-Origin"))
	}
}
