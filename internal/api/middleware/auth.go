package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// AdminCapability is the capability a token must carry to manage the sync.
const AdminCapability = "manage_options"

const claimsKey = "sheetsync.claims"

type authError struct {
	status  int
	code    string
	message string
}

func (e *authError) Error() string {
	return e.message
}

type Claims struct {
	Subject      string
	Capabilities map[string]struct{}
	Exp          int64
}

func (c Claims) Can(capability string) bool {
	_, ok := c.Capabilities[capability]
	return ok
}

// RequireAdmin rejects requests without an HS256 bearer token granting
// AdminCapability.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := authorizeBearer(c.GetHeader("Authorization"), secret, AdminCapability, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(err.status, gin.H{
				"success": false,
				"code":    err.code,
				"message": err.message,
			})
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by RequireAdmin.
func ClaimsFrom(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

func authorizeBearer(authHeader, secret, capability string, now time.Time) (Claims, *authError) {
	claims, err := parseBearer(authHeader, secret, now)
	if err != nil {
		return Claims{}, err
	}
	if capability != "" && !claims.Can(capability) {
		return Claims{}, &authError{
			status:  http.StatusForbidden,
			code:    "forbidden",
			message: "missing required capability: " + capability,
		}
	}
	return claims, nil
}

func parseBearer(authHeader, secret string, now time.Time) (Claims, *authError) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return Claims{}, unauthorized("missing or invalid bearer token")
	}
	raw := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return Claims{}, unauthorized("invalid jwt format")
	}

	headerBytes, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return Claims{}, unauthorized("invalid jwt header")
	}
	var header struct {
		Alg string `json:"alg"`
	}
	if err := json.Unmarshal(headerBytes, &header); err != nil {
		return Claims{}, unauthorized("invalid jwt header")
	}
	if header.Alg != "HS256" {
		return Claims{}, unauthorized("unsupported jwt algorithm")
	}

	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	if err != nil {
		return Claims{}, unauthorized("invalid jwt signature")
	}
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write([]byte(parts[0] + "." + parts[1]))
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return Claims{}, unauthorized("jwt signature mismatch")
	}

	payloadBytes, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return Claims{}, unauthorized("invalid jwt payload")
	}
	var payload map[string]any
	if err := json.Unmarshal(payloadBytes, &payload); err != nil {
		return Claims{}, unauthorized("invalid jwt payload")
	}

	claims := Claims{Capabilities: parseCapabilities(payload["capabilities"])}
	claims.Subject, _ = payload["sub"].(string)

	// exp is optional; a present but malformed one is rejected.
	if v, ok := payload["exp"]; ok {
		exp, err := parseExp(v)
		if err != nil {
			return Claims{}, unauthorized("invalid exp claim")
		}
		if now.Unix() >= exp {
			return Claims{}, unauthorized("token expired")
		}
		claims.Exp = exp
	}
	return claims, nil
}

func unauthorized(message string) *authError {
	return &authError{status: http.StatusUnauthorized, code: "unauthorized", message: message}
}

func parseCapabilities(v any) map[string]struct{} {
	out := map[string]struct{}{}
	switch typed := v.(type) {
	case []any:
		for _, item := range typed {
			if capability, ok := item.(string); ok && capability != "" {
				out[capability] = struct{}{}
			}
		}
	case map[string]any:
		// {"manage_options": true}
		for capability, granted := range typed {
			if b, ok := granted.(bool); ok && b {
				out[capability] = struct{}{}
			}
		}
	case string:
		for _, capability := range strings.Fields(typed) {
			out[capability] = struct{}{}
		}
	}
	return out
}

func parseExp(v any) (int64, error) {
	switch typed := v.(type) {
	case float64:
		return int64(typed), nil
	case json.Number:
		return typed.Int64()
	default:
		return 0, errors.New("unsupported exp type")
	}
}
