package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const SignatureHeader = "X-Sheetsync-Signature"

// maxWebhookBody caps how much of a webhook body is buffered for signing.
const maxWebhookBody = 1 << 20

// VerifySignature checks "sha256=<hex>" HMAC signatures of the raw body. An
// empty secret leaves the route open.
func VerifySignature(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to read request body."})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !validSignature(secret, c.GetHeader(SignatureHeader), body) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "invalid_signature",
				"message": "Invalid webhook signature.",
			})
			return
		}
		c.Next()
	}
}

// Sign returns the header value for body.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func validSignature(secret, header string, body []byte) bool {
	got, ok := strings.CutPrefix(strings.TrimSpace(header), "sha256=")
	if !ok || got == "" {
		return false
	}
	want := strings.TrimPrefix(Sign(secret, body), "sha256=")
	return hmac.Equal([]byte(strings.ToLower(got)), []byte(want))
}
