package middleware

import (
	"bytes"
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminCodeQuery gates GET endpoints on the shared admin code passed as the
// "code" query parameter.
func AdminCodeQuery(adminCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Query("code")
		if code == "" || !codeMatches(code, adminCode) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid admin code"})
			return
		}
		c.Next()
	}
}

// AdminCodeJSON gates POST endpoints on the shared admin code carried in the
// JSON body. The body is rewound afterwards so handlers can bind it again.
func AdminCodeJSON(adminCode string) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid admin code"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		var req struct {
			Code string `json:"code"`
		}
		if err := json.Unmarshal(body, &req); err != nil || req.Code == "" || !codeMatches(req.Code, adminCode) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid admin code"})
			return
		}
		c.Next()
	}
}

func codeMatches(got, want string) bool {
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
