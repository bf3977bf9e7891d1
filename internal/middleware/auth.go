package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// BasicAuth gates every page behind the single shared credential.
// The configured password is either plaintext or a bcrypt hash; a
// hash is recognized by its "$2" prefix.
func BasicAuth(username, password string) gin.HandlerFunc {
	hashed := strings.HasPrefix(password, "$2")

	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok || !verify(user, pass, username, password, hashed) {
			c.Header("WWW-Authenticate", `Basic realm="attendance"`)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

func verify(user, pass, username, password string, hashed bool) bool {
	if subtle.ConstantTimeCompare([]byte(user), []byte(username)) != 1 {
		return false
	}
	if hashed {
		return bcrypt.CompareHashAndPassword([]byte(password), []byte(pass)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
}
