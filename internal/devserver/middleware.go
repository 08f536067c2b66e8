package devserver

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxUserID = "userID"

// requireAuth validates the bearer token and stores the subject user id in
// the request context. Missing, malformed or expired tokens are rejected
// with 401 and the error envelope.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			fail(c, http.StatusUnauthorized, "authorization header is missing")
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			fail(c, http.StatusUnauthorized, "authorization header must use the Bearer scheme")
			return
		}

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		if _, ok := s.store.AccountByID(claims.Subject); !ok {
			fail(c, http.StatusUnauthorized, "unknown account")
			return
		}

		c.Set(ctxUserID, claims.Subject)
		c.Next()
	}
}

// userID returns the authenticated account id set by requireAuth.
func userID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}
