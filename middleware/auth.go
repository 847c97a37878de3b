package middleware

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const adminTokenAudience = "admin"

// AdminClaims are the claims carried by an admin session token.
type AdminClaims struct {
	jwt.RegisteredClaims
}

// VerifyAdminKey checks a caller-supplied secret against the server-held one.
// When ADMIN_KEY_HASH is set it is treated as a bcrypt hash of the secret;
// otherwise the plaintext ADMIN_KEY is compared in constant time. An empty
// server-side configuration rejects everything.
func VerifyAdminKey(key string) bool {
	if key == "" {
		return false
	}

	if hash := os.Getenv("ADMIN_KEY_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)) == nil
	}

	secret := os.Getenv("ADMIN_KEY")
	if secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1
}

// GenerateAdminToken issues a signed session token for a caller that has
// already presented a valid admin key.
func GenerateAdminToken() (string, time.Time, error) {
	expiresAt := time.Now().Add(12 * time.Hour)
	claims := AdminClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{adminTokenAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func validateAdminToken(tokenString string) bool {
	if os.Getenv("JWT_SECRET") == "" {
		return false
	}

	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithAudience(adminTokenAudience))

	return err == nil && token.Valid
}

// AdminAuthMiddleware gates administrative routes. It accepts either the
// shared-secret X-Admin-Key header or a Bearer session token issued by the
// admin login endpoint. Every failure mode gets the same 401 envelope, before
// any store access.
func AdminAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Admin-Key"); key != "" {
			if VerifyAdminKey(key) {
				c.Next()
				return
			}
			unauthorized(c)
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString != authHeader && validateAdminToken(tokenString) {
				c.Next()
				return
			}
		}

		unauthorized(c)
	}
}

func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Unauthorized access",
	})
	c.Abort()
}
