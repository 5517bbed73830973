package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"gerador_orcamentos/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	// ContextCallerIDKey is the gin context key for the token subject.
	ContextCallerIDKey = "callerID"
	// ContextPrivilegedKey is the gin context key for the privileged claim.
	ContextPrivilegedKey = "privileged"
)

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Privileged access required", http.StatusForbidden)
)

// AuthRequired validates an HS256 bearer token and stores the caller identity and
// the privileged claim in the gin context. An empty secret rejects every request.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawToken, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok || secret == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := parseClaims(rawToken, secret)
		if err != nil {
			log.Printf("[auth][middleware] invalid token path=%s err=%v", c.Request.URL.Path, err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		sub, _ := claims["sub"].(string)
		sub = strings.TrimSpace(sub)
		if sub == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		privileged, _ := claims["privileged"].(bool)

		c.Set(ContextCallerIDKey, sub)
		c.Set(ContextPrivilegedKey, privileged)
		c.Next()
	}
}

// RequirePrivileged must run after AuthRequired.
func RequirePrivileged() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsPrivileged(c) {
			c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
			return
		}
		c.Next()
	}
}

func CallerID(c *gin.Context) string {
	return c.GetString(ContextCallerIDKey)
}

func IsPrivileged(c *gin.Context) bool {
	return c.GetBool(ContextPrivilegedKey)
}

func extractBearerToken(authHeader string) (string, bool) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	rawToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	return rawToken, rawToken != ""
}

func parseClaims(rawToken, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
