package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"crm_imobiliario/internal/auth"
	"crm_imobiliario/internal/usecase/interfaces"
	"crm_imobiliario/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authorization header is missing", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid token", http.StatusUnauthorized)
)

// Auth validates an HS256 bearer token and stores the caller's identity in
// the request context. The user id is read from "sub", falling back to a
// "user_id" claim.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(errMissingToken.HTTPStatus, errMissingToken.ToHTTPError())
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		ident, err := ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(errInvalidToken.HTTPStatus, errInvalidToken.ToHTTPError())
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), ident))
		c.Next()
	}
}

// ParseToken verifies tokenString and extracts the identity it carries.
func ParseToken(tokenString string, secret []byte) (interfaces.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return interfaces.Identity{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return interfaces.Identity{}, errors.New("invalid token claims")
	}

	userID, _ := claims.GetSubject()
	if userID == "" {
		switch v := claims["user_id"].(type) {
		case string:
			userID = v
		case float64: // JWT numeric values are float64
			userID = fmt.Sprintf("%.0f", v)
		}
	}
	if strings.TrimSpace(userID) == "" {
		return interfaces.Identity{}, errors.New("invalid user ID in token")
	}

	email, _ := claims["email"].(string)
	return interfaces.Identity{UserID: userID, Email: email}, nil
}
