package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/apperror"
	"github.com/OnuegbuUdochukwu/water-cooler-network-sub001/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleUser           = "USER"
	RoleAdmin          = "ADMIN"
	RoleCorporateAdmin = "CORPORATE_ADMIN"
)

var (
	errTokenMissing = apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized)
	errTokenInvalid = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token has expired", http.StatusUnauthorized)
)

// AuthMiddleware validates an HMAC-signed bearer token (header or access_token
// cookie) and exposes user_id, company_id (int64) and role on the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, _ := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abort(c, errTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abort(c, errTokenExpired)
				return
			}
			abort(c, errTokenInvalid)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, errTokenInvalid)
			return
		}

		if typ, _ := claims["typ"].(string); typ == "refresh" {
			abort(c, errTokenInvalid)
			return
		}

		userID, ok := int64Claim(claims, "user_id")
		if !ok || userID <= 0 {
			abort(c, apperror.New(apperror.CodeUnauthorized, "User ID not found in token", http.StatusUnauthorized))
			return
		}

		// company_id is optional: users may sign up before joining a company.
		companyID, _ := int64Claim(claims, "company_id")
		role, _ := claims["role"].(string)
		if role == "" {
			role = RoleUser
		}

		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("role", role)

		c.Next()
	}
}

// RoleMiddleware lets the request through only for the listed roles.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abort(c, apperror.ErrForbidden)
	}
}

// RequireCompany rejects users whose token carries no company.
func RequireCompany() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetInt64("company_id") <= 0 {
			abort(c, apperror.ErrNoCompany)
			return
		}
		c.Next()
	}
}

func int64Claim(claims jwt.MapClaims, key string) (int64, bool) {
	switch v := claims[key].(type) {
	case float64:
		return int64(v), true
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

func abort(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}
