package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/hamzahq/turath/internal/dto"
	"github.com/rs/zerolog/log"
)

// Context keys set by RequireIdentity for downstream handlers.
const (
	ContextExternalID = "external_id"
	ContextEmail      = "email"
	ContextUsername   = "username"
)

// RequireIdentity verifies the bearer token and exposes the identity claims
// (sub, email, username) on the gin context. Token issuance belongs to the
// external identity provider; only HMAC verification happens here.
func RequireIdentity(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString, err := extractBearerToken(ctx)
		if err != nil {
			unauthorized(ctx, err.Error())
			return
		}

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return []byte(secret), nil
		})
		if err != nil {
			log.Warn().Err(err).Msg("RequireIdentity: token verification failed")
			unauthorized(ctx, "invalid or expired token")
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			unauthorized(ctx, "token is missing a subject")
			return
		}

		ctx.Set(ContextExternalID, sub)
		if email, ok := claims["email"].(string); ok {
			ctx.Set(ContextEmail, email)
		}
		if username, ok := claims["username"].(string); ok {
			ctx.Set(ContextUsername, username)
		}
		ctx.Next()
	}
}

func extractBearerToken(ctx *gin.Context) (string, error) {
	header := ctx.GetHeader("Authorization")
	if header == "" {
		return "", fmt.Errorf("missing Authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fmt.Errorf("malformed Authorization header")
	}
	return parts[1], nil
}

func unauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Timestamp: time.Now(),
		Status:    http.StatusUnauthorized,
		Error:     "Unauthorized",
		Message:   message,
		Path:      ctx.Request.URL.Path,
	})
}
