package middleware

import (
	"context"
	"strings"

	"taskboard/internal/app/user"
	"taskboard/internal/apperr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const accountKey = "account"

type Resolver interface {
	ResolveFromToken(ctx context.Context, token string) (*user.Account, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// resolved account on the context.
func RequireAuth(resolver Resolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			apperr.Respond(c, logger, apperr.New(apperr.ErrUnauthorized, "Not authenticated"))
			return
		}

		account, err := resolver.ResolveFromToken(c.Request.Context(), token)
		if err != nil {
			apperr.Respond(c, logger, err)
			return
		}

		c.Set(accountKey, account)
		c.Next()
	}
}

// CurrentAccount returns the account stored by RequireAuth.
func CurrentAccount(c *gin.Context) (*user.Account, bool) {
	v, ok := c.Get(accountKey)
	if !ok {
		return nil, false
	}
	account, ok := v.(*user.Account)
	return account, ok && account != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
