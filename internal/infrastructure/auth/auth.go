// Package auth resolves the calling principal from a session token.
// Tokens are validated against the identity provider's JWKS; when auth
// is disabled (local development) a development principal is used.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"synthia-server/internal/config"
	"synthia-server/internal/domain"
)

const principalContextKey = "auth.principal"

// devCompanyID is the tenant used when AUTH_ENABLED is false and the
// request carries no X-Company-ID header.
const devCompanyID = "comp_dev"

type Validator struct {
	cfg  *config.Config
	jwks *keyfunc.JWKS
}

func NewValidator(ctx context.Context, cfg *config.Config) (*Validator, error) {
	v := &Validator{cfg: cfg}
	if !cfg.AuthEnabled {
		log.Warn().Msg("authentication disabled, using development principal")
		return v, nil
	}

	jwks, err := keyfunc.Get(cfg.AuthJWKSURL, keyfunc.Options{
		Ctx:             ctx,
		RefreshInterval: time.Hour,
		RefreshErrorHandler: func(err error) {
			log.Error().Err(err).Msg("jwks refresh failed")
		},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch jwks from %s: %w", cfg.AuthJWKSURL, err)
	}
	v.jwks = jwks
	return v, nil
}

// Ready reports whether the validator can verify tokens.
func (v *Validator) Ready() bool {
	return !v.cfg.AuthEnabled || v.jwks != nil
}

// Principal validates the session token and extracts the company the
// caller acts for.
func (v *Validator) Principal(tokenString string) (domain.Principal, error) {
	token, err := jwt.Parse(tokenString, v.jwks.Keyfunc,
		jwt.WithIssuer(v.cfg.AuthIssuer),
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}),
	)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, fmt.Errorf("unexpected claims type")
	}

	if v.cfg.AuthAudience != "" {
		if err := checkAudience(claims, v.cfg.AuthAudience); err != nil {
			return domain.Principal{}, err
		}
	}

	companyID, _ := claims["company_id"].(string)
	if companyID == "" {
		// Fall back to the subject for providers that issue one
		// session per company.
		companyID, _ = claims["sub"].(string)
	}
	if companyID == "" {
		return domain.Principal{}, fmt.Errorf("token has no company identity")
	}

	return domain.Principal{CompanyPublicID: companyID}, nil
}

func checkAudience(claims jwt.MapClaims, want string) error {
	audiences, err := claims.GetAudience()
	if err != nil {
		return fmt.Errorf("read audience claim: %w", err)
	}
	for _, aud := range audiences {
		if aud == want {
			return nil
		}
	}
	return fmt.Errorf("audience mismatch")
}

// Middleware resolves the principal for every request in the group.
// The session cookie is preferred; an Authorization bearer token is
// accepted as a fallback for non-browser clients.
func Middleware(v *Validator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !v.cfg.AuthEnabled {
			companyID := c.GetHeader("X-Company-ID")
			if companyID == "" {
				companyID = devCompanyID
			}
			c.Set(principalContextKey, domain.Principal{CompanyPublicID: companyID})
			c.Next()
			return
		}

		tokenString := sessionToken(c, v.cfg.AuthCookieName)
		if tokenString == "" {
			abortUnauthorized(c, "missing session token")
			return
		}

		principal, err := v.Principal(tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("session token rejected")
			abortUnauthorized(c, "invalid session token")
			return
		}

		c.Set(principalContextKey, principal)
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if after, ok := strings.CutPrefix(header, "Bearer "); ok {
		return after
	}
	return ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message})
}

// CurrentPrincipal returns the principal resolved by Middleware.
func CurrentPrincipal(c *gin.Context) (domain.Principal, bool) {
	val, ok := c.Get(principalContextKey)
	if !ok {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}
