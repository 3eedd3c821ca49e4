package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"cartas_marketplace/internal/domain/entities"
	"cartas_marketplace/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const principalKey = "principal"

var (
	ErrMissingSecret = errors.New("jwt secret is required")
	ErrInvalidRole   = errors.New("invalid role claim")
	ErrInvalidToken  = errors.New("invalid token")
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// Claims carried by access tokens. Subject is the user id.
type Claims struct {
	Role       string `json:"role"`
	KycLevel   int    `json:"kycLevel"`
	MfaEnabled bool   `json:"mfaEnabled"`
	jwt.RegisteredClaims
}

// TrustResolver raises a token's KYC claim to the level stored for the user.
type TrustResolver interface {
	EffectiveKycLevel(ctx context.Context, userID string, claimed int) int
}

// Authenticator validates HS256 bearer tokens and resolves the caller's principal.
type Authenticator struct {
	secret   []byte
	issuer   string
	audience string
	trust    TrustResolver
	now      func() time.Time
}

// NewAuthenticator builds the middleware. trust may be nil.
func NewAuthenticator(secret, issuer, audience string, trust TrustResolver) (*Authenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrMissingSecret
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer, audience: audience, trust: trust, now: time.Now}, nil
}

// IssueToken signs a token for p. Used by tooling and tests; the service itself
// never mints tokens.
func (a *Authenticator) IssueToken(p entities.Principal, ttl time.Duration) (string, error) {
	now := a.now()
	claims := &Claims{
		Role:       string(p.Role),
		KycLevel:   p.KycLevel,
		MfaEnabled: p.MfaEnabled,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now.Add(-1 * time.Minute)),
		},
	}
	if a.issuer != "" {
		claims.Issuer = a.issuer
	}
	if a.audience != "" {
		claims.Audience = jwt.ClaimStrings{a.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Parse validates signature, exp, iss and aud and returns the principal as claimed.
func (a *Authenticator) Parse(tokenStr string) (entities.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(a.now),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	tok, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return entities.Principal{}, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid || strings.TrimSpace(c.Subject) == "" {
		return entities.Principal{}, ErrInvalidToken
	}
	role := entities.Role(c.Role)
	if !role.Valid() {
		return entities.Principal{}, ErrInvalidRole
	}
	return entities.Principal{
		UserID:     c.Subject,
		Role:       role,
		KycLevel:   c.KycLevel,
		MfaEnabled: c.MfaEnabled,
	}, nil
}

// RequireAuth rejects requests without a valid bearer token and stores the
// principal, with its KYC level raised to the stored trust level, in the context.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		p, err := a.Parse(strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		if a.trust != nil {
			p.KycLevel = a.trust.EffectiveKycLevel(c.Request.Context(), p.UserID, p.KycLevel)
		}
		SetPrincipal(c, p)
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, p entities.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal stored by RequireAuth.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}
