package botframework

import (
	"context"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ritik-wo/taskmate-ai-ms-teams/pkg/domain/model"
)

const (
	botFrameworkJWKSURL = "https://login.botframework.com/v1/.well-known/keys"
	botFrameworkIssuer  = "https://api.botframework.com"
)

// TokenVerifier checks the Authorization header of inbound channel requests
type TokenVerifier interface {
	Verify(ctx context.Context, authHeader string) error
}

// JWTVerifier validates channel bearer tokens against the Bot Framework
// signing keys, checking issuer and the bot's app ID audience
type JWTVerifier struct {
	appID   string
	jwksURL string
	cache   *jwk.Cache
}

var _ TokenVerifier = &JWTVerifier{}

// JWTVerifierOption customizes the verifier
type JWTVerifierOption func(*JWTVerifier)

// WithJWKSURL overrides the signing key endpoint, for tests
func WithJWKSURL(url string) JWTVerifierOption {
	return func(v *JWTVerifier) {
		v.jwksURL = url
	}
}

// NewJWTVerifier creates a verifier with a refreshing JWKS cache
func NewJWTVerifier(ctx context.Context, appID string, opts ...JWTVerifierOption) (*JWTVerifier, error) {
	v := &JWTVerifier{
		appID:   appID,
		jwksURL: botFrameworkJWKSURL,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.cache = jwk.NewCache(ctx)
	if err := v.cache.Register(v.jwksURL, jwk.WithMinRefreshInterval(15*time.Minute)); err != nil {
		return nil, goerr.Wrap(err, "failed to register JWKS endpoint",
			goerr.V("url", v.jwksURL),
		)
	}

	return v, nil
}

// Verify checks the bearer token of one inbound request
func (v *JWTVerifier) Verify(ctx context.Context, authHeader string) error {
	raw, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok || raw == "" {
		return goerr.New("missing bearer token",
			goerr.T(model.ErrTagAuth),
		)
	}

	keySet, err := v.cache.Get(ctx, v.jwksURL)
	if err != nil {
		return goerr.Wrap(err, "failed to fetch signing keys",
			goerr.T(model.ErrTagAuth),
		)
	}

	if _, err := jwt.Parse([]byte(raw),
		jwt.WithKeySet(keySet),
		jwt.WithIssuer(botFrameworkIssuer),
		jwt.WithAudience(v.appID),
		jwt.WithValidate(true),
	); err != nil {
		return goerr.Wrap(err, "invalid channel token",
			goerr.T(model.ErrTagAuth),
		)
	}

	return nil
}
