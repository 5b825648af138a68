package auth

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ReasonNoAuthorizationHeader = "No authorization header"
	ReasonInvalidFormat         = "Invalid authorization format"
	ReasonInvalidTokenFormat    = "Invalid token format"
	ReasonTokenExpired          = "Token expired"
	ReasonInvalidAudience       = "Invalid audience"
	ReasonInvalidToken          = "Invalid token"
	ReasonValidationFailed      = "Token validation failed"
	ReasonInvalidUserId         = "Invalid user id format"
	ReasonUserNotFound          = "User not found"
)

// Claims are the identity fields taken from a verified token.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Credentials is the auth material of one request.
type Credentials struct {
	Authorization string
	LegacyUserId  string
}

// AuthResult reports the outcome of resolving credentials. Err is set only on
// infrastructure failures; Error carries the client-facing reason otherwise.
type AuthResult struct {
	Authenticated bool
	User          *model.Gebruiker
	Auth0Id       string
	Error         string
	Err           error
}

// UserDirectory maps identities to internal users.
type UserDirectory interface {
	Resolve(ctx context.Context, claims Claims) (*model.Gebruiker, error)
	GetById(ctx context.Context, id uint) (*model.Gebruiker, error)
}

type ResolverConfig struct {
	SkipAuth  bool
	DevUserId uint
	Audience  string
	Issuer    string
}

type Resolver struct {
	cfg       ResolverConfig
	keys      KeyProvider
	directory UserDirectory
	logger    logger.ILogger
	now       func() time.Time
}

func NewResolver(cfg ResolverConfig, keys KeyProvider, directory UserDirectory, log logger.ILogger) *Resolver {
	return &Resolver{
		cfg:       cfg,
		keys:      keys,
		directory: directory,
		logger:    log,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for expiry checks.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	r.now = now
	return r
}

type tokenClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

func (r *Resolver) Resolve(ctx context.Context, creds Credentials) AuthResult {
	if r.cfg.SkipAuth {
		return r.resolveById(ctx, r.cfg.DevUserId)
	}

	if creds.Authorization != "" {
		return r.resolveBearer(ctx, creds.Authorization)
	}

	if creds.LegacyUserId != "" {
		r.logger.Warn("AUTH", "x-user-id header is deprecated, use a bearer token", map[string]interface{}{
			"x_user_id": creds.LegacyUserId,
		})
		id, err := strconv.ParseUint(strings.TrimSpace(creds.LegacyUserId), 10, 64)
		if err != nil || id == 0 {
			return AuthResult{Error: ReasonInvalidUserId}
		}
		return r.resolveById(ctx, uint(id))
	}

	return AuthResult{Error: ReasonNoAuthorizationHeader}
}

func (r *Resolver) resolveById(ctx context.Context, id uint) AuthResult {
	user, err := r.directory.GetById(ctx, id)
	if err != nil {
		return AuthResult{Error: ReasonValidationFailed, Err: err}
	}
	if user == nil {
		return AuthResult{Error: ReasonUserNotFound}
	}
	return AuthResult{Authenticated: true, User: user}
}

func (r *Resolver) resolveBearer(ctx context.Context, header string) AuthResult {
	if !strings.HasPrefix(header, "Bearer ") {
		return AuthResult{Error: ReasonInvalidFormat}
	}
	tokenStr := strings.TrimSpace(header[len("Bearer "):])
	if tokenStr == "" {
		return AuthResult{Error: ReasonInvalidFormat}
	}
	if strings.Count(tokenStr, ".") != 2 {
		return AuthResult{Error: ReasonInvalidTokenFormat}
	}

	claims, reason := r.verify(ctx, tokenStr)
	if reason != "" {
		return AuthResult{Error: reason}
	}

	user, err := r.directory.Resolve(ctx, claims)
	if err != nil {
		return AuthResult{Error: ReasonValidationFailed, Err: err}
	}
	if user == nil {
		return AuthResult{Error: ReasonUserNotFound}
	}
	return AuthResult{Authenticated: true, User: user, Auth0Id: claims.Subject}
}

// verify checks signature, audience, issuer and expiry. It returns the
// failure reason instead of an error.
func (r *Resolver) verify(ctx context.Context, tokenStr string) (Claims, string) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(r.now),
	}
	if r.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(r.cfg.Audience))
	}
	if r.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.cfg.Issuer))
	}

	parsed := &tokenClaims{}
	_, err := jwt.NewParser(opts...).ParseWithClaims(tokenStr, parsed, r.keys.Keyfunc(ctx))
	if err != nil {
		reason := failureReason(err)
		r.logger.Debug("AUTH", "token rejected", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
		return Claims{}, reason
	}
	if parsed.Subject == "" {
		return Claims{}, ReasonInvalidToken
	}

	return Claims{
		Subject: parsed.Subject,
		Email:   parsed.Email,
		Name:    parsed.Name,
	}, ""
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ReasonInvalidTokenFormat
	case errors.Is(err, jwt.ErrTokenExpired):
		return ReasonTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return ReasonInvalidAudience
	case errors.Is(err, ErrKeySetUnavailable):
		return ReasonValidationFailed
	case errors.Is(err, ErrUnknownKeyId),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
		return ReasonInvalidToken
	default:
		return ReasonValidationFailed
	}
}
