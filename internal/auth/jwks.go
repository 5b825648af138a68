package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrKeySetUnavailable = errors.New("jwks unavailable")
	ErrUnknownKeyId      = errors.New("kid not found in jwks")
)

// KeyProvider builds the jwt.Keyfunc used to verify one request's token.
type KeyProvider interface {
	Keyfunc(ctx context.Context) jwt.Keyfunc
}

// KeySet verifies tokens against a remote JWKS. Keys are cached by keyfunc,
// refreshed in the background and refetched rate-limited on an unknown kid.
type KeySet struct {
	jwks keyfunc.Keyfunc
	err  error
}

// NewKeySet fetches the key set at url. ctx ends the background refresh. An
// empty url yields a key set that rejects every token as unavailable.
func NewKeySet(ctx context.Context, url string) *KeySet {
	if url == "" {
		return &KeySet{err: errors.New("jwks url is not configured")}
	}
	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{url})
	return &KeySet{jwks: jwks, err: err}
}

func (k *KeySet) Keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if k.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, k.err)
		}
		if kid, _ := token.Header["kid"].(string); kid == "" {
			return nil, ErrUnknownKeyId
		}

		key, err := k.jwks.KeyfuncCtx(ctx)(token)
		if err == nil {
			return key, nil
		}

		// An empty store means the endpoint never answered with usable keys.
		all, readErr := k.jwks.Storage().KeyReadAll(ctx)
		if readErr != nil || len(all) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrKeySetUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnknownKeyId, err)
	}
}
