package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/bitesapp/security/internal/auth/domain"
	apperrors "github.com/bitesapp/security/internal/errors"
)

// JWTConfig carries the token settings as read from the environment.
type JWTConfig struct {
	Secret     string
	Expiration time.Duration
	Issuer     string
}

type jwtService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
	now        func() time.Time
}

// NewJWTService creates an HS256 JWTService.
//
// The secret is checked on every call rather than here, so an unconfigured secret only
// fails the operations that need it.
func NewJWTService(cfg JWTConfig) JWTService {
	expiration := cfg.Expiration
	if expiration <= 0 {
		expiration = authDomain.DefaultTokenExpiration
	}

	return &jwtService{
		secret:     []byte(cfg.Secret),
		expiration: expiration,
		issuer:     cfg.Issuer,
		now:        time.Now,
	}
}

func (j *jwtService) Generate(claims authDomain.Claims, ttl time.Duration) (*authDomain.IssuedToken, error) {
	if err := j.checkSecret(); err != nil {
		return nil, err
	}
	switch {
	case ttl < 0:
		return nil, authDomain.ErrInvalidTokenTTL
	case ttl == 0:
		ttl = j.expiration
	}

	mapClaims := jwt.MapClaims{}
	for name, value := range claims {
		if authDomain.IsReservedClaim(name) {
			return nil, apperrors.Wrap(authDomain.ErrReservedClaim, name)
		}
		canonical, err := authDomain.CanonicalClaimValue(value)
		if err != nil {
			return nil, apperrors.Wrap(err, name)
		}
		mapClaims[name] = canonical
	}

	now := j.now()
	expiresAt := now.Add(ttl)
	id := uuid.NewString()

	mapClaims["iat"] = now.Unix()
	mapClaims["exp"] = expiresAt.Unix()
	mapClaims["jti"] = id
	if j.issuer != "" {
		mapClaims["iss"] = j.issuer
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString(j.secret)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to sign token")
	}

	return &authDomain.IssuedToken{
		Token:     token,
		ID:        id,
		ExpiresAt: time.Unix(expiresAt.Unix(), 0).UTC(),
	}, nil
}

func (j *jwtService) Verify(token string) (authDomain.Claims, error) {
	if err := j.checkSecret(); err != nil {
		return nil, err
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
		jwt.WithJSONNumber(),
	}
	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	mapClaims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, mapClaims, func(*jwt.Token) (any, error) {
		return j.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, authDomain.ErrTokenExpired
		}
		return nil, authDomain.ErrInvalidToken
	}

	claims := make(authDomain.Claims, len(mapClaims))
	for name, value := range mapClaims {
		if authDomain.IsReservedClaim(name) {
			continue
		}
		canonical, err := authDomain.CanonicalClaimValue(value)
		if err != nil {
			return nil, authDomain.ErrInvalidToken
		}
		claims[name] = canonical
	}
	return claims, nil
}

func (j *jwtService) checkSecret() error {
	if len(j.secret) < authDomain.MinSigningSecretLength {
		return authDomain.ErrSigningSecretNotConfigured
	}
	return nil
}
