package storage

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// JWTSigner mints time-limited access tokens for stored objects. The token
// carries the bucket and key as claims; expiry and signature checks come
// from the JWT library.
type JWTSigner struct {
	secret []byte
}

func NewJWTSigner(secret string) *JWTSigner {
	return &JWTSigner{secret: []byte(secret)}
}

func (s *JWTSigner) Sign(bucket, key string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"bucket": bucket,
		"key":    key,
		"exp":    time.Now().Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *JWTSigner) Verify(token string) (string, string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", "", domain.ErrInvalidSignedURL
	}

	bucket, _ := claims["bucket"].(string)
	key, _ := claims["key"].(string)
	if bucket == "" || key == "" {
		return "", "", domain.ErrInvalidSignedURL
	}
	return bucket, key, nil
}
