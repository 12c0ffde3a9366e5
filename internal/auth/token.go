package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// TokenTTL is fixed; tokens are not refreshed.
const TokenTTL = time.Hour

var ErrInvalidToken = errors.New("invalid token")

// Claims carries only the user identity plus the registered time claims.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret), now: time.Now}
}

// WithClock swaps the time source, for tests.
func (s *Signer) WithClock(now func() time.Time) *Signer {
	s.now = now
	return s
}

func (s *Signer) Sign(uid bson.ObjectID) (string, error) {
	now := s.now()
	claims := Claims{
		UID: uid.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies signature, algorithm and expiry and returns the user id.
func (s *Signer) Parse(tokenStr string) (bson.ObjectID, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&claims,
		func(t *jwt.Token) (any, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return bson.NilObjectID, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	oid, err := bson.ObjectIDFromHex(uid)
	if err != nil {
		return bson.NilObjectID, fmt.Errorf("%w: bad uid", ErrInvalidToken)
	}
	return oid, nil
}
