package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// TokenService signs and verifies the bearer credentials protecting
// mutating routes. Login submissions carry arbitrary claims; the service
// only adds the validity window.
type TokenService struct {
	signingKey []byte
	expiry     time.Duration
}

func NewTokenService(signingKey string, expiry time.Duration) *TokenService {
	return &TokenService{
		signingKey: []byte(signingKey),
		expiry:     expiry,
	}
}

// IssueToken signs the submitted claims with the process-wide secret,
// valid for the configured window.
func (s *TokenService) IssueToken(claims map[string]interface{}) (string, error) {
	tokenClaims := jwt.MapClaims{}
	for key, value := range claims {
		tokenClaims[key] = value
	}
	now := time.Now()
	tokenClaims["iat"] = jwt.NewNumericDate(now)
	tokenClaims["exp"] = jwt.NewNumericDate(now.Add(s.expiry))

	return jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims).
		SignedString(s.signingKey)
}

// VerifyToken validates a presented credential and returns its claims.
// Expired and tampered tokens are both rejected; the distinction is kept in
// the returned error.
func (s *TokenService) VerifyToken(tokenString string) (jwt.MapClaims, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
