package session

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/explorekerinci/web/internal/domain/user"
)

const issuer = "explore-kerinci-web"

var (
	ErrInvalidToken = errors.New("session: invalid token")
	ErrExpiredToken = errors.New("session: token has expired")
)

// Claims is the signed cookie payload.
type Claims struct {
	User     user.User `json:"user"`
	APIToken string    `json:"api_token"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens.
type Codec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewCodec creates a codec signing with the given secret. Tokens expire
// after maxAge.
func NewCodec(secret string, maxAge time.Duration) *Codec {
	return &Codec{secret: []byte(secret), maxAge: maxAge, now: time.Now}
}

// Encode signs a token for the authenticated user.
func (c *Codec) Encode(auth *user.Auth) (string, error) {
	if auth == nil || auth.Token == "" {
		return "", ErrInvalidToken
	}

	now := c.now()
	claims := Claims{
		User:     auth.User,
		APIToken: auth.Token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   strconv.FormatInt(auth.User.ID, 10),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Decode verifies a token and returns the hydrated session it carries.
func (c *Codec) Decode(raw string) (*Session, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(c.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.APIToken == "" {
		return nil, ErrInvalidToken
	}

	u := claims.User
	return &Session{User: &u, Token: claims.APIToken, Hydrated: true}, nil
}
