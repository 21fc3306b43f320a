package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Handlers translate all of these to 401.
var (
	ErrMissingToken   = errors.New("token missing")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
	ErrUnknownSubject = errors.New("unknown subject")
)

// SessionClaims authenticate a staff member.
type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TableClaims scope a request to a physical ordering point. They carry no
// identity, so they never pass for a session token and vice versa.
type TableClaims struct {
	Location string `json:"location"`
	jwt.RegisteredClaims
}

// Issuer creates and validates signed, expiring bearer tokens. Tokens are
// self-contained: there is no server-side session store, which also means a
// token cannot be revoked before its expiry.
type Issuer struct {
	secret     []byte
	creds      CredentialStore
	sessionTTL time.Duration
	tableTTL   time.Duration
}

func NewIssuer(secret []byte, creds CredentialStore, sessionTTL, tableTTL time.Duration) *Issuer {
	return &Issuer{secret: secret, creds: creds, sessionTTL: sessionTTL, tableTTL: tableTTL}
}

// IssueSession signs a staff session token for the given username.
func (i *Issuer) IssueSession(username string) (string, error) {
	claims := SessionClaims{
		Username:         username,
		RegisteredClaims: registered(i.sessionTTL),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// IssueTable signs a location-scoped token, e.g. for a table QR link.
func (i *Issuer) IssueTable(location string) (string, error) {
	claims := TableClaims{
		Location:         location,
		RegisteredClaims: registered(i.tableTTL),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// VerifySession validates a staff session token and returns its username.
// A location-scoped token is rejected as malformed, and a username that the
// credential store does not know fails with ErrUnknownSubject.
func (i *Issuer) VerifySession(tokenStr string) (string, error) {
	claims := &SessionClaims{}
	if err := i.parse(tokenStr, claims); err != nil {
		return "", err
	}
	if claims.Username == "" {
		return "", fmt.Errorf("%w: no username claim", ErrTokenMalformed)
	}
	if _, ok := i.creds.Lookup(claims.Username); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSubject, claims.Username)
	}
	return claims.Username, nil
}

// VerifyTable validates a location-scoped token and returns its location.
// A staff session token is rejected as malformed.
func (i *Issuer) VerifyTable(tokenStr string) (string, error) {
	claims := &TableClaims{}
	if err := i.parse(tokenStr, claims); err != nil {
		return "", err
	}
	if claims.Location == "" {
		return "", fmt.Errorf("%w: no location claim", ErrTokenMalformed)
	}
	return claims.Location, nil
}

func (i *Issuer) parse(tokenStr string, claims jwt.Claims) error {
	if tokenStr == "" {
		return ErrMissingToken
	}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if !token.Valid {
		return ErrTokenMalformed
	}
	return nil
}

func registered(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}
