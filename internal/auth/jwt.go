// Package auth resolves the caller identity from a signed bearer token.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoIdentity is returned when a valid token carries no usable caller claim.
var ErrNoIdentity = errors.New("token has no caller identity")

// callerClaims are the identity claims accepted from the identity provider.
// The first non-empty one in field order wins.
type callerClaims struct {
	jwt.RegisteredClaims
	UserID            string `json:"userId,omitempty"`
	IdentityID        string `json:"identityId,omitempty"`
	CognitoIdentityID string `json:"cognitoIdentityId,omitempty"`
}

func (c *callerClaims) callerID() string {
	for _, v := range []string{c.Subject, c.UserID, c.IdentityID, c.CognitoIdentityID} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// Resolver validates HS256 tokens and extracts the caller identity.
type Resolver struct {
	secret []byte
	issuer string
}

// NewResolver creates a Resolver. An empty issuer disables the issuer check.
func NewResolver(secret, issuer string) *Resolver {
	return &Resolver{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Resolve parses and validates tokenString and returns the caller identity.
func (r *Resolver) Resolve(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, "Bearer "))
	if tokenString == "" {
		return "", fmt.Errorf("token is empty")
	}

	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if r.issuer != "" {
		opts = append(opts, jwt.WithIssuer(r.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &callerClaims{}, func(*jwt.Token) (any, error) {
		return r.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*callerClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token claims")
	}

	id := claims.callerID()
	if id == "" {
		return "", ErrNoIdentity
	}
	return id, nil
}

// Issue signs a token for callerID. Used by operators and tests to mint
// local credentials.
func (r *Resolver) Issue(callerID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := callerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   callerID,
			Issuer:    r.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(r.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
