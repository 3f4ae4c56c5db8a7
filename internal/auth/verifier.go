// Package auth verifies bearer credentials against the external identity
// provider. Tokens are Firebase-style ID tokens: RS256 JWTs signed with keys
// published as x509 certificates at a well-known URL.
package auth

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

// ErrInvalidToken marks credentials that failed verification. Everything else
// returned from Verify is an infrastructure failure (provider unreachable,
// bad cert payload) and maps to a server error, not an unauthorized one.
var ErrInvalidToken = errors.New("invalid token")

// Principal is the verified identity attached to a request.
type Principal struct {
	UID   string
	Email string
}

// Verifier validates a bearer credential and returns the principal it proves.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Principal, error)
}

// FirebaseVerifier verifies ID tokens issued for a single Firebase project.
// Signing certificates are fetched lazily and cached per the provider's
// Cache-Control max-age.
type FirebaseVerifier struct {
	ProjectID string
	CertsURL  string
	Client    *http.Client

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	expiresAt time.Time
}

func NewFirebaseVerifier(projectID string) *FirebaseVerifier {
	return &FirebaseVerifier{
		ProjectID: projectID,
		CertsURL:  defaultCertsURL,
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Principal, error) {
	keys, err := v.publicKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch signing certs: %w", err)
	}

	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) {
			kid, _ := t.Header["kid"].(string)
			key, ok := keys[kid]
			if !ok {
				return nil, fmt.Errorf("unknown key id %q", kid)
			}
			return key, nil
		},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer("https://securetoken.google.com/"+v.ProjectID),
		jwt.WithAudience(v.ProjectID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected claims type", ErrInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	email, _ := claims["email"].(string)

	return &Principal{UID: sub, Email: email}, nil
}

func (v *FirebaseVerifier) publicKeys(ctx context.Context) (map[string]*rsa.PublicKey, error) {
	v.mu.RLock()
	if v.keys != nil && time.Now().Before(v.expiresAt) {
		keys := v.keys
		v.mu.RUnlock()
		return keys, nil
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()

	// Another goroutine may have refreshed while we waited for the lock.
	if v.keys != nil && time.Now().Before(v.expiresAt) {
		return v.keys, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.CertsURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cert endpoint returned %d", resp.StatusCode)
	}

	var certs map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&certs); err != nil {
		return nil, fmt.Errorf("decode cert payload: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(certs))
	for kid, certPEM := range certs {
		key, err := parseCertPublicKey(certPEM)
		if err != nil {
			return nil, fmt.Errorf("parse cert %q: %w", kid, err)
		}
		keys[kid] = key
	}
	if len(keys) == 0 {
		return nil, errors.New("cert endpoint returned no keys")
	}

	v.keys = keys
	v.expiresAt = time.Now().Add(certMaxAge(resp.Header.Get("Cache-Control")))
	return keys, nil
}

func parseCertPublicKey(certPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(certPEM))
	if block == nil {
		return nil, errors.New("no PEM block found")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		return nil, err
	}
	key, ok := cert.PublicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("certificate does not carry an RSA key")
	}
	return key, nil
}

// certMaxAge extracts max-age from a Cache-Control header, falling back to an
// hour when the provider does not say.
func certMaxAge(cacheControl string) time.Duration {
	for _, part := range strings.Split(cacheControl, ",") {
		part = strings.TrimSpace(part)
		if strings.HasPrefix(part, "max-age=") {
			if seconds, err := strconv.Atoi(strings.TrimPrefix(part, "max-age=")); err == nil && seconds > 0 {
				return time.Duration(seconds) * time.Second
			}
		}
	}
	return time.Hour
}
