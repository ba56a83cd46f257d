// Package qr issues and verifies the signed scan tokens embedded in
// attendance QR codes, and renders the QR images themselves.
package qr

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

const scanPurpose = "attendance_scan"

// ErrInvalidScanToken is returned when a scan token fails verification.
var ErrInvalidScanToken = errors.New("invalid or expired scan token")

// ScanTokenSigner signs and verifies attendance scan tokens. A token binds
// a (workshop, session date) pair and expires; it never identifies a
// participant. The scanning participant authenticates separately.
type ScanTokenSigner struct {
	secret []byte
	ttl    time.Duration
}

// NewScanTokenSigner creates a signer with the given HMAC secret and token lifetime
func NewScanTokenSigner(secret string, ttl time.Duration) *ScanTokenSigner {
	return &ScanTokenSigner{secret: []byte(secret), ttl: ttl}
}

// Sign produces a scan token for a workshop session and its expiry time
func (s *ScanTokenSigner) Sign(workshopID uuid.UUID, sessionDate string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"purpose":     scanPurpose,
		"workshop_id": workshopID.String(),
		"date":        sessionDate,
		"iat":         now.Unix(),
		"exp":         expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign scan token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks the token signature and expiry and that it was issued for
// the given workshop session
func (s *ScanTokenSigner) Verify(tokenStr string, workshopID uuid.UUID, sessionDate string) error {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidScanToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidScanToken
	}
	if purpose, _ := claims["purpose"].(string); purpose != scanPurpose {
		return ErrInvalidScanToken
	}
	if id, _ := claims["workshop_id"].(string); id != workshopID.String() {
		return ErrInvalidScanToken
	}
	if date, _ := claims["date"].(string); date != sessionDate {
		return ErrInvalidScanToken
	}
	return nil
}

// EncodePNG renders the scan URL as a QR PNG image
func EncodePNG(url string) ([]byte, error) {
	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	return png, nil
}
