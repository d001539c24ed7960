package session

import (
	"fmt"

	appsession "github.com/jhoicas/skladpro/internal/application/session"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
	"github.com/jhoicas/skladpro/pkg/jwt"
)

var _ appsession.Codec = (*JWTCodec)(nil)

// JWTCodec serializa la sesión como token HS256 firmado.
type JWTCodec struct {
	secret     string
	issuer     string
	ttlMinutes int
}

// NewJWTCodec construye el codec. ttlMinutes <= 0 = sesión sin expiración.
func NewJWTCodec(secret, issuer string, ttlMinutes int) *JWTCodec {
	return &JWTCodec{secret: secret, issuer: issuer, ttlMinutes: ttlMinutes}
}

// Encode firma la sesión.
func (c *JWTCodec) Encode(s entity.Session) (string, error) {
	token, err := jwt.Generate(c.secret, c.issuer, jwt.Claims{
		SessionID: s.ID,
		Name:      s.User.Name,
		Email:     s.User.Email,
		Role:      string(s.User.Role),
	}, c.ttlMinutes)
	if err != nil {
		return "", fmt.Errorf("session: firmar token: %w", err)
	}
	return token, nil
}

// Decode valida el token y reconstruye la sesión. Un rol desconocido invalida la sesión.
func (c *JWTCodec) Decode(token string) (*entity.Session, error) {
	claims, err := jwt.Parse(c.secret, c.issuer, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoSession, err)
	}
	if claims.SessionID == "" {
		return nil, fmt.Errorf("%w: token sin sid", domain.ErrNoSession)
	}
	role, err := entity.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoSession, err)
	}
	sess := &entity.Session{
		ID:   claims.SessionID,
		User: entity.User{Name: claims.Name, Email: claims.Email, Role: role},
	}
	if claims.IssuedAt != nil {
		sess.CreatedAt = claims.IssuedAt.Time
	}
	return sess, nil
}
