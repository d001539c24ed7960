// Package session implementa el almacén de sesión: un único registro de usuario
// serializado que vive del lado del cliente (cookie), creado al entrar, leído al
// arrancar la página y destruido al salir.
package session

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/skladpro/internal/application/dto"
	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

// Codec serializa la sesión al valor opaco guardado en el cliente y lo valida al leerlo.
type Codec interface {
	Encode(s entity.Session) (string, error)
	Decode(token string) (*entity.Session, error)
}

// Forgetter recibe el aviso de cierre de sesión (estado de vista por sesión).
type Forgetter interface {
	Forget(sessionID string)
}

// UseCase login, logout y restore de la sesión.
type UseCase struct {
	codec     Codec
	forgetter Forgetter
	now       func() time.Time
}

// NewUseCase construye el caso de uso. forgetter puede ser nil.
func NewUseCase(codec Codec, forgetter Forgetter) *UseCase {
	return &UseCase{codec: codec, forgetter: forgetter, now: time.Now}
}

// Login valida el formulario de registro y crea la sesión. Devuelve la sesión y el token a persistir.
// No hay verificación de contraseña: solo se exige que el campo no esté vacío.
func (uc *UseCase) Login(in dto.RegisterRequest) (*entity.Session, string, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	switch {
	case name == "":
		return nil, "", domain.RequiredField("name")
	case email == "":
		return nil, "", domain.RequiredField("email")
	case in.Password == "":
		return nil, "", domain.RequiredField("password")
	case !strings.Contains(email, "@"):
		return nil, "", &domain.FieldError{Field: "email", Reason: "no es un email válido"}
	}
	role, err := entity.ParseRole(in.Role)
	if err != nil {
		return nil, "", err
	}
	sess := &entity.Session{
		ID:        uuid.New().String(),
		User:      entity.User{Name: name, Email: email, Role: role},
		CreatedAt: uc.now(),
	}
	token, err := uc.codec.Encode(*sess)
	if err != nil {
		return nil, "", err
	}
	return sess, token, nil
}

// Restore lee el registro persistido. Sin token, o con un token que no se puede validar,
// devuelve ErrNoSession: el llamador muestra el formulario de entrada.
func (uc *UseCase) Restore(token string) (*entity.Session, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domain.ErrNoSession
	}
	sess, err := uc.codec.Decode(token)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return nil, err
		}
		return nil, errors.Join(domain.ErrNoSession, err)
	}
	return sess, nil
}

// Logout descarta el estado asociado a la sesión. El borrado del registro persistido
// (cookie) lo hace la capa HTTP.
func (uc *UseCase) Logout(sess *entity.Session) {
	if sess == nil || uc.forgetter == nil {
		return
	}
	uc.forgetter.Forget(sess.ID)
}

// ToUserResponse salida pública del usuario.
func ToUserResponse(u entity.User) dto.UserResponse {
	return dto.UserResponse{
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		RoleLabel: u.Role.Label(),
	}
}
