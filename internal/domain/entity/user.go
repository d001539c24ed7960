package entity

import "time"

// User datos del usuario registrado. No hay contraseña: el registro no la verifica ni la guarda.
type User struct {
	Name  string
	Email string
	Role  Role
}

// Session sesión activa: el único registro que se persiste del lado del cliente (cookie).
type Session struct {
	ID        string
	User      User
	CreatedAt time.Time
}

// Permissions atajo para los permisos del rol de la sesión.
func (s Session) Permissions() Permissions {
	return PermissionsFor(s.User.Role)
}
