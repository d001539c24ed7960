package dto

// RegisterRequest formulario de registro/entrada. La contraseña es obligatoria en el formulario
// pero no se verifica ni se guarda.
type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// UserResponse datos públicos del usuario de la sesión.
type UserResponse struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	RoleLabel string `json:"role_label"`
}

// SessionResponse salida de POST /api/session.
type SessionResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
