package entity

import (
	"fmt"

	"github.com/jhoicas/skladpro/internal/domain"
)

// Role rol del usuario dentro del panel. Conjunto cerrado: buyer, operator, supplier.
type Role string

const (
	RoleBuyer    Role = "buyer"
	RoleOperator Role = "operator"
	RoleSupplier Role = "supplier"
)

// Roles devuelve los roles en el orden del formulario de registro.
func Roles() []Role {
	return []Role{RoleBuyer, RoleOperator, RoleSupplier}
}

// ParseRole valida el identificador recibido desde formularios, tokens o JSON.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleBuyer, RoleOperator, RoleSupplier:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownRole, s)
}

// Label etiqueta corta que se muestra en el badge de la barra lateral.
func (r Role) Label() string {
	switch r {
	case RoleBuyer:
		return "Покупатель"
	case RoleOperator:
		return "Оператор"
	case RoleSupplier:
		return "Поставщик"
	}
	return string(r)
}

// OptionLabel etiqueta del selector de rol en el formulario de registro.
func (r Role) OptionLabel() string {
	switch r {
	case RoleBuyer:
		return "Покупатель"
	case RoleOperator:
		return "Оператор склада"
	case RoleSupplier:
		return "Поставщик"
	}
	return string(r)
}

// Permissions acciones visibles para un rol.
type Permissions struct {
	CanEdit   bool // operador: alta/edición de registros y cambio de estado
	CanOrder  bool // comprador: pedidos desde la tarjeta de producto
	CanSupply bool // proveedor: solicitudes de suministro
}

// PermissionsFor deriva los permisos del rol. El switch es exhaustivo:
// un rol nuevo sin rama aquí no obtiene ningún permiso.
func PermissionsFor(r Role) Permissions {
	switch r {
	case RoleOperator:
		return Permissions{CanEdit: true}
	case RoleBuyer:
		return Permissions{CanOrder: true}
	case RoleSupplier:
		return Permissions{CanSupply: true}
	}
	return Permissions{}
}
