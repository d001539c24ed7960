package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/skladpro/internal/domain"
	"github.com/jhoicas/skladpro/internal/domain/entity"
)

func TestParseRole_RolesValidos(t *testing.T) {
	for _, r := range entity.Roles() {
		got, err := entity.ParseRole(string(r))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}
}

func TestParseRole_RolDesconocido(t *testing.T) {
	_, err := entity.ParseRole("admin")
	assert.ErrorIs(t, err, domain.ErrUnknownRole)

	_, err = entity.ParseRole("Buyer")
	assert.ErrorIs(t, err, domain.ErrUnknownRole, "los roles distinguen mayúsculas")
}

func TestRole_Labels(t *testing.T) {
	assert.Equal(t, "Покупатель", entity.RoleBuyer.Label())
	assert.Equal(t, "Оператор", entity.RoleOperator.Label())
	assert.Equal(t, "Поставщик", entity.RoleSupplier.Label())
	assert.Equal(t, "Оператор склада", entity.RoleOperator.OptionLabel())
}

func TestPermissionsFor(t *testing.T) {
	tests := []struct {
		role entity.Role
		want entity.Permissions
	}{
		{entity.RoleOperator, entity.Permissions{CanEdit: true}},
		{entity.RoleBuyer, entity.Permissions{CanOrder: true}},
		{entity.RoleSupplier, entity.Permissions{CanSupply: true}},
		{entity.Role("ghost"), entity.Permissions{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.want, entity.PermissionsFor(tt.role))
		})
	}
}
