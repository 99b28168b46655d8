package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"assetvault/models"
)

func TestFlagsFromGrantAdminBypass(t *testing.T) {
	// Admins get full access even when a restrictive grant exists.
	grant := &models.PermissionGrant{CanRead: false, CanWrite: false, CanDelete: false}

	flags := FlagsFromGrant(models.RoleAdmin, grant)
	assert.Equal(t, models.PermissionFlags{CanRead: true, CanWrite: true, CanDelete: true}, flags)

	flags = FlagsFromGrant(models.RoleAdmin, nil)
	assert.Equal(t, models.PermissionFlags{CanRead: true, CanWrite: true, CanDelete: true}, flags)
}

func TestFlagsFromGrantDefaultPolicy(t *testing.T) {
	flags := FlagsFromGrant(models.RoleUser, nil)
	assert.Equal(t, models.PermissionFlags{CanRead: true, CanWrite: false, CanDelete: false}, flags)
}

func TestFlagsFromGrantPassthrough(t *testing.T) {
	tests := []struct {
		name  string
		grant models.PermissionGrant
	}{
		{"read only", models.PermissionGrant{CanRead: true}},
		{"read write", models.PermissionGrant{CanRead: true, CanWrite: true}},
		{"delete without write", models.PermissionGrant{CanRead: true, CanDelete: true}},
		{"all denied", models.PermissionGrant{}},
		{"all granted", models.PermissionGrant{CanRead: true, CanWrite: true, CanDelete: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := FlagsFromGrant(models.RoleUser, &tt.grant)
			assert.Equal(t, tt.grant.CanRead, flags.CanRead)
			assert.Equal(t, tt.grant.CanWrite, flags.CanWrite)
			assert.Equal(t, tt.grant.CanDelete, flags.CanDelete)
		})
	}
}
