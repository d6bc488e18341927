package identity

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		actor    Actor
		has      []Capability
		lacks    []Capability
	}{
		{
			name:  "superuser flag grants everything",
			actor: Actor{PersonID: 1, Superuser: true},
			has:   []Capability{CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin},
		},
		{
			name:  "superuser role grants everything",
			actor: Actor{PersonID: 1, Roles: []string{RoleSuperuser}},
			has:   []Capability{CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin},
		},
		{
			name:  "chief manages and executes but no warehouse",
			actor: Actor{PersonID: 2, Roles: []string{RoleMaintenanceChief}},
			has:   []Capability{CapMaintenanceManage, CapMaintenanceExecute},
			lacks: []Capability{CapWarehouseFulfill, CapAdmin},
		},
		{
			name:  "technician only executes",
			actor: Actor{PersonID: 3, Roles: []string{RoleMaintenanceTechnician}},
			has:   []Capability{CapMaintenanceExecute},
			lacks: []Capability{CapMaintenanceManage, CapWarehouseFulfill, CapAdmin},
		},
		{
			name:  "exploitation chief only fulfills",
			actor: Actor{PersonID: 4, Roles: []string{RoleExploitationChief}},
			has:   []Capability{CapWarehouseFulfill},
			lacks: []Capability{CapMaintenanceManage, CapMaintenanceExecute, CapAdmin},
		},
		{
			name:  "roles accumulate",
			actor: Actor{PersonID: 5, Roles: []string{RoleMaintenanceTechnician, RoleExploitationChief}},
			has:   []Capability{CapMaintenanceExecute, CapWarehouseFulfill},
			lacks: []Capability{CapMaintenanceManage, CapAdmin},
		},
		{
			name:  "no roles no caps",
			actor: Actor{PersonID: 6},
			lacks: []Capability{CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin},
		},
		{
			name:  "unknown role ignored",
			actor: Actor{PersonID: 7, Roles: []string{"accountant"}},
			lacks: []Capability{CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			caps := Resolve(tc.actor)
			for _, c := range tc.has {
				if !caps.Has(c) {
					t.Fatalf("expected %q granted, got %v", c, caps.List())
				}
			}
			for _, c := range tc.lacks {
				if caps.Has(c) {
					t.Fatalf("expected %q withheld, got %v", c, caps.List())
				}
			}
		})
	}
}
