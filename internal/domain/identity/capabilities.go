package identity

// Actor is the resolved identity a request acts as. It is built once per
// request (auth middleware) and passed down; usecases never look roles up
// inline.
type Actor struct {
	PersonID  uint64
	Username  string
	Superuser bool
	Roles     []string
}

type Capability string

const (
	// Transition any maintenance step, reassign assignees, resolve problems.
	CapMaintenanceManage Capability = "maintenance.manage"
	// Work own steps: queue attribute changes, request items, report problems.
	CapMaintenanceExecute Capability = "maintenance.execute"
	// Fulfill or reject item requests, manage assignments and movements.
	CapWarehouseFulfill Capability = "warehouse.fulfill"
	// Manage persons, user accounts, roles, catalogs and paperwork.
	CapAdmin Capability = "admin"
)

type CapabilitySet map[Capability]struct{}

func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

func (s CapabilitySet) List() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	return out
}

// Resolve maps an actor's superuser flag and role codes to capabilities.
// This is the single place role semantics live.
func Resolve(a Actor) CapabilitySet {
	caps := CapabilitySet{}
	grant := func(cs ...Capability) {
		for _, c := range cs {
			caps[c] = struct{}{}
		}
	}

	if a.Superuser {
		grant(CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin)
		return caps
	}
	for _, code := range a.Roles {
		switch code {
		case RoleSuperuser:
			grant(CapMaintenanceManage, CapMaintenanceExecute, CapWarehouseFulfill, CapAdmin)
		case RoleMaintenanceChief:
			grant(CapMaintenanceManage, CapMaintenanceExecute)
		case RoleMaintenanceTechnician:
			grant(CapMaintenanceExecute)
		case RoleExploitationChief:
			grant(CapWarehouseFulfill)
		}
	}
	return caps
}
