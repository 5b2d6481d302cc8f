package auth

// Role identifies the harbor-side authority level of a user.
type Role string

const (
	RoleShipOwner    Role = "SHIP_OWNER"
	RoleOperator     Role = "OPERATOR"
	RoleHarborMaster Role = "HARBOR_MASTER"
)

// Capability is a discrete permission checked before privileged operations.
type Capability string

const (
	// CapabilityApproveRequest allows approving a pending docking request
	CapabilityApproveRequest Capability = "APPROVE_REQUEST"

	// CapabilityRejectRequest allows rejecting a pending docking request
	CapabilityRejectRequest Capability = "REJECT_REQUEST"

	// CapabilityOverrideAllocation allows forcing an allocation past the
	// schedule-collision check
	CapabilityOverrideAllocation Capability = "OVERRIDE_ALLOCATION"
)

// permissions is the single source of truth for role capabilities.
// Callers query it once and pass explicit flags down to the engines,
// instead of scattering role comparisons across handlers.
var permissions = map[Role]map[Capability]bool{
	RoleShipOwner: {},
	RoleOperator: {
		CapabilityApproveRequest: true,
		CapabilityRejectRequest:  true,
	},
	RoleHarborMaster: {
		CapabilityApproveRequest:     true,
		CapabilityRejectRequest:      true,
		CapabilityOverrideAllocation: true,
	},
}

// HasCapability reports whether the role grants the capability.
func (r Role) HasCapability(c Capability) bool {
	return permissions[r][c]
}

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	_, ok := permissions[r]
	return ok
}
