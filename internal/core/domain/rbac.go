package domain

// Capability names a guarded operation. Handlers declare the capability they
// need; the role mapping lives in one table below so the whole permission
// matrix can be audited and changed without touching call sites.
type Capability string

const (
	CapUsersManage    Capability = "users:manage"
	CapRoomTypesRead  Capability = "room_types:read"
	CapRoomTypesWrite Capability = "room_types:write"
	CapRoomsRead      Capability = "rooms:read"
	CapRoomsWrite     Capability = "rooms:write"
	CapRoomsStatus    Capability = "rooms:status"
	CapGuestsRead     Capability = "guests:read"
	CapGuestsWrite    Capability = "guests:write"
	CapServicesRead   Capability = "services:read"
	CapServicesWrite  Capability = "services:write"
	CapBookingsRead   Capability = "bookings:read"
	CapBookingsWrite  Capability = "bookings:write"
	CapBookingsAdmin  Capability = "bookings:admin"
	CapReportsRead    Capability = "reports:read"
)

// capabilityRoles is the static permission matrix. Manager holds every
// capability; the other tiers are scoped to their duties.
var capabilityRoles = map[Capability][]Role{
	CapUsersManage:    {RoleManager},
	CapRoomTypesRead:  {RoleManager, RoleReceptionist},
	CapRoomTypesWrite: {RoleManager},
	CapRoomsRead:      {RoleManager, RoleReceptionist, RoleHousekeeping},
	CapRoomsWrite:     {RoleManager},
	CapRoomsStatus:    {RoleManager, RoleReceptionist, RoleHousekeeping},
	CapGuestsRead:     {RoleManager, RoleReceptionist},
	CapGuestsWrite:    {RoleManager, RoleReceptionist},
	CapServicesRead:   {RoleManager, RoleReceptionist},
	CapServicesWrite:  {RoleManager},
	CapBookingsRead:   {RoleManager, RoleReceptionist},
	CapBookingsWrite:  {RoleManager, RoleReceptionist},
	CapBookingsAdmin:  {RoleManager},
	CapReportsRead:    {RoleManager, RoleAccountant},
}

// RolesFor returns the roles permitted to exercise cap. Unknown capabilities
// map to no roles, so a typo denies rather than allows.
func RolesFor(cap Capability) []Role {
	return capabilityRoles[cap]
}

// RoleAllowed reports whether role may exercise cap.
func RoleAllowed(role Role, cap Capability) bool {
	for _, r := range capabilityRoles[cap] {
		if r == role {
			return true
		}
	}
	return false
}
