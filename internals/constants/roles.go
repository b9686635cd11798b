package constants

// User roles. Role is immutable after registration.
const (
	RoleDonor        = "donor"
	RoleCharityAdmin = "charity_admin"
	RoleAdmin        = "admin"
)

// User statuses.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Role error messages
const (
	ErrOnlyDonorsCanAccess        = "Only donors may access this feature."
	ErrOnlyCharityAdminsCanAccess = "Only charity admins may access this feature."
	ErrOnlyAdminsCanAccess        = "Only platform admins may access this feature."
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleDonor,
		RoleCharityAdmin,
		RoleAdmin,
	}

	DonorOnly = []string{
		RoleDonor,
	}

	CharityAdminOnly = []string{
		RoleCharityAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
