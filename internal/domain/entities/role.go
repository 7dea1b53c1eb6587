package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Service permissions
	PermissionServiceRead   Permission = "services.read"
	PermissionServiceWrite  Permission = "services.write"
	PermissionServiceDelete Permission = "services.delete"

	// Request permissions
	PermissionRequestRead  Permission = "requests.read"
	PermissionRequestWrite Permission = "requests.write"

	// Review permissions
	PermissionReviewRead  Permission = "reviews.read"
	PermissionReviewWrite Permission = "reviews.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleProvider: {
		PermissionServiceRead,
		PermissionServiceWrite,
		PermissionServiceDelete,
		PermissionRequestRead,
		PermissionRequestWrite,
		PermissionReviewRead,
	},
	RoleCustomer: {
		PermissionServiceRead,
		PermissionRequestRead,
		PermissionRequestWrite,
		PermissionReviewRead,
		PermissionReviewWrite,
	},
}

// NormalizeRole aceita as variações enviadas por clientes legados
// ("PROVIDER", "PROFESSIONAL") e retorna o Role canônico.
func NormalizeRole(raw string) Role {
	switch raw {
	case "provider", "PROVIDER", "PROFESSIONAL":
		return RoleProvider
	default:
		return RoleCustomer
	}
}

// IsValid verifica se o role é conhecido
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	permissions := RolePermissions[r]
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}
