package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

// Permission representa uma permissão específica
type Permission string

const (
	// User permissions
	PermissionUserRead   Permission = "users.read"
	PermissionUserDelete Permission = "users.delete"

	// Directory permissions
	PermissionGymWrite     Permission = "gyms.write"
	PermissionMachineWrite Permission = "machines.write"

	// Trainer permissions
	PermissionTrainerVerify Permission = "trainers.verify"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionUserRead,
		PermissionUserDelete,
		PermissionGymWrite,
		PermissionMachineWrite,
		PermissionTrainerVerify,
	},
	RoleTrainer: {
		PermissionUserRead,
		PermissionGymWrite,
		PermissionMachineWrite,
	},
	RoleUser: {
		PermissionUserRead,
		PermissionGymWrite,
		PermissionMachineWrite,
	},
}

// IsValid verifica se o role é um dos valores conhecidos
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleTrainer || r == RoleAdmin
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
