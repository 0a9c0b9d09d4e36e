package entity

import "time"

// Roles válidos para User.
const (
	RoleDonor     = "donor"
	RoleRecipient = "recipient"
)

// User representa un donante o receptor registrado en el banco de sangre.
// BloodType es opcional: puede registrarse sin declararlo y completarlo luego
// desde el perfil.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // donor | recipient
	BloodType    *BloodType
	Phone        string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
