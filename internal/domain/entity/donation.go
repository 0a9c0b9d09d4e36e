package entity

import "time"

// DefaultLocation ubicación usada cuando el caller no indica una.
const DefaultLocation = "Main Center"

// AdminAdjustLocation marca los eventos de ajuste manual hechos desde el panel admin.
const AdminAdjustLocation = "admin-adjust"

// DonationEvent es un registro append-only que incrementa el inventario de un
// tipo de sangre. Nunca se muta ni se borra después de creado.
type DonationEvent struct {
	ID        string
	DonorID   string
	BloodType BloodType
	Quantity  int // unidades; negativo solo en ajustes de admin
	Location  string
	DonatedAt time.Time
	CreatedAt time.Time
}
