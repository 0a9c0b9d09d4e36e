package dto

import "time"

// RecordDonationRequest registro de una donación.
type RecordDonationRequest struct {
	BloodType string `json:"blood_type"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"` // opcional, por defecto "Main Center"
}

// DonationResponse evento de donación persistido.
type DonationResponse struct {
	ID        string    `json:"id"`
	BloodType string    `json:"blood_type"`
	Quantity  int       `json:"quantity"`
	Location  string    `json:"location"`
	DonatedAt time.Time `json:"donated_at"`
}

// WithdrawalRequest solicitud de retiro de un receptor.
type WithdrawalRequest struct {
	BloodType string `json:"blood_type"`
	Quantity  int    `json:"quantity"`
	Location  string `json:"location"` // opcional, por defecto "Main Center"
}

// WithdrawalResponse evento de retiro persistido.
type WithdrawalResponse struct {
	ID         string    `json:"id"`
	BloodType  string    `json:"blood_type"`
	Quantity   int       `json:"quantity"`
	Location   string    `json:"location"`
	ReceivedAt time.Time `json:"received_at"`
}

// AdminAdjustRequest ajuste manual de inventario desde el panel admin.
// Se materializa como evento de donación con location "admin-adjust".
type AdminAdjustRequest struct {
	BloodType string `json:"blood_type"`
	Adjust    int    `json:"adjust"`
}
