package dto

// StockSnapshotResponse inventario actual por tipo de sangre.
type StockSnapshotResponse struct {
	Stock map[string]int `json:"stock"`
}

// StockLevelResponse unidades actuales de un solo tipo de sangre.
type StockLevelResponse struct {
	BloodType string `json:"blood_type"`
	Units     int    `json:"units"`
}
