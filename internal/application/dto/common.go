package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse estado del servicio y del directorio.
type HealthResponse struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Dataset    string `json:"dataset"` // loading, ready, failed
	Businesses int    `json:"businesses"`
	SnapshotID string `json:"snapshot_id,omitempty"`
}
