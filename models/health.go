package models

// HealthCheckResponse returns the health check response struct, including who
// is currently connected to the realtime relay
type HealthCheckResponse struct {
	Alive          bool     `json:"alive"`
	ConnectedUsers []string `json:"connectedUsers"`
}
