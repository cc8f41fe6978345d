package dto

type ErrorResponse struct {
	Error   string `json:"error" example:"bad_request"`
	Message string `json:"message" example:"missing video part"`
}

type HealthResponse struct {
	Status string `json:"status" example:"OK"`
}
