package handlers

type ErrorResponse struct {
	Error string `json:"error" example:"Missing required fields"`
}

type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

type GenerateResponse struct {
	Status string `json:"status" example:"generated"`
	Count  int    `json:"count" example:"5"`
}
