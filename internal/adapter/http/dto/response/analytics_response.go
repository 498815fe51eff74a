package response

type OutstandingResponse struct {
	Outstanding float64 `json:"outstanding"`
}

type PingResponse struct {
	Message string `json:"message"`
}
