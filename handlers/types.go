package handlers

// HelloResponse - greeting endpoint response body
type HelloResponse struct {
	Message string `json:"message"`
}

// ValidationDetail - a single validation failure
type ValidationDetail struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input any      `json:"input"`
}

// ValidationError - validation error response body.
// Detail is a list so the shape stays stable if more required
// inputs are ever added.
type ValidationError struct {
	Detail []ValidationDetail `json:"detail"`
}
