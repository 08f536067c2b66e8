package api

// ServerError is a non-2xx response that is neither a 401 nor a 404.
// Message carries the backend's error envelope when present, so user-facing
// alerts can surface the server's own wording.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return e.Message
}

// errorEnvelope is the JSON error body the backend responds with.
type errorEnvelope struct {
	Message string `json:"message"`
}
