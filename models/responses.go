package models

// ErrorResponse is the body of every non-validation error response.
// Messages are deliberately terse.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse is the body of a 400 response produced by input
// validation. Each entry describes one violated rule.
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
