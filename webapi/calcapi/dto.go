package calcapi

// CalculateRequest carries the raw query string.
type CalculateRequest struct {
	Query string `json:"q" validate:"required,min=1"`
}
