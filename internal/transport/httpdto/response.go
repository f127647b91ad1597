package httpdto

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

func NewErrorResponse(err string, code string) ErrorResponse {
	return ErrorResponse{
		Success: false,
		Error:   err,
		Code:    code,
	}
}

// SuccessResponse is returned by writes that carry no payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ActionRequest selects the operation of a POST body or a GET query.
type ActionRequest struct {
	Action string `json:"action" form:"action" binding:"required"`
}

// HealthResponse is returned by /health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis,omitempty"`
}

func nullable(s string, valid bool) *string {
	if !valid {
		return nil
	}
	return &s
}
