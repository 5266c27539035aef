package transport

import "github.com/fastygo/dashboard/domain"

// Envelope wraps every API response. Toasts raised while handling the request
// are not embedded; clients poll /api/v1/notifications.
type Envelope struct {
	Status string      `json:"status"`
	Code   string      `json:"code,omitempty"`
	Data   interface{} `json:"data,omitempty"`
	Error  interface{} `json:"error,omitempty"`
	Meta   interface{} `json:"meta,omitempty"`
}

func NewSuccess(data interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "success",
		Data:   data,
		Meta:   meta,
	}
}

// NewError returns an error envelope with optional metadata.
func NewError(code string, err interface{}, meta interface{}) Envelope {
	return Envelope{
		Status: "error",
		Code:   code,
		Error:  err,
		Meta:   meta,
	}
}

// NewValidationError reports per-field form errors under meta.fields.
func NewValidationError(fields domain.FieldErrors) Envelope {
	return NewError(string(domain.ErrCodeInvalid), "validation failed", map[string]interface{}{
		"fields": fields,
	})
}
