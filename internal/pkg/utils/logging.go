package utils

import (
	"context"

	"clearclaim-service/internal/pkg/constvars"
)

// GetRequestID returns the request ID carried on the context by the
// request-ID middleware, or an empty string when none was set.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}
