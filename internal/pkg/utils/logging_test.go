package utils

import (
	"context"
	"testing"

	"clearclaim-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-42")
	assert.Equal(t, "req-42", GetRequestID(ctx))
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Equal(t, "", GetRequestID(context.Background()))
}

func TestGetRequestID_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, 42)
	assert.Equal(t, "", GetRequestID(ctx))
}
