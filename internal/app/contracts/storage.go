package contracts

import (
	"context"
	"time"
)

// Storage archives raw EDI documents. Objects are named by direction and
// control number so an archived file can be replayed during reconciliation
// disputes.
type Storage interface {
	UploadDocument(ctx context.Context, content []byte, objectName, contentType string) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, objectName string, expiryTime time.Duration) (string, error)
}
