package utils

import (
	"fmt"
	"time"

	"clearclaim-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

// GenerateArchiveObjectName names an archived EDI document by direction,
// control number, and receipt time so replays sort chronologically per file.
func GenerateArchiveObjectName(direction, controlNumber string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	if controlNumber == "" {
		controlNumber = "unknown"
	}
	return fmt.Sprintf("%s/%s_%s.edi", direction, controlNumber, timestamp)
}
