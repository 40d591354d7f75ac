package util

import (
	"crypto/md5"
	"encoding/json"

	"github.com/google/uuid"
)

// RunID derives a stable identifier from any JSON-serializable value.
// The same protect invocation parameters always hash to the same ID, so
// log lines from reruns of one configuration correlate.
func RunID(value any) string {
	raw, err := json.Marshal(value)
	if err != nil {
		return ""
	}
	hasher := md5.New()
	hasher.Write(raw)
	hash := hasher.Sum(nil)
	id, err := uuid.FromBytes(hash[:16])
	if err != nil {
		return ""
	}
	return id.String()
}
