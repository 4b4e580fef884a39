package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID produces a sortable identifier: the creation instant in base36
// followed by a random suffix to break ties within a millisecond.
func newID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
