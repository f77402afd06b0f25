package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ValidationError carries field-level messages for a rejected write.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// BulkResult reports the outcome of a bulk operation. Each record update is
// independent; failures never abort the batch and are always reported.
type BulkResult struct {
	Updated []uint        `json:"updated"`
	Failed  []BulkFailure `json:"failed"`
}

type BulkFailure struct {
	ID     uint   `json:"id"`
	Reason string `json:"reason"`
}

func newBulkResult(capacity int) BulkResult {
	return BulkResult{Updated: make([]uint, 0, capacity), Failed: []BulkFailure{}}
}

// isDuplicateKey recognizes unique-constraint violations from MySQL (errno
// 1062) and from the SQLite driver used in tests.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
