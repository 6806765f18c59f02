package domain

import (
	"time"

	"github.com/google/uuid"
)

// Setting is one entry of the system settings store.
type Setting struct {
	ID          uuid.UUID
	Category    string
	Key         string
	Value       string
	Description string
	DataType    string
	IsSensitive bool
	UpdatedBy   *uuid.UUID
	UpdatedAt   time.Time
}
