package httputil

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 50
	maxLimit     = 100
)

// ParsePagination parses the offset and limit query parameters.
// Defaults are offset 0 and limit 50; limit must stay within 1..100.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, fmt.Errorf("invalid offset parameter: must be a non-negative integer")
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("invalid limit parameter: must be between 1 and %d", maxLimit)
	}

	return offset, limit, nil
}

// ParseTimeRange parses the optional created_at_from and created_at_to query
// parameters as RFC3339 timestamps. Missing parameters are returned as nil.
func ParseTimeRange(c *gin.Context) (from, to *time.Time, err error) {
	from, err = parseOptionalTime(c.Query("created_at_from"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid created_at_from parameter: must be RFC3339")
	}

	to, err = parseOptionalTime(c.Query("created_at_to"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid created_at_to parameter: must be RFC3339")
	}

	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, fmt.Errorf("created_at_to must not be before created_at_from")
	}

	return from, to, nil
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}
