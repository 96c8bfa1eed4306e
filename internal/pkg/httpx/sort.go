package httpx

import (
	"strings"

	"github.com/gin-gonic/gin"
)

type Sort struct {
	SortBy  string
	SortDir string
}

// ParseSort membaca query sort_by/sort_dir dengan default yang aman.
// Kolom divalidasi di layer repository, bukan di sini.
func ParseSort(c *gin.Context, defaultBy, defaultDir string) Sort {
	sortBy := strings.TrimSpace(c.DefaultQuery("sort_by", defaultBy))
	sortDir := strings.ToLower(strings.TrimSpace(c.DefaultQuery("sort_dir", defaultDir)))

	if sortDir != "asc" && sortDir != "desc" {
		sortDir = defaultDir
	}

	return Sort{SortBy: sortBy, SortDir: sortDir}
}
