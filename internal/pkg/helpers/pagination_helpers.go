package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/collegeerp/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePage replaces a page or limit below 1 with its default
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	return page, limit
}

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, size uint64) {
	page, limit = NormalizePage(page, limit)
	return uint64((page - 1) * limit), uint64(limit)
}

// NewPaginationInfo builds the pagination block of a directory listing.
// page and limit must already be normalized.
func NewPaginationInfo(total int64, page, limit int) dto.PaginationInfo {
	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return dto.PaginationInfo{
		CurrentPage:   page,
		TotalPages:    totalPages,
		TotalStudents: total,
		HasNext:       int64(page)*int64(limit) < total,
		HasPrev:       page > 1,
	}
}

// ParsePaginationParams extracts page and limit from the query string.
// Unparseable values fall back to the defaults.
func ParsePaginationParams(c *gin.Context) (page, limit int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil {
		page = DefaultPage
	}

	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	if err != nil {
		limit = DefaultPageSize
	}

	return NormalizePage(page, limit)
}
