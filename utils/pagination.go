package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageResponse is the envelope every paginated list endpoint returns.
type PageResponse struct {
	Content       interface{} `json:"content"`
	PageNumber    int         `json:"page_number"`
	PageSize      int         `json:"page_size"`
	TotalElements int64       `json:"total_elements"`
	TotalPages    int         `json:"total_pages"`
	First         bool        `json:"first"`
	Last          bool        `json:"last"`
}

func NewPageResponse(content interface{}, page, size int, total int64) PageResponse {
	totalPages := int((total + int64(size) - 1) / int64(size))
	return PageResponse{
		Content:       content,
		PageNumber:    page,
		PageSize:      size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}

// PageParams reads "page" and "size" query params with sane defaults.
func PageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(DefaultPageSize)))
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
