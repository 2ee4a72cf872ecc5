package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseUintParam parses a numeric path parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	return uint(v), err
}
