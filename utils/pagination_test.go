package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse([]int{1, 2, 3}, 0, 3, 7)
	assert.Equal(t, int64(7), resp.TotalElements)
	assert.Equal(t, 3, resp.TotalPages)
	assert.True(t, resp.First)
	assert.False(t, resp.Last)

	resp = NewPageResponse([]int{7}, 2, 3, 7)
	assert.False(t, resp.First)
	assert.True(t, resp.Last)

	resp = NewPageResponse([]int{}, 0, 20, 0)
	assert.Equal(t, 0, resp.TotalPages)
	assert.True(t, resp.First)
	assert.True(t, resp.Last)
}

func TestPageParams(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query    string
		wantPage int
		wantSize int
	}{
		{"", 0, DefaultPageSize},
		{"page=2&size=10", 2, 10},
		{"page=-1&size=0", 0, DefaultPageSize},
		{"size=500", 0, MaxPageSize},
		{"page=abc&size=xyz", 0, DefaultPageSize},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/?"+tc.query, nil)
		page, size := PageParams(c)
		assert.Equal(t, tc.wantPage, page, tc.query)
		assert.Equal(t, tc.wantSize, size, tc.query)
	}
}
