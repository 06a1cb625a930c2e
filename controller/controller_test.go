package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func paginationFor(t *testing.T, rawQuery string) (int64, int64) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/movies?"+rawQuery, nil)
	return pagination(c)
}

func TestPagination(t *testing.T) {
	cases := []struct {
		name  string
		query string
		skip  int64
		limit int64
	}{
		{"defaults", "", 0, 20},
		{"explicit", "page=3&limit=10", 20, 10},
		{"first page", "page=1&limit=5", 0, 5},
		{"zero page", "page=0&limit=10", 0, 10},
		{"negative page", "page=-2&limit=10", 0, 10},
		{"non-numeric", "page=abc&limit=xyz", 0, 20},
		{"zero limit", "page=2&limit=0", 20, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			skip, limit := paginationFor(t, tc.query)
			assert.Equal(t, tc.skip, skip)
			assert.Equal(t, tc.limit, limit)
		})
	}
}
