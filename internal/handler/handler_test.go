package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func ctxWithQuery(rawQuery string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+rawQuery, nil)
	return c
}

func TestParsePaginationDefaults(t *testing.T) {
	page, perPage := parsePagination(ctxWithQuery(""))
	if page != 1 || perPage != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", page, perPage)
	}
}

func TestParsePaginationValues(t *testing.T) {
	page, perPage := parsePagination(ctxWithQuery("page=3&per_page=50"))
	if page != 3 || perPage != 50 {
		t.Errorf("expected 3/50, got %d/%d", page, perPage)
	}
}

func TestParsePaginationRejectsOutOfRange(t *testing.T) {
	page, perPage := parsePagination(ctxWithQuery("page=-1&per_page=500"))
	if page != 1 {
		t.Errorf("negative page should fall back to 1, got %d", page)
	}
	if perPage != 20 {
		t.Errorf("per_page above 100 should fall back to 20, got %d", perPage)
	}
}

func TestParseID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(c, "id")
	if !ok || id != 42 {
		t.Errorf("expected 42, got %d (ok=%v)", id, ok)
	}

	c.Params = gin.Params{{Key: "id", Value: "abc"}}
	if _, ok := parseID(c, "id"); ok {
		t.Error("non-numeric ID should not parse")
	}

	c.Params = gin.Params{{Key: "id", Value: "0"}}
	if _, ok := parseID(c, "id"); ok {
		t.Error("zero ID should not parse")
	}
}
