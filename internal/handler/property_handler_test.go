package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lejebolig/lejebolig-backend/internal/domain"
	"github.com/lejebolig/lejebolig-backend/internal/service"
)

type fakePropertyRepo struct {
	properties map[uint64]*domain.Property
}

func (f *fakePropertyRepo) Create(p *domain.Property) error { return nil }

func (f *fakePropertyRepo) FindByID(id uint64) (*domain.Property, error) {
	if p, ok := f.properties[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, errors.New("record not found")
}

func (f *fakePropertyRepo) Update(p *domain.Property) error { return nil }
func (f *fakePropertyRepo) Delete(id uint64) error          { return nil }

func (f *fakePropertyRepo) Search(filter domain.PropertyFilter) ([]*domain.Property, int64, error) {
	return nil, 0, nil
}

func (f *fakePropertyRepo) FindByLandlord(id uint64) ([]*domain.Property, error) {
	return nil, nil
}

func (f *fakePropertyRepo) Exists(id uint64) (bool, error) {
	_, ok := f.properties[id]
	return ok, nil
}

func (f *fakePropertyRepo) FindTitlesByIDs(ids []uint64) (map[uint64]string, error) {
	return nil, nil
}

type fakeFavoriteRepo struct {
	favorites map[uint64]bool
}

func (f *fakeFavoriteRepo) Add(userID, propertyID uint64) error    { return nil }
func (f *fakeFavoriteRepo) Remove(userID, propertyID uint64) error { return nil }

func (f *fakeFavoriteRepo) FindByUser(userID uint64) ([]*domain.Property, error) {
	return nil, nil
}

func (f *fakeFavoriteRepo) IsFavorite(userID, propertyID uint64) (bool, error) {
	return f.favorites[propertyID], nil
}

type fakeCache struct {
	properties map[uint64][]byte
	lists      map[string][]byte
	setCalls   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		properties: make(map[uint64][]byte),
		lists:      make(map[string][]byte),
	}
}

func (f *fakeCache) GetProperty(ctx context.Context, id uint64) ([]byte, error) {
	if data, ok := f.properties[id]; ok {
		return data, nil
	}
	return nil, errors.New("cache miss")
}

func (f *fakeCache) SetProperty(ctx context.Context, id uint64, data interface{}) error {
	f.properties[id] = []byte("stored")
	f.setCalls++
	return nil
}

func (f *fakeCache) InvalidateProperty(ctx context.Context, id uint64) error {
	delete(f.properties, id)
	return nil
}

func (f *fakeCache) GetPropertyList(ctx context.Context, key string) ([]byte, error) {
	if data, ok := f.lists[key]; ok {
		return data, nil
	}
	return nil, errors.New("cache miss")
}

func (f *fakeCache) SetPropertyList(ctx context.Context, key string, data interface{}) error {
	f.lists[key] = []byte("stored")
	return nil
}

func (f *fakeCache) InvalidatePropertyLists(ctx context.Context) error {
	f.lists = make(map[string][]byte)
	return nil
}

func (f *fakeCache) Ping(ctx context.Context) error { return nil }

func newPropertyTestRouter(h *PropertyHandler, viewerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/v1/properties/:id", func(c *gin.Context) {
		if viewerID != "" {
			c.Set("userID", viewerID)
			c.Set("userRole", "tenant")
		}
	}, h.Get)
	return r
}

func testPropertyHandler(cacheService *fakeCache, favorited bool) *PropertyHandler {
	propRepo := &fakePropertyRepo{properties: map[uint64]*domain.Property{
		42: {ID: 42, LandlordID: 7, Title: "Lys 3-værelses på Nørrebro", City: "København", Price: 14500, Rooms: 3},
	}}
	favRepo := &fakeFavoriteRepo{favorites: map[uint64]bool{42: favorited}}

	var svc *PropertyHandler
	if cacheService != nil {
		svc = NewPropertyHandler(service.NewPropertyService(propRepo), service.NewFavoriteService(favRepo, propRepo), cacheService)
	} else {
		svc = NewPropertyHandler(service.NewPropertyService(propRepo), service.NewFavoriteService(favRepo, propRepo), nil)
	}
	return svc
}

func TestGetServesCachedResponseForAnonymous(t *testing.T) {
	cacheService := newFakeCache()
	cacheService.properties[42] = []byte(`{"success":true,"data":{"id":42}}`)

	r := newPropertyTestRouter(testPropertyHandler(cacheService, false), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/properties/42", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cache") != "HIT" {
		t.Errorf("expected X-Cache HIT, got %q", w.Header().Get("X-Cache"))
	}
	if w.Body.String() != `{"success":true,"data":{"id":42}}` {
		t.Errorf("cached body not served verbatim: %s", w.Body.String())
	}
}

func TestGetPopulatesCacheOnAnonymousMiss(t *testing.T) {
	cacheService := newFakeCache()

	r := newPropertyTestRouter(testPropertyHandler(cacheService, false), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/properties/42", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cache") != "MISS" {
		t.Errorf("expected X-Cache MISS, got %q", w.Header().Get("X-Cache"))
	}
	if cacheService.setCalls != 1 {
		t.Errorf("expected 1 cache write, got %d", cacheService.setCalls)
	}
}

func TestGetFlagsFavoriteForAuthenticatedViewer(t *testing.T) {
	cacheService := newFakeCache()
	cacheService.properties[42] = []byte(`{"success":true,"data":{"id":42}}`)

	r := newPropertyTestRouter(testPropertyHandler(cacheService, true), "9")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/properties/42", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Header().Get("X-Cache") == "HIT" {
		t.Error("personalized response must not come from the shared cache")
	}
	if !strings.Contains(w.Body.String(), `"is_favorite":true`) {
		t.Errorf("expected is_favorite flag in body: %s", w.Body.String())
	}
	if cacheService.setCalls != 0 {
		t.Errorf("personalized response must not be cached, got %d writes", cacheService.setCalls)
	}
}

func TestGetOmitsFavoriteFlagForAnonymous(t *testing.T) {
	r := newPropertyTestRouter(testPropertyHandler(nil, true), "")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/v1/properties/42", nil))

	if w.Code != 200 {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if strings.Contains(w.Body.String(), "is_favorite") {
		t.Errorf("anonymous response must omit is_favorite: %s", w.Body.String())
	}
}
