package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/Nikhilesh-cheepu/kiik69-sub000/configs"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/entity"
	"github.com/Nikhilesh-cheepu/kiik69-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB, *configs.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	// per-test in-memory database to avoid cross-test interference
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))

	cfg := &configs.Config{
		JWTSecret: testSecret,
		JWTTTL:    time.Hour,
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r, db, cfg
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "admin", testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func httpDo(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// data unwraps the {ok, data} envelope into out.
func data(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.True(t, envelope.OK)
	require.NoError(t, json.Unmarshal(envelope.Data, out))
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, filename))
		h.Set("Content-Type", mimeType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func httpUpload(r *gin.Engine, method, path, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMenuCRUD(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	// create, then fetch by id: fields round-trip exactly
	create := map[string]interface{}{
		"name": "Loaded Nachos", "description": "cheese, jalapenos",
		"price": 349.0, "category": "Starters",
	}
	w := httpDo(r, "POST", "/api/menu", token, create)
	require.Equal(t, http.StatusCreated, w.Code)
	var item entity.MenuItem
	data(t, w, &item)
	require.NotZero(t, item.ID)
	require.True(t, item.IsAvailable)

	w = httpDo(r, "GET", fmt.Sprintf("/api/menu/%d", item.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got entity.MenuItem
	data(t, w, &got)
	require.Equal(t, "Loaded Nachos", got.Name)
	require.Equal(t, 349.0, got.Price)
	require.Equal(t, "Starters", got.Category)

	// partial update preserves omitted fields
	w = httpDo(r, "PUT", fmt.Sprintf("/api/menu/%d", item.ID), token, map[string]interface{}{"price": 399.0})
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.MenuItem
	data(t, w, &updated)
	require.Equal(t, 399.0, updated.Price)
	require.Equal(t, "Loaded Nachos", updated.Name)
	require.Equal(t, "Starters", updated.Category)

	// delete, then 404 on both get and re-delete
	w = httpDo(r, "DELETE", fmt.Sprintf("/api/menu/%d", item.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = httpDo(r, "GET", fmt.Sprintf("/api/menu/%d", item.ID), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	w = httpDo(r, "DELETE", fmt.Sprintf("/api/menu/%d", item.ID), token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestMenuListFilter(t *testing.T) {
	r, db, _ := setupRouter(t)

	require.NoError(t, db.Create(&entity.MenuItem{Name: "Wings", Category: "Starters", Price: 299, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Mojito", Category: "Drinks", Price: 199, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.MenuItem{Name: "Old Stock", Category: "Drinks", Price: 99, IsAvailable: false}).Error)

	w := httpDo(r, "GET", "/api/menu?category=Drinks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var drinks []entity.MenuItem
	data(t, w, &drinks)
	require.Len(t, drinks, 2)
	for _, d := range drinks {
		require.Equal(t, "Drinks", d.Category)
	}
	// price ascending
	require.LessOrEqual(t, drinks[0].Price, drinks[1].Price)

	w = httpDo(r, "GET", "/api/menu?available=true", "", nil)
	var available []entity.MenuItem
	data(t, w, &available)
	require.Len(t, available, 2)

	// a flag value that is not a bool is ignored, not matched as text
	w = httpDo(r, "GET", "/api/menu?available=banana", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var garbled []entity.MenuItem
	data(t, w, &garbled)
	require.Len(t, garbled, 3)

	// no filter returns everything
	w = httpDo(r, "GET", "/api/menu", "", nil)
	var all []entity.MenuItem
	data(t, w, &all)
	require.Len(t, all, 3)

	w = httpDo(r, "GET", "/api/menu/categories/list", "", nil)
	var categories []string
	data(t, w, &categories)
	require.Equal(t, []string{"Drinks", "Starters"}, categories)
}

func TestMenuMutationsRequireAdmin(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/menu", "", map[string]interface{}{"name": "x", "price": 1, "category": "y"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	visitor, err := utils.GenerateToken(2, "customer", testSecret, time.Hour)
	require.NoError(t, err)
	w = httpDo(r, "POST", "/api/menu", visitor, map[string]interface{}{"name": "x", "price": 1, "category": "y"})
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestEventDateValidation(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	w := httpDo(r, "POST", "/api/events", token, map[string]interface{}{
		"title": "Premier League Screening", "date": "not-a-date",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/events", token, map[string]interface{}{
		"title": "Premier League Screening", "date": "2026-09-12", "time": "19:30", "is_featured": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = httpDo(r, "GET", "/api/events?featured=true", "", nil)
	var featured []entity.Event
	data(t, w, &featured)
	require.Len(t, featured, 1)
	require.Equal(t, "2026-09-12", featured[0].Date)
}

func TestGalleryMediaExclusivity(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	w := httpDo(r, "POST", "/api/gallery", token, map[string]interface{}{
		"title": "both", "image_url": "/a.jpg", "video_url": "/b.mp4",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/gallery", token, map[string]interface{}{
		"title": "neither",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/gallery", token, map[string]interface{}{
		"title": "match night", "image_url": "/a.jpg", "category": "events",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item entity.GalleryItem
	data(t, w, &item)
	require.Equal(t, "/a.jpg", item.ImageURL)
	require.Empty(t, item.VideoURL)
}

func TestGalleryVideoUpload(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	body, ct := multipartBody(t, map[string]string{"title": "goal reel"},
		"media", "reel.mp4", "video/mp4", []byte("fake video bytes"))
	w := httpUpload(r, "POST", "/api/gallery", token, body, ct)
	require.Equal(t, http.StatusCreated, w.Code)

	var item entity.GalleryItem
	data(t, w, &item)
	require.NotEmpty(t, item.VideoURL)
	require.Empty(t, item.ImageURL)
}

func TestUploadMimeMismatchRejected(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	// allowed extension, mismatched declared mimetype
	body, ct := multipartBody(t, map[string]string{
		"name": "Burger", "price": "249", "category": "Mains",
	}, "image", "burger.jpg", "text/plain", []byte("not an image"))
	w := httpUpload(r, "POST", "/api/menu", token, body, ct)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGamesTypesList(t *testing.T) {
	r, db, _ := setupRouter(t)

	require.NoError(t, db.Create(&entity.Game{Name: "Pool", Type: "table", IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.Game{Name: "Darts", Type: "board", IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.Game{Name: "Snooker", Type: "table", IsAvailable: true}).Error)

	w := httpDo(r, "GET", "/api/games/types/list", "", nil)
	var types []string
	data(t, w, &types)
	require.Equal(t, []string{"board", "table"}, types)

	w = httpDo(r, "GET", "/api/games?type=table", "", nil)
	var tables []entity.Game
	data(t, w, &tables)
	require.Len(t, tables, 2)
	// name ascending
	require.Equal(t, "Pool", tables[0].Name)
}

func TestPartyPackageOrdering(t *testing.T) {
	r, db, _ := setupRouter(t)

	require.NoError(t, db.Create(&entity.PartyPackage{Name: "Premium", Price: 15000, IsAvailable: true}).Error)
	require.NoError(t, db.Create(&entity.PartyPackage{Name: "Basic", Price: 5000, IsAvailable: true}).Error)

	w := httpDo(r, "GET", "/api/party-packages", "", nil)
	var pkgs []entity.PartyPackage
	data(t, w, &pkgs)
	require.Len(t, pkgs, 2)
	require.Equal(t, "Basic", pkgs[0].Name)
}

func TestContactStatusTransitions(t *testing.T) {
	r, _, _ := setupRouter(t)
	token := adminToken(t)

	w := httpDo(r, "POST", "/api/contact", "", map[string]interface{}{
		"name": "Rahul", "email": "rahul@example.com", "message": "table for 8 on saturday",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var msg entity.ContactMessage
	data(t, w, &msg)
	require.Equal(t, entity.ContactStatusUnread, msg.Status)

	// only the enumerated statuses pass
	w = httpDo(r, "PATCH", fmt.Sprintf("/api/contact/%d/status", msg.ID), token, map[string]interface{}{"status": "spam"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "PATCH", fmt.Sprintf("/api/contact/%d/status", msg.ID), token, map[string]interface{}{"status": "read"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated entity.ContactMessage
	data(t, w, &updated)
	require.Equal(t, entity.ContactStatusRead, updated.Status)

	// stats reflect the transition
	w = httpDo(r, "GET", "/api/contact/stats/overview", token, nil)
	var stats map[string]int64
	data(t, w, &stats)
	require.Equal(t, int64(1), stats["read"])
	require.Equal(t, int64(0), stats["unread"])
	require.Equal(t, int64(1), stats["total"])
}

func TestContactListPagination(t *testing.T) {
	r, db, _ := setupRouter(t)
	token := adminToken(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&entity.ContactMessage{
			Name: fmt.Sprintf("visitor %d", i), Email: "v@example.com",
			Message: "hi", Status: entity.ContactStatusUnread,
		}).Error)
	}

	w := httpDo(r, "GET", "/api/contact?limit=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var page []entity.ContactMessage
	data(t, w, &page)
	require.Len(t, page, 2)

	w = httpDo(r, "GET", "/api/contact?limit=2&offset=2", token, nil)
	var rest []entity.ContactMessage
	data(t, w, &rest)
	require.Len(t, rest, 1)

	// unauthenticated list is rejected
	w = httpDo(r, "GET", "/api/contact", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestContactCreateValidation(t *testing.T) {
	r, _, _ := setupRouter(t)

	w := httpDo(r, "POST", "/api/contact", "", map[string]interface{}{
		"name": "no message", "email": "x@example.com",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = httpDo(r, "POST", "/api/contact", "", map[string]interface{}{
		"name": "bad email", "email": "not-an-email", "message": "hello",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}
