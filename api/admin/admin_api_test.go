package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/api"
	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/request"
	"github.com/Eboreg/klaatu-go/core/testutil"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

func init() {
	config.LoadAppConfig()
}

func adminTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("admin_api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.Page{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// adminTestServer wires the admin routes without real auth; user (may be nil)
// is attached to every request.
func adminTestServer(t *testing.T, db *gorm.DB, user *entity.User) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = api.HTTPErrorHandler
	apiGroup := e.Group("/api")
	apiGroup.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if user != nil {
				request.SetUser(c, user)
			}
			return next(c)
		}
	})
	RegisterAdminRoutes(apiGroup, db)
	return e
}

func doJSON(e *echo.Echo, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAdminPages_ListFilter(t *testing.T) {
	db := adminTestDB(t)
	db.Create(&entity.Page{Slug: "active", Title: "Active", IsActive: true})
	db.Create(&entity.Page{Slug: "inactive", Title: "Inactive", IsActive: false})
	e := adminTestServer(t, db, nil)

	rec := doJSON(e, http.MethodGet, "/api/admin/pages", nil)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(2)})

	rec = doJSON(e, http.MethodGet, "/api/admin/pages?is_active=1", nil)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(1)})

	rec = doJSON(e, http.MethodGet, "/api/admin/pages?is_active=0", nil)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(1)})

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	results := body["results"].([]interface{})
	first := results[0].(map[string]interface{})
	testutil.AssertMapContains(t, first, map[string]interface{}{
		"slug":      "inactive",
		"is_active": false,
	})
}

func TestAdminPages_Create(t *testing.T) {
	db := adminTestDB(t)
	user := &entity.User{Username: "creator"}
	db.Create(user)
	e := adminTestServer(t, db, user)

	rec := doJSON(e, http.MethodPost, "/api/admin/pages", map[string]interface{}{
		"slug":  "hello",
		"title": "Hello",
		"body":  "World",
	})
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"slug":       "hello",
		"title":      "Hello",
		"is_active":  true,
		"created_by": float64(user.UserID),
	}, http.StatusCreated)
}

func TestAdminPages_Create_Validation(t *testing.T) {
	db := adminTestDB(t)
	e := adminTestServer(t, db, nil)

	rec := doJSON(e, http.MethodPost, "/api/admin/pages", map[string]interface{}{"body": "no slug"})
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"slug":  []interface{}{"This field is required."},
		"title": []interface{}{"This field is required."},
	}, http.StatusBadRequest)
}

func TestAdminPages_Delete_Permissions(t *testing.T) {
	db := adminTestDB(t)
	creator := &entity.User{Username: "creator"}
	other := &entity.User{Username: "other"}
	super := &entity.User{Username: "super", IsSuperuser: true}
	db.Create(creator)
	db.Create(other)
	db.Create(super)

	newPage := func(slug string) *entity.Page {
		p := &entity.Page{Slug: slug, Title: slug, IsActive: true, CreatedByID: &creator.UserID}
		db.Create(p)
		return p
	}

	p := newPage("mine")
	e := adminTestServer(t, db, other)
	rec := doJSON(e, http.MethodDelete, fmt.Sprintf("/api/admin/pages/%d", p.PageID), nil)
	if rec.Code != http.StatusForbidden {
		t.Errorf("non-creator delete: status = %d, want 403", rec.Code)
	}

	e = adminTestServer(t, db, creator)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/admin/pages/%d", p.PageID), nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("creator delete: status = %d, want 204; body: %s", rec.Code, rec.Body.String())
	}

	p = newPage("other-page")
	e = adminTestServer(t, db, super)
	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/admin/pages/%d", p.PageID), nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("superuser delete: status = %d, want 204", rec.Code)
	}

	rec = doJSON(e, http.MethodDelete, "/api/admin/pages/99999", nil)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"error": []interface{}{"Page not found."},
	}, http.StatusNotFound)
}

func TestAdminPages_MarkActions(t *testing.T) {
	db := adminTestDB(t)
	p1 := &entity.Page{Slug: "p1", Title: "P1", IsActive: true}
	p2 := &entity.Page{Slug: "p2", Title: "P2", IsActive: true}
	db.Create(p1)
	db.Create(p2)
	e := adminTestServer(t, db, nil)

	rec := doJSON(e, http.MethodPost, "/api/admin/pages/actions/mark-inactive", map[string]interface{}{
		"ids": []uint{p1.PageID, p2.PageID},
	})
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"message": "Updated 2 object(s)."})

	var count int64
	db.Model(&entity.Page{}).Where("is_active = ?", false).Count(&count)
	if count != 2 {
		t.Errorf("inactive count = %d, want 2", count)
	}

	rec = doJSON(e, http.MethodPost, "/api/admin/pages/actions/mark-active", map[string]interface{}{
		"ids": []uint{p1.PageID},
	})
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"message": "Updated 1 object(s)."})

	rec = doJSON(e, http.MethodPost, "/api/admin/pages/actions/mark-active", map[string]interface{}{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty ids: status = %d, want 400", rec.Code)
	}
}

func TestAdminUsers_List(t *testing.T) {
	db := adminTestDB(t)
	email := "a@example.com"
	db.Create(&entity.User{Username: "alice", Email: &email, IsActive: true})
	db.Create(&entity.User{Username: "bob", IsActive: false})
	e := adminTestServer(t, db, nil)

	rec := doJSON(e, http.MethodGet, "/api/admin/users?is_active=1", nil)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(1)})

	var body map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &body)
	results := body["results"].([]interface{})
	testutil.AssertMapContains(t, results[0].(map[string]interface{}), map[string]interface{}{
		"username": "alice",
		"email":    "a@example.com",
	})
}
