package media

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"mime/multipart"
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
	"github.com/Eboreg/klaatu-go/core/storage"
	"github.com/Eboreg/klaatu-go/core/testutil"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

func init() {
	config.LoadAppConfig()
}

func mediaTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	tmpFile := filepath.Join(os.TempDir(), fmt.Sprintf("media_api_test_%s_%d.db", t.Name(), time.Now().UnixNano()))
	t.Cleanup(func() { os.Remove(tmpFile) })
	db, err := gorm.Open(sqlite.Open(tmpFile), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.MediaFile{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// mediaTestServer points the media root at a temp dir and mounts the routes.
func mediaTestServer(t *testing.T, db *gorm.DB) *echo.Echo {
	t.Helper()
	config.AppConfig.MediaRoot = t.TempDir()
	e := echo.New()
	e.HTTPErrorHandler = api.HTTPErrorHandler
	RegisterMediaRoutes(e.Group("/api"), db)
	return e
}

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func doUpload(t *testing.T, e *echo.Echo, path string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("file", "test.png")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write(data)
	w.Close()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMediaUpload(t *testing.T) {
	db := mediaTestDB(t)
	e := mediaTestServer(t, db)

	rec := doUpload(t, e, "/api/media/upload", pngBytes(t, 10, 8))
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"format":  "png",
		"width":   float64(10),
		"height":  float64(8),
		"resized": false,
	}, http.StatusCreated)

	var count int64
	db.Model(&entity.MediaFile{}).Count(&count)
	if count != 1 {
		t.Errorf("media_file rows = %d, want 1", count)
	}
}

func TestMediaUpload_ResizesOverLargeImages(t *testing.T) {
	db := mediaTestDB(t)
	e := mediaTestServer(t, db)
	config.AppConfig.MaxImageWidth = 5
	config.AppConfig.MaxImageHeight = 5
	defer func() {
		config.AppConfig.MaxImageWidth = 1920
		config.AppConfig.MaxImageHeight = 1920
	}()

	rec := doUpload(t, e, "/api/media/upload", pngBytes(t, 10, 8))
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"width":   float64(5),
		"height":  float64(4),
		"resized": true,
	}, http.StatusCreated)
}

func TestMediaUpload_MissingFile(t *testing.T) {
	db := mediaTestDB(t)
	e := mediaTestServer(t, db)

	req := httptest.NewRequest(http.MethodPost, "/api/media/upload", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	testutil.AssertJSONContains(t, rec, map[string]interface{}{
		"file": []interface{}{"This field is required."},
	}, http.StatusBadRequest)
}

func TestMediaUpload_Undecodable(t *testing.T) {
	db := mediaTestDB(t)
	e := mediaTestServer(t, db)

	rec := doUpload(t, e, "/api/media/upload", []byte("not an image"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400; body: %s", rec.Code, rec.Body.String())
	}
}

func TestMediaList(t *testing.T) {
	db := mediaTestDB(t)
	e := mediaTestServer(t, db)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/media", nil))
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(0)})

	doUpload(t, e, "/api/media/upload", pngBytes(t, 4, 4))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/media?sort=-mtime,name", nil))
	testutil.AssertJSONContains(t, rec, map[string]interface{}{"count": float64(1)})
}

func TestParseSortSpecs(t *testing.T) {
	specs := parseSortSpecs("name,-size,bogus,mtime")
	want := []storage.SortSpec{
		{Key: storage.SortName},
		{Key: storage.SortSize, Reverse: true},
		{Key: storage.SortMTime},
	}
	if len(specs) != len(want) {
		t.Fatalf("len = %d, want %d", len(specs), len(want))
	}
	for i := range want {
		if specs[i] != want[i] {
			t.Errorf("specs[%d] = %+v, want %+v", i, specs[i], want[i])
		}
	}
}
