package media

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/api"
	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/storage"
	entity "github.com/Eboreg/klaatu-go/model/entity"
	mediaRepo "github.com/Eboreg/klaatu-go/model/repository/media"
	"github.com/Eboreg/klaatu-go/serializer"
	mediaService "github.com/Eboreg/klaatu-go/service/media"
)

func init() {
	api.RegisterModule(RegisterMediaRoutes)
}

// parseSortSpecs turns "name,-size" into storage sort specs. Unknown keys
// are ignored.
func parseSortSpecs(raw string) []storage.SortSpec {
	var specs []storage.SortSpec
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		reverse := strings.HasPrefix(part, "-")
		part = strings.TrimPrefix(part, "-")
		var key storage.SortKey
		switch part {
		case "name":
			key = storage.SortName
		case "size":
			key = storage.SortSize
		case "ctime":
			key = storage.SortCTime
		case "mtime":
			key = storage.SortMTime
		default:
			continue
		}
		specs = append(specs, storage.SortSpec{Key: key, Reverse: reverse})
	}
	return specs
}

// RegisterMediaRoutes mounts the media surface under /api/media.
func RegisterMediaRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/media")
	repo := mediaRepo.NewMediaRepository(db)
	store := storage.NewFileSystemStorage(config.AppConfig.MediaRoot)

	// POST /api/media/upload — multipart upload, resized per config bounds.
	// ?webp=1 re-encodes as WebP.
	g.POST("/upload", func(c echo.Context) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return api.ValidationError(map[string]interface{}{"file": []string{"This field is required."}})
		}
		src, err := fh.Open()
		if err != nil {
			return err
		}
		defer src.Close()

		opts := mediaService.ResizeOptions{
			MaxWidth:  config.AppConfig.MaxImageWidth,
			MaxHeight: config.AppConfig.MaxImageHeight,
			ToWebP:    c.QueryParam("webp") == "1",
		}
		res, err := mediaService.Process(src, opts)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Could not decode image")
		}

		name := uuid.NewString() + mediaService.Ext(res.Format)
		if err := store.Save(name, bytes.NewReader(res.Data)); err != nil {
			return err
		}

		meta, _ := json.Marshal(map[string]interface{}{
			"orig_name":   fh.Filename,
			"orig_width":  res.OrigWidth,
			"orig_height": res.OrigHeight,
			"resized":     res.Resized,
		})
		file := &entity.MediaFile{
			Path:     name,
			Format:   res.Format,
			Width:    res.Width,
			Height:   res.Height,
			Size:     int64(len(res.Data)),
			Metadata: datatypes.JSON(meta),
		}
		serializer.StampCreatedBy(c, &file.CreatedByID)
		if err := repo.Create(file); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"path":    file.Path,
			"url":     serializer.ImageRepr(&file.Path, "").URL,
			"format":  file.Format,
			"width":   file.Width,
			"height":  file.Height,
			"size":    file.Size,
			"resized": res.Resized,
		})
	})

	// GET /api/media?sort=name,-size — recursive storage listing
	g.GET("", func(c echo.Context) error {
		specs := parseSortSpecs(c.QueryParam("sort"))
		if len(specs) == 0 {
			specs = []storage.SortSpec{{Key: storage.SortName}}
		}
		files, err := store.ListRecursive("", specs...)
		if err != nil {
			if os.IsNotExist(err) {
				files = []string{}
			} else {
				return err
			}
		}
		return c.JSON(http.StatusOK, echo.Map{"count": len(files), "files": files})
	})
}
