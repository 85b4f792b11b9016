package admin

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/api"
	entity "github.com/Eboreg/klaatu-go/model/entity"
	pageRepo "github.com/Eboreg/klaatu-go/model/repository/page"
	userRepo "github.com/Eboreg/klaatu-go/model/repository/user"
	"github.com/Eboreg/klaatu-go/serializer"
)

func init() {
	api.RegisterModule(RegisterAdminRoutes)
}

type actionBody struct {
	IDs []uint `json:"ids"`
}

type pageBody struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageAlt string `json:"image_alt"`
}

// RegisterAdminRoutes mounts the admin surface under /api/admin. There is
// deliberately no bulk delete action.
func RegisterAdminRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/admin")
	pages := pageRepo.NewPageRepository(db)
	users := userRepo.NewUserRepository(db)

	// GET /api/admin/pages?is_active=1|0 — boolean list filter
	g.GET("/pages", func(c echo.Context) error {
		list, err := pages.List(c.QueryParam("is_active"))
		if err != nil {
			return err
		}
		s := serializer.NewPageSerializer(c)
		results := make([]map[string]interface{}, 0, len(list))
		for i := range list {
			results = append(results, s.Represent(&list[i]))
		}
		return c.JSON(http.StatusOK, echo.Map{"count": len(results), "results": results})
	})

	// POST /api/admin/pages — created/created_by are read-only and stamped
	// server-side
	g.POST("/pages", func(c echo.Context) error {
		var body pageBody
		if err := c.Bind(&body); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		fieldErrs := map[string]interface{}{}
		if body.Slug == "" {
			fieldErrs["slug"] = []string{"This field is required."}
		}
		if body.Title == "" {
			fieldErrs["title"] = []string{"This field is required."}
		}
		if len(fieldErrs) > 0 {
			return api.ValidationError(fieldErrs)
		}
		p := &entity.Page{
			Slug:     body.Slug,
			Title:    body.Title,
			Body:     body.Body,
			ImageAlt: body.ImageAlt,
			IsActive: true,
		}
		serializer.StampCreatedBy(c, &p.CreatedByID)
		if err := pages.Create(p); err != nil {
			return err
		}
		return c.JSON(http.StatusCreated, serializer.NewPageSerializer(c).Represent(p))
	})

	// DELETE /api/admin/pages/:id — single-object delete, permission-checked
	g.DELETE("/pages/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid page ID")
		}
		p, err := pages.FindByID(uint(id))
		if err != nil {
			return api.NotFound("Page not found.")
		}
		if !api.ObjectPermitted(c, p) {
			return api.PermissionDenied()
		}
		if err := pages.Delete(p); err != nil {
			return err
		}
		return c.NoContent(http.StatusNoContent)
	})

	// Bulk actions on is_active
	markPages := func(active bool) echo.HandlerFunc {
		return func(c echo.Context) error {
			var body actionBody
			if err := c.Bind(&body); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			if len(body.IDs) == 0 {
				return api.ValidationError(map[string]interface{}{"ids": []string{"This field is required."}})
			}
			count, err := pages.SetActive(body.IDs, active)
			if err != nil {
				return err
			}
			return c.JSON(http.StatusOK, echo.Map{"message": fmt.Sprintf("Updated %d object(s).", count)})
		}
	}
	g.POST("/pages/actions/mark-active", markPages(true))
	g.POST("/pages/actions/mark-inactive", markPages(false))

	// GET /api/admin/users?is_active=1|0
	g.GET("/users", func(c echo.Context) error {
		list, err := users.List(c.QueryParam("is_active"))
		if err != nil {
			return err
		}
		var s serializer.UserSerializer
		results := make([]map[string]interface{}, 0, len(list))
		for i := range list {
			results = append(results, s.Represent(&list[i]))
		}
		return c.JSON(http.StatusOK, echo.Map{"count": len(results), "results": results})
	})
}
