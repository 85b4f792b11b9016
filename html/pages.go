package html

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Eboreg/klaatu-go/api"
	"github.com/Eboreg/klaatu-go/core/request"
	"github.com/Eboreg/klaatu-go/html/parts"
	pageRepo "github.com/Eboreg/klaatu-go/model/repository/page"
	"github.com/Eboreg/klaatu-go/serializer"
)

func init() {
	api.RegisterHTMLModule(RegisterPageHTMLRoutes)
}

// RegisterPageHTMLRoutes registers the HTML routes for page rendering.
func RegisterPageHTMLRoutes(e *echo.Echo, db *gorm.DB) {
	repo := pageRepo.NewPageRepository(db)

	e.GET("/", func(c echo.Context) error {
		pages, err := repo.List("1")
		if err != nil {
			log.Println("Repo error:", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error fetching pages")
		}
		s := serializer.NewPageSerializer(c)
		items := make([]map[string]interface{}, 0, len(pages))
		filterOptions := make([]CheckboxOption, 0, len(pages))
		for i := range pages {
			items = append(items, s.Represent(&pages[i]))
			filterOptions = append(filterOptions, CheckboxOption{
				Value: pages[i].Slug,
				Label: s.Title(&pages[i]),
			})
		}
		tmpl := c.Echo().Renderer.(*Template)
		filter, err := tmpl.RenderCheckboxSelect(&CheckboxSelectWidget{
			Name:               "slugs",
			Options:            filterOptions,
			FieldWrapperClass:  "row",
			OptionWrapperClass: "col-12 col-lg-6",
		})
		if err != nil {
			log.Println("Widget render error:", err)
		}
		criticalCSS, _ := parts.GetCriticalCSSCached()
		return c.Render(http.StatusOK, "pages_index.html", map[string]interface{}{
			"Title":       "Pages",
			"Pages":       items,
			"Filter":      filter,
			"Language":    request.LanguageFrom(c),
			"CriticalCSS": template.CSS(criticalCSS),
		})
	})

	e.GET("/pages/:slug", func(c echo.Context) error {
		p, err := repo.FindBySlug(c.Param("slug"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Page not found")
		}
		s := serializer.NewPageSerializer(c)
		title := s.Title(p)

		// Delete-confirmation dialog. The loader fills any params still
		// missing from the element out of the query string.
		modal := &Modal{
			ID:             "delete-page-modal",
			Title:          "Delete page",
			RequiredParams: []string{"url", "page_id"},
			OptionalParams: []string{"next"},
			Footer:         true,
			Center:         true,
		}
		ctx := map[string]interface{}{
			"url":     fmt.Sprintf("/api/admin/pages/%d", p.PageID),
			"page_id": p.PageID,
			"title":   title,
		}
		tmpl := c.Echo().Renderer.(*Template)
		modalHTML, err := tmpl.RenderModal(modal, ctx, map[string]string{
			"body": `<p>Really delete &ldquo;{{mapToContext "title" .Context}}&rdquo;?</p>`,
			"footer": `<button type="button" class="btn btn-secondary" data-dismiss="modal">Cancel</button>` +
				`<button type="button" class="btn btn-danger" data-confirm="delete">Delete</button>`,
		})
		if err != nil {
			log.Println("Modal render error:", err)
			return echo.NewHTTPError(http.StatusInternalServerError, "Error rendering page")
		}

		criticalCSS, _ := parts.GetCriticalCSSCached()
		return c.Render(http.StatusOK, "page.html", map[string]interface{}{
			"Title":       title,
			"Body":        s.Body(p),
			"Image":       serializer.ImageRepr(p.ImagePath, p.ImageAlt),
			"Language":    s.Language,
			"ModalID":     modal.ID,
			"ModalHTML":   modalHTML,
			"CriticalCSS": template.CSS(criticalCSS),
		})
	})
}
