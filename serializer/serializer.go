// Package serializer builds JSON/template representations of entities,
// aware of the request's user and language.
package serializer

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/Eboreg/klaatu-go/config"
	"github.com/Eboreg/klaatu-go/core/request"
	"github.com/Eboreg/klaatu-go/core/urlutil"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

// ErrNoUser is returned when a representation requires an authenticated
// user and the request has none.
var ErrNoUser = errors.New("serializer: request user must be present in context")

// UserFromContext returns the request user, erroring when absent.
func UserFromContext(c echo.Context) (*entity.User, error) {
	if u := request.UserFrom(c); u != nil {
		return u, nil
	}
	return nil, ErrNoUser
}

// StampCreatedBy sets created_by to the authenticated user on a new object.
// Quietly does nothing when no user is present.
func StampCreatedBy(c echo.Context, createdByID **uint) {
	if u := request.UserFrom(c); u != nil {
		id := u.UserID
		*createdByID = &id
	}
}

// Image is the {url, alt} representation of an entity's image.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// ImageRepr builds the image representation, or nil when there is no image.
func ImageRepr(imagePath *string, alt string) *Image {
	if imagePath == nil || *imagePath == "" {
		return nil
	}
	return &Image{
		URL: urlutil.Join(config.AppConfig.MediaURL, *imagePath),
		Alt: alt,
	}
}

// PageSerializer represents pages in a given language. Translated fields
// fall back to the entity's base values.
type PageSerializer struct {
	Language string
}

// NewPageSerializer builds a serializer for the request's language.
func NewPageSerializer(c echo.Context) *PageSerializer {
	return &PageSerializer{Language: request.LanguageFrom(c)}
}

func (s *PageSerializer) translated(p *entity.Page, field, fallback string) string {
	if v := p.Translated(s.Language, field); v != "" {
		return v
	}
	return fallback
}

// Title returns the page title in the serializer's language.
func (s *PageSerializer) Title(p *entity.Page) string {
	return s.translated(p, "title", p.Title)
}

// Body returns the page body in the serializer's language.
func (s *PageSerializer) Body(p *entity.Page) string {
	return s.translated(p, "body", p.Body)
}

// Represent builds the full representation of a page. created and
// created_by are read-only fields.
func (s *PageSerializer) Represent(p *entity.Page) map[string]interface{} {
	repr := map[string]interface{}{
		"id":        p.PageID,
		"slug":      p.Slug,
		"title":     s.Title(p),
		"body":      s.Body(p),
		"is_active": p.IsActive,
		"language":  s.Language,
		"created":   p.Created,
	}
	if img := ImageRepr(p.ImagePath, p.ImageAlt); img != nil {
		repr["image"] = img
	} else {
		repr["image"] = nil
	}
	if p.CreatedByID != nil {
		repr["created_by"] = *p.CreatedByID
	} else {
		repr["created_by"] = nil
	}
	return repr
}

// UserSerializer represents users for the admin surface.
type UserSerializer struct{}

func (UserSerializer) Represent(u *entity.User) map[string]interface{} {
	repr := map[string]interface{}{
		"id":        u.UserID,
		"username":  u.Username,
		"is_active": u.IsActive,
		"created":   u.Created,
	}
	if u.Email != nil {
		repr["email"] = *u.Email
	} else {
		repr["email"] = nil
	}
	if u.Language != nil {
		repr["language"] = *u.Language
	} else {
		repr["language"] = nil
	}
	return repr
}
