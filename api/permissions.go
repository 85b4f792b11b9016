package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eboreg/klaatu-go/core/request"
	entity "github.com/Eboreg/klaatu-go/model/entity"
)

// verbMapping translates HTTP methods to permission verbs.
var verbMapping = map[string]string{
	http.MethodGet:    entity.VerbView,
	http.MethodPost:   entity.VerbCreate,
	http.MethodPut:    entity.VerbChange,
	http.MethodPatch:  entity.VerbChange,
	http.MethodDelete: entity.VerbDelete,
}

// ObjectPermitted checks the request user against an entity's object
// permissions. Superusers always pass; entities not implementing
// ObjectPermitter are unrestricted; unauthenticated users fail any
// restricted entity.
func ObjectPermitted(c echo.Context, obj interface{}) bool {
	u := request.UserFrom(c)
	if u != nil && u.IsSuperuser {
		return true
	}
	verb, ok := verbMapping[c.Request().Method]
	if !ok {
		return true
	}
	permitter, ok := obj.(entity.ObjectPermitter)
	if !ok {
		return true
	}
	if u == nil {
		return false
	}
	return permitter.HasObjectPermission(u, verb)
}
