package http

import (
	"fmt"
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

const principalKey = "principal"

func principalFrom(c echo.Context) account.Principal {
	p, _ := c.Get(principalKey).(account.Principal)
	return p
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id uuid.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, c.Param(name), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return kernel.UUID{}, badRequest(fmt.Sprintf("invalid format for parameter %s", name), err)
	}
	return kernel.UUIDFromBytes(id[:])
}

func queryParam[T any](c echo.Context, name string) (*T, error) {
	var value *T
	if err := runtime.BindQueryParameter("form", true, false, name, c.QueryParams(), &value); err != nil {
		return nil, badRequest(fmt.Sprintf("invalid format for parameter %s", name), err)
	}
	return value, nil
}

func queryUUID(c echo.Context, name string) (*kernel.UUID, error) {
	raw, err := queryParam[uuid.UUID](c, name)
	if err != nil || raw == nil {
		return nil, err
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func queryTime(c echo.Context, name string) (time.Time, error) {
	t, err := queryParam[time.Time](c, name)
	if err != nil || t == nil {
		return time.Time{}, err
	}
	return *t, nil
}

func queryPage(c echo.Context) (queries.Page, error) {
	number, err := queryParam[int](c, "page")
	if err != nil {
		return queries.Page{}, err
	}
	size, err := queryParam[int](c, "size")
	if err != nil {
		return queries.Page{}, err
	}
	return queries.NewPage(deref(number), deref(size))
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

// syncCourier reads the optional syncCourier flag; absent means true.
func syncCourier(flag *bool) bool {
	return flag == nil || *flag
}
