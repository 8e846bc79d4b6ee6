package http

import (
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type CreateRestaurantRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	OpeningTime string `json:"openingTime"`
	ClosingTime string `json:"closingTime"`
}

type UpdateRestaurantRequest = CreateRestaurantRequest

type SetActiveRequest struct {
	Active *bool `json:"active"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

type UpdateCategoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
	Active       *bool  `json:"active"`
}

type CreateMenuItemRequest struct {
	RestaurantID kernel.UUID  `json:"restaurantId"`
	CategoryID   *kernel.UUID `json:"categoryId"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	ImageURL     string       `json:"imageUrl"`
	Price        string       `json:"price"`
}

type UpdateMenuItemRequest struct {
	Price     *string `json:"price"`
	Available *bool   `json:"available"`
}

// ListRestaurants handles GET /api/v1/restaurants?activeOnly=.
func (s *Server) ListRestaurants(c echo.Context) error {
	activeOnly, err := queryParam[bool](c, "activeOnly")
	if err != nil {
		return s.fail(c, err)
	}

	restaurants, err := s.queries.ListRestaurants.Handle(c.Request().Context(),
		queries.NewListRestaurantsQuery(deref(activeOnly)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurants)
}

// CreateRestaurant handles POST /api/v1/restaurants. The caller becomes the owner.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var req CreateRestaurantRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateRestaurantCommand(principalFrom(c), id, catalog.RestaurantProfile{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// SetRestaurantActive handles PATCH /api/v1/restaurants/:id/active.
func (s *Server) SetRestaurantActive(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req SetActiveRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	if req.Active == nil {
		return s.fail(c, errs.NewValueIsRequiredError("active"))
	}

	cmd, err := commands.NewSetRestaurantActiveCommand(principalFrom(c), id, *req.Active)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.SetRestaurantActive.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRestaurantMenu handles GET /api/v1/restaurants/:id/menu?availableOnly=.
func (s *Server) GetRestaurantMenu(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	availableOnly, err := queryParam[bool](c, "availableOnly")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantMenuQuery(id, deref(availableOnly))
	if err != nil {
		return s.fail(c, err)
	}
	menu, err := s.queries.RestaurantMenu.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, menu)
}

// GetRestaurantRating handles GET /api/v1/restaurants/:id/rating.
func (s *Server) GetRestaurantRating(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantRatingQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	summary, err := s.queries.RestaurantRating.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetRestaurantSales handles GET /api/v1/restaurants/:id/sales?from=&to=.
func (s *Server) GetRestaurantSales(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	from, err := queryTime(c, "from")
	if err != nil {
		return s.fail(c, err)
	}
	to, err := queryTime(c, "to")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantSalesQuery(principalFrom(c), id, from, to)
	if err != nil {
		return s.fail(c, err)
	}
	sales, err := s.queries.RestaurantSales.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, sales)
}

// CreateCategory handles POST /api/v1/categories.
func (s *Server) CreateCategory(c echo.Context) error {
	var req CreateCategoryRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateCategoryCommand(principalFrom(c), id, req.Name, req.Description, req.DisplayOrder)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// CreateMenuItem handles POST /api/v1/menu-items.
func (s *Server) CreateMenuItem(c echo.Context) error {
	var req CreateMenuItemRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	price, err := kernel.MoneyFromString(req.Price)
	if err != nil {
		return s.fail(c, err)
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewCreateMenuItemCommand(principalFrom(c), id, req.RestaurantID, catalog.MenuItemDetails{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}, price)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.CreateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// UpdateMenuItem handles PATCH /api/v1/menu-items/:id. Absent fields are left unchanged.
func (s *Server) UpdateMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateMenuItemRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	var price *kernel.Money
	if req.Price != nil {
		parsed, parseErr := kernel.MoneyFromString(*req.Price)
		if parseErr != nil {
			return s.fail(c, parseErr)
		}
		price = &parsed
	}

	cmd, err := commands.NewUpdateMenuItemCommand(principalFrom(c), id, price, req.Available)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRestaurant handles GET /api/v1/restaurants/:id.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	restaurant, err := s.queries.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, restaurant)
}

// UpdateRestaurant handles PUT /api/v1/restaurants/:id. The whole profile is replaced.
func (s *Server) UpdateRestaurant(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateRestaurantRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateRestaurantCommand(principalFrom(c), id, catalog.RestaurantProfile{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	})
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateRestaurant.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListCategories handles GET /api/v1/categories?activeOnly=.
func (s *Server) ListCategories(c echo.Context) error {
	activeOnly, err := queryParam[bool](c, "activeOnly")
	if err != nil {
		return s.fail(c, err)
	}

	categories, err := s.queries.ListCategories.Handle(c.Request().Context(),
		queries.NewListCategoriesQuery(deref(activeOnly)))
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// UpdateCategory handles PUT /api/v1/categories/:id.
func (s *Server) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}
	var req UpdateCategoryRequest
	if err = s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	if req.Active == nil {
		return s.fail(c, errs.NewValueIsRequiredError("active"))
	}

	cmd, err := commands.NewUpdateCategoryCommand(principalFrom(c), id,
		req.Name, req.Description, req.DisplayOrder, *req.Active)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateCategory.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetMenuItem handles GET /api/v1/menu-items/:id.
func (s *Server) GetMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetMenuItemQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	item, err := s.queries.GetMenuItem.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /api/v1/menu-items/:id.
func (s *Server) DeleteMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteMenuItemCommand(principalFrom(c), id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.DeleteMenuItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
