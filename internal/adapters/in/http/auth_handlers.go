package http

import (
	"net/http"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/account"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	AccountID string    `json:"accountId"`
	Roles     []string  `json:"roles"`
}

// Register handles POST /api/v1/auth/register. Only CLIENTE and RESTAURANTE
// may be requested; the role defaults to CLIENTE.
func (s *Server) Register(c echo.Context) error {
	var req RegisterRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	role := account.RoleCustomer
	if req.Role != "" {
		parsed, err := account.ParseRole(req.Role)
		if err != nil {
			return s.fail(c, err)
		}
		role = parsed
	}

	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterAccountCommand(id, req.Name, req.Email, req.Password, req.Address, req.Phone, role)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.RegisterAccount.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: id.String()})
}

// Login handles POST /api/v1/auth/login.
func (s *Server) Login(c echo.Context) error {
	var req LoginRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return s.fail(c, err)
	}
	result, err := s.commands.Login.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	roles := make([]string, 0, len(result.Principal.Roles()))
	for _, r := range result.Principal.Roles() {
		roles = append(roles, string(r))
	}
	return c.JSON(http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		AccountID: result.Principal.AccountID().String(),
		Roles:     roles,
	})
}

// GetProfile handles GET /api/v1/me.
func (s *Server) GetProfile(c echo.Context) error {
	query, err := queries.NewGetProfileQuery(principalFrom(c))
	if err != nil {
		return s.fail(c, err)
	}
	profile, err := s.queries.GetProfile.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/v1/me. Email and password are not editable here.
func (s *Server) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if err := s.bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateProfileCommand(principalFrom(c), req.Name, req.Address, req.Phone)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.commands.UpdateProfile.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
