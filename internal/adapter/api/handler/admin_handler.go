package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"skillio/internal/domain/entity"
	"skillio/internal/domain/service"
	"skillio/internal/usecase"
	"skillio/pkg/errors"
	"skillio/pkg/response"
	"skillio/pkg/utils"
)

type AdminHandler struct {
	adminAuthUseCase *usecase.AdminAuthUseCase
	activityUseCase  *usecase.ActivityUseCase
}

func NewAdminHandler(adminAuthUseCase *usecase.AdminAuthUseCase, activityUseCase *usecase.ActivityUseCase) *AdminHandler {
	return &AdminHandler{
		adminAuthUseCase: adminAuthUseCase,
		activityUseCase:  activityUseCase,
	}
}

type adminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) Login(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.adminAuthUseCase.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, session)
}

// Me reports the signed-in admin and what their role may do.
func (h *AdminHandler) Me(c echo.Context) error {
	role := entity.AdminRole(getStringFromContext(c, "admin_role"))
	return response.Success(c, map[string]interface{}{
		"id":           getUserIDFromContext(c),
		"username":     getStringFromContext(c, "name"),
		"role":         role,
		"capabilities": service.Capabilities(role),
	})
}

// adminView keeps the password hash out of responses.
type adminView struct {
	ID        string           `json:"id"`
	Username  string           `json:"username"`
	Role      entity.AdminRole `json:"role"`
	CreatedAt time.Time        `json:"createdAt"`
}

func newAdminView(a *entity.AdminAccount) adminView {
	return adminView{ID: a.ID, Username: a.Username, Role: a.Role, CreatedAt: a.CreatedAt}
}

type createAdminRequest struct {
	Username string           `json:"username" validate:"required,min=3"`
	Password string           `json:"password" validate:"required,min=8"`
	Role     entity.AdminRole `json:"role" validate:"required"`
}

func (h *AdminHandler) CreateAdmin(c echo.Context) error {
	var req createAdminRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	admin, err := h.adminAuthUseCase.CreateAdmin(c.Request().Context(), actorFromContext(c), usecase.CreateAdminInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, newAdminView(admin))
}

func (h *AdminHandler) ListAdmins(c echo.Context) error {
	admins, err := h.adminAuthUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	views := make([]adminView, 0, len(admins))
	for _, a := range admins {
		views = append(views, newAdminView(a))
	}
	return response.Success(c, views)
}

func (h *AdminHandler) ListActivity(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)
	logs, total, err := h.activityUseCase.List(c.Request().Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, logs, total, pagination.Page, pagination.PageSize)
}
