package controller

import (
	"io"
	"net/http"
	"strconv"

	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

type AdminController interface {
	Login(c echo.Context) error
	Dashboard(c echo.Context) error
	AddCandidate(c echo.Context) error
	DeleteCandidate(c echo.Context) error
	ClearVotes(c echo.Context) error
}

type adminController struct {
	authService  service.AuthService
	adminService service.AdminService
}

func newAdminController(authService service.AuthService, adminService service.AdminService) AdminController {
	return &adminController{
		authService:  authService,
		adminService: adminService,
	}
}

func (a *adminController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Invalid request body."))
	}

	admin, token, err := a.authService.LoginAdmin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	setSessionCookie(c, adminCookieName, token)
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Admin login successful.",
		"username": admin.Username,
	})
}

func (a *adminController) Dashboard(c echo.Context) error {
	dashboard, err := a.adminService.Dashboard()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

func (a *adminController) AddCandidate(c echo.Context) error {
	name := c.FormValue("name")
	if name == "" {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Candidate name is required."))
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Please select a photo."))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer file.Close()

	photo, err := io.ReadAll(file)
	if err != nil {
		return respondError(c, err)
	}

	candidate, err := a.adminService.AddCandidate(name, fileHeader.Filename, photo)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":   "Candidate added successfully!",
		"candidate": candidate,
	})
}

func (a *adminController) DeleteCandidate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Invalid candidate id."))
	}

	if err := a.adminService.DeleteCandidate(uint(id)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Candidate deleted successfully!"})
}

func (a *adminController) ClearVotes(c echo.Context) error {
	if err := a.adminService.ClearVotes(); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "All votes cleared successfully!"})
}
