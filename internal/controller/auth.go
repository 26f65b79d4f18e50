package controller

import (
	"net/http"

	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthController interface {
	Register(c echo.Context) error
	Login(c echo.Context) error
	Logout(c echo.Context) error
}

type authController struct {
	authService service.AuthService
}

func newAuthController(authService service.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

type registerRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	FaceImage string `json:"face_image"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *authController) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Invalid request body."))
	}
	if req.Name == "" || req.Username == "" || req.Password == "" || req.FaceImage == "" {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Name, username, password and a face photo are required."))
	}

	photo, err := decodeCapture(req.FaceImage)
	if err != nil {
		return respondError(c, err)
	}

	voter, err := a.authService.RegisterVoter(c.Request().Context(), service.RegisterVoterInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Photo:    photo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Registration successful! Please login.",
		"voter_id": voter.ID,
	})
}

func (a *authController) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "Invalid request body."))
	}

	voter, token, err := a.authService.LoginVoter(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	setSessionCookie(c, voterCookieName, token)
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful. Facial verification required.",
		"name":    voter.Name,
	})
}

func (a *authController) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(voterCookieName); err == nil {
		if _, sessionID, err := a.authService.ValidateVoterToken(cookie.Value); err == nil {
			a.authService.Logout(sessionID)
		}
	}

	clearSessionCookie(c, voterCookieName)
	clearSessionCookie(c, adminCookieName)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out."})
}
