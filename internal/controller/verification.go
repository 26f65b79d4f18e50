package controller

import (
	"net/http"

	ctx "github.com/PriyeshRaj231/online-voting-system/internal/context"
	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

type VerificationController interface {
	Status(c echo.Context) error
	Verify(c echo.Context) error
}

type verificationController struct {
	identityService service.IdentityService
}

func newVerificationController(identityService service.IdentityService) VerificationController {
	return &verificationController{
		identityService: identityService,
	}
}

type verifyRequest struct {
	FaceImage string `json:"face_image"`
}

func (v *verificationController) Status(c echo.Context) error {
	sessionID, ok := ctx.GetSessionID(c)
	if !ok {
		return respondUnauthenticated(c)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"state": v.identityService.GateState(sessionID).String(),
	})
}

func (v *verificationController) Verify(c echo.Context) error {
	voter, ok := ctx.GetVoter(c)
	if !ok {
		return respondUnauthenticated(c)
	}
	sessionID, ok := ctx.GetSessionID(c)
	if !ok {
		return respondUnauthenticated(c)
	}

	var req verifyRequest
	if err := c.Bind(&req); err != nil || req.FaceImage == "" {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "A face capture is required."))
	}

	photo, err := decodeCapture(req.FaceImage)
	if err != nil {
		return respondError(c, err)
	}

	if err := v.identityService.VerifyVoter(c.Request().Context(), sessionID, voter, photo); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":  "accepted",
		"message": "Identity verified. You may cast your vote.",
	})
}
