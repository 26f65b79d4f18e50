package controller

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/PriyeshRaj231/online-voting-system/internal/dto"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// respondError maps the identity-gate and voting error taxonomy onto
// HTTP responses. Every condition keeps its distinct code so the
// frontend can show an actionable message; only unclassified errors
// collapse to a 500.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, dto.ErrDecodeFailed):
		return c.JSON(http.StatusBadRequest, errorBody("decode_error", "Could not read the captured image. Please retake the photo."))
	case errors.Is(err, dto.ErrTooBlurry):
		return c.JSON(http.StatusUnprocessableEntity, errorBody("too_blurry", "Image is too blurry. Please take a clearer photo."))
	case errors.Is(err, dto.ErrNoFace):
		return c.JSON(http.StatusUnprocessableEntity, errorBody("no_face_detected", "No face detected in the image. Please try again."))
	case errors.Is(err, dto.ErrNoEnrollment):
		return c.JSON(http.StatusConflict, errorBody("no_enrollment_data", "Face data not found. Please contact an administrator."))
	case errors.Is(err, dto.ErrFaceMismatch):
		return c.JSON(http.StatusForbidden, errorBody("face_mismatch", "Face verification failed. Please try again."))
	case errors.Is(err, dto.ErrExtractionTimeout):
		return c.JSON(http.StatusGatewayTimeout, errorBody("extraction_timeout", "Face processing took too long. Please try again."))
	case errors.Is(err, dto.ErrAlreadyVoted):
		return c.JSON(http.StatusConflict, errorBody("already_voted", "You have already voted."))
	case errors.Is(err, dto.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, errorBody("username_taken", "Username already exists. Please choose another."))
	case errors.Is(err, dto.ErrNotAuthorized):
		return c.JSON(http.StatusUnauthorized, errorBody("not_authorized", "Not authorized."))
	case errors.Is(err, dto.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorBody("not_found", "Not found."))
	default:
		logrus.Errorf("Unhandled error in %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		return c.JSON(http.StatusInternalServerError, errorBody("internal_error", "Something went wrong. Please try again."))
	}
}

func errorBody(code, message string) echo.Map {
	return echo.Map{"error": code, "message": message}
}

// decodeCapture accepts the browser's canvas export: either a
// data:image/...;base64 URL or a bare base64 string.
func decodeCapture(capture string) ([]byte, error) {
	if idx := strings.IndexByte(capture, ','); idx >= 0 && strings.HasPrefix(capture, "data:") {
		capture = capture[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(capture)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrDecodeFailed, err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty capture", dto.ErrDecodeFailed)
	}
	return raw, nil
}
