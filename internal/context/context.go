package ctx

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/model"
	"github.com/labstack/echo/v4"
)

const (
	voterKey   = "voter"
	adminKey   = "admin"
	sessionKey = "sessionID"
)

func SetVoter(c echo.Context, voter model.Voter, sessionID string) {
	c.Set(voterKey, voter)
	c.Set(sessionKey, sessionID)
}

func GetVoter(c echo.Context) (model.Voter, bool) {
	voter, ok := c.Get(voterKey).(model.Voter)
	return voter, ok
}

// GetSessionID returns the identifier of the voter's login session,
// which keys the per-session verification gate.
func GetSessionID(c echo.Context) (string, bool) {
	sessionID, ok := c.Get(sessionKey).(string)
	return sessionID, ok
}

func SetAdmin(c echo.Context, admin model.Admin) {
	c.Set(adminKey, admin)
}

func GetAdmin(c echo.Context) (model.Admin, bool) {
	admin, ok := c.Get(adminKey).(model.Admin)
	return admin, ok
}
