package controller

import (
	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

type Controllers interface {
	Auth() AuthController
	Verification() VerificationController
	Vote() VoteController
	Admin() AdminController

	Route(e *echo.Echo)
}

type controllers struct {
	session                *sessionMiddleware
	authController         AuthController
	verificationController VerificationController
	voteController         VoteController
	adminController        AdminController
}

func NewControllers(services service.Services) Controllers {
	return &controllers{
		session:                newSessionMiddleware(services.Auth()),
		authController:         newAuthController(services.Auth()),
		verificationController: newVerificationController(services.Identity()),
		voteController:         newVoteController(services.Voting()),
		adminController:        newAdminController(services.Auth(), services.Admin()),
	}
}

func (c controllers) Auth() AuthController {
	return c.authController
}

func (c controllers) Verification() VerificationController {
	return c.verificationController
}

func (c controllers) Vote() VoteController {
	return c.voteController
}

func (c controllers) Admin() AdminController {
	return c.adminController
}

func (c controllers) Route(e *echo.Echo) {
	e.POST("/api/register", c.authController.Register)
	e.POST("/api/login", c.authController.Login)
	e.POST("/api/logout", c.authController.Logout)
	e.GET("/api/results", c.voteController.Results)

	voter := e.Group("/api", c.session.RequireVoter)
	voter.GET("/verification", c.verificationController.Status)
	voter.POST("/verification", c.verificationController.Verify)
	voter.GET("/vote", c.voteController.Status)
	voter.POST("/vote", c.voteController.Submit)

	e.POST("/api/admin/login", c.adminController.Login)
	admin := e.Group("/api/admin", c.session.RequireAdmin)
	admin.GET("/dashboard", c.adminController.Dashboard)
	admin.POST("/candidates", c.adminController.AddCandidate)
	admin.DELETE("/candidates/:id", c.adminController.DeleteCandidate)
	admin.POST("/clear-votes", c.adminController.ClearVotes)

	e.Static("/static", "static")
}
