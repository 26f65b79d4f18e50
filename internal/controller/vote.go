package controller

import (
	"net/http"

	ctx "github.com/PriyeshRaj231/online-voting-system/internal/context"
	"github.com/PriyeshRaj231/online-voting-system/internal/service"
	"github.com/labstack/echo/v4"
)

type VoteController interface {
	Status(c echo.Context) error
	Submit(c echo.Context) error
	Results(c echo.Context) error
}

type voteController struct {
	votingService service.VotingService
}

func newVoteController(votingService service.VotingService) VoteController {
	return &voteController{
		votingService: votingService,
	}
}

type submitVoteRequest struct {
	CandidateID uint `json:"candidate_id"`
}

func (v *voteController) Status(c echo.Context) error {
	voter, ok := ctx.GetVoter(c)
	if !ok {
		return respondUnauthenticated(c)
	}

	candidates, err := v.votingService.Candidates()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"candidates": candidates,
		"has_voted":  voter.HasVoted,
	})
}

func (v *voteController) Submit(c echo.Context) error {
	voter, ok := ctx.GetVoter(c)
	if !ok {
		return respondUnauthenticated(c)
	}
	sessionID, ok := ctx.GetSessionID(c)
	if !ok {
		return respondUnauthenticated(c)
	}

	var req submitVoteRequest
	if err := c.Bind(&req); err != nil || req.CandidateID == 0 {
		return c.JSON(http.StatusBadRequest, errorBody("bad_request", "A candidate is required."))
	}

	if _, err := v.votingService.SubmitVote(c.Request().Context(), sessionID, voter, req.CandidateID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Vote submitted successfully!"})
}

func (v *voteController) Results(c echo.Context) error {
	results, err := v.votingService.Results()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, results)
}
