package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ldnexus/match-engine/internal/matching/uae"
	"github.com/ldnexus/match-engine/internal/ranking"
	"github.com/ldnexus/match-engine/internal/talent"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

type matchRequest struct {
	Profile *talent.Profile `json:"profile" binding:"required"`
	Job     *talent.Job     `json:"job" binding:"required"`
}

type uaeMatchRequest struct {
	Profile *talent.Profile `json:"profile" binding:"required"`
	Job     *talent.Job     `json:"job" binding:"required"`
	// Context carries optional business-context overrides as a loose map so
	// route callers are not coupled to the exact override schema.
	Context map[string]any `json:"context,omitempty"`
}

type rankRequest struct {
	Job      *talent.Job       `json:"job" binding:"required"`
	Profiles []*talent.Profile `json:"profiles" binding:"required"`
	MinScore float64           `json:"min_score,omitempty"`
	Limit    int               `json:"limit,omitempty"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":              "ok",
		"embedding_available": s.provider.Available(),
	})
}

func (s *Server) match(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile and job are required"})
		return
	}

	score := s.matcher.Score(c.Request.Context(), req.Profile, req.Job)
	c.JSON(http.StatusOK, gin.H{"score": score})
}

func (s *Server) matchUAE(c *gin.Context) {
	var req uaeMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "profile and job are required"})
		return
	}

	overrides, err := decodeContext(req.Context)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid context overrides"})
		return
	}

	result := s.regional.Score(req.Profile, req.Job, overrides)
	c.JSON(http.StatusOK, result)
}

func (s *Server) rank(c *gin.Context) {
	var req rankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "job and profiles are required"})
		return
	}

	candidates, err := s.ranker.Rank(c.Request.Context(), req.Job, req.Profiles,
		ranking.NewMinScore(req.MinScore),
		ranking.NewLimit(req.Limit),
	)
	if err != nil {
		s.logger.Error("ranking failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "ranking failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}

// decodeContext maps loose JSON overrides onto the business-context struct.
func decodeContext(raw map[string]any) (*uae.BusinessContext, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var overrides uae.BusinessContext
	if err := mapstructure.Decode(raw, &overrides); err != nil {
		return nil, err
	}

	return &overrides, nil
}
