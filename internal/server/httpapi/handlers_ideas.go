package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ooakt0/fyi-bolt-sub000/internal/server/models"
)

type ideaResponse struct {
	ID          string    `json:"id"`
	CreatorID   string    `json:"creator_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stage       string    `json:"stage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toIdeaResponse(idea *models.Idea) ideaResponse {
	return ideaResponse{
		ID:          idea.ID,
		CreatorID:   idea.CreatorID,
		Name:        idea.Name,
		Description: idea.Description,
		Stage:       idea.Stage,
		CreatedAt:   idea.CreatedAt,
		UpdatedAt:   idea.UpdatedAt,
	}
}

type createIdeaRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Stage       string `json:"stage"`
}

func (s *Server) handleCreateIdea(c *gin.Context) {
	var req createIdeaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request", "detail": err.Error()})
		return
	}

	idea, err := s.ideas.Create(c.Request.Context(), viewerID(c), req.Name, req.Description, req.Stage)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toIdeaResponse(idea))
}

func (s *Server) handleGetIdea(c *gin.Context) {
	idea, err := s.ideas.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toIdeaResponse(idea))
}

func (s *Server) handleListIdeas(c *gin.Context) {
	all, err := s.ideas.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}

	result := make([]ideaResponse, 0, len(all))
	for _, idea := range all {
		result = append(result, toIdeaResponse(idea))
	}
	c.JSON(http.StatusOK, result)
}
