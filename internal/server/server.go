// Package server implements the DraftAI HTTP API: draft CRUD over the
// file-backed store plus the AI generation endpoint.
package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ManahilHabibb/DraftAI/internal/log"
	"github.com/ManahilHabibb/DraftAI/internal/server/store"
)

// Generator produces text for the /api/ai/generate endpoint.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}

// Handler bundles the API's dependencies.
type Handler struct {
	store *store.Store
	gen   Generator
}

// NewHandler creates the API handler.
func NewHandler(st *store.Store, gen Generator) *Handler {
	return &Handler{store: st, gen: gen}
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	api := r.Group("/api")
	{
		api.GET("/health", h.health)
		api.GET("/drafts", h.listDrafts)
		api.POST("/drafts", h.createDraft)
		api.GET("/drafts/:id", h.getDraft)
		api.PUT("/drafts/:id", h.updateDraft)
		api.DELETE("/drafts/:id", h.deleteDraft)
		api.POST("/ai/generate", h.generate)
	}

	return r
}

// corsMiddleware allows browser clients from any origin; the API carries no
// credentials.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

type createRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

type updateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type generateAPIRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	MaxTokens int    `json:"max_tokens"`
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) listDrafts(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) createDraft(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "title is required"})
		return
	}

	d, err := h.store.Create(req.Title, req.Content)
	if err != nil {
		log.Error(log.CatServer, "create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to create draft"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) getDraft(c *gin.Context) {
	d, ok := h.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "draft not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) updateDraft(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	d, found, err := h.store.Update(c.Param("id"), req.Title, req.Content)
	if err != nil {
		log.Error(log.CatServer, "update failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to update draft"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "draft not found"})
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *Handler) deleteDraft(c *gin.Context) {
	found, err := h.store.Delete(c.Param("id"))
	if err != nil {
		log.Error(log.CatServer, "delete failed", "id", c.Param("id"), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to delete draft"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"detail": "draft not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "draft deleted successfully"})
}

func (h *Handler) generate(c *gin.Context) {
	var req generateAPIRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "prompt is required"})
		return
	}
	if req.MaxTokens <= 0 {
		req.MaxTokens = 150
	}

	text, err := h.gen.Generate(c.Request.Context(), req.Prompt, req.MaxTokens)
	if err != nil {
		// The generation endpoint degrades instead of failing: the client
		// gets placeholder text it can still merge or discard.
		log.Error(log.CatServer, "generation failed", "error", err)
		text = "AI service temporarily unavailable. Here's a placeholder response for: '" + req.Prompt + "'"
	}
	c.JSON(http.StatusOK, gin.H{"generated_text": text})
}
