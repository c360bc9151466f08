package httpserver

import (
	"net/http"

	"fitlife-blog/internal/domain"
	"github.com/gin-gonic/gin"
)

const articleNotFound = "Article not found"

type articleHandlers struct {
	svc ArticleService
}

func (h *articleHandlers) list(c *gin.Context) {
	articles, err := h.svc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, nonNil(articles))
}

func (h *articleHandlers) featured(c *gin.Context) {
	articles, err := h.svc.ListFeatured(c.Request.Context())
	if err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, nonNil(articles))
}

func (h *articleHandlers) get(c *gin.Context) {
	a, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *articleHandlers) create(c *gin.Context) {
	var in domain.ArticleCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, bindError(err), articleNotFound)
		return
	}
	a, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *articleHandlers) update(c *gin.Context) {
	var in domain.ArticleUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, bindError(err), articleNotFound)
		return
	}
	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *articleHandlers) remove(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err, articleNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Article deleted successfully"})
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
