package httpserver

import (
	"net/http"

	"fitlife-blog/internal/domain"
	"github.com/gin-gonic/gin"
)

const subscriberNotFound = "Subscriber not found"

type newsletterHandlers struct {
	svc NewsletterService
}

func (h *newsletterHandlers) subscribe(c *gin.Context) {
	var in domain.NewsletterSubscribe
	if err := c.ShouldBindJSON(&in); err != nil {
		writeError(c, bindError(err), subscriberNotFound)
		return
	}
	sub, err := h.svc.Subscribe(c.Request.Context(), in.Email)
	if err != nil {
		writeError(c, err, subscriberNotFound)
		return
	}
	c.JSON(http.StatusOK, sub)
}

func (h *newsletterHandlers) list(c *gin.Context) {
	subs, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err, subscriberNotFound)
		return
	}
	c.JSON(http.StatusOK, nonNil(subs))
}
