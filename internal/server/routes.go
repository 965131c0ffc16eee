package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zulandar/messagecraft/internal/compose"
	"github.com/zulandar/messagecraft/internal/delivery"
	"github.com/zulandar/messagecraft/internal/library"
	"github.com/zulandar/messagecraft/internal/models"
)

// registerRoutes sets up all API routes on the gin router.
func registerRoutes(router *gin.Engine, opts StartOpts) {
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/generate", handleGenerate(opts.Composer))
	api.POST("/regenerate", handleRegenerate(opts.Composer))

	api.GET("/messages", handleMessageList(opts.Messages))
	api.DELETE("/messages", handleMessageClear(opts.Messages))
	api.DELETE("/messages/:id", handleMessageDelete(opts.Messages))
	api.POST("/messages/:id/send", handleMessageSend(opts.Messages, opts.Delivery))

	api.GET("/templates", handleTemplateList(opts.Templates))
	api.POST("/templates", handleTemplateCreate(opts.Templates))
	api.DELETE("/templates/:id", handleTemplateDelete(opts.Templates))
	api.POST("/templates/:id/select", handleTemplateSelect(opts.Templates, opts.Composer))

	api.GET("/categories", handleCategoryList(opts.Categories))
	api.POST("/categories", handleCategoryCreate(opts.Categories))
	api.DELETE("/categories/:id", handleCategoryDelete(opts.Categories))
}

type generateRequest struct {
	Recipient string `json:"recipient"`
	Context   string `json:"context"`
	Tone      string `json:"tone"`
	Details   string `json:"details"`
}

func handleGenerate(composer *compose.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req generateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		in := compose.Input{
			Recipient: req.Recipient,
			Context:   req.Context,
			Tone:      models.Tone(req.Tone),
			Details:   req.Details,
		}
		if err := compose.Validate(in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		res, err := composer.Submit(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.Message})
	}
}

func handleRegenerate(composer *compose.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := composer.Regenerate(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": res.Message})
	}
}

func handleMessageList(msgs *library.Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := msgs.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func handleMessageDelete(msgs *library.Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := msgs.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleMessageClear(msgs *library.Messages) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := msgs.Clear(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

type sendRequest struct {
	Target  string `json:"target"`
	Channel string `json:"channel"`
}

func handleMessageSend(msgs *library.Messages, registry *delivery.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req sendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}
		if registry == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no delivery targets configured"})
			return
		}

		adapter, err := registry.Get(req.Target)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		msg, err := msgs.Get(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}

		out := delivery.Outbound{Channel: req.Channel, Text: msg.GeneratedMessage}
		if err := adapter.Send(c.Request.Context(), out); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"sent": req.Target})
	}
}

type templateRequest struct {
	Name       string `json:"name"`
	Context    string `json:"context"`
	Tone       string `json:"tone"`
	Details    string `json:"details"`
	CategoryID string `json:"categoryId"`
}

func handleTemplateList(tpls *library.Templates) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := tpls.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func handleTemplateCreate(tpls *library.Templates) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req templateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		tpl, err := tpls.Create(library.TemplateOpts{
			Name:       req.Name,
			Context:    req.Context,
			Tone:       models.Tone(req.Tone),
			Details:    req.Details,
			CategoryID: req.CategoryID,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, tpl)
	}
}

func handleTemplateDelete(tpls *library.Templates) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := tpls.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleTemplateSelect(tpls *library.Templates, composer *compose.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tpl, err := tpls.Select(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		prefill := composer.ApplyTemplate(*tpl)
		c.JSON(http.StatusOK, prefill)
	}
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

func handleCategoryList(cats *library.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := cats.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func handleCategoryCreate(cats *library.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req categoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
			return
		}

		cat, err := cats.Create(library.CategoryOpts{
			Name:        req.Name,
			Description: req.Description,
			Color:       req.Color,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, cat)
	}
}

func handleCategoryDelete(cats *library.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cats.Delete(c.Param("id")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
