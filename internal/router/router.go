package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// Initiator
	CreateEvent(c *ginext.Context)
	ListOwnerEvents(c *ginext.Context)
	GetOwnerEvent(c *ginext.Context)
	UpdateOwnerEvent(c *ginext.Context)
	ListEventRequests(c *ginext.Context)
	UpdateEventRequests(c *ginext.Context)

	// Requester
	CreateRequest(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	ListUserRequests(c *ginext.Context)

	// Admin
	SearchAdminEvents(c *ginext.Context)
	UpdateAdminEvent(c *ginext.Context)
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	CreateCategory(c *ginext.Context)
	CreateCompilation(c *ginext.Context)
	UpdateCompilation(c *ginext.Context)
	DeleteCompilation(c *ginext.Context)

	// Public
	ListCategories(c *ginext.Context)
	GetCategory(c *ginext.Context)
	SearchEvents(c *ginext.Context)
	GetPublishedEvent(c *ginext.Context)
	ListCompilations(c *ginext.Context)
	GetCompilation(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	private := router.Group("/users/:userId")
	{
		// Events of the initiator
		private.POST("/events", h.CreateEvent)
		private.GET("/events", h.ListOwnerEvents)
		private.GET("/events/:eventId", h.GetOwnerEvent)
		private.PATCH("/events/:eventId", h.UpdateOwnerEvent)
		private.GET("/events/:eventId/requests", h.ListEventRequests)
		private.PATCH("/events/:eventId/requests", h.UpdateEventRequests)

		// Participation requests
		private.POST("/requests", h.CreateRequest)
		private.GET("/requests", h.ListUserRequests)
		private.PATCH("/requests/:requestId/cancel", h.CancelRequest)
	}

	admin := router.Group("/admin")
	{
		admin.GET("/events", h.SearchAdminEvents)
		admin.PATCH("/events/:eventId", h.UpdateAdminEvent)
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.POST("/categories", h.CreateCategory)
		admin.POST("/compilations", h.CreateCompilation)
		admin.PATCH("/compilations/:compId", h.UpdateCompilation)
		admin.DELETE("/compilations/:compId", h.DeleteCompilation)
	}

	router.GET("/categories", h.ListCategories)
	router.GET("/categories/:catId", h.GetCategory)
	router.GET("/events", h.SearchEvents)
	router.GET("/events/:id", h.GetPublishedEvent)
	router.GET("/compilations", h.ListCompilations)
	router.GET("/compilations/:compId", h.GetCompilation)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
