// File: handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability endpoints
	GetAvailableDatesHandler gin.HandlerFunc
	GetAvailableTimesHandler gin.HandlerFunc

	// Meeting endpoints
	BookMeetingHandler   gin.HandlerFunc
	CancelMeetingHandler gin.HandlerFunc
	ListMeetingsHandler  gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
