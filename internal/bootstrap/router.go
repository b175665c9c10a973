package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	httpapi "github.com/befound-studio/studio-backend/internal/api/http"
	contacthttp "github.com/befound-studio/studio-backend/internal/contact/http"
	contactsvc "github.com/befound-studio/studio-backend/internal/contact/service"
	contenthttp "github.com/befound-studio/studio-backend/internal/content/http"
	contentsvc "github.com/befound-studio/studio-backend/internal/content/service"
	"github.com/befound-studio/studio-backend/internal/middleware"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Content     *contentsvc.ContentService
	Contact     *contactsvc.ContactService
	Cache       httpapi.CachePinger

	// ContactRateLimit caps contact submissions per client IP. Zero means the
	// default of one per 10s with a burst of 3.
	ContactRateLimit rate.Limit
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(corsLayer())
	r.Use(middleware.RequestID())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Cache)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	contentHandler := contenthttp.New(dep.Content)
	contentHandler.Register(api)

	limit := dep.ContactRateLimit
	if limit == 0 {
		limit = rate.Every(10 * time.Second)
	}
	contactHandler := contacthttp.New(dep.Contact)
	contactHandler.Register(r, middleware.RateLimit(limit, 3))

	return r
}

// corsLayer mirrors the headers the serverless contact function used to set:
// any origin, enumerated methods and headers, 200 on preflight.
func corsLayer() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "OPTIONS", "PATCH", "DELETE", "POST", "PUT"},
		AllowHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
			"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
		},
		OptionsResponseStatusCode: http.StatusOK,
		MaxAge:                    12 * time.Hour,
	})
}
