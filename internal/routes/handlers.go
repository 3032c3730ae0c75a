package routes

import (
	"net/http"

	"github.com/gittags/gittags/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

func NewRouter(svc *service.FeedService) *http.ServeMux {
	router := http.NewServeMux()
	router.HandleFunc("GET /github/{owner}/{repo}", svc.ServeFeed)
	// Serve Swagger documentation
	router.HandleFunc("/swagger/", httpSwagger.WrapHandler)
	return router
}
