package api

import (
	"net/http"

	"github.com/mcatur/sol/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Flow.Handler().Routes(),
		domain.Catalog.Handler().Routes(),
	)
}
