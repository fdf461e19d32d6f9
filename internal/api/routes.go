package api

import (
	"net/http"

	"github.com/naz99/Autism-App/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, domain *Domain) {
	routes.Register(
		mux,
		domain.Accounts.Handler().Routes(),
		domain.Diagnosis.Handler().Routes(),
		domain.Reports.Handler().Routes(),
	)
}
