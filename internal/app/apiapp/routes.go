package apiapp

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Hisham6667/summer-sports-server/internal/infra/metrics"
	authsvc "github.com/Hisham6667/summer-sports-server/internal/services/auth"
	catalogsvc "github.com/Hisham6667/summer-sports-server/internal/services/catalog"
	paymentsvc "github.com/Hisham6667/summer-sports-server/internal/services/payments"
	ratesvc "github.com/Hisham6667/summer-sports-server/internal/services/rate"
	selectionsvc "github.com/Hisham6667/summer-sports-server/internal/services/selections"
	"github.com/Hisham6667/summer-sports-server/internal/transport/http/handlers"
)

type Dependencies struct {
	TokenManager     *authsvc.TokenManager
	TokenLimiter     *ratesvc.Limiter
	CatalogService   *catalogsvc.Service
	SelectionService *selectionsvc.Service
	PaymentService   *paymentsvc.Service
	Gatherer         prometheus.Gatherer
	Logger           *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	tokenHandler := handlers.NewTokenHandler(deps.TokenManager, deps.TokenLimiter, deps.Logger)
	catalogHandler := handlers.NewCatalogHandler(deps.CatalogService, deps.Logger)
	selectionHandler := handlers.NewSelectionHandler(deps.SelectionService, deps.Logger)
	paymentHandler := handlers.NewPaymentHandler(deps.PaymentService, deps.Logger)
	authMW := AuthMiddleware(deps.TokenManager, deps.Logger)

	r.Get("/", healthHandler.Root)
	r.Get("/healthz", healthHandler.Get)
	if deps.Gatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.Gatherer))
	}

	r.Post("/jwt", tokenHandler.Issue)

	r.Get("/instructors", catalogHandler.Instructors)
	r.Get("/allclasses", catalogHandler.Classes)

	r.Post("/selectedclasses", selectionHandler.Create)
	r.With(authMW).Get("/selectedclasses", selectionHandler.List)
	r.Delete("/selectedclasses/{id}", selectionHandler.Delete)

	r.With(authMW).Post("/create-payment-intent", paymentHandler.CreateIntent)
	r.With(authMW).Post("/payments", paymentHandler.Record)
	r.With(authMW).Get("/payments", paymentHandler.List)
}
