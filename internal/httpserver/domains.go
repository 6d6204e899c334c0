package httpserver

import (
	"context"

	"relationship-os/internal/analytics"
	analyticsHTTP "relationship-os/internal/analytics/delivery/http"
	analyticsRepo "relationship-os/internal/analytics/repository/postgre"
	analyticsUC "relationship-os/internal/analytics/usecase"
	betaHTTP "relationship-os/internal/beta/delivery/http"
	betaRepo "relationship-os/internal/beta/repository/postgre"
	betaUC "relationship-os/internal/beta/usecase"
	feedbackHTTP "relationship-os/internal/feedback/delivery/http"
	feedbackRepo "relationship-os/internal/feedback/repository/postgre"
	feedbackUC "relationship-os/internal/feedback/usecase"
	interactionHTTP "relationship-os/internal/interaction/delivery/http"
	interactionRepo "relationship-os/internal/interaction/repository/postgre"
	interactionUC "relationship-os/internal/interaction/usecase"
	"relationship-os/internal/middleware"
	personHTTP "relationship-os/internal/person/delivery/http"
	personRepo "relationship-os/internal/person/repository/postgre"
	personUC "relationship-os/internal/person/usecase"
	syncinHTTP "relationship-os/internal/syncin/delivery/http"
	syncinRepo "relationship-os/internal/syncin/repository/postgre"
	syncinUC "relationship-os/internal/syncin/usecase"
)

// registerDomainRoutes wires every domain: repository -> usecase -> handler
// -> routes. Domains are built in dependency order; analytics first so its
// tracker can be handed to the others.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	admin := srv.gin.Group("/api/v1/admin")

	// Analytics. Its Tracker is a shared fire-and-forget dependency.
	aUC := analyticsUC.New(analyticsRepo.New(srv.postgresDB, srv.l), srv.l)
	var tracker analytics.Tracker = aUC

	// Beta whitelist, also consumed by the BetaGate middleware.
	bUC := betaUC.New(betaRepo.New(srv.postgresDB, srv.l), srv.l)

	mw := middleware.New(srv.l, srv.cfg, bUC)

	// Person
	pUC := personUC.New(personRepo.New(srv.postgresDB, srv.l), srv.l)
	personHTTP.RegisterRoutes(api, personHTTP.New(srv.l, pUC), mw)

	// Interaction. Optional services degrade to nil; typed-nil pointers must
	// not leak into the usecase interfaces.
	var inferrer interactionUC.DateInferrer
	if srv.inferrer != nil {
		inferrer = srv.inferrer
	}
	var generator interactionUC.Generator
	if srv.llm != nil {
		generator = srv.llm
	}
	var calendar interactionUC.Calendar
	if srv.calendar != nil {
		calendar = srv.calendar
	}

	iRepo := interactionRepo.New(srv.postgresDB, srv.l)
	iUC := interactionUC.New(iRepo, pUC, inferrer, generator, srv.dateMath, calendar, tracker, srv.cfg.Timezone, srv.l)
	interactionHTTP.RegisterRoutes(api, interactionHTTP.New(srv.l, iUC), mw)

	// Sync ingestion reuses the interaction repository for dedupe and insert.
	var syncInferrer syncinUC.DateInferrer
	if srv.inferrer != nil {
		syncInferrer = srv.inferrer
	}
	var syncGenerator syncinUC.Generator
	if srv.llm != nil {
		syncGenerator = srv.llm
	}
	sUC := syncinUC.New(syncinRepo.New(srv.postgresDB, srv.l), iRepo, pUC, syncInferrer, syncGenerator, tracker, srv.l)
	sHandler := syncinHTTP.New(srv.l, sUC, srv.cfg.Sync)
	syncinHTTP.RegisterRoutes(api, sHandler, mw)
	syncinHTTP.RegisterAdminRoutes(admin, sHandler, mw)

	// Feedback
	fUC := feedbackUC.New(feedbackRepo.New(srv.postgresDB, srv.l), tracker, srv.l)
	fHandler := feedbackHTTP.New(srv.l, fUC)
	feedbackHTTP.RegisterRoutes(api, fHandler, mw)
	feedbackHTTP.RegisterAdminRoutes(admin, fHandler, mw)

	// Admin surfaces
	aHandler := analyticsHTTP.New(srv.l, aUC)
	analyticsHTTP.RegisterRoutes(api, aHandler, mw)
	analyticsHTTP.RegisterAdminRoutes(admin, aHandler, mw)
	betaHTTP.RegisterRoutes(admin, betaHTTP.New(srv.l, bUC), mw)

	srv.l.Infof(ctx, "Domain routes registered")
	return nil
}
