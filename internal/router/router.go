package router

import (
	"net/http"

	_ "equine-vet-dashboard/docs"
	"equine-vet-dashboard/internal/dashboard"
	"equine-vet-dashboard/internal/domain/horses"
	"equine-vet-dashboard/internal/middleware"
	"equine-vet-dashboard/internal/platform/config"
	"equine-vet-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Config config.Config
	Logger logger.Logger // nil = descarta logs

	// Opcional: si viene, se usa tal cual. Si no, se arma desde Config.
	Manager *dashboard.Manager
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	mgr := opts.Manager
	if mgr == nil {
		mgr = dashboard.NewManagerFromConfig(opts.Config, log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.SessionContext(mgr.Exists))
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Services por módulo
	horsesSvc := horses.NewService(mgr.Horses())

	// Rutas por módulo
	horses.RegisterRoutes(r, horsesSvc)
	dashboard.RegisterRoutes(r, mgr)

	return r
}
