package app

import (
	"context"
	"net/http"

	"caregiver-app-go/internal/config"
	"caregiver-app-go/internal/db"
	appointmentdomain "caregiver-app-go/internal/domain/appointment"
	caregiverdomain "caregiver-app-go/internal/domain/caregiver"
	jobdomain "caregiver-app-go/internal/domain/job"
	memberdomain "caregiver-app-go/internal/domain/member"
	userdomain "caregiver-app-go/internal/domain/user"
	appointmentrepo "caregiver-app-go/internal/repository/appointment"
	caregiverrepo "caregiver-app-go/internal/repository/caregiver"
	jobrepo "caregiver-app-go/internal/repository/job"
	memberrepo "caregiver-app-go/internal/repository/member"
	userrepo "caregiver-app-go/internal/repository/user"
	"caregiver-app-go/internal/transport/httpserver"
	"caregiver-app-go/internal/transport/httpserver/handler"
	"caregiver-app-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	// The API stays up without a reachable database so that health and
	// welcome endpoints keep responding. Entity requests will surface the
	// connection failure on first use.
	if err := db.Probe(ctx, dbConn, log); err != nil {
		log.Warn("app: database unreachable, skipping migration", "err", err)
	} else if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	users := userdomain.NewService(userrepo.NewPostgres(dbConn))
	caregivers := caregiverdomain.NewService(caregiverrepo.NewPostgres(dbConn))
	members := memberdomain.NewService(memberrepo.NewPostgres(dbConn))
	jobs := jobdomain.NewService(jobrepo.NewPostgres(dbConn))
	appointments := appointmentdomain.NewService(appointmentrepo.NewPostgres(dbConn))

	log.Info("app: initializing router")
	handlers := handler.New(users, caregivers, members, jobs, appointments, log)
	router := httpserver.NewRouter(handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
