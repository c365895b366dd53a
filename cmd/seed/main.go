package main

import (
	"context"
	"flag"
	"time"

	"github.com/techcare/pro360-api/cmd/bootstrap"
	"github.com/techcare/pro360-api/config"
	"github.com/techcare/pro360-api/internal/repository"
	"github.com/techcare/pro360-api/internal/service"
	"github.com/techcare/pro360-api/internal/usecase"
	"github.com/techcare/pro360-api/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// Seeds the initial admin account and the default service catalog.
func main() {
	skipAdmin := flag.Bool("skip-admin", false, "do not create the admin account")
	skipServices := flag.Bool("skip-services", false, "do not seed the default services")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	bootstrap.SetupLogger(cfg.App.LogLevel)

	db, err := bootstrap.Database(cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logrus.StandardLogger()
	auditService := service.NewAuditService(log, repository.NewAuditLogRepository())

	if !*skipAdmin {
		authUsecase := usecase.NewAuthUsecase(
			db, log,
			repository.NewAdminRepository(),
			jwt.NewJWTService(cfg.JWT),
			service.NewStatelessSessionStore(),
			auditService,
		)

		admin, created, err := authUsecase.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
		if err != nil {
			logrus.Fatalf("Failed to create admin: %v", err)
		}
		if created {
			logrus.WithField("email", admin.Email).Info("Admin user created")
		} else {
			logrus.WithField("email", admin.Email).Info("Admin user already exists")
		}
	}

	if !*skipServices {
		serviceUsecase := usecase.NewServiceUsecase(db, log, repository.NewServiceRepository(), auditService)

		inserted, err := serviceUsecase.SeedDefaultServices(ctx)
		if err != nil {
			logrus.Fatalf("Failed to seed services: %v", err)
		}
		logrus.WithField("inserted", inserted).Info("Services seeded")
	}
}
