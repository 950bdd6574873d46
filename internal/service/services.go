package service

import (
	"github.com/vitalog/vitalog/internal/config"
	"github.com/vitalog/vitalog/internal/logger"
	"github.com/vitalog/vitalog/internal/store"
)

type Services struct {
	AuthService        AuthService
	SessionService     SessionService
	AuthzService       AuthzService
	AdminService       AdminService
	MeasurementService MeasurementService
	WaterService       WaterService
	FastService        FastService
}

func NewServices(storages *store.Storages, cfg config.Auth, logger *logger.Logger) *Services {
	sessionService := NewSessionService(storages.Sessions, storages.Users, cfg, logger)

	return &Services{
		AuthService:        NewAuthService(storages.Users, storages.Sessions, cfg, logger),
		SessionService:     sessionService,
		AuthzService:       NewAuthzService(storages.Users, logger),
		AdminService:       NewAdminService(storages.Users, storages.Sessions, logger),
		MeasurementService: NewMeasurementService(storages.Measurements, logger),
		WaterService:       NewWaterService(storages.Water, logger),
		FastService:        NewFastService(storages.Fasts, logger),
	}
}
