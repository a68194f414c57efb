package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"garden-irrigation/internal/automation"
	"garden-irrigation/internal/commands"
	"garden-irrigation/internal/db"
	"garden-irrigation/internal/garden"
	"garden-irrigation/internal/irrigation"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type controller interface {
	RecordReading(ctx context.Context, r irrigation.Reading) (irrigation.Outcome, error)
	SetValve(ctx context.Context, deviceID string, state automation.ValveState) (db.ValveAction, error)
	ValveState(ctx context.Context, deviceID string) (automation.ValveState, *time.Time, error)
	GetRule(ctx context.Context, deviceID string) (automation.Rule, error)
	UpdateRule(ctx context.Context, rule automation.Rule) error
}

type commandQueue interface {
	Take(deviceID string) (commands.Command, bool)
}

type repository interface {
	LoadReadingsSince(ctx context.Context, deviceID string, since time.Time) ([]db.MoistureReading, error)
	LoadValveActionsSince(ctx context.Context, deviceID string, since time.Time) ([]db.ValveAction, error)
	ListDevices(ctx context.Context) ([]db.DeviceSummary, error)

	CreateZone(ctx context.Context, z db.Zone) (db.Zone, error)
	ListZones(ctx context.Context) ([]db.Zone, error)
	GetZone(ctx context.Context, id int64) (db.Zone, error)
	UpdateZone(ctx context.Context, z db.Zone) (db.Zone, error)
	DeleteZone(ctx context.Context, id int64) error

	CreatePlant(ctx context.Context, p db.Plant) (db.Plant, error)
	ListPlants(ctx context.Context, zoneID int64) ([]db.Plant, error)
	GetPlant(ctx context.Context, id int64) (db.Plant, error)
	DeletePlant(ctx context.Context, id int64) error

	CreateMeasurement(ctx context.Context, m db.PlantMeasurement) (db.PlantMeasurement, error)
	LoadMeasurementsSince(ctx context.Context, plantID int64, since time.Time) ([]db.PlantMeasurement, error)
}

type API struct {
	DB             repository
	Irrigation     controller
	Commands       commandQueue
	allowedOrigins []string
	now            func() time.Time
}

type Config struct {
	DB             repository
	Irrigation     controller
	Commands       commandQueue
	AllowedOrigins []string
	Now            func() time.Time
}

func New(cfg Config) *API {
	a := &API{
		DB:             cfg.DB,
		Irrigation:     cfg.Irrigation,
		Commands:       cfg.Commands,
		allowedOrigins: cfg.AllowedOrigins,
		now:            cfg.Now,
	}
	if a.now == nil {
		a.now = time.Now
	}
	if len(a.allowedOrigins) == 0 {
		a.allowedOrigins = []string{"*"}
	}
	return a
}

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: a.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", a.Health)

	r.Route("/api", func(r chi.Router) {
		r.Post("/sensor-data", a.ReceiveSensorData)
		r.Get("/commands/{device_id}", a.GetCommand)
		r.Post("/valve/control", a.ControlValve)
		r.Get("/valve/{device_id}", a.GetValveState)

		r.Get("/analytics/moisture", a.GetMoistureAnalytics)
		r.Get("/analytics/valve", a.GetValveHistory)

		r.Get("/automation", a.GetAutomationRule)
		r.Post("/automation", a.SetAutomationRule)

		r.Get("/devices", a.ListDevices)

		r.Get("/zones", a.ListZones)
		r.Post("/zones", a.CreateZone)
		r.Get("/zones/{zone_id}", a.GetZone)
		r.Put("/zones/{zone_id}", a.UpdateZone)
		r.Delete("/zones/{zone_id}", a.DeleteZone)
		r.Get("/zones/{zone_id}/plants", a.ListPlants)
		r.Post("/zones/{zone_id}/plants", a.CreatePlant)

		r.Get("/plants/{plant_id}", a.GetPlant)
		r.Delete("/plants/{plant_id}", a.DeletePlant)
		r.Get("/plants/{plant_id}/measurements", a.ListMeasurements)
		r.Post("/plants/{plant_id}/measurements", a.CreateMeasurement)
	})
	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeFailure maps service and storage errors onto HTTP statuses.
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, automation.ErrInvalidRule),
		errors.Is(err, automation.ErrInvalidState),
		errors.Is(err, irrigation.ErrInvalidReading),
		errors.Is(err, irrigation.ErrInvalidRequest),
		errors.Is(err, garden.ErrInvalidMeasurement):
		status = http.StatusBadRequest
	case errors.Is(err, db.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, db.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, irrigation.ErrDeviceUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, status, err.Error())
}

func decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// daysParam reads the look-back window in days, falling back to def.
func daysParam(r *http.Request, def int) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return def, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		return 0, false
	}
	return days, true
}

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
