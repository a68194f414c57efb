package api

import (
	"net/http"
	"strings"
	"time"

	"garden-irrigation/internal/db"
	"garden-irrigation/internal/garden"
)

func (z ZoneRequest) toZone(id int64) (db.Zone, bool) {
	name := strings.TrimSpace(z.Name)
	if name == "" {
		return db.Zone{}, false
	}
	return db.Zone{ID: id, Name: name, DeviceID: z.DeviceID, Description: z.Description}, true
}

func (a *API) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := a.DB.ListZones(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, zones)
}

func (a *API) CreateZone(w http.ResponseWriter, r *http.Request) {
	var req ZoneRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	zone, ok := req.toZone(0)
	if !ok {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := a.DB.CreateZone(r.Context(), zone)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) GetZone(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "zone_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	zone, err := a.DB.GetZone(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, zone)
}

func (a *API) UpdateZone(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "zone_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	var req ZoneRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	zone, ok := req.toZone(id)
	if !ok {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	updated, err := a.DB.UpdateZone(r.Context(), zone)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) DeleteZone(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "zone_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	if err := a.DB.DeleteZone(r.Context(), id); err != nil {
		writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) ListPlants(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := idParam(r, "zone_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	if _, err := a.DB.GetZone(r.Context(), zoneID); err != nil {
		writeFailure(w, r, err)
		return
	}
	plants, err := a.DB.ListPlants(r.Context(), zoneID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plants)
}

func (a *API) CreatePlant(w http.ResponseWriter, r *http.Request) {
	zoneID, ok := idParam(r, "zone_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid zone id")
		return
	}
	var req PlantRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	plant := db.Plant{ZoneID: zoneID, Name: strings.TrimSpace(req.Name), Species: req.Species}
	if plant.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.PlantedOn != "" {
		day, err := time.Parse(time.DateOnly, req.PlantedOn)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid planted_on, expected YYYY-MM-DD")
			return
		}
		plant.PlantedOn = &day
	}

	created, err := a.DB.CreatePlant(r.Context(), plant)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) GetPlant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "plant_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	plant, err := a.DB.GetPlant(r.Context(), id)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, plant)
}

func (a *API) DeletePlant(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "plant_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	if err := a.DB.DeletePlant(r.Context(), id); err != nil {
		writeFailure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) ListMeasurements(w http.ResponseWriter, r *http.Request) {
	plantID, ok := idParam(r, "plant_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	days, ok := daysParam(r, 30)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid days")
		return
	}
	if _, err := a.DB.GetPlant(r.Context(), plantID); err != nil {
		writeFailure(w, r, err)
		return
	}
	measurements, err := a.DB.LoadMeasurementsSince(r.Context(), plantID, a.now().AddDate(0, 0, -days))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, measurements)
}

func (a *API) CreateMeasurement(w http.ResponseWriter, r *http.Request) {
	plantID, ok := idParam(r, "plant_id")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid plant id")
		return
	}
	var req MeasurementRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	metrics := garden.Metrics{
		Height:        req.Height,
		LeafCount:     req.LeafCount,
		StemThickness: req.StemThickness,
		CanopyWidth:   req.CanopyWidth,
		LeafColor:     req.LeafColor,
		LeafFirmness:  req.LeafFirmness,
		PH:            req.PHReading,
	}
	if err := metrics.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	m := db.PlantMeasurement{
		PlantID:       plantID,
		Height:        req.Height,
		LeafCount:     req.LeafCount,
		StemThickness: req.StemThickness,
		CanopyWidth:   req.CanopyWidth,
		LeafColor:     req.LeafColor,
		LeafFirmness:  req.LeafFirmness,
		HealthScore:   req.HealthScore,
		Notes:         req.Notes,
		Fertilized:    req.Fertilized,
		Pruned:        req.Pruned,
		PHReading:     req.PHReading,
	}
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timestamp")
			return
		}
		m.Timestamp = ts
	}
	if m.HealthScore != nil {
		if *m.HealthScore < 0 || *m.HealthScore > 100 {
			writeError(w, http.StatusBadRequest, "health_score must be between 0 and 100")
			return
		}
	} else if score, ok := garden.HealthScore(metrics); ok {
		m.HealthScore = &score
	}

	created, err := a.DB.CreateMeasurement(r.Context(), m)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
