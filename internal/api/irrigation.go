package api

import (
	"log/slog"
	"net/http"
	"time"

	"garden-irrigation/internal/automation"
	"garden-irrigation/internal/irrigation"

	"github.com/go-chi/chi/v5"
)

func (a *API) ReceiveSensorData(w http.ResponseWriter, r *http.Request) {
	var req SensorDataRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DeviceID == "" || (req.Moisture == nil && req.RawADCValue == nil) {
		writeError(w, http.StatusBadRequest, "device_id and moisture are required")
		return
	}

	reading := irrigation.Reading{
		DeviceID:    req.DeviceID,
		Moisture:    req.Moisture,
		RawADCValue: req.RawADCValue,
	}
	if req.Timestamp != "" {
		ts, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid timestamp")
			return
		}
		reading.Timestamp = ts
	}

	out, err := a.Irrigation.RecordReading(r.Context(), reading)
	if err != nil && out.Reading.ID == 0 {
		writeFailure(w, r, err)
		return
	}

	resp := SensorDataResponse{
		Status:     "success",
		ReadingID:  out.Reading.ID,
		Moisture:   out.Reading.Moisture,
		ValveState: int(out.State),
		Automation: AutomationResult{
			Action: out.Decision.Action.String(),
			Reason: out.Decision.Reason,
		},
	}
	// The reading is stored; automation trouble is reported, not failed.
	if err != nil {
		slog.ErrorContext(r.Context(), "Automation failed after ingestion", "device_id", req.DeviceID, "error", err)
		resp.Automation.Action = automation.NoAction.String()
		resp.Automation.Error = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetCommand is polled by the device. A command is handed out once.
func (a *API) GetCommand(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	var resp CommandResponse
	if cmd, ok := a.Commands.Take(deviceID); ok {
		wire := cmd.Wire()
		resp.Command = &wire
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) ControlValve(w http.ResponseWriter, r *http.Request) {
	var req ValveControlRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DeviceID == "" || req.State == nil {
		writeError(w, http.StatusBadRequest, "device_id and state are required")
		return
	}
	state, err := automation.ParseValveState(*req.State)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	action, err := a.Irrigation.SetValve(r.Context(), req.DeviceID, state)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success", ID: action.ID})
}

func (a *API) GetValveState(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")
	state, updatedAt, err := a.Irrigation.ValveState(r.Context(), deviceID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ValveStateResponse{DeviceID: deviceID, State: int(state), UpdatedAt: updatedAt})
}

func (a *API) GetMoistureAnalytics(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		writeError(w, http.StatusBadRequest, "device_id is required")
		return
	}
	days, ok := daysParam(r, 1)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid days")
		return
	}

	readings, err := a.DB.LoadReadingsSince(r.Context(), deviceID, a.now().AddDate(0, 0, -days))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

func (a *API) GetValveHistory(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		writeError(w, http.StatusBadRequest, "device_id is required")
		return
	}
	days, ok := daysParam(r, 1)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid days")
		return
	}

	actions, err := a.DB.LoadValveActionsSince(r.Context(), deviceID, a.now().AddDate(0, 0, -days))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, actions)
}

func (a *API) GetAutomationRule(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		writeError(w, http.StatusBadRequest, "device_id is required")
		return
	}
	rule, err := a.Irrigation.GetRule(r.Context(), deviceID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rule)
}

func (a *API) SetAutomationRule(w http.ResponseWriter, r *http.Request) {
	var req AutomationRuleRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DeviceID == "" || req.Enabled == nil || req.LowThreshold == nil || req.HighThreshold == nil {
		writeError(w, http.StatusBadRequest, "device_id, enabled, low_threshold and high_threshold are required")
		return
	}

	err := a.Irrigation.UpdateRule(r.Context(), automation.Rule{
		DeviceID:      req.DeviceID,
		Enabled:       bool(*req.Enabled),
		LowThreshold:  *req.LowThreshold,
		HighThreshold: *req.HighThreshold,
	})
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, StatusResponse{Status: "success"})
}

func (a *API) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := a.DB.ListDevices(r.Context())
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}
