package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"dronekids/groundcontrol/internal/auth"
	"dronekids/groundcontrol/internal/models/dtos"

	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	deps *Dependencies
}

// NewHandlers creates a new handlers instance with injected dependencies
func NewHandlers(deps *Dependencies) *Handlers {
	return &Handlers{
		deps: deps,
	}
}

// IngestTelemetry accepts one position sample and returns its
// classification. Every sample gets a status+message pair back, including
// rejected ones; only storage failures surface as 500s.
func (h *Handlers) IngestTelemetry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.TelemetryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		eval, err := h.deps.Services.Telemetry.Evaluate(r.Context(), &req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &dtos.TelemetryResponse{
			Status:  string(eval.Status),
			Message: eval.Message,
		})
	}
}

// SaveReferencePath bulk-loads a mission flight corridor.
func (h *Handlers) SaveReferencePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var points []dtos.WaypointInput
		if err := json.NewDecoder(r.Body).Decode(&points); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		saved, err := h.deps.Services.Paths.SavePath(r.Context(), points)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		var missionID int64
		if len(points) > 0 {
			missionID = points[0].MissionID
		}
		respondWithSuccess(w, http.StatusCreated, &dtos.PathSaveResponse{
			MissionID: missionID,
			Saved:     saved,
		})
	}
}

// GetReferencePath returns the stored corridor for a mission.
func (h *Handlers) GetReferencePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := missionIDParam(w, r)
		if !ok {
			return
		}

		waypoints, err := h.deps.Services.Paths.GetPath(r.Context(), missionID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, &waypoints)
	}
}

// CompleteMission records a finished run for the authenticated user.
func (h *Handlers) CompleteMission() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		missionID, ok := missionIDParam(w, r)
		if !ok {
			return
		}

		var req dtos.MissionCompleteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		resp, err := h.deps.Services.Completion.Complete(r.Context(), claims.UserID(), missionID, &req)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		respondWithSuccess(w, http.StatusOK, resp)
	}
}

// GetMissionDeviations lists a mission's flagged samples for the debrief
// screen.
func (h *Handlers) GetMissionDeviations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		missionID, ok := missionIDParam(w, r)
		if !ok {
			return
		}

		records, err := h.deps.Repo.Deviations.ListByMission(r.Context(), missionID)
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		entries := make([]dtos.DeviationEntry, len(records))
		for i, rec := range records {
			entries[i] = dtos.DeviationEntry{
				ID:         rec.ID,
				DroneID:    rec.DroneID,
				X:          rec.X,
				Y:          rec.Y,
				Z:          rec.Z,
				RotationY:  rec.RotationY,
				RecordedAt: rec.RecordedAt,
			}
		}

		respondWithSuccess(w, http.StatusOK, &dtos.MissionDeviationsResponse{
			MissionID:  missionID,
			Count:      int64(len(entries)),
			Deviations: entries,
		})
	}
}

// GetMyResults returns the authenticated user's completion history,
// newest first.
func (h *Handlers) GetMyResults() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			respondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		results, err := h.deps.Repo.Results.ListByUser(r.Context(), claims.UserID())
		if err != nil {
			respondWithServiceError(w, err)
			return
		}

		entries := make([]dtos.ResultHistoryEntry, len(results))
		for i, res := range results {
			entries[i] = dtos.ResultHistoryEntry{
				MissionID:      res.MissionID,
				DroneID:        res.DroneID,
				Score:          res.Score,
				Success:        res.Success,
				TotalTime:      res.TotalTime,
				DeviationCount: res.DeviationCount,
				CollisionCount: res.CollisionCount,
				CompletedAt:    res.CompletedAt,
			}
		}

		respondWithSuccess(w, http.StatusOK, &dtos.ResultHistoryResponse{
			UserID:  claims.UserID(),
			Results: entries,
		})
	}
}

func missionIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "missionID")
	missionID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || missionID <= 0 {
		respondWithError(w, http.StatusBadRequest, "missionID must be a positive integer")
		return 0, false
	}
	return missionID, true
}
