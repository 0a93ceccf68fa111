package httptransport

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"vehicleinfo/internal/lookup"
	"vehicleinfo/internal/lookup/models"
	"vehicleinfo/internal/lookup/orchestrator"
	"vehicleinfo/internal/platform/middleware"
	"vehicleinfo/internal/report"
	dErrors "vehicleinfo/pkg/domain-errors"
	"vehicleinfo/pkg/platform/httputil"
	"vehicleinfo/pkg/requestcontext"
)

// Service defines the lookup operations the handlers need.
type Service interface {
	ResolveVehicle(ctx context.Context, raw string) (lookup.VehicleResolution, error)
	ResolveChallans(ctx context.Context, raw string) (lookup.ChallanResolution, error)
}

// Handler serves the lookup API.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the lookup endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/vehicles/{plate}", h.handleVehicle)
		r.Get("/challans/{plate}", h.handleChallans)
		r.Get("/reports/{plate}", h.handleReport)
	})
}

// Provenance tells the client where an answer came from.
type Provenance struct {
	LookupID  string                 `json:"lookup_id"`
	Plate     string                 `json:"plate"`
	Source    string                 `json:"source"`
	Tier      string                 `json:"tier"`
	Synthetic bool                   `json:"synthetic"`
	Attempts  []orchestrator.Attempt `json:"attempts"`
}

type VehicleResponse struct {
	Provenance
	Vehicle models.VehicleRecord `json:"vehicle"`
}

type ChallansResponse struct {
	Provenance
	Count    int                    `json:"count"`
	Challans []models.ChallanRecord `json:"challans"`
}

func provenance[T any](res orchestrator.Resolution[T]) Provenance {
	return Provenance{
		LookupID:  res.LookupID,
		Plate:     res.Plate.String(),
		Source:    res.Source,
		Tier:      string(res.Tier),
		Synthetic: res.Synthetic,
		Attempts:  res.Attempts,
	}
}

func (h *Handler) handleVehicle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	raw, ok := plateParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.ResolveVehicle(ctx, raw)
	if err != nil {
		h.fail(ctx, w, "vehicle lookup failed", raw, err)
		return
	}

	h.logger.InfoContext(ctx, "vehicle resolved",
		"request_id", middleware.GetRequestID(ctx),
		"lookup_id", res.LookupID,
		"plate", res.Plate.String(),
		"source", res.Source,
		"synthetic", res.Synthetic,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, VehicleResponse{Provenance: provenance(res), Vehicle: res.Record})
}

func (h *Handler) handleChallans(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	raw, ok := plateParam(w, r)
	if !ok {
		return
	}

	res, err := h.service.ResolveChallans(ctx, raw)
	if err != nil {
		h.fail(ctx, w, "challan lookup failed", raw, err)
		return
	}

	h.logger.InfoContext(ctx, "challans resolved",
		"request_id", middleware.GetRequestID(ctx),
		"lookup_id", res.LookupID,
		"plate", res.Plate.String(),
		"source", res.Source,
		"count", len(res.Record),
		"synthetic", res.Synthetic,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, ChallansResponse{
		Provenance: provenance(res),
		Count:      len(res.Record),
		Challans:   res.Record,
	})
}

// handleReport renders GET /v1/reports/{plate}?format=text|csv|json|pdf&include=vehicle,challans
// as a downloadable file. Both sections are included by default.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	raw, ok := plateParam(w, r)
	if !ok {
		return
	}

	format := report.FormatJSON
	if f := r.URL.Query().Get("format"); f != "" {
		parsed, err := report.ParseFormat(f)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "format must be one of text, csv, json, pdf"))
			return
		}
		format = parsed
	}
	withVehicle, withChallans, err := parseInclude(r.URL.Query().Get("include"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rep := report.Report{GeneratedOn: requestcontext.Now(ctx)}
	if withVehicle {
		res, err := h.service.ResolveVehicle(ctx, raw)
		if err != nil {
			h.fail(ctx, w, "vehicle lookup failed", raw, err)
			return
		}
		rep.Vehicle = &res.Record
	}
	if withChallans {
		res, err := h.service.ResolveChallans(ctx, raw)
		if err != nil {
			h.fail(ctx, w, "challan lookup failed", raw, err)
			return
		}
		rep.Challans = res.Record
	}

	var buf bytes.Buffer
	if err := report.Write(&buf, format, rep); err != nil {
		h.fail(ctx, w, "report rendering failed", raw, dErrors.Wrap(err, dErrors.CodeInternal, "report rendering failed"))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(rep, format)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// plateParam checks the {plate} segment before any source is queried.
func plateParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "plate")
	if _, err := models.ParsePlate(raw); err != nil {
		httputil.WriteError(w, dErrors.Wrap(err, dErrors.CodeInvalidInput,
			"registration number must be 6 to 12 letters or digits"))
		return "", false
	}
	return raw, true
}

func parseInclude(raw string) (vehicle, challans bool, err error) {
	if strings.TrimSpace(raw) == "" {
		return true, true, nil
	}
	for _, part := range strings.Split(raw, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "vehicle":
			vehicle = true
		case "challan", "challans":
			challans = true
		default:
			return false, false, dErrors.New(dErrors.CodeBadRequest, "include must list vehicle and/or challans")
		}
	}
	return vehicle, challans, nil
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg, raw string, err error) {
	level := slog.LevelWarn
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		level = slog.LevelError
	}
	h.logger.Log(ctx, level, msg,
		"request_id", middleware.GetRequestID(ctx),
		"plate", raw,
		"error", err,
	)
	httputil.WriteError(w, err)
}
