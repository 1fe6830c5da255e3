// Package transport exposes the HTTP API of the upgrade planning service.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MalteHerrmann/proposer/internal/model"
	"github.com/MalteHerrmann/proposer/internal/plan"
	"github.com/MalteHerrmann/proposer/internal/service"
	"go.uber.org/zap"
)

const (
	defaultBlockTimeWindow = 100
	maxBlockTimeWindow     = 1000
)

// PlannerService is the part of the planning service the HTTP API exposes.
type PlannerService interface {
	Network() model.Network
	Schedule(now time.Time) time.Time
	EstimateHeight(ctx context.Context, target time.Time) (uint64, error)
	PlanUpgrade(ctx context.Context, req service.PlanRequest) (*plan.Plan, error)
	BlockTimes(ctx context.Context, window int) (service.BlockTimeStats, error)
}

// Handler serves the upgrade planning API for a set of networks.
type Handler struct {
	planners map[model.Network]PlannerService
	logger   *zap.Logger
}

// NewHandler returns a Handler serving the given planners, keyed by network.
func NewHandler(planners []PlannerService, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	byNetwork := make(map[model.Network]PlannerService, len(planners))
	for _, p := range planners {
		byNetwork[p.Network()] = p
	}

	return &Handler{planners: byNetwork, logger: logger}
}

// Register wires the API routes into mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleHealth)
	mux.HandleFunc("GET /v1/networks", h.handleNetworks)
	mux.HandleFunc("GET /v1/schedule", h.handleSchedule)
	mux.HandleFunc("GET /v1/height", h.handleHeight)
	mux.HandleFunc("GET /v1/plan", h.handlePlan)
	mux.HandleFunc("GET /v1/blocktime", h.handleBlockTimes)
}

type networkInfo struct {
	Name              string `json:"name"`
	DisplayName       string `json:"display_name"`
	ChainID           string `json:"chain_id"`
	Denom             string `json:"denom"`
	VotingPeriodHours int64  `json:"voting_period_hours"`
	RPCURL            string `json:"rpc_url"`
	RestURL           string `json:"rest_url"`
}

type scheduleResponse struct {
	Network     model.Network `json:"network"`
	UpgradeTime time.Time     `json:"upgrade_time"`
}

type heightResponse struct {
	Network         model.Network `json:"network"`
	TargetTime      time.Time     `json:"target_time"`
	EstimatedHeight uint64        `json:"estimated_height"`
}

type blockTimeResponse struct {
	Network model.Network `json:"network"`
	service.BlockTimeStats
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleNetworks(w http.ResponseWriter, _ *http.Request) {
	infos := make([]networkInfo, 0, len(h.planners))
	for _, network := range []model.Network{model.LocalNode, model.Testnet, model.Mainnet} {
		if _, ok := h.planners[network]; !ok {
			continue
		}

		profile, err := model.ProfileFor(network)
		if err != nil {
			continue
		}

		infos = append(infos, networkInfo{
			Name:              string(network),
			DisplayName:       network.String(),
			ChainID:           profile.ChainID,
			Denom:             profile.Denom,
			VotingPeriodHours: int64(profile.VotingPeriod.Hours()),
			RPCURL:            profile.RPCURL,
			RestURL:           profile.RestURL,
		})
	}

	h.writeJSON(w, http.StatusOK, infos)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	planner, ok := h.plannerFor(w, r)
	if !ok {
		return
	}

	now := time.Now().UTC()
	if raw := r.URL.Query().Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid now %q: %v", raw, err))
			return
		}
		now = parsed
	}

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Network:     planner.Network(),
		UpgradeTime: planner.Schedule(now),
	})
}

func (h *Handler) handleHeight(w http.ResponseWriter, r *http.Request) {
	planner, ok := h.plannerFor(w, r)
	if !ok {
		return
	}

	raw := r.URL.Query().Get("time")
	if raw == "" {
		h.writeError(w, http.StatusBadRequest, "time query parameter is required")
		return
	}

	target, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid time %q: %v", raw, err))
		return
	}

	height, err := planner.EstimateHeight(r.Context(), target)
	if err != nil {
		h.logger.Error("estimate height", zap.String("network", string(planner.Network())), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, heightResponse{
		Network:         planner.Network(),
		TargetTime:      target.UTC(),
		EstimatedHeight: height,
	})
}

func (h *Handler) handlePlan(w http.ResponseWriter, r *http.Request) {
	planner, ok := h.plannerFor(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	req := service.PlanRequest{
		PreviousVersion: query.Get("previous"),
		TargetVersion:   query.Get("target"),
		Summary:         query.Get("summary"),
		Home:            query.Get("home"),
	}
	if req.PreviousVersion == "" || req.TargetVersion == "" {
		h.writeError(w, http.StatusBadRequest, "previous and target query parameters are required")
		return
	}

	if raw := query.Get("time"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid time %q: %v", raw, err))
			return
		}
		req.UpgradeTime = parsed
	}

	if raw := query.Get("now"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid now %q: %v", raw, err))
			return
		}
		req.Now = parsed
	}

	upgradePlan, err := planner.PlanUpgrade(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPlanRequest) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("plan upgrade", zap.String("network", string(planner.Network())), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, upgradePlan)
}

func (h *Handler) handleBlockTimes(w http.ResponseWriter, r *http.Request) {
	planner, ok := h.plannerFor(w, r)
	if !ok {
		return
	}

	window := defaultBlockTimeWindow
	if raw := r.URL.Query().Get("window"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid window %q", raw))
			return
		}
		window = parsed
	}
	if window > maxBlockTimeWindow {
		h.writeError(w, http.StatusBadRequest, fmt.Sprintf("window must not exceed %d blocks", maxBlockTimeWindow))
		return
	}

	stats, err := planner.BlockTimes(r.Context(), window)
	if err != nil {
		h.logger.Error("block times", zap.String("network", string(planner.Network())), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, blockTimeResponse{
		Network:        planner.Network(),
		BlockTimeStats: stats,
	})
}

// plannerFor resolves the network query parameter to a registered planner,
// writing an error response when it cannot.
func (h *Handler) plannerFor(w http.ResponseWriter, r *http.Request) (PlannerService, bool) {
	network, err := model.ParseNetwork(r.URL.Query().Get("network"))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	planner, ok := h.planners[network]
	if !ok {
		h.writeError(w, http.StatusNotFound, fmt.Sprintf("no planner configured for network %s", network))
		return nil, false
	}

	return planner, true
}

// writeJSON encodes v as JSON and writes it to w.
func (h *Handler) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

// writeError writes a JSON error response.
func (h *Handler) writeError(w http.ResponseWriter, code int, msg string) {
	h.writeJSON(w, code, map[string]string{"error": msg})
}
