package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/takarabako/loto/internal/entropy"
	"github.com/takarabako/loto/internal/events"
	"github.com/takarabako/loto/internal/game"
	"github.com/takarabako/loto/internal/oracle"
	"github.com/takarabako/loto/internal/ticket"
)

type TicketsHandler struct {
	gen          *ticket.Generator
	events       events.Client
	entropy      entropy.Provider
	maxBatchSize int
	defaultGame  string
	logger       *slog.Logger
}

func NewTicketsHandler(g *ticket.Generator, ev events.Client, prov entropy.Provider, defaultGame string, maxBatchSize int, logger *slog.Logger) *TicketsHandler {
	return &TicketsHandler{
		gen:          g,
		events:       ev,
		entropy:      prov,
		maxBatchSize: maxBatchSize,
		defaultGame:  defaultGame,
		logger:       logger,
	}
}

type CreateTicketsRequest struct {
	Game string `json:"game,omitempty"`
	Mode string `json:"mode,omitempty"`
	N    int    `json:"n,omitempty"`

	// Oracle facts, all optional
	BirthDate string `json:"birth_date,omitempty"` // YYYY-MM-DD
	BloodType string `json:"blood_type,omitempty"`
	AuraColor string `json:"aura_color,omitempty"`
}

type TicketResponse struct {
	ID      uuid.UUID `json:"id"`
	Numbers []int     `json:"numbers"`
}

type CreateTicketsResponse struct {
	DrawID  uuid.UUID           `json:"draw_id"`
	Game    string              `json:"game"`
	Mode    string              `json:"mode"`
	Tickets []TicketResponse    `json:"tickets"`
	Trace   []oracle.RuleResult `json:"trace,omitempty"`
}

// Create handles POST /api/v1/tickets. Every valid request produces a full
// batch; degenerate weights inside the pipeline degrade silently to uniform
// draws and are only visible in the fallback counter.
func (h *TicketsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Game == "" {
		req.Game = h.defaultGame
	}
	variant, err := game.FromName(req.Game)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	mode, err := ticket.ParseMode(req.Mode)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.N == 0 {
		req.N = 1
	}
	if req.N < 1 || req.N > h.maxBatchSize {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "n out of range"})
		return
	}

	genReq := ticket.Request{Variant: variant, Mode: mode, N: req.N}
	if mode == ticket.ModeOracle {
		facts, err := h.buildFacts(variant, req)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		genReq.Facts = facts
	}

	batch, err := h.gen.Generate(genReq)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	ticketsGenerated.WithLabelValues(variant.Name, string(mode)).Add(float64(len(batch.Tickets)))
	if batch.FellBack {
		uniformFallbacks.Inc()
	}

	resp := CreateTicketsResponse{
		DrawID:  uuid.New(),
		Game:    variant.Name,
		Mode:    string(mode),
		Tickets: make([]TicketResponse, 0, len(batch.Tickets)),
		Trace:   batch.Trace,
	}
	for _, nums := range batch.Tickets {
		resp.Tickets = append(resp.Tickets, TicketResponse{ID: uuid.New(), Numbers: nums})
	}

	if h.events != nil {
		var fired []string
		for _, tr := range batch.Trace {
			if tr.Fired {
				fired = append(fired, tr.Rule)
			}
		}
		evt := events.DrawCompletedEvent{
			DrawID:     resp.DrawID.String(),
			Game:       variant.Name,
			Mode:       string(mode),
			Tickets:    batch.Tickets,
			FiredRules: fired,
			At:         time.Now().UTC(),
		}
		if err := h.events.Publish(events.SubjectDrawCompleted(evt.DrawID), evt); err != nil {
			h.logger.Warn("failed to publish draw event", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *TicketsHandler) buildFacts(variant game.Variant, req CreateTicketsRequest) (oracle.Facts, error) {
	var birth *time.Time
	if req.BirthDate != "" {
		d, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return oracle.Facts{}, err
		}
		birth = &d
	}
	var blood *oracle.BloodType
	if req.BloodType != "" {
		b, err := oracle.ParseBloodType(req.BloodType)
		if err != nil {
			return oracle.Facts{}, err
		}
		blood = &b
	}
	var aura *oracle.AuraColor
	if req.AuraColor != "" {
		a, err := oracle.ParseAuraColor(req.AuraColor)
		if err != nil {
			return oracle.Facts{}, err
		}
		aura = &a
	}

	reading, err := h.entropy.Gather()
	if err != nil {
		return oracle.Facts{}, err
	}
	return oracle.NewFacts(variant, time.Now(), birth, blood, aura, reading), nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
