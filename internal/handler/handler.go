package handler

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"settlement-engine/internal/engine"
	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

const (
	pathCalculate = "/api/calculate"
	pathEstimate  = "/api/estimate"
	pathSchedule  = "/api/schedule"
	pathHealth    = "/healthz"
)

type Handler struct {
	schedule *schedule.Schedule
	log      *logrus.Logger
	limiter  *Limiter

	decode    func([]byte) (*model.CaseInput, error)
	calculate func(*model.CaseInput, *schedule.Schedule) *model.SettlementResult
	estimate  func(*model.CaseInput, *schedule.Schedule) *model.EstimateResult
}

// New builds the HTTP boundary around the engine. A nil limiter disables rate
// limiting.
func New(s *schedule.Schedule, log *logrus.Logger, limiter *Limiter) *Handler {
	if s == nil {
		s = schedule.Default()
	}
	return &Handler{
		schedule:  s,
		log:       log,
		limiter:   limiter,
		decode:    model.DecodeCase,
		calculate: engine.Calculate,
		estimate:  engine.EstimateMedicalCosts,
	}
}

func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	start := time.Now()
	setCORS(ctx)

	if ctx.IsOptions() {
		ctx.SetStatusCode(fasthttp.StatusNoContent)
		return
	}

	if h.limiter != nil && !h.limiter.Allow(ctx.RemoteIP().String()) {
		ctx.Response.Header.Set("Retry-After", "1")
		writeError(ctx, fasthttp.StatusTooManyRequests, "too many requests")
		h.logRequest(ctx, start, "")
		return
	}

	var id string
	switch string(ctx.Path()) {
	case pathCalculate:
		id = h.handleCase(ctx, func(in *model.CaseInput) any {
			return h.calculate(in, h.schedule)
		})
	case pathEstimate:
		id = h.handleCase(ctx, func(in *model.CaseInput) any {
			return h.estimate(in, h.schedule)
		})
	case pathSchedule:
		if !ctx.IsGet() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
			break
		}
		writeJSON(ctx, fasthttp.StatusOK, h.schedule)
	case pathHealth:
		ctx.SetContentType("text/plain; charset=utf-8")
		ctx.SetBodyString("ok")
	default:
		writeError(ctx, fasthttp.StatusNotFound, "not found")
	}

	h.logRequest(ctx, start, id)
}

// handleCase decodes a case body and runs fn on it. Panics while decoding or
// inside fn surface as a generic 500; the detail only reaches the log.
func (h *Handler) handleCase(ctx *fasthttp.RequestCtx, fn func(*model.CaseInput) any) (id string) {
	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
		return ""
	}

	id = uuid.NewString()
	ctx.Response.Header.Set("X-Calculation-ID", id)

	defer func() {
		if r := recover(); r != nil {
			h.log.WithFields(logrus.Fields{
				"calculation_id": id,
				"panic":          fmt.Sprint(r),
			}).Error("settlement calculation failed")
			ctx.Response.ResetBody()
			writeError(ctx, fasthttp.StatusInternalServerError, "internal server error")
		}
	}()

	in, err := h.decode(ctx.PostBody())
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"calculation_id": id,
			"error":          err,
		}).Warn("rejected case payload")
		writeError(ctx, fasthttp.StatusBadRequest, model.ErrInvalidInput.Error())
		return id
	}

	writeJSON(ctx, fasthttp.StatusOK, fn(in))
	return id
}

func (h *Handler) logRequest(ctx *fasthttp.RequestCtx, start time.Time, id string) {
	entry := h.log.WithFields(logrus.Fields{
		"method":   string(ctx.Method()),
		"path":     string(ctx.Path()),
		"status":   ctx.Response.StatusCode(),
		"duration": time.Since(start).String(),
	})
	if id != "" {
		entry = entry.WithField("calculation_id", id)
	}
	entry.Debug("request handled")
}

func setCORS(ctx *fasthttp.RequestCtx) {
	ctx.Response.Header.Set("Access-Control-Allow-Origin", "*")
	ctx.Response.Header.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Response.Header.Set("Access-Control-Allow-Headers", "Content-Type")
	ctx.Response.Header.Set("Access-Control-Expose-Headers", "X-Calculation-ID")
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "internal server error")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{
		Status:  status,
		Message: message,
	})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
