package handler

import (
	"io"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"settlement-engine/internal/model"
	"settlement-engine/internal/schedule"
)

const softTissueCase = `{
  "accidentDetails": {"impactSeverity": "moderate", "faultPercentage": "0"},
  "treatment": {
    "emergencyRoomVisits": 2,
    "chiropracticSessions": "10",
    "totalMedicalCosts": 8000
  }
}`

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestHandler(limiter *Limiter) *Handler {
	return New(nil, quietLogger(), limiter)
}

func do(h *Handler, method, path, body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != "" {
		ctx.Request.Header.SetContentType("application/json")
		ctx.Request.SetBodyString(body)
	}
	h.Handle(ctx)
	return ctx
}

func decodeError(t *testing.T, ctx *fasthttp.RequestCtx) model.ErrorResponse {
	t.Helper()
	var out model.ErrorResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &out))
	return out
}

func TestCalculate(t *testing.T) {
	ctx := do(newTestHandler(nil), fasthttp.MethodPost, "/api/calculate", softTissueCase)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "application/json", string(ctx.Response.Header.ContentType()))
	assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))

	_, err := uuid.Parse(string(ctx.Response.Header.Peek("X-Calculation-ID")))
	assert.NoError(t, err)

	var res model.SettlementResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &res))
	assert.Equal(t, int64(13000), res.HighEstimate)
	assert.Equal(t, int64(11050), res.MidEstimate)
	assert.Equal(t, int64(9100), res.LowEstimate)
	assert.Equal(t, int64(8000), res.MedicalCosts)
	assert.NotEmpty(t, res.Explanation)
}

func TestCalculateEmptyObject(t *testing.T) {
	ctx := do(newTestHandler(nil), fasthttp.MethodPost, "/api/calculate", `{}`)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var res model.SettlementResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &res))
	assert.Equal(t, int64(500), res.HighEstimate)
}

func TestCalculateRejectsBadPayloads(t *testing.T) {
	for name, body := range map[string]string{
		"array":     `[1, 2]`,
		"string":    `"case"`,
		"truncated": `{"treatment": {`,
		"empty":     ``,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := do(newTestHandler(nil), fasthttp.MethodPost, "/api/calculate", body)

			assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
			assert.Equal(t, model.ErrorResponse{Status: 400, Message: "invalid request data"}, decodeError(t, ctx))
			assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
		})
	}
}

func TestCalculatePanicBecomesServerError(t *testing.T) {
	h := newTestHandler(nil)
	h.calculate = func(*model.CaseInput, *schedule.Schedule) *model.SettlementResult {
		panic("boom")
	}

	ctx := do(h, fasthttp.MethodPost, "/api/calculate", `{}`)

	assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode())
	assert.Equal(t, model.ErrorResponse{Status: 500, Message: "internal server error"}, decodeError(t, ctx))
}

func TestDecodePanicBecomesServerError(t *testing.T) {
	h := newTestHandler(nil)
	h.decode = func([]byte) (*model.CaseInput, error) {
		panic("decoder blew up")
	}

	for _, path := range []string{"/api/calculate", "/api/estimate"} {
		ctx := do(h, fasthttp.MethodPost, path, `{}`)

		assert.Equal(t, fasthttp.StatusInternalServerError, ctx.Response.StatusCode(), path)
		assert.Equal(t, model.ErrorResponse{Status: 500, Message: "internal server error"}, decodeError(t, ctx))
		assert.NotEmpty(t, ctx.Response.Header.Peek("X-Calculation-ID"))
	}
}

func TestEstimate(t *testing.T) {
	body := `{"treatment": {"emergencyRoomVisits": 2, "chiropracticSessions": 10, "mris": 1,
		"surgeryRecommended": true, "surgeryType": "minor"}}`

	ctx := do(newTestHandler(nil), fasthttp.MethodPost, "/api/estimate", body)

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var res model.EstimateResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &res))
	assert.Equal(t, int64(49000), res.MedicalCosts)
}

func TestSchedule(t *testing.T) {
	ctx := do(newTestHandler(nil), fasthttp.MethodGet, "/api/schedule", "")

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	var s schedule.Schedule
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &s))
	assert.Equal(t, schedule.Default().UnitCosts, s.UnitCosts)
	assert.Equal(t, schedule.Default().Range, s.Range)
}

func TestPreflight(t *testing.T) {
	ctx := do(newTestHandler(nil), fasthttp.MethodOptions, "/api/calculate", "")

	assert.Equal(t, fasthttp.StatusNoContent, ctx.Response.StatusCode())
	assert.Empty(t, ctx.Response.Body())
	assert.Equal(t, "*", string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")))
	assert.Contains(t, string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")), "POST")
}

func TestRouting(t *testing.T) {
	h := newTestHandler(nil)

	ctx := do(h, fasthttp.MethodGet, "/api/calculate", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())

	ctx = do(h, fasthttp.MethodPost, "/api/schedule", "")
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())

	ctx = do(h, fasthttp.MethodGet, "/nope", "")
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
	assert.Equal(t, "not found", decodeError(t, ctx).Message)

	ctx = do(h, fasthttp.MethodGet, "/healthz", "")
	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.Equal(t, "ok", string(ctx.Response.Body()))
}

func TestRateLimit(t *testing.T) {
	limiter, err := NewLimiter(0, 1, 16)
	require.NoError(t, err)
	h := newTestHandler(limiter)

	first := do(h, fasthttp.MethodPost, "/api/calculate", `{}`)
	assert.Equal(t, fasthttp.StatusOK, first.Response.StatusCode())

	second := do(h, fasthttp.MethodPost, "/api/calculate", `{}`)
	assert.Equal(t, fasthttp.StatusTooManyRequests, second.Response.StatusCode())
	assert.Equal(t, "1", string(second.Response.Header.Peek("Retry-After")))
	assert.Equal(t, "*", string(second.Response.Header.Peek("Access-Control-Allow-Origin")))
}
