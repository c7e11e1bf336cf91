package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/indumath/indumath/calc"
	"github.com/indumath/indumath/internal/config"
	"github.com/indumath/indumath/linprog"
	"github.com/indumath/indumath/production"
)

// Handlers serves the calculator endpoints.
type Handlers struct {
	cfg    config.Config
	logger *slog.Logger
}

// NewHandlers creates the handlers.
func NewHandlers(cfg config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{cfg: cfg, logger: logger}
}

// LPRequest carries a problem either as the three text fields of the form
// or, when Problem is set, as numbers.
type LPRequest struct {
	Objective string               `json:"objective"`
	Matrix    string               `json:"matrix"`
	RHS       string               `json:"rhs"`
	Problem   *production.Document `json:"problem,omitempty"`
}

// LPResponse reports one solve. ObjectiveValue and VariableValues are
// present only when Status is "optimal".
type LPResponse struct {
	RequestID      string            `json:"request_id"`
	Status         production.Status `json:"status"`
	Message        string            `json:"message"`
	ObjectiveValue *float64          `json:"objective_value,omitempty"`
	VariableValues []float64         `json:"variable_values,omitempty"`
}

// ErrorResponse is returned for rejected calculator input.
type ErrorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// CalcResponse wraps a closed-form calculator result.
type CalcResponse struct {
	RequestID string `json:"request_id"`
	Result    any    `json:"result"`
}

// HandleLP solves a production-optimization problem.
//
// Optimal, infeasible and unbounded outcomes answer 200; parse and shape
// errors answer 422; a numerical solver failure answers 500. A solve that
// outlives server.solve_timeout or the client answers 503.
func (h *Handlers) HandleLP(c *gin.Context) {
	var req LPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "lp", err)
		return
	}

	logger := h.logger.With(slog.String("request_id", c.GetString("request_id")))

	start := time.Now()
	var res *production.Result
	p, err := buildProgram(req)
	if err != nil {
		logger.Info("server: rejected lp input", slog.String("error", err.Error()))
		res = &production.Result{Status: production.StatusOf(err), Err: err}
	} else {
		lpProblemSize.Observe(float64(p.NumVars()))
		res = h.solveWithin(c.Request.Context(), logger, p)
	}
	computeDuration.WithLabelValues("lp").Observe(time.Since(start).Seconds())
	requestsTotal.WithLabelValues("lp", lpOutcome(res)).Inc()

	resp := LPResponse{
		RequestID: c.GetString("request_id"),
		Status:    res.Status,
		Message:   res.Format(h.cfg.Display.Precision),
	}
	if res.HasSolution() {
		v := res.ObjectiveValue
		resp.ObjectiveValue = &v
		resp.VariableValues = res.VariableValues
	}
	c.JSON(lpHTTPStatus(res), resp)
}

func buildProgram(req LPRequest) (*production.LinearProgram, error) {
	if req.Problem != nil {
		return production.New(req.Problem.Objective, req.Problem.Constraints, req.Problem.RHS)
	}
	return production.Build(req.Objective, req.Matrix, req.RHS)
}

// solveWithin runs the solve in its own goroutine so that the request
// returns once ctx or the configured timeout ends, whether or not the
// simplex iterations have finished.
func (h *Handlers) solveWithin(ctx context.Context, logger *slog.Logger, p *production.LinearProgram) *production.Result {
	ctx, cancel := context.WithTimeout(ctx, h.cfg.Server.SolveTimeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return abandoned(logger, err)
	}

	done := make(chan *production.Result, 1)
	go func() {
		done <- production.SolveProgram(logger, p, linprog.WithTolerance(h.cfg.Solver.Tolerance))
	}()
	select {
	case res := <-done:
		return res
	case <-ctx.Done():
		return abandoned(logger, ctx.Err())
	}
}

func abandoned(logger *slog.Logger, err error) *production.Result {
	logger.Warn("server: lp solve abandoned", slog.String("error", err.Error()))
	return &production.Result{
		Status: production.StatusSolverError,
		Err:    fmt.Errorf("server: solve abandoned: %w", err),
	}
}

func abandonedErr(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func lpOutcome(res *production.Result) string {
	if abandonedErr(res.Err) {
		return "timeout"
	}
	return res.Status.String()
}

func lpHTTPStatus(res *production.Result) int {
	switch res.Status {
	case production.StatusOptimal, production.StatusInfeasible, production.StatusUnbounded:
		return http.StatusOK
	case production.StatusParseError, production.StatusShapeError:
		return http.StatusUnprocessableEntity
	}
	if abandonedErr(res.Err) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// HandleEOQ computes the economic order quantity.
func (h *Handlers) HandleEOQ(c *gin.Context) {
	var p calc.EOQParams
	handleCalc(h, c, "eoq", &p, func() (any, error) { return calc.EOQ(p) })
}

// HandleMM1 computes M/M/1 queue measures.
func (h *Handlers) HandleMM1(c *gin.Context) {
	var p calc.MM1Params
	handleCalc(h, c, "mm1", &p, func() (any, error) { return calc.MM1(p) })
}

// HandleBreakEven computes the break-even point.
func (h *Handlers) HandleBreakEven(c *gin.Context) {
	var p calc.BreakEvenParams
	handleCalc(h, c, "breakeven", &p, func() (any, error) { return calc.BreakEven(p) })
}

// handleCalc binds params, runs compute and writes the response. Every
// calculator rejection is the caller's to fix, so all of them answer 422.
func handleCalc[P any](h *Handlers, c *gin.Context, model string, params *P, compute func() (any, error)) {
	if err := c.ShouldBindJSON(params); err != nil {
		h.badRequest(c, model, err)
		return
	}

	start := time.Now()
	result, err := compute()
	computeDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())

	id := c.GetString("request_id")
	if err != nil {
		outcome := "invalid_input"
		switch {
		case errors.Is(err, calc.ErrUnstable):
			outcome = "unstable"
		case errors.Is(err, calc.ErrPriceNotAboveCost):
			outcome = "price_not_above_cost"
		}
		requestsTotal.WithLabelValues(model, outcome).Inc()
		h.logger.Info("server: calculator rejected input",
			slog.String("request_id", id),
			slog.String("model", model),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{RequestID: id, Error: err.Error()})
		return
	}

	requestsTotal.WithLabelValues(model, "ok").Inc()
	c.JSON(http.StatusOK, CalcResponse{RequestID: id, Result: result})
}

func (h *Handlers) badRequest(c *gin.Context, model string, err error) {
	requestsTotal.WithLabelValues(model, "bad_request").Inc()
	c.JSON(http.StatusBadRequest, ErrorResponse{
		RequestID: c.GetString("request_id"),
		Error:     "malformed JSON body: " + err.Error(),
	})
}
