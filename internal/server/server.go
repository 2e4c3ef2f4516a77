package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/mortgage-calc/internal/calculator"
	"github.com/iwvelando/mortgage-calc/internal/markup"
	"github.com/iwvelando/mortgage-calc/pkg/constants"
	"github.com/iwvelando/mortgage-calc/pkg/mortgage"
	"go.uber.org/zap"
)

// Event kinds accepted by the render endpoint.
const (
	EventChange = "change"
	EventFocus  = "focus"
	EventBlur   = "blur"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the calculator API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.Recoverer)
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		h.respondErrorWithOp(w, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", r.Method, r.URL.Path), "server.router")
	})
	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.respondErrorWithOp(w, http.StatusNotFound, fmt.Sprintf("no route for %s", r.URL.Path), "server.router")
	})

	router.Route("/api", func(r chi.Router) {
		// Stateless quote for a set of values
		r.Post("/calculate", h.handleCalculate)

		// Server-side binding of calculator blocks in a page
		r.Post("/render", h.handleRender)

		r.Get("/version", h.handleVersion)
	})

	return router
}

// NewHTTPServer wraps handler in an http.Server using the configured address
// and timeouts.
func NewHTTPServer(cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeoutDuration(),
		WriteTimeout: cfg.WriteTimeoutDuration(),
		IdleTimeout:  60 * time.Second,
	}
}

type calculateResponse struct {
	Values     mortgage.Values     `json:"values"`
	Result     mortgage.Result     `json:"result"`
	Formatted  formattedTotals     `json:"formatted"`
	Percentage mortgage.Percentage `json:"percentage"`
	Duration   string              `json:"duration"`
}

type formattedTotals struct {
	PrincipalInterest string `json:"principalInterest"`
	PaymentPerMonth   string `json:"paymentPerMonth"`
	Loan              string `json:"loan"`
	Downpayment       string `json:"downpayment"`
}

type renderRequest struct {
	HTML  string       `json:"html"`
	Event *renderEvent `json:"event,omitempty"`
}

// renderEvent names its calculator either by block id or by a selector
// matching an element inside the block.
type renderEvent struct {
	Block    string `json:"block,omitempty"`
	Selector string `json:"selector,omitempty"`
	Field    string `json:"field"`
	Value    string `json:"value,omitempty"`
	Kind     string `json:"kind,omitempty"`
}

type renderResponse struct {
	HTML        string              `json:"html"`
	Calculators []calculatorSummary `json:"calculators"`
	Duration    string              `json:"duration"`
}

type calculatorSummary struct {
	ID      string          `json:"id"`
	Variant string          `json:"variant"`
	Values  mortgage.Values `json:"values"`
	Result  mortgage.Result `json:"result"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	start := time.Now()

	var values mortgage.Values
	if !h.decodeBody(w, r, &values, op) {
		return
	}

	quote, err := mortgage.NewQuote(values)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusUnprocessableEntity, err.Error(), op)
		return
	}

	h.logger.Debug("computed quote",
		zap.String("op", op),
		zap.Float64("paymentPerMonth", quote.Result.PaymentPerMonth),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Values:     quote.Values,
		Result:     quote.Result,
		Percentage: quote.Result.Percentage,
		Formatted: formattedTotals{
			PrincipalInterest: quote.FormatAmount(quote.Result.PrincipalInterest),
			PaymentPerMonth:   quote.FormatAmount(quote.Result.PaymentPerMonth),
			Loan:              quote.FormatAmount(quote.Loan()),
			Downpayment:       quote.FormatAmount(quote.Values.Downpayment),
		},
		Duration: time.Since(start).String(),
	})
}

func (h *handler) handleRender(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRender"
	start := time.Now()

	var req renderRequest
	if !h.decodeBody(w, r, &req, op) {
		return
	}
	if strings.TrimSpace(req.HTML) == "" {
		h.respondErrorWithOp(w, http.StatusBadRequest, "missing html", op)
		return
	}

	doc, err := markup.ParseString(req.HTML)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	engine := calculator.NewEngine(h.logger)
	engine.Bind(doc)

	if req.Event != nil {
		if status, err := h.applyEvent(engine, doc, req.Event); err != nil {
			h.respondErrorWithOp(w, status, err.Error(), op)
			return
		}
	}

	out, err := doc.HTML()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to serialize page: %v", err), op)
		return
	}

	calcs := engine.Calculators()
	summaries := make([]calculatorSummary, 0, len(calcs))
	for _, calc := range calcs {
		summaries = append(summaries, calculatorSummary{
			ID:      calc.ID(),
			Variant: calc.Variant().String(),
			Values:  calc.Values(),
			Result:  calc.Result(),
		})
	}

	h.writeJSON(w, http.StatusOK, renderResponse{
		HTML:        out,
		Calculators: summaries,
		Duration:    time.Since(start).String(),
	})
}

// applyEvent routes ev to the calculator owning its block and returns the
// HTTP status to answer with on failure.
func (h *handler) applyEvent(engine *calculator.Engine, doc *markup.Document, ev *renderEvent) (int, error) {
	id := strings.TrimSpace(ev.Block)
	if id == "" && ev.Selector != "" {
		found, ok := doc.BlockIDFor(ev.Selector)
		if !ok {
			return http.StatusBadRequest, fmt.Errorf("selector %q is not inside a calculator block", ev.Selector)
		}
		id = found
	}
	if id == "" {
		return http.StatusBadRequest, errors.New("event needs a block or selector")
	}

	field := calculator.Field(ev.Field)
	kind := strings.ToLower(strings.TrimSpace(ev.Kind))
	if kind != EventBlur {
		if _, ok := calculator.Selector(field); !ok {
			return http.StatusBadRequest, fmt.Errorf("unknown field %q", ev.Field)
		}
		if !field.Input() {
			return http.StatusBadRequest, fmt.Errorf("field %q is not an input", ev.Field)
		}
	}

	var err error
	switch kind {
	case "", EventChange:
		err = engine.Dispatch(id, calculator.ChangeFor(field, ev.Value))
	case EventFocus:
		err = engine.Focus(id, field)
	case EventBlur:
		err = engine.Blur(id)
	default:
		return http.StatusBadRequest, fmt.Errorf("unknown event kind %q", ev.Kind)
	}

	if errors.Is(err, calculator.ErrUnknownCalculator) {
		return http.StatusNotFound, err
	}
	if err != nil {
		return http.StatusInternalServerError, err
	}
	return http.StatusOK, nil
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeBody reads a size-limited JSON body into dst, answering the request
// itself when that fails.
func (h *handler) decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	log := h.logger.Warn
	if status >= http.StatusInternalServerError {
		log = h.logger.Error
	}
	log("calculator request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
