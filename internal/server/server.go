package server

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/iwvelando/amountfmt/internal/config"
	"github.com/iwvelando/amountfmt/internal/input"
	"github.com/iwvelando/amountfmt/pkg/constants"
	"github.com/iwvelando/amountfmt/pkg/format"
	"github.com/iwvelando/amountfmt/pkg/validation"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	currency    constants.CurrencyCode
	version     string
	validate    *validator.Validate
}

type contextKey string

const requestIDKey contextKey = "requestID"

// NewHandler constructs the HTTP handler that serves the web UI and amount API.
func NewHandler(logger *zap.Logger, maxBodySize int64, defaultCurrency constants.CurrencyCode, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	if _, ok := constants.LookupCurrency(defaultCurrency); !ok {
		defaultCurrency = constants.DefaultCurrency
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		currency:    defaultCurrency,
		version:     trimmedVersion,
		validate:    validator.New(),
	}

	mux := http.NewServeMux()

	// Amount pipeline used by every money-entry input
	mux.HandleFunc("/api/amount/format", h.handleFormat)
	mux.HandleFunc("/api/amount/parse", h.handleParse)
	mux.HandleFunc("/api/amount/currency", h.handleCurrency)
	mux.HandleFunc("/api/amount/submit", h.handleSubmit)

	// CLI config download for the settings panel
	mux.HandleFunc("/api/config/export", h.handleConfigExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	mux.Handle("/", http.FileServer(http.FS(sub)))

	return withRequestID(mux)
}

// withRequestID keeps an incoming X-Request-ID or assigns a new one.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(constants.RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(constants.RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey).(string)
	return id
}

type formatRequest struct {
	Value    string `json:"value" validate:"max=256"`
	Currency string `json:"currency" validate:"omitempty,len=3,alpha"`
}

type formatResponse struct {
	Display   string                 `json:"display"`
	Canonical string                 `json:"canonical"`
	Currency  constants.CurrencyCode `json:"currency"`
}

type parseRequest struct {
	Display string `json:"display" validate:"max=256"`
}

type parseResponse struct {
	Canonical string `json:"canonical"`
}

type currencyRequest struct {
	Amount   *decimal.Decimal `json:"amount" validate:"required"`
	Currency string           `json:"currency" validate:"omitempty,len=3,alpha"`
}

type currencyResponse struct {
	Formatted string                 `json:"formatted"`
	Currency  constants.CurrencyCode `json:"currency"`
}

type submitRequest struct {
	Display  string           `json:"display" validate:"max=256"`
	Currency string           `json:"currency" validate:"omitempty,len=3,alpha"`
	Kind     string           `json:"kind" validate:"required,oneof=income expense transfer"`
	Balance  *decimal.Decimal `json:"balance,omitempty"`
}

type submitResponse struct {
	Amount   decimal.Decimal        `json:"amount"`
	Currency constants.CurrencyCode `json:"currency"`
	Kind     input.TransactionKind  `json:"kind"`
}

func (h *handler) handleFormat(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleFormat"
	var req formatRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	code, err := h.resolveCurrency(req.Currency)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	display := format.FormatWithThousands(req.Value, code)
	h.logger.Debug("amount formatted",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
		zap.String("currency", string(code)),
		zap.Int("length", len(display)),
	)

	h.writeJSON(w, http.StatusOK, formatResponse{
		Display:   display,
		Canonical: format.ParseFormatted(display),
		Currency:  code,
	})
}

func (h *handler) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	if !h.decodeRequest(w, r, &req, "server.handleParse") {
		return
	}

	h.writeJSON(w, http.StatusOK, parseResponse{Canonical: format.ParseFormatted(req.Display)})
}

func (h *handler) handleCurrency(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCurrency"
	var req currencyRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	code, err := h.resolveCurrency(req.Currency)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.writeJSON(w, http.StatusOK, currencyResponse{
		Formatted: format.FormatCurrency(*req.Amount, code),
		Currency:  code,
	})
}

func (h *handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSubmit"
	var req submitRequest
	if !h.decodeRequest(w, r, &req, op) {
		return
	}

	code, err := h.resolveCurrency(req.Currency)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	kind, err := input.ParseTransactionKind(req.Kind)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	form := input.NewTransactionForm(kind, code)
	form.Balance = req.Balance
	form.Amount.OnChange(req.Display)

	submission, fieldErrs := form.Submit()
	if fieldErrs.HasErrors() {
		h.logger.Info("amount rejected",
			zap.String("op", op),
			zap.String("requestId", requestID(r)),
			zap.String("errors", fieldErrs.Error()),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, map[string]validation.FieldErrors{"errors": fieldErrs})
		return
	}

	h.writeJSON(w, http.StatusOK, submitResponse{
		Amount:   submission.Amount,
		Currency: submission.Currency,
		Kind:     submission.Kind,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// handleConfigExport renders CLI settings as the YAML read by
// config.LoadConfiguration. Settings the CLI would warn about are rejected.
func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	var conf config.Configuration
	if !h.decodeRequest(w, r, &conf, op) {
		return
	}

	if warnings := conf.ValidateConfiguration(); len(warnings) > 0 {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, strings.Join(warnings, "; "), op)
		return
	}
	if conf.Currency != "" {
		conf.Currency = string(conf.CurrencyCode())
	}

	yamlBytes, err := yaml.Marshal(&conf)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// decodeRequest enforces POST, the body limit and struct validation. It
// writes the error response itself and reports whether to continue.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return false
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondDecodeError(w, r, err, op)
		return false
	}

	if err := h.validate.Struct(dst); err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) resolveCurrency(code string) (constants.CurrencyCode, error) {
	if code == "" {
		return h.currency, nil
	}
	return validation.ValidateCurrency(code)
}

func (h *handler) respondDecodeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		return
	}
	h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("amount request failed",
		zap.String("op", op),
		zap.String("requestId", requestID(r)),
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
