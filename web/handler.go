// SPDX-License-Identifier: MIT

// Package web is the HTML form around the matrix library.
//
// It binds the six form fields, converts and validates the dimensions, runs
// matrix.Request.Compute and re-renders the page with either the formatted
// product or one fixed message. Each request gets its own immutable FormView;
// nothing is kept between requests.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/matform/matrix"
)

// Template names registered by NewRouter.
const templateForm = "form.html"

// Defaults applied by NewHandler.
const (
	DefaultMaxDimension = 1000
	DefaultMaxElements  = 1_000_000
)

// Handler serves the form routes.
type Handler struct {
	logger       *slog.Logger
	validate     *validator.Validate
	instanceID   string
	maxDimension int
	maxElements  int
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for rejected and failed requests.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithInstanceID sets the id reported by /healthz.
func WithInstanceID(id string) Option {
	return func(h *Handler) { h.instanceID = id }
}

// WithMaxDimension caps every rows/cols field; 0 disables the cap.
// Panics on negative n.
func WithMaxDimension(n int) Option {
	if n < 0 {
		panic("web: WithMaxDimension(n<0)")
	}
	return func(h *Handler) { h.maxDimension = n }
}

// WithMaxElements caps rows*cols of both operands and of the result; 0 disables the cap.
// Panics on negative n.
func WithMaxElements(n int) Option {
	if n < 0 {
		panic("web: WithMaxElements(n<0)")
	}
	return func(h *Handler) { h.maxElements = n }
}

// NewHandler builds a Handler with defaults overridden by opts.
func NewHandler(opts ...Option) (*Handler, error) {
	h := &Handler{
		logger:       slog.Default(),
		maxDimension: DefaultMaxDimension,
		maxElements:  DefaultMaxElements,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	v, err := newValidator(h.maxDimension)
	if err != nil {
		return nil, err
	}
	h.validate = v

	return h, nil
}

// Home renders the empty form.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, templateForm, EmptyView())
}

// Multiply handles a form submission. Every outcome re-renders the page with
// status 200 and the submitted values echoed back.
func (h *Handler) Multiply(c *gin.Context) {
	form, err := readForm(c)
	view := EchoView(form)
	if err != nil {
		h.reject(c, view, err)
		return
	}

	d, err := parseDims(h.validate, form)
	if err != nil {
		h.reject(c, view, err)
		return
	}

	res, err := d.request(form).Compute(matrix.WithMaxElements(h.maxElements))
	if err != nil {
		h.reject(c, view, err)
		return
	}

	h.logger.Debug("matrix product computed",
		slog.String("request_id", c.GetString(ctxKeyRequestID)),
		slog.Int("rows", res.Rows()),
		slog.Int("cols", res.Cols()),
	)
	c.HTML(http.StatusOK, templateForm, view.WithResult(matrix.Format(res)))
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"instance_id": h.instanceID,
	})
}

// reject renders view with the message for err.
func (h *Handler) reject(c *gin.Context, view FormView, err error) {
	msg := Message(err)
	h.logger.Info("multiply rejected",
		slog.String("request_id", c.GetString(ctxKeyRequestID)),
		slog.String("message", msg),
		slog.String("error", err.Error()),
	)
	c.HTML(http.StatusOK, templateForm, view.WithError(msg))
}

// Message maps an error from the form pipeline to the text shown to the user.
// Unknown errors map to MsgInvalidInput.
func Message(err error) string {
	switch {
	case errors.Is(err, errDimensionLimit), errors.Is(err, matrix.ErrTooLarge):
		return MsgTooLarge
	case errors.Is(err, matrix.ErrDimensionMismatch):
		return MsgDimensionMismatch
	case errors.Is(err, matrix.ErrElementCountMismatch):
		if matrix.OperandOf(err) == matrix.OperandB {
			return MsgCountB
		}
		return MsgCountA
	case errors.Is(err, matrix.ErrNaNInf), errors.Is(err, matrix.ErrIntegerOverflow):
		return MsgOutOfRange
	default:
		// errInvalidInput, ErrInvalidDimensions, ErrInvalidNumberFormat
		return MsgInvalidInput
	}
}
