// SPDX-License-Identifier: MIT

package web

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/matform/matrix"
)

// Form field names posted by the page.
const (
	FieldRowsA   = "rows_a"
	FieldColsA   = "cols_a"
	FieldMatrixA = "matrix_a"
	FieldRowsB   = "rows_b"
	FieldColsB   = "cols_b"
	FieldMatrixB = "matrix_b"
)

// tagMaxDim is the custom validation tag bound to the configured dimension limit.
const tagMaxDim = "maxdim"

var (
	// errInvalidInput covers a missing field or a dimension that is not a positive integer.
	errInvalidInput = errors.New("web: invalid input")
	// errDimensionLimit reports a dimension above the configured limit.
	errDimensionLimit = errors.New("web: dimension exceeds limit")
)

// Form is one submission of the page. Dimension fields stay as text so they
// can be echoed back exactly as typed; matrix texts are trimmed.
type Form struct {
	RowsA, ColsA string
	MatrixA      string
	RowsB, ColsB string
	MatrixB      string
}

// dims is the integer view of the four dimension fields.
type dims struct {
	RowsA int `validate:"min=1,maxdim"`
	ColsA int `validate:"min=1,maxdim"`
	RowsB int `validate:"min=1,maxdim"`
	ColsB int `validate:"min=1,maxdim"`
}

// readForm pulls the six fields from a POST body. A field that is absent
// yields errInvalidInput; the values read so far are still returned for echo.
func readForm(c *gin.Context) (Form, error) {
	var (
		f       Form
		missing []string
	)
	get := func(name string) string {
		v, ok := c.GetPostForm(name)
		if !ok {
			missing = append(missing, name)
		}
		return v
	}
	f.RowsA = get(FieldRowsA)
	f.ColsA = get(FieldColsA)
	f.MatrixA = strings.TrimSpace(get(FieldMatrixA))
	f.RowsB = get(FieldRowsB)
	f.ColsB = get(FieldColsB)
	f.MatrixB = strings.TrimSpace(get(FieldMatrixB))

	if len(missing) > 0 {
		return f, fmt.Errorf("missing fields %v: %w", missing, errInvalidInput)
	}

	return f, nil
}

// newValidator builds the dimension validator with maxdim bound to limit
// (0 disables the upper bound).
func newValidator(limit int) (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation(tagMaxDim, func(fl validator.FieldLevel) bool {
		return limit == 0 || fl.Field().Int() <= int64(limit)
	})
	if err != nil {
		return nil, fmt.Errorf("register %s: %w", tagMaxDim, err)
	}

	return v, nil
}

// parseDims converts and validates the dimension fields.
func parseDims(v *validator.Validate, f Form) (dims, error) {
	var (
		d   dims
		err error
	)
	fields := []struct {
		name string
		raw  string
		dst  *int
	}{
		{FieldRowsA, f.RowsA, &d.RowsA},
		{FieldColsA, f.ColsA, &d.ColsA},
		{FieldRowsB, f.RowsB, &d.RowsB},
		{FieldColsB, f.ColsB, &d.ColsB},
	}
	for _, fd := range fields {
		if *fd.dst, err = strconv.Atoi(strings.TrimSpace(fd.raw)); err != nil {
			return dims{}, fmt.Errorf("%s %q: %w", fd.name, fd.raw, errInvalidInput)
		}
	}

	if err = v.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if fe.Tag() == "min" {
					return dims{}, fmt.Errorf("%s: %w", fe.Field(), errInvalidInput)
				}
			}
			return dims{}, fmt.Errorf("%s: %w", verrs[0].Field(), errDimensionLimit)
		}
		return dims{}, err
	}

	return d, nil
}

// request assembles the library request from a validated form.
func (d dims) request(f Form) matrix.Request {
	return matrix.Request{
		TextA: f.MatrixA, RowsA: d.RowsA, ColsA: d.ColsA,
		TextB: f.MatrixB, RowsB: d.RowsB, ColsB: d.ColsB,
	}
}
