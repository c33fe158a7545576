// SPDX-License-Identifier: MIT

package web

// User-facing messages rendered under the form.
const (
	MsgInvalidInput      = "Invalid input. Please enter valid numbers."
	MsgDimensionMismatch = "Columns of Matrix A must equal rows of Matrix B"
	MsgCountA            = "Invalid number of elements in Matrix A"
	MsgCountB            = "Invalid number of elements in Matrix B"
	MsgTooLarge          = "Matrix dimensions exceed the allowed limit"
	MsgOutOfRange        = "Result is out of the representable range"
)

// FormView is everything the page template needs for one render.
// It is built per request and never shared; the With* methods return copies.
type FormView struct {
	RowsA, ColsA, MatrixA string
	RowsB, ColsB, MatrixB string

	Error  string // empty when there is nothing to report
	Result string // formatted product, empty unless the request succeeded
}

// EmptyView is the initial page.
func EmptyView() FormView { return FormView{} }

// EchoView carries the submitted values back into the form.
func EchoView(f Form) FormView {
	return FormView{
		RowsA: f.RowsA, ColsA: f.ColsA, MatrixA: f.MatrixA,
		RowsB: f.RowsB, ColsB: f.ColsB, MatrixB: f.MatrixB,
	}
}

// WithError returns a copy of v showing msg and no result.
func (v FormView) WithError(msg string) FormView {
	v.Error, v.Result = msg, ""
	return v
}

// WithResult returns a copy of v showing the formatted product and no error.
func (v FormView) WithResult(result string) FormView {
	v.Error, v.Result = "", result
	return v
}
