// Copyright 2021 The Opm-Models Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package numerr defines the error kinds raised by the numerical core and
// the Status record returned by every iterative routine. Non-convergence
// is deliberately not an error by itself: solvers report it through
// Status and each caller decides whether it is fatal.
package numerr

import "fmt"

// Status reports the outcome of an iterative routine
type Status struct {
	Converged  bool    // tolerance was met within the iteration budget
	Iterations int     // number of iterations actually performed
	Residual   float64 // residual norm (or last step size) at exit
}

// String returns a one-line representation of the status
func (o Status) String() string {
	if o.Converged {
		return fmt.Sprintf("converged: it=%d res=%g", o.Iterations, o.Residual)
	}
	return fmt.Sprintf("NOT converged: it=%d res=%g", o.Iterations, o.Residual)
}

// InvalidInputError indicates ill-posed input data; e.g. negative target
// density, negative global molarities, dimension mismatches
type InvalidInputError struct {
	Msg string
}

func (o *InvalidInputError) Error() string {
	return "invalid input: " + o.Msg
}

// PreconditionError indicates a violated call contract; e.g. mismatched
// phase temperatures under the isothermal assumption
type PreconditionError struct {
	Msg string
}

func (o *PreconditionError) Error() string {
	return "precondition violated: " + o.Msg
}

// DegeneracyError indicates numerical degeneracy during an iteration;
// e.g. a vanishing derivative or a singular Jacobian
type DegeneracyError struct {
	Msg string
}

func (o *DegeneracyError) Error() string {
	return "numerical degeneracy: " + o.Msg
}

// NonConvergenceError is used by callers that consider a non-converged
// iteration fatal. The solver itself only reports a Status.
type NonConvergenceError struct {
	Op     string // which routine failed to converge
	Status Status
}

func (o *NonConvergenceError) Error() string {
	return fmt.Sprintf("%s did not converge after %d iterations (residual=%g)", o.Op, o.Status.Iterations, o.Status.Residual)
}

// InvalidInput creates a new InvalidInputError
func InvalidInput(msg string, prm ...interface{}) error {
	return &InvalidInputError{Msg: fmt.Sprintf(msg, prm...)}
}

// Precondition creates a new PreconditionError
func Precondition(msg string, prm ...interface{}) error {
	return &PreconditionError{Msg: fmt.Sprintf(msg, prm...)}
}

// Degeneracy creates a new DegeneracyError
func Degeneracy(msg string, prm ...interface{}) error {
	return &DegeneracyError{Msg: fmt.Sprintf(msg, prm...)}
}

// NonConvergence creates a new NonConvergenceError
func NonConvergence(op string, status Status) error {
	return &NonConvergenceError{Op: op, Status: status}
}
