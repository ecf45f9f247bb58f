// Package cnum provides a value-type complex number and the arithmetic used
// by the plane renderers.
//
// All operations are pure and return new values:
//
//   - [Complex.Add], [Complex.Sub], [Complex.Mul], [Complex.Div]
//   - [Complex.Conj], [Complex.Modulus], [Complex.Arg]
//   - [Complex.Pow]: general complex power in polar form
//   - [Lerp]: linear interpolation between two points of the plane
//
// # Non-finite values
//
// Division by zero and powers of a zero base do not panic or return errors.
// They produce NaN or Inf components which propagate through later
// arithmetic. Callers that map results to pixels check [Complex.IsValid].
package cnum
