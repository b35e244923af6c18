// SPDX-License-Identifier: MIT
// Package: tensornet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached with errors.Wrapf at the failing call site.
//   • Generation never panics; option constructors do on meaningless values.

package builder

import "github.com/pkg/errors"

// ErrTooSmall indicates a maximum size below the smallest instance any
// family can produce (two tensors).
var ErrTooSmall = errors.New("builder: size too small")

// ErrShapeMismatch indicates a built instance whose vertex, edge or open-leg
// count differs from the closed form of its family. It signals a wiring bug,
// not bad input.
var ErrShapeMismatch = errors.New("builder: shape mismatch")

// ErrUnknownFamily indicates an unrecognised family name or value.
var ErrUnknownFamily = errors.New("builder: unknown family")

// ErrUnknownLegMode indicates an unrecognised leg mode name.
var ErrUnknownLegMode = errors.New("builder: unknown leg mode")

// ErrBadFactor indicates a base factor outside [MinFactor, MaxFactor].
var ErrBadFactor = errors.New("builder: factor out of range")
