package builder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Family selects a tensor-network topology.
type Family int

const (
	// FTPS is the chain-with-teeth (finite tree product state).
	FTPS Family = iota
	// MERA is the layered hierarchical network.
	MERA
	// TTN is the balanced binary tree tensor network.
	TTN
	// PEPS is the 2-D grid (projected entangled pair state).
	PEPS
	// MPS is the open chain with one open leg per site.
	MPS
	// MPO is the open chain with two open legs per site.
	MPO
)

var familyNames = [...]string{
	FTPS: "ftps",
	MERA: "mera",
	TTN:  "ttn",
	PEPS: "peps",
	MPS:  "mps",
	MPO:  "mpo",
}

// Families lists every family in declaration order.
func Families() []Family {
	return []Family{FTPS, MERA, TTN, PEPS, MPS, MPO}
}

// String returns the lower-case family name used in file names and flags.
func (f Family) String() string {
	if !f.valid() {
		return "Family(" + strconv.Itoa(int(f)) + ")"
	}
	return familyNames[f]
}

// ParseFamily maps a family name (case-insensitive) to a Family.
func ParseFamily(s string) (Family, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, n := range familyNames {
		if n == name {
			return Family(f), nil
		}
	}

	return 0, errors.Wrapf(ErrUnknownFamily, "%q", s)
}

func (f Family) valid() bool { return f >= FTPS && f <= MPO }

// squarePreferred reports whether only the most square (width, height) per
// vertex count is kept.
func (f Family) squarePreferred() bool { return f == FTPS || f == PEPS }

// LegMode selects whether open legs are persisted.
type LegMode int

const (
	// LegClosed persists closed legs only (o = 0 in the file header).
	LegClosed LegMode = iota
	// LegOpen persists closed and open legs.
	LegOpen
)

// String returns "closed" or "open".
func (m LegMode) String() string {
	if m == LegOpen {
		return "open"
	}
	return "closed"
}

// ParseLegMode maps "open"/"closed" to a LegMode.
func ParseLegMode(s string) (LegMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return LegOpen, nil
	case "closed":
		return LegClosed, nil
	default:
		return 0, errors.Wrapf(ErrUnknownLegMode, "%q", s)
	}
}
