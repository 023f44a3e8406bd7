package rules

import (
	"strings"

	"github.com/pkg/errors"
)

/*
Survives reports whether a living cell stays alive into the next generation.

A living cell survives with exactly 2 or 3 living neighbors.
*/
func Survives(aliveNeighbors int) bool {
	return aliveNeighbors == 2 || aliveNeighbors == 3
}

// RevivalPolicy decides how a dead cell adjacent to a living one is brought back to life
type RevivalPolicy int

const (
	// RevivalDiscovery counts a dead candidate only when the living cell that
	// discovered it is dying. All living neighbors of the candidate are counted.
	RevivalDiscovery RevivalPolicy = iota
	// RevivalExcludeDiscoverer behaves like RevivalDiscovery but skips the
	// discovering cell while counting the candidate's neighbors.
	RevivalExcludeDiscoverer
	// RevivalClassic revives any dead cell with exactly 3 living neighbors.
	RevivalClassic
)

const revivalNeighbors = 3

var policyNames = map[RevivalPolicy]string{
	RevivalDiscovery:         "discovery",
	RevivalExcludeDiscoverer: "exclude-discoverer",
	RevivalClassic:           "classic",
}

func (p RevivalPolicy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseRevivalPolicy maps a policy name to its RevivalPolicy. An empty name selects RevivalDiscovery.
func ParseRevivalPolicy(name string) (RevivalPolicy, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return RevivalDiscovery, nil
	}
	for p, n := range policyNames {
		if n == name {
			return p, nil
		}
	}
	return RevivalDiscovery, errors.Errorf("[ParseRevivalPolicy] unknown revival policy: %q", name)
}

// CountsCandidates reports whether a discoverer with the given survival
// outcome contributes to the revival tally of its dead neighbors.
func (p RevivalPolicy) CountsCandidates(discovererSurvives bool) bool {
	if p == RevivalClassic {
		return true
	}
	return !discovererSurvives
}

// SkipsDiscoverer reports whether the discovering cell is left out of a candidate's neighbor count
func (p RevivalPolicy) SkipsDiscoverer() bool {
	return p == RevivalExcludeDiscoverer
}

// Revives reports whether a dead candidate with the given tally comes back to life
func Revives(aliveNeighbors int) bool {
	return aliveNeighbors == revivalNeighbors
}
