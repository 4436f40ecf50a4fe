package types

import (
	"fmt"
	"strings"
)

// FinalityLevel is the finality a run streams blocks at.
type FinalityLevel string

const (
	// FinalityOptimistic streams blocks as soon as the node has them.
	FinalityOptimistic FinalityLevel = "optimistic"

	// FinalityNearFinal streams blocks that are unlikely to be reverted.
	FinalityNearFinal FinalityLevel = "near_final"

	// FinalityFinal streams only final blocks.
	FinalityFinal FinalityLevel = "final"
)

// DefaultFinalityLevel is used when no finality is configured.
const DefaultFinalityLevel = FinalityFinal

// AllFinalityLevels lists every FinalityLevel. A new level must be added here
// and to finalityQueries, otherwise package initialization panics.
var AllFinalityLevels = []FinalityLevel{
	FinalityOptimistic,
	FinalityNearFinal,
	FinalityFinal,
}

var finalityQueries = map[FinalityLevel]BlockFinality{
	FinalityOptimistic: FinalityLatest,
	FinalityNearFinal:  FinalitySafe,
	FinalityFinal:      FinalityFinalized,
}

func init() {
	if err := checkFinalityMapping(AllFinalityLevels, finalityQueries); err != nil {
		panic(err)
	}
}

// checkFinalityMapping verifies the mapping is total and injective over levels.
func checkFinalityMapping(levels []FinalityLevel, queries map[FinalityLevel]BlockFinality) error {
	seen := make(map[BlockFinality]FinalityLevel, len(levels))
	for _, level := range levels {
		query, ok := queries[level]
		if !ok || !query.IsValid() {
			return fmt.Errorf("finality level %q has no chain finality mapping", level)
		}
		if other, dup := seen[query]; dup {
			return fmt.Errorf("finality levels %q and %q both map to %q", other, level, query)
		}
		seen[query] = level
	}

	if len(queries) != len(levels) {
		return fmt.Errorf("finality mapping has %d entries for %d levels", len(queries), len(levels))
	}

	return nil
}

// String returns the string representation of FinalityLevel.
func (l FinalityLevel) String() string {
	return string(l)
}

// IsValid checks if the FinalityLevel value is valid.
func (l FinalityLevel) IsValid() bool {
	_, ok := finalityQueries[l]
	return ok
}

// ResolveFinality maps a finality level to the chain client's finality query.
// Every level has a mapping, checked at package initialization.
func ResolveFinality(level FinalityLevel) BlockFinality {
	return finalityQueries[level]
}

// ParseFinalityLevel parses user input into a FinalityLevel.
// An empty string yields DefaultFinalityLevel; "near-final" is accepted as an alias.
func ParseFinalityLevel(s string) (FinalityLevel, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if normalized == "" {
		return DefaultFinalityLevel, nil
	}

	level := FinalityLevel(normalized)
	if !level.IsValid() {
		return "", fmt.Errorf("invalid finality: %s (must be one of: optimistic, near_final, final)", s)
	}

	return level, nil
}
