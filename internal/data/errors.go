package data

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	errEmpty    = errors.New("resource contains no records")
	errTrailing = errors.New("unexpected content after the record list")
)

// LoadError reports missing, malformed or empty content. It is fatal: the
// simulation cannot start without a valid catalog.
type LoadError struct {
	Resource string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("content %s: %v", e.Resource, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// InvalidIndexError is a placement whose lane index falls outside the lane
// table. It is always reported wrapped in a LoadError for the waves resource.
type InvalidIndexError struct {
	Wave      int
	Placement int
	Position  int
	Lanes     int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("wave %d placement %d: lane %d outside [0, %d)", e.Wave, e.Placement, e.Position, e.Lanes)
}

func validateTypes(types []EnemyType) error {
	if len(types) == 0 {
		return errEmpty
	}
	var errs error
	for i, t := range types {
		if strings.TrimSpace(t.Name) == "" {
			errs = multierr.Append(errs, fmt.Errorf("enemy type %d: name is empty", i))
		}
		if t.Shields <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("enemy type %d (%s): shields %d must be positive", i, t.Name, t.Shields))
		}
		if t.Speed <= 0 {
			errs = multierr.Append(errs, fmt.Errorf("enemy type %d (%s): speed %g must be positive", i, t.Name, t.Speed))
		}
		if t.PowerUpChance < 0 || t.PowerUpChance > 100 {
			errs = multierr.Append(errs, fmt.Errorf("enemy type %d (%s): powerUpChance %d outside [0, 100]", i, t.Name, t.PowerUpChance))
		}
	}
	return errs
}

func validateWaves(waves []Wave, laneCount int) error {
	if len(waves) == 0 {
		return errEmpty
	}
	var errs error
	for wi, w := range waves {
		for pi, p := range w.Enemies {
			if p.Position < 0 || p.Position >= laneCount {
				errs = multierr.Append(errs, &InvalidIndexError{Wave: wi, Placement: pi, Position: p.Position, Lanes: laneCount})
			}
		}
	}
	return errs
}
