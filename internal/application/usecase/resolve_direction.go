package usecase

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/bnema/spatialnav/internal/application/port"
	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/logging"
)

const (
	// DefaultPrimaryWeight multiplies the distance along the requested axis.
	DefaultPrimaryWeight = 1000.0
	// DefaultLateralWeight multiplies the offset across the requested axis.
	DefaultLateralWeight = 1.0
	// DefaultMisalignmentPenalty is added for candidates that lie more to the
	// side of the focused element than in the requested direction.
	DefaultMisalignmentPenalty = 10_000_000.0
)

// Scoring holds the tunable weights of the directional score.
// A lower score is a better candidate.
type Scoring struct {
	PrimaryWeight       float64
	LateralWeight       float64
	MisalignmentPenalty float64
}

// DefaultScoring returns weights where primary-axis proximity dominates and
// cross-axis proximity breaks ties.
func DefaultScoring() Scoring {
	return Scoring{
		PrimaryWeight:       DefaultPrimaryWeight,
		LateralWeight:       DefaultLateralWeight,
		MisalignmentPenalty: DefaultMisalignmentPenalty,
	}
}

// Validate checks that every weight is finite and that primary-axis
// proximity strictly dominates.
func (s Scoring) Validate() error {
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"primary weight", s.PrimaryWeight},
		{"lateral weight", s.LateralWeight},
		{"misalignment penalty", s.MisalignmentPenalty},
	} {
		if math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", w.name, w.value)
		}
	}
	if s.LateralWeight <= 0 {
		return fmt.Errorf("lateral weight must be positive, got %v", s.LateralWeight)
	}
	if s.PrimaryWeight <= s.LateralWeight {
		return fmt.Errorf("primary weight (%v) must be greater than lateral weight (%v)",
			s.PrimaryWeight, s.LateralWeight)
	}
	if s.MisalignmentPenalty < 0 {
		return fmt.Errorf("misalignment penalty must be non-negative, got %v", s.MisalignmentPenalty)
	}
	return nil
}

// ResolveDirectionInput contains data for directional focus resolution.
type ResolveDirectionInput struct {
	// FocusedID is the currently focused element, empty when nothing is focused.
	FocusedID entity.ElementID
	Direction entity.Direction
	// GroupScoping keeps navigation inside the focused element's group while
	// an in-group candidate exists.
	GroupScoping bool
	// FallbackGroup restricts the unfocused fallback to one group when set.
	FallbackGroup string
}

// ResolveDirectionOutput contains the result.
type ResolveDirectionOutput struct {
	TargetID entity.ElementID
	Found    bool
	// Fallback is set when nothing usable was focused and the first
	// registered element was picked.
	Fallback bool
	// EscapedGroup is set when no candidate existed inside the scoped group
	// and a candidate from another group was picked instead.
	EscapedGroup bool
	Score        float64
	Candidates   int
}

// ResolveDirectionUseCase picks the next element to focus for a direction.
type ResolveDirectionUseCase struct {
	source port.ElementSource

	mu      sync.RWMutex
	scoring Scoring
}

// NewResolveDirectionUseCase creates a resolver reading from source.
func NewResolveDirectionUseCase(source port.ElementSource, scoring Scoring) *ResolveDirectionUseCase {
	return &ResolveDirectionUseCase{source: source, scoring: scoring}
}

// Scoring returns the weights currently in use.
func (uc *ResolveDirectionUseCase) Scoring() Scoring {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.scoring
}

// SetScoring replaces the weights, e.g. after a config reload.
func (uc *ResolveDirectionUseCase) SetScoring(s Scoring) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.scoring = s
}

// Resolve finds the best element in the given direction using geometry.
// Algorithm:
//  1. Without a registered focused element, fall back to the first registered element
//  2. Filter candidates strictly in the requested half-plane of the focused center
//  3. With group scoping, keep same-group candidates unless there are none
//  4. Keep only candidates on the highest layer
//  5. Score by: misalignment_penalty + primary_distance*primary_weight + lateral_distance*lateral_weight
//  6. Return the lowest score, earliest registration wins ties
//
// Resolve never fails; an empty output means focus should not move.
func (uc *ResolveDirectionUseCase) Resolve(
	ctx context.Context,
	input ResolveDirectionInput,
) ResolveDirectionOutput {
	log := logging.FromContext(ctx)

	if !input.Direction.Valid() {
		log.Debug().Str("direction", string(input.Direction)).Msg("ignoring invalid direction")
		return ResolveDirectionOutput{}
	}

	var (
		active entity.FocusableElement
		ok     bool
	)
	if input.FocusedID != "" {
		active, ok = uc.source.Get(input.FocusedID)
	}
	if !ok {
		return uc.fallback(ctx, input)
	}

	candidates := scoreDirectionCandidates(active, uc.source, input.Direction, uc.Scoring())
	total := len(candidates)

	escaped := false
	if input.GroupScoping && active.Group != "" {
		candidates, escaped = restrictToGroup(candidates, active.Group)
	}
	candidates = restrictToTopLayer(candidates)

	if len(candidates) == 0 {
		log.Debug().
			Str("direction", string(input.Direction)).
			Str("active", string(active.ID)).
			Msg("no candidates in direction")
		return ResolveDirectionOutput{}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		// Strict comparison keeps the earliest registered candidate on ties.
		if c.score < best.score {
			best = c
		}
	}

	log.Debug().
		Str("direction", string(input.Direction)).
		Str("active", string(active.ID)).
		Str("target", string(best.element.ID)).
		Float64("score", best.score).
		Int("candidates", total).
		Bool("escaped_group", escaped).
		Msg("directional navigation found target")

	return ResolveDirectionOutput{
		TargetID:     best.element.ID,
		Found:        true,
		EscapedGroup: escaped,
		Score:        best.score,
		Candidates:   total,
	}
}

// fallback picks the first registered element, preferring the fallback group.
func (uc *ResolveDirectionUseCase) fallback(ctx context.Context, input ResolveDirectionInput) ResolveDirectionOutput {
	log := logging.FromContext(ctx)

	var (
		first, firstInGroup entity.FocusableElement
		haveFirst, inGroup  bool
	)
	for el := range uc.source.All() {
		if !haveFirst {
			first, haveFirst = el, true
		}
		if input.FallbackGroup != "" && el.Group == input.FallbackGroup {
			firstInGroup, inGroup = el, true
			break
		}
		if input.FallbackGroup == "" {
			break
		}
	}

	switch {
	case inGroup:
		log.Debug().Str("target", string(firstInGroup.ID)).Str("group", input.FallbackGroup).Msg("fallback to first element in group")
		return ResolveDirectionOutput{TargetID: firstInGroup.ID, Found: true, Fallback: true}
	case haveFirst:
		escaped := input.FallbackGroup != ""
		log.Debug().Str("target", string(first.ID)).Bool("escaped_group", escaped).Msg("fallback to first registered element")
		return ResolveDirectionOutput{TargetID: first.ID, Found: true, Fallback: true, EscapedGroup: escaped}
	default:
		log.Debug().Msg("no registered elements")
		return ResolveDirectionOutput{}
	}
}

// directionCandidate represents an element candidate for navigation with its score.
type directionCandidate struct {
	element entity.FocusableElement
	score   float64
}

// scoreDirectionCandidates scores all elements strictly in the given direction
// from active, in registration order.
// Elements lying more to the side than in the direction pay the misalignment penalty.
func scoreDirectionCandidates(
	active entity.FocusableElement,
	source port.ElementSource,
	direction entity.Direction,
	scoring Scoring,
) []directionCandidate {
	activeRect := active.Bounds()
	var candidates []directionCandidate

	for el := range source.All() {
		if el.ID == active.ID {
			continue
		}

		dx := el.Center.X - active.Center.X
		dy := el.Center.Y - active.Center.Y

		inDirection, primaryDist, lateralDist, aligned := evalDirection(activeRect, el.Bounds(), dx, dy, direction)
		if !inDirection {
			continue
		}

		score := primaryDist*scoring.PrimaryWeight + lateralDist*scoring.LateralWeight
		if !aligned {
			score += scoring.MisalignmentPenalty
		}
		candidates = append(candidates, directionCandidate{element: el, score: score})
	}

	return candidates
}

// evalDirection determines if a candidate rect is strictly in the given direction from activeRect.
// A candidate is aligned when the sideways gap between the two boxes is no larger than
// the distance travelled in the direction, so boxes sharing a row or column and
// anything within the 45 degree cone off the focused box's edges both qualify.
// Returns: inDirection, primaryDist, lateralDist, aligned
func evalDirection(
	activeRect, rect entity.Rect,
	dx, dy float64,
	direction entity.Direction,
) (inDirection bool, primaryDist, lateralDist float64, aligned bool) {
	switch direction {
	case entity.DirectionLeft:
		return dx < 0, abs(dx), abs(dy), activeRect.VerticalGap(rect) <= abs(dx)
	case entity.DirectionRight:
		return dx > 0, abs(dx), abs(dy), activeRect.VerticalGap(rect) <= abs(dx)
	case entity.DirectionUp:
		return dy < 0, abs(dy), abs(dx), activeRect.HorizontalGap(rect) <= abs(dy)
	case entity.DirectionDown:
		return dy > 0, abs(dy), abs(dx), activeRect.HorizontalGap(rect) <= abs(dy)
	default:
		return false, 0, 0, false
	}
}

// restrictToGroup keeps candidates of group. When none qualify, every
// candidate stays eligible and escaped reports the cross-group fallback.
func restrictToGroup(candidates []directionCandidate, group string) (_ []directionCandidate, escaped bool) {
	var inGroup []directionCandidate
	for _, c := range candidates {
		if c.element.Group == group {
			inGroup = append(inGroup, c)
		}
	}
	if len(inGroup) > 0 {
		return inGroup, false
	}
	return candidates, len(candidates) > 0
}

// restrictToTopLayer keeps only candidates on the highest layer, preserving order.
func restrictToTopLayer(candidates []directionCandidate) []directionCandidate {
	if len(candidates) == 0 {
		return candidates
	}

	top := candidates[0].element.Layer
	for _, c := range candidates[1:] {
		top = max(top, c.element.Layer)
	}

	out := candidates[:0:0]
	for _, c := range candidates {
		if c.element.Layer == top {
			out = append(out, c)
		}
	}
	return out
}

// abs returns the absolute value of a float.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
