package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/domain/repository"
	"github.com/bnema/spatialnav/internal/logging"
)

// ErrAmbiguousSession is returned when a session prefix matches more than one session.
var ErrAmbiguousSession = errors.New("session prefix is ambiguous")

const (
	defaultTraceListLimit = 20
	// prefixSearchLimit bounds how many sessions are scanned to resolve a prefix.
	prefixSearchLimit = 1000
)

// InspectTracesUseCase lists, shows and deletes recorded focus sessions.
// Sessions may be addressed by a unique id prefix.
type InspectTracesUseCase struct {
	repo repository.TraceRepository
}

// NewInspectTracesUseCase creates a new InspectTracesUseCase.
func NewInspectTracesUseCase(repo repository.TraceRepository) *InspectTracesUseCase {
	return &InspectTracesUseCase{repo: repo}
}

// List returns the most recent sessions first.
func (uc *InspectTracesUseCase) List(ctx context.Context, limit int) ([]entity.TraceSummary, error) {
	if limit <= 0 {
		limit = defaultTraceListLimit
	}
	return uc.repo.ListSessions(ctx, limit)
}

// ShowTraceOutput is one session with its transitions.
type ShowTraceOutput struct {
	Session     string                   `json:"session"`
	Transitions []entity.FocusTransition `json:"transitions"`
}

// Show returns the transitions of the session matching idOrPrefix.
func (uc *InspectTracesUseCase) Show(ctx context.Context, idOrPrefix string) (*ShowTraceOutput, error) {
	session, err := uc.resolve(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	transitions, err := uc.repo.Transitions(ctx, session)
	if err != nil {
		return nil, err
	}
	return &ShowTraceOutput{Session: session, Transitions: transitions}, nil
}

// Delete removes the session matching idOrPrefix and returns its full id.
func (uc *InspectTracesUseCase) Delete(ctx context.Context, idOrPrefix string) (string, error) {
	session, err := uc.resolve(ctx, idOrPrefix)
	if err != nil {
		return "", err
	}
	if err := uc.repo.DeleteSession(ctx, session); err != nil {
		return "", err
	}
	logging.FromContext(ctx).Info().Str("session", session).Msg("trace session deleted")
	return session, nil
}

func (uc *InspectTracesUseCase) resolve(ctx context.Context, idOrPrefix string) (string, error) {
	idOrPrefix = strings.TrimSpace(idOrPrefix)
	if idOrPrefix == "" {
		return "", fmt.Errorf("%w: empty session id", repository.ErrTraceNotFound)
	}

	sessions, err := uc.repo.ListSessions(ctx, prefixSearchLimit)
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range sessions {
		if s.Session == idOrPrefix {
			return s.Session, nil
		}
		if strings.HasPrefix(s.Session, idOrPrefix) {
			matches = append(matches, s.Session)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w: %s", repository.ErrTraceNotFound, idOrPrefix)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguousSession, idOrPrefix, strings.Join(matches, ", "))
	}
}
