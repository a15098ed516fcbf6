package cli

import (
	"context"

	"github.com/bnema/spatialnav/internal/domain/entity"
	"github.com/bnema/spatialnav/internal/infrastructure/config"
	"github.com/bnema/spatialnav/internal/logging"
	"github.com/bnema/spatialnav/pkg/spatialnav"
)

// SelectHandler is called when a selectable layout element is selected.
type SelectHandler func(ctx context.Context, el entity.LayoutElement)

// NewNavigator builds a navigator configured from cfg.
func NewNavigator(ctx context.Context, cfg *config.Config) (*spatialnav.Navigator, error) {
	km, err := cfg.Keymap.KeyMap()
	if err != nil {
		return nil, err
	}
	nav := spatialnav.New(ctx,
		spatialnav.WithScoring(cfg.Navigation.Scoring()),
		spatialnav.WithGroupScoping(cfg.Navigation.GroupScoping),
		spatialnav.WithActiveGroup(cfg.Navigation.DefaultGroup),
		spatialnav.WithAutoFocus(cfg.Navigation.AutoFocus),
		spatialnav.WithKeyMap(km),
	)
	return nav, nil
}

// ApplyConfig pushes reloaded settings into a running navigator.
// Auto-focus only affects later registrations and is not re-applied.
func ApplyConfig(ctx context.Context, nav *spatialnav.Navigator, cfg *config.Config) error {
	km, err := cfg.Keymap.KeyMap()
	if err != nil {
		return err
	}
	if err := nav.SetScoring(cfg.Navigation.Scoring()); err != nil {
		return err
	}
	nav.SetGroupScoping(cfg.Navigation.GroupScoping)
	nav.SetActiveGroup(cfg.Navigation.DefaultGroup)
	nav.SetKeyMap(km)

	logging.FromContext(ctx).Info().
		Float64("primary_weight", cfg.Navigation.PrimaryWeight).
		Float64("lateral_weight", cfg.Navigation.LateralWeight).
		Bool("group_scoping", cfg.Navigation.GroupScoping).
		Msg("navigation settings reloaded")
	return nil
}

// SyncLayout registers every element of l and unregisters registered elements
// that l no longer contains. Existing elements keep their registration order.
func SyncLayout(ctx context.Context, nav *spatialnav.Navigator, l *entity.Layout, onSelect SelectHandler) (registered, removed int) {
	keep := make(map[entity.ElementID]struct{}, len(l.Elements))
	for _, e := range l.Elements {
		keep[entity.ElementID(e.ID)] = struct{}{}
	}

	var stale []entity.ElementID
	for el := range nav.All() {
		if _, ok := keep[el.ID]; !ok {
			stale = append(stale, el.ID)
		}
	}
	for _, id := range stale {
		if nav.Unregister(ctx, id) {
			removed++
		}
	}

	for _, e := range l.Elements {
		el := e.Element()
		if e.Selectable && onSelect != nil {
			el.OnSelect = spatialnav.SelectFunc(func(ctx context.Context, _ spatialnav.ElementID) {
				onSelect(ctx, e)
			})
		}
		if nav.Register(ctx, el) {
			registered++
		}
	}

	logging.FromContext(ctx).Debug().
		Str("layout", l.Name).
		Int("registered", registered).
		Int("removed", removed).
		Msg("layout synced")
	return registered, removed
}
