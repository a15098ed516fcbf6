// Package spatialnav is a focus-management engine for 10-foot (TV) user
// interfaces driven by a D-pad or arrow keys.
//
// A Navigator is one independent navigation scope. Host UI elements register
// their id and screen rectangle when they mount and unregister when they
// unmount; direction and select events are then resolved against the
// registered geometry:
//
//	nav := spatialnav.New(ctx)
//	nav.Register(ctx, spatialnav.Element{ID: "home", Center: spatialnav.Point{X: 150, Y: 140}})
//	nav.Subscribe(spatialnav.ObserverFunc(func(ctx context.Context, c spatialnav.FocusChange) {
//		// re-render c.Previous and c.Current
//	}))
//	nav.HandleKey(ctx, "ArrowDown")
//
// All operations are total. Missing elements, unknown ids, unbound keys and
// empty registries resolve to no-ops; focus simply stays where it is.
package spatialnav
