// Package input maps raw device keys (keyboard, TV remote D-pad) to navigation actions.
package input

// DOM key codes delivered by browsers and TV web runtimes for the remote
// control D-pad. webOS, Tizen and most set-top boxes reuse the keyboard
// arrow and enter codes for the D-pad, so a single table covers them.
const (
	KeycodeEnter      = 13
	KeycodeArrowLeft  = 37
	KeycodeArrowUp    = 38
	KeycodeArrowRight = 39
	KeycodeArrowDown  = 40
	// KeycodeDpadCenter is the Android TV D-pad center (KEYCODE_DPAD_CENTER).
	KeycodeDpadCenter = 23
)

// KeycodeToAction maps D-pad key codes to navigation actions.
var KeycodeToAction = map[int]Action{
	KeycodeArrowUp:    ActionNavUp,
	KeycodeArrowDown:  ActionNavDown,
	KeycodeArrowLeft:  ActionNavLeft,
	KeycodeArrowRight: ActionNavRight,
	KeycodeEnter:      ActionSelect,
	KeycodeDpadCenter: ActionSelect,
}
