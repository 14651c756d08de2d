// Package slidable implements the interaction core of a slidable list-item
// widget: a draggable item that reveals directional action panes, supports
// dismiss gestures, and coordinates with sibling items so only one stays
// open per group.
//
// The package is toolkit-agnostic. A render layer owns widget composition,
// painting, and hit testing; it injects drag events and the item's main-axis
// extent, and reads back the controller's ratio plus per-frame transforms:
//
//	pane := &slidable.ActionPane{
//	    Actions:      []slidable.Action{{OnPressed: archive}, {OnPressed: del}},
//	    ExtentFactor: 0.5,
//	    Motion:       slidable.DrawerMotion{},
//	}
//	ctrl := slidable.NewController(slidable.Config{
//	    EndPane: pane,
//	    Group:   group,
//	    Tag:     "inbox",
//	})
//	tr := slidable.NewTranslator(ctrl, itemExtent)
//
//	// wire the host's drag recognizer
//	onDragStart:  tr.HandleDragStart
//	onDragUpdate: tr.HandleDragUpdate
//	onDragEnd:    tr.HandleDragEnd
//
//	// each frame
//	t := pane.Transforms(ctrl.Ratio())
//	positionChildren(t)
//
// # Ratio
//
// The controller owns a single normalized ratio in [-1, 1]: the sign selects
// the pane (negative = start, positive = end) and the magnitude is how far
// open it is (0 closed, 1 fully open). The ratio only leaves that range
// transiently during a dismiss overshoot.
//
// # Coordination
//
// A [Group] is a scope-local registry keyed by tag. Opening a controller
// evicts and closes whichever controller was registered under the same tag,
// within the same event turn. Scroll starts broadcast a close to every open
// member. A nil group is valid; the item simply loses cross-item behavior.
//
// All operations run on the host's single UI event loop; animations are
// frame-stepped via the animation package and never block.
package slidable
