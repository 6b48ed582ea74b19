package mlbuf

import "errors"

// Errors returned by buffer operations. These mirror the flat MLBUF_OK /
// MLBUF_ERR result convention of the C library this package ports: any
// fallible operation returns one of these sentinels (or nil) rather than a
// rich error hierarchy.
var (
	// ErrLineNotFound indicates a line index no longer exists in the buffer.
	ErrLineNotFound = errors.New("mlbuf: line not found")

	// ErrStaleReplay indicates an action's recorded position no longer
	// corresponds to a valid location in the current line graph.
	ErrStaleReplay = errors.New("mlbuf: stale replay position")

	// ErrNothingToUndo indicates the undo log has nothing before the cursor.
	ErrNothingToUndo = errors.New("mlbuf: nothing to undo")

	// ErrNothingToRedo indicates the undo log has nothing after the cursor.
	ErrNothingToRedo = errors.New("mlbuf: nothing to redo")

	// ErrRuleCompile indicates a style rule's pattern failed to compile.
	ErrRuleCompile = errors.New("mlbuf: rule pattern failed to compile")

	// ErrRuleNotFound indicates a rule was not registered on the buffer.
	ErrRuleNotFound = errors.New("mlbuf: rule not found")

	// ErrRangeRuleNotJSON indicates a range rule was asked to serialize to
	// JSON; range rules bind to live Mark handles and have no static
	// representation.
	ErrRangeRuleNotJSON = errors.New("mlbuf: range rules cannot be represented in JSON")
)
