package bvh

import "fmt"

// MalformedHeaderError reports a hierarchy block that is absent,
// unterminated, or structurally invalid. The parse is aborted; no
// partial tree is returned.
type MalformedHeaderError struct {
	Reason string
	Token  string // offending line, empty when the failure is global
}

func (e *MalformedHeaderError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("malformed BVH header: %s", e.Reason)
	}
	return fmt.Sprintf("malformed BVH header: %s (at %q)", e.Reason, e.Token)
}

// FrameIndexError reports a frame lookup past the end of the sampled
// motion data, typically a declared frame count that overruns the rows
// actually present in the file.
type FrameIndexError struct {
	Frame     int // requested frame index
	Available int // sampled rows in the file
}

func (e *FrameIndexError) Error() string {
	return fmt.Sprintf("frame %d requested but only %d sampled", e.Frame, e.Available)
}

// ValueSyntaxError reports a motion sample that is not a parseable
// number, or a sample row too short to hold the requested channel.
type ValueSyntaxError struct {
	Joint   string
	Channel string
	Frame   int
	Token   string // raw token, empty when the row was truncated
}

func (e *ValueSyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("frame %d: truncated sample row, no value for %s %s", e.Frame, e.Joint, e.Channel)
	}
	return fmt.Sprintf("frame %d: bad sample %q for %s %s", e.Frame, e.Token, e.Joint, e.Channel)
}
