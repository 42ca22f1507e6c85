// Package bvh parses hierarchical motion-capture (BVH) files into a
// queryable joint tree plus the raw per-frame channel samples.
package bvh

import (
	"strconv"
	"strings"
)

// Tree is the parsed form of one BVH file: the hierarchy block as a
// node tree and the motion block as raw sample rows. Immutable once
// Parse returns.
type Tree struct {
	root   *Node
	frames [][]string

	joints     []*Node             // depth-first declaration order, root first
	jointNames []string            // same order as joints
	channels   map[string][]string // joint name -> declared channel list
	columns    map[string]int      // joint name -> first column in a sample row

	frameCount int
	frameTime  float64
}

// Parse builds a Tree from raw BVH file text. It is a pure function of
// the input: no I/O, no retained references to caller state.
func Parse(data string) (*Tree, error) {
	t := &Tree{
		root:     &Node{},
		channels: make(map[string][]string),
		columns:  make(map[string]int),
	}
	if err := t.tokenize(data); err != nil {
		return nil, err
	}
	if err := t.index(); err != nil {
		return nil, err
	}
	return t, nil
}

// tokenize splits the file into hierarchy nodes and motion rows. Lines
// before the "Frame Time:" marker form the node tree; everything after
// it is sample data.
func (t *Tree) tokenize(data string) error {
	nodeStack := []*Node{t.root}
	motionStarted := false
	var node *Node

	for _, line := range strings.Split(data, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		if motionStarted {
			t.frames = append(t.frames, parts)
			continue
		}
		switch key := parts[0]; key {
		case "{":
			if node == nil {
				return &MalformedHeaderError{Reason: "scope opened before any declaration", Token: strings.TrimSpace(line)}
			}
			nodeStack = append(nodeStack, node)
		case "}":
			if len(nodeStack) == 1 {
				return &MalformedHeaderError{Reason: "unbalanced closing brace"}
			}
			nodeStack = nodeStack[:len(nodeStack)-1]
		default:
			node = &Node{Value: parts}
			nodeStack[len(nodeStack)-1].AddChild(node)
			if key == "Frame" && len(parts) >= 2 && parts[1] == "Time:" {
				motionStarted = true
			}
		}
	}
	if len(nodeStack) != 1 {
		return &MalformedHeaderError{Reason: "unterminated scope in hierarchy block"}
	}
	return nil
}

// index walks the tokenized tree once and caches everything lookups
// need: joint order, declared channels, column offsets, frame count
// and frame time.
func (t *Tree) index() error {
	roots := t.search("ROOT")
	if len(roots) == 0 {
		return &MalformedHeaderError{Reason: "no ROOT joint declared"}
	}
	if len(roots) > 1 {
		return &MalformedHeaderError{Reason: "multiple ROOT joints declared", Token: roots[1].String()}
	}

	var walkErr error
	column := 0
	var walk func(joint *Node)
	walk = func(joint *Node) {
		if walkErr != nil {
			return
		}
		name := joint.Name()
		if name == "" {
			walkErr = &MalformedHeaderError{Reason: "joint declared without a name", Token: joint.String()}
			return
		}
		if _, seen := t.channels[name]; seen {
			walkErr = &MalformedHeaderError{Reason: "duplicate joint name", Token: joint.String()}
			return
		}
		channels, err := jointChannels(joint)
		if err != nil {
			walkErr = err
			return
		}
		t.joints = append(t.joints, joint)
		t.jointNames = append(t.jointNames, name)
		t.channels[name] = channels
		t.columns[name] = column
		column += len(channels)
		for _, child := range joint.Filter("JOINT") {
			walk(child)
		}
	}
	walk(roots[0])
	if walkErr != nil {
		return walkErr
	}

	if v := t.root.Get("Frames:"); len(v) > 0 {
		n, err := strconv.Atoi(v[0])
		if err != nil || n < 0 {
			return &MalformedHeaderError{Reason: "bad frame count", Token: "Frames: " + v[0]}
		}
		t.frameCount = n
	}
	if nodes := t.search("Frame"); len(nodes) > 0 && len(nodes[0].Value) >= 3 && nodes[0].Value[1] == "Time:" {
		ft, err := strconv.ParseFloat(nodes[0].Value[2], 64)
		if err != nil {
			return &MalformedHeaderError{Reason: "bad frame time", Token: nodes[0].String()}
		}
		t.frameTime = ft
	}
	return nil
}

// jointChannels reads the CHANNELS line of a joint. A joint with no
// CHANNELS line contributes zero columns.
func jointChannels(joint *Node) ([]string, error) {
	decl := joint.Get("CHANNELS")
	if decl == nil {
		return nil, nil
	}
	n, err := strconv.Atoi(decl[0])
	if err != nil || n != len(decl)-1 {
		return nil, &MalformedHeaderError{
			Reason: "channel count does not match channel list for " + joint.Name(),
			Token:  "CHANNELS " + strings.Join(decl, " "),
		}
	}
	return decl[1:], nil
}

// search returns all nodes whose first token matches key, in document
// order.
func (t *Tree) search(key string) []*Node {
	var found []*Node
	var visit func(node *Node)
	visit = func(node *Node) {
		if len(node.Value) > 0 && node.Value[0] == key {
			found = append(found, node)
		}
		for _, child := range node.Children {
			visit(child)
		}
	}
	visit(t.root)
	return found
}

// JointNames returns the joint names in depth-first declaration order,
// root first. The returned slice is a copy.
func (t *Tree) JointNames() []string {
	names := make([]string, len(t.jointNames))
	copy(names, t.jointNames)
	return names
}

// JointChannels returns the channels declared for a joint, verbatim
// from the file, or nil for an unknown joint.
func (t *Tree) JointChannels(name string) []string {
	decl, ok := t.channels[name]
	if !ok {
		return nil
	}
	channels := make([]string, len(decl))
	copy(channels, decl)
	return channels
}

// JointParent returns the parent joint's name, or "" for the root.
func (t *Tree) JointParent(name string) string {
	for _, joint := range t.joints {
		if joint.Name() != name {
			continue
		}
		if joint.Parent == nil || joint.Parent == t.root {
			return ""
		}
		return joint.Parent.Name()
	}
	return ""
}

// JointOffset returns the OFFSET values of a joint, or nil when the
// joint is unknown or has no offset line.
func (t *Tree) JointOffset(name string) []float64 {
	for _, joint := range t.joints {
		if joint.Name() != name {
			continue
		}
		raw := joint.Get("OFFSET")
		offset := make([]float64, 0, len(raw))
		for _, item := range raw {
			f, err := strconv.ParseFloat(item, 64)
			if err != nil {
				return nil
			}
			offset = append(offset, f)
		}
		return offset
	}
	return nil
}

// FrameCount returns the frame count declared in the MOTION block.
// This may exceed the rows actually sampled; ChannelValue surfaces the
// overrun.
func (t *Tree) FrameCount() int {
	return t.frameCount
}

// SampledFrames returns the number of sample rows actually present.
func (t *Tree) SampledFrames() int {
	return len(t.frames)
}

// FrameTime returns the declared seconds-per-frame interval.
func (t *Tree) FrameTime() float64 {
	return t.frameTime
}

// ChannelValue returns the sample for one joint channel at one frame.
// The bool is false when the joint does not declare the channel (not
// an error). A frame index past the sampled rows returns a
// *FrameIndexError; an unparseable or absent sample token returns a
// *ValueSyntaxError.
func (t *Tree) ChannelValue(frame int, joint, channel string) (float64, bool, error) {
	decl, ok := t.channels[joint]
	if !ok {
		return 0, false, nil
	}
	idx := -1
	for i, c := range decl {
		if c == channel {
			idx = i
			break
		}
	}
	if idx == -1 {
		return 0, false, nil
	}
	if frame < 0 || frame >= len(t.frames) {
		return 0, false, &FrameIndexError{Frame: frame, Available: len(t.frames)}
	}
	row := t.frames[frame]
	col := t.columns[joint] + idx
	if col >= len(row) {
		return 0, false, &ValueSyntaxError{Joint: joint, Channel: channel, Frame: frame}
	}
	v, err := strconv.ParseFloat(row[col], 64)
	if err != nil {
		return 0, false, &ValueSyntaxError{Joint: joint, Channel: channel, Frame: frame, Token: row[col]}
	}
	return v, true, nil
}
