package bvh

import "strings"

// Node is one entry in the parsed hierarchy tree. Value holds the raw
// tokens of the declaring line, e.g. ["ROOT", "Hips"] or
// ["OFFSET", "0.0", "5.0", "0.0"].
type Node struct {
	Value    []string
	Children []*Node
	Parent   *Node
}

// AddChild appends item to the node's children and sets its parent.
func (n *Node) AddChild(item *Node) {
	item.Parent = n
	n.Children = append(n.Children, item)
}

// Filter returns the direct children whose first token matches key.
func (n *Node) Filter(key string) []*Node {
	var filtered []*Node
	for _, child := range n.Children {
		if len(child.Value) > 0 && child.Value[0] == key {
			filtered = append(filtered, child)
		}
	}
	return filtered
}

// Get returns the tokens following key on the first direct child line
// that starts with it, or nil when no such line exists.
func (n *Node) Get(key string) []string {
	for _, child := range n.Children {
		if len(child.Value) > 0 && child.Value[0] == key {
			return child.Value[1:]
		}
	}
	return nil
}

// Name returns the joint name token. Only meaningful for ROOT and
// JOINT nodes.
func (n *Node) Name() string {
	if len(n.Value) < 2 {
		return ""
	}
	return n.Value[1]
}

func (n *Node) String() string {
	return strings.Join(n.Value, " ")
}
