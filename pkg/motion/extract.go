// Package motion extracts a flat, fixed-width float32 frame matrix
// from a parsed BVH tree. The root joint contributes its full pose;
// every other joint is reduced to the single rotation channel that
// carries its motion.
package motion

import (
	"fmt"

	"bvhmotion/pkg/bvh"
)

// Root channel orders are fixed by contract. Note the asymmetry: the
// root rotation is emitted Z,X,Y while the non-root fallback tries
// Z,Y,X. Both orders match the source data convention and must not be
// "fixed".
var (
	rootPositionOrder = [3]string{"Xposition", "Yposition", "Zposition"}
	rootRotationOrder = [3]string{"Zrotation", "Xrotation", "Yrotation"}
	rotationFallback  = [3]string{"Zrotation", "Yrotation", "Xrotation"}
)

// MissingChannelError reports a root joint that lacks one of its six
// mandatory pose channels. Fatal for the whole extraction.
type MissingChannelError struct {
	Joint   string
	Channel string
}

func (e *MissingChannelError) Error() string {
	return fmt.Sprintf("root joint %s has no %s channel", e.Joint, e.Channel)
}

// Extract assembles the per-frame motion matrix for every declared
// frame. Row layout: root X,Y,Z position, root Z,X,Y rotation, then
// one rotation scalar per remaining joint in skeleton order. Width is
// 6 + (joints - 1), constant across rows by construction.
func Extract(tree *bvh.Tree) (*Dataset, error) {
	names := tree.JointNames()
	if len(names) == 0 {
		return nil, &bvh.MalformedHeaderError{Reason: "no joints in tree"}
	}
	root := names[0]
	width := 6 + len(names) - 1

	rows := make([][]float32, 0, tree.FrameCount())
	for i := 0; i < tree.FrameCount(); i++ {
		row := make([]float32, 0, width)
		for _, channel := range rootPositionOrder {
			v, err := rootChannel(tree, i, root, channel)
			if err != nil {
				return nil, err
			}
			row = append(row, float32(v))
		}
		for _, channel := range rootRotationOrder {
			v, err := rootChannel(tree, i, root, channel)
			if err != nil {
				return nil, err
			}
			row = append(row, float32(v))
		}
		for _, name := range names[1:] {
			v, err := resolveRotation(tree, i, name)
			if err != nil {
				return nil, err
			}
			row = append(row, float32(v))
		}
		rows = append(rows, row)
	}
	return newDataset(names, rows, tree.FrameTime()), nil
}

// rootChannel reads one mandatory root channel. Absence is fatal: the
// root pose anchors every downstream consumer.
func rootChannel(tree *bvh.Tree, frame int, root, channel string) (float64, error) {
	v, ok, err := tree.ChannelValue(frame, root, channel)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, &MissingChannelError{Joint: root, Channel: channel}
	}
	return v, nil
}

// resolveRotation picks the motion value for a non-root joint: the
// first of Z, Y, X rotation present wins. A joint with none of the
// three is treated as stationary and yields 0.0 — deliberate leniency,
// not an error.
func resolveRotation(tree *bvh.Tree, frame int, joint string) (float64, error) {
	for _, channel := range rotationFallback {
		v, ok, err := tree.ChannelValue(frame, joint, channel)
		if err != nil {
			return 0, err
		}
		if ok {
			return v, nil
		}
	}
	return 0, nil
}
