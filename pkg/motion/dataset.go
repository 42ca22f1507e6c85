package motion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Dataset is the immutable result of one extraction: joint names in
// skeleton order, one fixed-width float32 row per frame, and the
// seconds-per-frame interval. Accessors return copies; there is no
// mutation path.
type Dataset struct {
	jointNames []string
	rows       [][]float32
	frameTime  float64
}

func newDataset(jointNames []string, rows [][]float32, frameTime float64) *Dataset {
	if rows == nil {
		rows = [][]float32{}
	}
	return &Dataset{jointNames: jointNames, rows: rows, frameTime: frameTime}
}

// JointNames returns the joint names in skeleton order. The first
// entry is the root.
func (d *Dataset) JointNames() []string {
	names := make([]string, len(d.jointNames))
	copy(names, d.jointNames)
	return names
}

// FrameCount returns the number of rows.
func (d *Dataset) FrameCount() int {
	return len(d.rows)
}

// Width returns the row width: 6 root values plus one per non-root
// joint.
func (d *Dataset) Width() int {
	return 6 + len(d.jointNames) - 1
}

// FrameTime returns the seconds-per-frame interval.
func (d *Dataset) FrameTime() float64 {
	return d.frameTime
}

// Duration returns the clip length in seconds.
func (d *Dataset) Duration() float64 {
	return float64(len(d.rows)) * d.frameTime
}

// Row returns a copy of one frame's values.
func (d *Dataset) Row(i int) []float32 {
	row := make([]float32, len(d.rows[i]))
	copy(row, d.rows[i])
	return row
}

// Rows returns a deep copy of the full frame matrix.
func (d *Dataset) Rows() [][]float32 {
	rows := make([][]float32, len(d.rows))
	for i := range d.rows {
		rows[i] = d.Row(i)
	}
	return rows
}

// Column returns one column across all frames, widened to float64 for
// numeric post-processing.
func (d *Dataset) Column(i int) []float64 {
	col := make([]float64, len(d.rows))
	for f, row := range d.rows {
		col[f] = float64(row[i])
	}
	return col
}

// RootPosition returns the root X,Y,Z position of one frame.
func (d *Dataset) RootPosition(i int) mgl32.Vec3 {
	row := d.rows[i]
	return mgl32.Vec3{row[0], row[1], row[2]}
}

// RootRotation returns the root Euler rotation of one frame in the
// stored Z,X,Y order.
func (d *Dataset) RootRotation(i int) mgl32.Vec3 {
	row := d.rows[i]
	return mgl32.Vec3{row[3], row[4], row[5]}
}

// ColumnNames labels every column of a row: six root pose columns
// followed by one per non-root joint.
func (d *Dataset) ColumnNames() []string {
	root := d.jointNames[0]
	names := make([]string, 0, d.Width())
	for _, suffix := range []string{"xpos", "ypos", "zpos", "zrot", "xrot", "yrot"} {
		names = append(names, fmt.Sprintf("%s.%s", root, suffix))
	}
	names = append(names, d.jointNames[1:]...)
	return names
}
