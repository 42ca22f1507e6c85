package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bvhmotion/pkg/bvh"
	"bvhmotion/pkg/motion"
)

// WriteFramesCSV writes the dataset as CSV: a time column followed by
// every dataset column, one row per frame.
func WriteFramesCSV(w io.Writer, ds *motion.Dataset) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "time,%s\n", strings.Join(ds.ColumnNames(), ","))
	for i := 0; i < ds.FrameCount(); i++ {
		fmt.Fprintf(bw, "%10.5f", float64(i)*ds.FrameTime())
		for _, v := range ds.Row(i) {
			fmt.Fprintf(bw, ",%10.5f", v)
		}
		fmt.Fprintf(bw, "\n")
	}
	return bw.Flush()
}

// SaveFramesCSV writes the frames CSV to path.
func SaveFramesCSV(path string, ds *motion.Dataset) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save frames csv: %w", err)
	}
	defer file.Close()
	return WriteFramesCSV(file, ds)
}

// WriteHierarchyCSV writes one row per joint: name, parent name and
// scaled offset. The root's parent column is empty.
func WriteHierarchyCSV(w io.Writer, tree *bvh.Tree, scale float64) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "joint,parent,offset.x,offset.y,offset.z\n")
	for _, name := range tree.JointNames() {
		offset := tree.JointOffset(name)
		for len(offset) < 3 {
			offset = append(offset, 0)
		}
		fmt.Fprintf(bw, "%s,%s,%f,%f,%f\n",
			name, tree.JointParent(name),
			scale*offset[0], scale*offset[1], scale*offset[2])
	}
	return bw.Flush()
}

// SaveHierarchyCSV writes the hierarchy CSV to path.
func SaveHierarchyCSV(path string, tree *bvh.Tree, scale float64) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save hierarchy csv: %w", err)
	}
	defer file.Close()
	return WriteHierarchyCSV(file, tree, scale)
}
