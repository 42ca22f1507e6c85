package export

import (
	"bytes"
	"strconv"
	"strings"
	"testing"
)

func TestWriteFramesCSV(t *testing.T) {
	_, ds := extract(t, sample)

	var buf bytes.Buffer
	if err := WriteFramesCSV(&buf, ds); err != nil {
		t.Fatalf("WriteFramesCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "time,Hips.xpos,Hips.ypos,Hips.zpos,Hips.zrot,Hips.xrot,Hips.yrot,Spine" {
		t.Fatalf("header = %q", lines[0])
	}

	fields := strings.Split(lines[1], ",")
	if len(fields) != 8 {
		t.Fatalf("row has %d fields, want 8", len(fields))
	}
	want := []float64{0, 1, 2, 3, 10, 20, 30, 45}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			t.Fatalf("field %d %q: %v", i, f, err)
		}
		if v != want[i] {
			t.Fatalf("field %d = %g, want %g", i, v, want[i])
		}
	}
}

func TestWriteHierarchyCSV(t *testing.T) {
	tree, _ := extract(t, sample)

	var buf bytes.Buffer
	if err := WriteHierarchyCSV(&buf, tree, 2.0); err != nil {
		t.Fatalf("WriteHierarchyCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != "joint,parent,offset.x,offset.y,offset.z" {
		t.Fatalf("header = %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 joints", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Hips,,") {
		t.Fatalf("root row = %q, want empty parent", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Spine,Hips,") {
		t.Fatalf("Spine row = %q", lines[2])
	}
}
