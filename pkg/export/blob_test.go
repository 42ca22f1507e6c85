package export

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"bvhmotion/pkg/bvh"
	"bvhmotion/pkg/motion"
)

const sample = `HIERARCHY
ROOT Hips
{
	CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation
	JOINT Spine
	{
		CHANNELS 1 Yrotation
	}
}
MOTION
Frames: 2
Frame Time: 0.033333
1.0 2.0 3.0 10.0 20.0 30.0 45.0
1.5 2.5 3.5 11.0 21.0 31.0 46.0
`

func extract(t *testing.T, data string) (*bvh.Tree, *motion.Dataset) {
	t.Helper()
	tree, err := bvh.Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ds, err := motion.Extract(tree)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	return tree, ds
}

func TestBlobRoundTrip(t *testing.T) {
	_, ds := extract(t, sample)

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}
	doc, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if !reflect.DeepEqual(doc.JointNames, ds.JointNames()) {
		t.Fatalf("joint_names = %v, want %v", doc.JointNames, ds.JointNames())
	}
	if !reflect.DeepEqual(doc.Frames, ds.Rows()) {
		t.Fatalf("frames = %v, want %v", doc.Frames, ds.Rows())
	}
	if doc.FrameTime != ds.FrameTime() {
		t.Fatalf("frame_time = %g, want %g", doc.FrameTime, ds.FrameTime())
	}
}

func TestBlobFieldNames(t *testing.T) {
	_, ds := extract(t, sample)

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}
	blob := buf.String()
	for _, key := range []string{`"joint_names"`, `"frames"`, `"frame_time"`} {
		if !strings.Contains(blob, key) {
			t.Fatalf("blob missing key %s: %s", key, blob)
		}
	}
}

func TestBlobEmptyFrames(t *testing.T) {
	const zero = `HIERARCHY
ROOT Hips
{
	CHANNELS 6 Xposition Yposition Zposition Zrotation Xrotation Yrotation
}
MOTION
Frames: 0
Frame Time: 0.01
`
	_, ds := extract(t, zero)

	var buf bytes.Buffer
	if err := Write(&buf, ds); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), `"frames":[]`) {
		t.Fatalf("empty dataset must serialize frames as [], got %s", buf.String())
	}
}

func TestSaveAndLoad(t *testing.T) {
	_, ds := extract(t, sample)

	path := filepath.Join(t.TempDir(), "clip_parsed.json")
	if err := Save(path, ds); err != nil {
		t.Fatalf("Save: %v", err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(doc.Frames, ds.Rows()) {
		t.Fatalf("loaded frames differ: %v", doc.Frames)
	}
}
