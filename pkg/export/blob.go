// Package export writes extracted motion datasets to their external
// representations: the structured dataset blob, CSV reports, and
// column plots.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"bvhmotion/pkg/motion"
)

// Document is the serialized form of a dataset. The three key names
// are a contract with downstream consumers and must not change.
type Document struct {
	JointNames []string    `json:"joint_names"`
	Frames     [][]float32 `json:"frames"`
	FrameTime  float64     `json:"frame_time"`
}

// Write serializes a dataset to w.
func Write(w io.Writer, ds *motion.Dataset) error {
	doc := Document{
		JointNames: ds.JointNames(),
		Frames:     ds.Rows(),
		FrameTime:  ds.FrameTime(),
	}
	enc := json.NewEncoder(w)
	return enc.Encode(doc)
}

// Save writes the dataset blob to path. The file is written to a
// temporary sibling and renamed so a failed conversion never leaves a
// partial blob behind.
func Save(path string, ds *motion.Dataset) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("save dataset: %w", err)
	}
	if err := Write(tmp, ds); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save dataset: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save dataset: %w", err)
	}
	return nil
}

// Read deserializes a dataset blob.
func Read(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("read dataset: %w", err)
	}
	return doc, nil
}

// Load reads a dataset blob from path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Read(f)
}
