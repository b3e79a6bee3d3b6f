package model

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

var ErrBadMetadata = errors.New("invalid model metadata")

// DefaultMetadata describes a Keras MNIST classifier exported to ONNX.
func DefaultMetadata() Metadata {
	classes := make([]string, 10)
	for i := range classes {
		classes[i] = strconv.Itoa(i)
	}
	return Metadata{
		InputName:   "input",
		OutputName:  "output",
		InputShape:  []int64{1, 28, 28},
		OutputShape: []int64{1, 10},
		Classes:     classes,
		ImageSize:   28,
	}
}

// LoadMetadata reads the JSON sidecar at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadMetadata(path string) (Metadata, error) {
	meta := DefaultMetadata()
	if path == "" {
		return meta, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return meta, nil
		}
		return Metadata{}, errors.Wrap(err, "reading metadata")
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, errors.Wrap(err, "parsing metadata")
	}
	return meta, meta.Validate()
}

func (m Metadata) Validate() error {
	if m.InputName == "" || m.OutputName == "" {
		return errors.Wrap(ErrBadMetadata, "tensor names are required")
	}
	if m.InputSize() <= 0 {
		return errors.Wrapf(ErrBadMetadata, "input shape %v", m.InputShape)
	}
	if side := m.Side(); m.InputSize() != side*side {
		return errors.Wrapf(ErrBadMetadata, "input shape %v does not hold a %dx%d image", m.InputShape, side, side)
	}
	if len(m.Classes) == 0 || m.OutputSize() < len(m.Classes) {
		return errors.Wrapf(ErrBadMetadata, "output shape %v cannot hold %d classes", m.OutputShape, len(m.Classes))
	}
	return nil
}

// Side is the edge length of the square image the model takes.
func (m Metadata) Side() int {
	if m.ImageSize <= 0 {
		return DefaultMetadata().ImageSize
	}
	return m.ImageSize
}

func (m Metadata) InputSize() int {
	return volume(m.InputShape)
}

func (m Metadata) OutputSize() int {
	return volume(m.OutputShape)
}

func volume(shape []int64) int {
	if len(shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range shape {
		if dim <= 0 {
			return 0
		}
		n *= int(dim)
	}
	return n
}
