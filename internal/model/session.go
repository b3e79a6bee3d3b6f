package model

import (
	"log"
	"sync"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"
)

var ErrInputSize = errors.New("input size does not match model")

type Config struct {
	ModelPath    string
	MetadataPath string
	// LibraryPath points at the onnxruntime shared library; empty uses the
	// platform default lookup.
	LibraryPath string
}

// Session runs an ONNX digit classifier with pre-allocated tensors. It is
// not safe for concurrent Predict calls.
type Session struct {
	session      *ort.AdvancedSession
	Metadata     Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

var envMu sync.Mutex

func NewSession(cfg Config) (*Session, error) {
	meta, err := LoadMetadata(cfg.MetadataPath)
	if err != nil {
		return nil, err
	}

	envMu.Lock()
	defer envMu.Unlock()
	if !ort.IsInitialized() {
		if cfg.LibraryPath != "" {
			ort.SetSharedLibraryPath(cfg.LibraryPath)
		}
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, errors.Wrap(err, "initializing ONNX environment")
		}
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, errors.Wrap(err, "creating input tensor")
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, errors.Wrap(err, "creating output tensor")
	}

	session, err := ort.NewAdvancedSession(cfg.ModelPath,
		[]string{meta.InputName}, []string{meta.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, errors.Wrapf(err, "loading model %s", cfg.ModelPath)
	}

	log.Printf("Model loaded: %s (%d classes)", cfg.ModelPath, len(meta.Classes))
	return &Session{
		session:      session,
		Metadata:     meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

func (s *Session) Predict(input []float32) (*Prediction, error) {
	if len(input) != s.Metadata.InputSize() {
		return nil, errors.Wrapf(ErrInputSize, "expected %d values, got %d", s.Metadata.InputSize(), len(input))
	}
	copy(s.inputTensor.GetData(), input)

	if err := s.session.Run(); err != nil {
		return nil, errors.Wrap(err, "inference failed")
	}

	return decide(s.outputTensor.GetData(), s.Metadata.Classes, s.Metadata.Logits), nil
}

func (s *Session) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}

	envMu.Lock()
	defer envMu.Unlock()
	if ort.IsInitialized() {
		if err := ort.DestroyEnvironment(); err != nil {
			log.Printf("Failed to release ONNX environment: %v", err)
		}
	}
}
