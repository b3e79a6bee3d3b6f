// Package recognition ties preprocessing and the classifier together.
package recognition

import (
	"image"
	"sync"

	"digitpad/internal/model"
	"digitpad/internal/preprocess"

	"github.com/pkg/errors"
)

type Result struct {
	*model.Prediction
	// Input is the tensor handed to the classifier.
	Input []float32
	Side  int
}

type Service struct {
	mu         sync.Mutex
	classifier model.Classifier
	options    preprocess.Options
}

func NewService(classifier model.Classifier, options preprocess.Options) *Service {
	return &Service{
		classifier: classifier,
		options:    options,
	}
}

func (s *Service) Options() preprocess.Options {
	return s.options
}

// Recognize classifies a drawing. A drawing without ink is reported as
// preprocess.ErrBlank before the model is consulted.
func (s *Service) Recognize(img image.Image) (*Result, error) {
	if _, ok := preprocess.InkBounds(img, s.options.InkThreshold); !ok {
		return nil, preprocess.ErrBlank
	}

	input, err := preprocess.Tensor(img, s.options)
	if err != nil {
		return nil, errors.Wrap(err, "preprocessing drawing")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prediction, err := s.classifier.Predict(input)
	if err != nil {
		return nil, err
	}

	return &Result{
		Prediction: prediction,
		Input:      input,
		Side:       s.options.Side,
	}, nil
}

func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.classifier.Close()
}
