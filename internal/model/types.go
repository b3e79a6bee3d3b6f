package model

import "fmt"

type Metadata struct {
	InputName   string   `json:"input_name"`
	OutputName  string   `json:"output_name"`
	InputShape  []int64  `json:"input_shape"`
	OutputShape []int64  `json:"output_shape"`
	Classes     []string `json:"classes"`
	ImageSize   int      `json:"image_size"`
	// Logits is set when the graph ends before its softmax layer.
	Logits bool `json:"logits"`
}

type Prediction struct {
	Digit         int
	Label         string
	Confidence    float32
	Probabilities []float32
}

func (p *Prediction) String() string {
	return fmt.Sprintf("Predicted: %s (Confidence: %.1f%%)", p.Label, p.Confidence*100)
}

// Classifier maps a normalized image tensor to class probabilities.
type Classifier interface {
	Predict(input []float32) (*Prediction, error)
	Close()
}
