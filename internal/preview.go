package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Preview is the validate command's view of a transformed document: the
// exact rows an import run would hand to the store, without touching a
// database.
type Preview struct {
	Sessions []SessionRow `json:"sessions" yaml:"sessions"`
	Messages []MessageRow `json:"messages" yaml:"messages"`
}

// PreviewEncoder renders a Preview in one output format
type PreviewEncoder interface {
	Encode(p *Preview, w io.Writer) error
}

// NewPreviewEncoder creates an encoder for the given format
func NewPreviewEncoder(format string) (PreviewEncoder, error) {
	switch format {
	case "json":
		return &jsonPreviewEncoder{}, nil
	case "yaml":
		return &yamlPreviewEncoder{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: json, yaml)", format)
	}
}

type jsonPreviewEncoder struct{}

func (e *jsonPreviewEncoder) Encode(p *Preview, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

type yamlPreviewEncoder struct{}

func (e *yamlPreviewEncoder) Encode(p *Preview, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(p)
}
