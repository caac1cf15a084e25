package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
)

// JSON encodes and decodes event envelopes
//
//go:generate mockgen -source=codec.go -destination=../mocks/codec.go -package=mocks -mock_names=JSON=MockJSON,JCS=MockJCS
type JSON interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// JCS produces RFC 8785 canonical JSON, used for the raw payload kept on processed logs
type JCS interface {
	Transform(data []byte) ([]byte, error)
	Canonicalize(v interface{}) ([]byte, error)
}

type stdJSON struct{}

// NewJSON returns a JSON codec backed by encoding/json
func NewJSON() JSON {
	return stdJSON{}
}

func (stdJSON) Marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func (stdJSON) Unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

type canonicalJSON struct {
	json JSON
}

// NewJCS returns a canonicalizer that marshals through the given JSON codec
func NewJCS(j JSON) JCS {
	return &canonicalJSON{json: j}
}

func (c *canonicalJSON) Transform(data []byte) ([]byte, error) {
	return jcs.Transform(data)
}

func (c *canonicalJSON) Canonicalize(v interface{}) ([]byte, error) {
	data, err := c.json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}
	return jcs.Transform(data)
}
