// internal/gamedata/loader.go
package gamedata

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns documents into bytes and back.
type Codec interface {
	Marshal(doc Document) ([]byte, error)
	Unmarshal(data []byte) (Document, error)
}

// JSONCodec stores documents as indented JSON.
type JSONCodec struct{}

func (JSONCodec) Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "\t")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json document: %w", err)
	}
	return data, nil
}

func (JSONCodec) Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("json document is not an object")
	}
	return doc, nil
}

// MsgpackCodec stores documents as MessagePack.
type MsgpackCodec struct{}

func (MsgpackCodec) Marshal(doc Document) ([]byte, error) {
	data, err := msgpack.Marshal(map[string]any(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal msgpack document: %w", err)
	}
	return data, nil
}

func (MsgpackCodec) Unmarshal(data []byte) (Document, error) {
	var m map[string]any
	if err := msgpack.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal msgpack document: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("msgpack document is not a map")
	}
	return Document(m), nil
}

// CodecFor picks a codec from the file extension.
func CodecFor(path string) (Codec, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSONCodec{}, nil
	case ".msgpack", ".mp":
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("unsupported document extension %q", filepath.Ext(path))
	}
}

// LoadFile reads and decodes a document from disk.
func LoadFile(path string) (Document, error) {
	codec, err := CodecFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return codec.Unmarshal(data)
}

// SaveFile encodes a document and writes it to disk, creating parent directories.
func SaveFile(path string, doc Document) error {
	codec, err := CodecFor(path)
	if err != nil {
		return err
	}
	data, err := codec.Marshal(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create save directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}
