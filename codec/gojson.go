package codec

import gojson "github.com/goccy/go-json"

// GoJSON encodes payloads with github.com/goccy/go-json and is the Default.
// Snapshots written with it carry the header name "go-json"; their payload
// bytes are valid input for JSON as well.
type GoJSON struct{}

func (GoJSON) Name() string                       { return "go-json" }
func (GoJSON) Marshal(v any) ([]byte, error)      { return gojson.Marshal(v) }
func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
