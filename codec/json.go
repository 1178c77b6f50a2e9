package codec

import "encoding/json"

// JSON encodes payloads with encoding/json. Snapshots written with it carry
// the header name "json".
type JSON struct{}

func (JSON) Name() string                       { return "json" }
func (JSON) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
