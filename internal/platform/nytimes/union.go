package nytimes

import (
	"github.com/goccy/go-json"
)

// Headline is either a plain string or {"main": "..."} on the wire.
// It is normalized to a single string at the decode boundary so nothing
// downstream branches on the runtime shape.
type Headline string

func (h *Headline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*h = Headline(s)
		return nil
	}
	var obj struct {
		Main string `json:"main"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*h = Headline(obj.Main)
	return nil
}

// Byline is either a plain string or {"original": "..."} on the wire.
type Byline string

func (b *Byline) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Byline(s)
		return nil
	}
	var obj struct {
		Original string `json:"original"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*b = Byline(obj.Original)
	return nil
}
