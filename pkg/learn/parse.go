package learn

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ParseResponse turns the model's text into a Result. A ```json fence
// around the object is stripped. A missing or non-array "articles" or
// "videos" becomes an empty list and entries that are not objects are
// dropped. Anything that is not a JSON object is ErrMalformedResponse.
func ParseResponse(text string) (*Result, error) {
	s := strings.TrimSpace(text)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = strings.TrimSuffix(rest, "```")
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &top); err != nil || top == nil {
		return nil, fmt.Errorf("%w (%d bytes)", ErrMalformedResponse, len(text))
	}
	return &Result{
		Articles: list[Article](top["articles"]),
		Videos:   list[Video](top["videos"]),
	}, nil
}

func list[T any](raw json.RawMessage) []T {
	out := []T{}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return out
	}
	for _, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var v T
		if err := json.Unmarshal(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
