package intent

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences trims whitespace and removes a single leading ```json marker and
// a single trailing ``` marker. Anything else is returned unchanged.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, FenceOpen) {
		s = strings.TrimSpace(s[len(FenceOpen):])
	}
	if strings.HasSuffix(s, FenceClose) {
		s = strings.TrimSpace(s[:len(s)-len(FenceClose)])
	}
	return s
}

// Extract parses the model output into a Result. Formatting wrappers are
// tolerated; broken JSON is not repaired.
func Extract(raw string) (Result, error) {
	cleaned := StripFences(raw)

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return Result{}, &ExtractError{Kind: ErrMalformedResponse, Raw: raw, Err: err}
	}
	if obj == nil {
		return Result{}, &ExtractError{Kind: ErrMalformedResponse, Raw: raw, Err: fmt.Errorf("response is null")}
	}

	name, err := readIntent(obj["intent"])
	if err != nil {
		return Result{}, &ExtractError{Kind: ErrMalformedResponse, Raw: raw, Err: err}
	}
	if strings.TrimSpace(name) == "" {
		return Result{}, &ExtractError{Kind: ErrMissingIntent, Raw: raw}
	}

	slots, err := readSlots(obj["slots"])
	if err != nil {
		return Result{}, &ExtractError{Kind: ErrMalformedResponse, Raw: raw, Err: err}
	}

	return Result{Intent: name, Slots: slots}, nil
}

// readIntent returns "" for an absent or null intent.
func readIntent(raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", nil
	}
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return "", fmt.Errorf("intent is not a string: %s", raw)
	}
	return name, nil
}

// readSlots accepts an object; absent or null yields an empty map. String
// values are taken as-is, null values are dropped and any other value keeps
// its JSON text.
func readSlots(raw json.RawMessage) (Slots, error) {
	slots := Slots{}
	if isNull(raw) {
		return slots, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("slots is not an object: %s", raw)
	}

	for k, v := range fields {
		if isNull(v) {
			continue
		}
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			slots[k] = s
			continue
		}
		slots[k] = string(v)
	}
	return slots, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
