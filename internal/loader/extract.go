package loader

import (
	"fmt"
	"strings"
)

// ExtractJSON cuts the substring between the first `{` and the last `}`
// of raw model output. Models tend to wrap the document in prose or
// markdown fences; everything outside the outermost braces is dropped
// before the text is handed to the decoder.
func ExtractJSON(raw string) ([]byte, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("model output contains no JSON object")
	}
	return []byte(raw[start : end+1]), nil
}
