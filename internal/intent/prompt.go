package intent

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BuildPrompt renders the classification prompt. The query is emitted as a
// JSON string literal so it cannot break out of its delimiters.
func BuildPrompt(query, schemaText string) string {
	return fmt.Sprintf(PromptTemplate, schemaText, quote(query))
}

func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return string(bytes.TrimRight(buf.Bytes(), "\n"))
}
