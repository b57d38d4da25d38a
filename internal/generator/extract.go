package generator

import "strings"

// ExtractJSONObject isolates the JSON object substring from a raw model
// response. Models wrap their output in prose and markdown fences often
// enough that this runs on every response: a ```json fence wins, then any
// fence, then the first-{ to last-} slice to drop residual chatter.
//
// This is best-effort. It never fails; if the text holds no braces at all
// the trimmed input comes back unchanged, and the caller's JSON parse is
// what decides whether the result was usable.
func ExtractJSONObject(raw string) string {
	content := strings.TrimSpace(raw)

	if idx := strings.Index(content, "```json"); idx != -1 {
		content = content[idx+len("```json"):]
		if end := strings.Index(content, "```"); end != -1 {
			content = content[:end]
		}
		content = strings.TrimSpace(content)
	} else if idx := strings.Index(content, "```"); idx != -1 {
		content = content[idx+len("```"):]
		if end := strings.Index(content, "```"); end != -1 {
			content = content[:end]
		}
		content = strings.TrimSpace(content)
	}

	first := strings.Index(content, "{")
	last := strings.LastIndex(content, "}")
	if first != -1 && last != -1 && last > first {
		content = content[first : last+1]
	}
	return content
}
