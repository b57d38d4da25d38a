package generator

import "testing"

// TestExtractJSONObject_Fenced verifies that a ```json fence with surrounding
// chatter reduces to exactly the object between the delimiters.
func TestExtractJSONObject_Fenced(t *testing.T) {
	in := "Here you go:\n```json\n{\"a\":1}\n```\nEnjoy!"
	if got := ExtractJSONObject(in); got != `{"a":1}` {
		t.Errorf("ExtractJSONObject(fenced) = %q, want %q", got, `{"a":1}`)
	}
}

// TestExtractJSONObject_PlainFence verifies that an untagged fence is used
// when no ```json fence is present.
func TestExtractJSONObject_PlainFence(t *testing.T) {
	in := "Sure thing.\n```\n{\"weeks\": []}\n```\ntrailing notes"
	if got := ExtractJSONObject(in); got != `{"weeks": []}` {
		t.Errorf("ExtractJSONObject(plain fence) = %q, want %q", got, `{"weeks": []}`)
	}
}

// TestExtractJSONObject_Bare verifies a bare object passes through unchanged.
func TestExtractJSONObject_Bare(t *testing.T) {
	if got := ExtractJSONObject(`{"a":1}`); got != `{"a":1}` {
		t.Errorf("ExtractJSONObject(bare) = %q, want %q", got, `{"a":1}`)
	}
}

// TestExtractJSONObject_Chatter verifies leading/trailing prose around an
// unfenced object is stripped via the brace slice.
func TestExtractJSONObject_Chatter(t *testing.T) {
	in := "Here is your program: {\"a\": {\"b\": 2}} Hope it helps!"
	if got := ExtractJSONObject(in); got != `{"a": {"b": 2}}` {
		t.Errorf("ExtractJSONObject(chatter) = %q, want %q", got, `{"a": {"b": 2}}`)
	}
}

// TestExtractJSONObject_NoBraces verifies text with no braces at all comes
// back trimmed but otherwise unchanged — a degenerate case, not an error.
func TestExtractJSONObject_NoBraces(t *testing.T) {
	if got := ExtractJSONObject("  sorry, I cannot help with that  "); got != "sorry, I cannot help with that" {
		t.Errorf("ExtractJSONObject(no braces) = %q", got)
	}
}

// TestExtractJSONObject_Empty verifies empty input stays empty without
// panicking.
func TestExtractJSONObject_Empty(t *testing.T) {
	if got := ExtractJSONObject(""); got != "" {
		t.Errorf("ExtractJSONObject(\"\") = %q, want \"\"", got)
	}
}
