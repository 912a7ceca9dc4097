package mock

import "strings"

// EchoText derives the text the mock echoes back for a request document. It
// is total: every JSON document maps to some string.
//
// Precedence:
//  1. an "input" field (string, item array, or any other value),
//  2. otherwise a "messages" array, where the last user message wins,
//  3. otherwise the canonical rendering of the whole document.
func EchoText(doc Value) string {
	if input, ok := doc.Field("input"); ok {
		return inputText(input)
	}
	if msgs, ok := doc.Field("messages"); ok {
		return messagesText(msgs)
	}
	return doc.JSON()
}

func inputText(input Value) string {
	switch input.Kind {
	case KindString:
		return input.Str
	case KindArray:
		frags := make([]string, 0, len(input.Arr))
		for _, item := range input.Arr {
			switch item.Kind {
			case KindString:
				frags = append(frags, item.Str)
			case KindObject:
				// Message-style items carry parts under "content"; bare
				// content parts carry the text themselves.
				if content, ok := item.Field("content"); ok && content.Kind == KindArray {
					frags = append(frags, partsText(content.Arr)...)
					continue
				}
				if isTextPart(item) {
					frags = append(frags, textField(item))
				}
			}
		}
		return strings.Join(frags, "\n")
	default:
		return input.JSON()
	}
}

func messagesText(msgs Value) string {
	if msgs.Kind != KindArray || len(msgs.Arr) == 0 {
		return ""
	}

	target, found := Value{}, false
	for _, m := range msgs.Arr {
		if role, ok := m.Field("role"); ok && role.Kind == KindString && role.Str == "user" {
			target, found = m, true
		}
	}
	if !found {
		target = msgs.Arr[len(msgs.Arr)-1]
	}

	content, ok := target.Field("content")
	if !ok {
		return ""
	}
	switch content.Kind {
	case KindArray:
		return strings.Join(partsText(content.Arr), "\n")
	case KindString:
		return content.Str
	default:
		return ""
	}
}

// partsText collects the textual fragments of a content-part list: plain
// strings contribute themselves, {"type": "text"} objects contribute their
// text field, everything else (images, tool calls, ...) is skipped.
func partsText(parts []Value) []string {
	frags := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p.Kind {
		case KindString:
			frags = append(frags, p.Str)
		case KindObject:
			if isTextPart(p) {
				frags = append(frags, textField(p))
			}
		}
	}
	return frags
}

func isTextPart(obj Value) bool {
	t, ok := obj.Field("type")
	return ok && t.Kind == KindString && t.Str == "text"
}

// textField returns the part's text, or "" when the field is missing or not
// a string.
func textField(obj Value) string {
	if t, ok := obj.Field("text"); ok && t.Kind == KindString {
		return t.Str
	}
	return ""
}
