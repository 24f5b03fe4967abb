package plugin

import (
	"strings"

	"github.com/tidwall/gjson"
)

// inputText coerces the Run call's pipeline data header into the single
// input string the conversion core expects.
//
// Accepted shapes are a string value, a list value whose string items are
// joined with newlines (non-string items are skipped), and a list stream
// drained the same way. Everything else is the boundary type error: the
// only user-visible failure this plugin produces.
func (s *server) inputText(input gjson.Result, head Span) (string, *LabeledError) {
	// "Empty" and any other bare header variant carry no text.
	if input.Type == gjson.String {
		return "", inputTypeError(head)
	}

	if v := input.Get("Value"); v.Exists() {
		// Some serializer versions wrap the value with optional metadata
		// as a two-element array.
		if v.IsArray() {
			if parts := v.Array(); len(parts) > 0 {
				v = parts[0]
			}
		}

		if sv := v.Get("String.val"); sv.Exists() {
			return sv.String(), nil
		}

		if lv := v.Get("List.vals"); lv.Exists() {
			return joinStringValues(lv.Array()), nil
		}

		return "", inputTypeError(head)
	}

	if stream := input.Get("ListStream"); stream.Exists() {
		return s.drainListStream(stream.Get("id").Int(), head)
	}

	return "", inputTypeError(head)
}

// drainListStream consumes Data messages for the given stream id until the
// engine ends it, acknowledging each message. A stream of exactly one
// non-string value is a type error; otherwise string values are joined
// with newlines and other values are skipped.
func (s *server) drainListStream(id int64, head Span) (string, *LabeledError) {
	var values []gjson.Result

	for s.scanner.Scan() {
		msg := gjson.Parse(s.scanner.Text())

		if data := msg.Get("Data"); data.Exists() {
			parts := data.Array()
			if len(parts) == 2 && parts[0].Int() == id {
				if item := parts[1].Get("List"); item.Exists() {
					values = append(values, item)
				}

				// Flow control: the engine withholds further data until
				// the previous message is acknowledged.
				err := s.send(ackMessage{ID: id})
				if err != nil {
					return "", &LabeledError{
						Msg:    err.Error(),
						Labels: []ErrorLabel{{Text: "stream ack failed", Span: head}},
						Inner:  []LabeledError{},
					}
				}
			}

			continue
		}

		if end := msg.Get("End"); end.Exists() && end.Int() == id {
			break
		}
	}

	if len(values) == 1 && !values[0].Get("String.val").Exists() {
		return "", inputTypeError(head)
	}

	return joinStringValues(values), nil
}

// joinStringValues joins the string items of a value list with newline
// separators, skipping items of any other type.
func joinStringValues(values []gjson.Result) string {
	fragments := make([]string, 0, len(values))

	for _, v := range values {
		if sv := v.Get("String.val"); sv.Exists() {
			fragments = append(fragments, sv.String())
		}
	}

	return strings.Join(fragments, "\n")
}

// inputTypeError is the boundary error for non-text pipeline input.
func inputTypeError(head Span) *LabeledError {
	return &LabeledError{
		Msg: "Input must be a string",
		Labels: []ErrorLabel{
			{Text: "expected string input", Span: head},
		},
		Inner: []LabeledError{},
	}
}
