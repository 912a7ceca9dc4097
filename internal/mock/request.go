package mock

import "encoding/json"

// Request wraps a parsed create-response body. Lookups are tolerant: missing
// or mistyped fields fall back to defaults instead of failing the request.
type Request struct {
	Doc Value
}

// ParseRequest decodes a request body. A non-nil error is the JSON parse
// error, surfaced to clients verbatim.
func ParseRequest(body []byte) (*Request, error) {
	var doc Value
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, err
	}
	return &Request{Doc: doc}, nil
}

// EmptyRequest is the request used when a body is ignored outright (non-JSON
// content type): the empty JSON object.
func EmptyRequest() *Request {
	return &Request{Doc: Value{Kind: KindObject, Obj: map[string]Value{}}}
}

// Model returns the requested model name, or def when the field is absent or
// not a string.
func (r *Request) Model(def string) string {
	if f, ok := r.Doc.Field("model"); ok && f.Kind == KindString {
		return f.Str
	}
	return def
}

// Stream reports whether the client asked for a streamed response. The flag
// is accepted for schema compatibility and otherwise ignored.
func (r *Request) Stream() bool {
	f, ok := r.Doc.Field("stream")
	return ok && f.Kind == KindBool && f.Bool
}

// EchoText extracts the text echoed back for this request.
func (r *Request) EchoText() string {
	return EchoText(r.Doc)
}

// Overrides are per-request simulation knobs carried in a "mock" object.
// Pointer fields distinguish "not sent" from zero.
type Overrides struct {
	BaseDelayMs     *int
	JitterMs        *int
	PerTokenDelayMs *int
	TTFTMinMs       *int
	TTFTMaxMs       *int
	ErrorRate       *float64
	ErrorMode       *string // "429" | "500" | "mixed"
}

// Overrides returns the request's simulation overrides, or nil when the
// "mock" field is absent or not an object.
func (r *Request) Overrides() *Overrides {
	m, ok := r.Doc.Field("mock")
	if !ok || m.Kind != KindObject {
		return nil
	}

	o := &Overrides{
		BaseDelayMs:     intField(m, "base_delay_ms"),
		JitterMs:        intField(m, "jitter_ms"),
		PerTokenDelayMs: intField(m, "per_token_delay_ms"),
		TTFTMinMs:       intField(m, "ttft_min_ms"),
		TTFTMaxMs:       intField(m, "ttft_max_ms"),
	}
	if f, ok := m.Field("error_rate"); ok {
		if rate, ok := f.Float(); ok {
			o.ErrorRate = &rate
		}
	}
	if f, ok := m.Field("error_mode"); ok && f.Kind == KindString && f.Str != "" {
		mode := f.Str
		o.ErrorMode = &mode
	}
	return o
}

func intField(obj Value, name string) *int {
	f, ok := obj.Field(name)
	if !ok {
		return nil
	}
	n, ok := f.Int()
	if !ok {
		return nil
	}
	return &n
}
