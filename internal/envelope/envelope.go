// Package envelope models the {success, ...} wire shape used by every API
// response as a tagged result instead of ad-hoc maps in handlers.
package envelope

import "encoding/json"

// Result is either success-with-payload or failure-with-message. The zero
// value marshals as a bare failure.
type Result struct {
	ok      bool
	payload map[string]any
	message string
}

// OK returns a success result carrying the given payload fields.
func OK(payload map[string]any) Result {
	return Result{ok: true, payload: payload}
}

// Fail returns a failure result with an opaque, client-safe message.
func Fail(message string) Result {
	return Result{message: message}
}

func (r Result) Success() bool { return r.ok }

func (r Result) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.payload)+2)
	for k, v := range r.payload {
		m[k] = v
	}
	m["success"] = r.ok
	if !r.ok {
		m["error"] = r.message
	}
	return json.Marshal(m)
}
