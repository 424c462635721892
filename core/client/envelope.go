package client

// Envelope is the wrapper the API puts around every response body.
// Codes 200 and 201 denote success; Data is present only on success
// paths that return a payload.
type Envelope[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    *T     `json:"data,omitempty"`
}

// Success reports whether the envelope code denotes success.
func (e *Envelope[T]) Success() bool {
	return e.Code == 200 || e.Code == 201
}

// Payload returns the carried data and whether it was present. It exists
// so consumers that accept either enveloped or bare values (core/fetch)
// can unwrap without knowing T; see the type guard note in that package.
func (e *Envelope[T]) Payload() (any, bool) {
	if e == nil || e.Data == nil {
		return nil, false
	}
	return *e.Data, true
}
