package core

import "net/http"

// Request is a fully validated call, ready to be signed and sent.
type Request struct {
	Op     Operation `json:"op"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	Args   *Args     `json:"-"`
	Signed bool      `json:"signed"`
}

// NewRequest creates a request with an empty argument set.
func NewRequest(op Operation, method, path string) *Request {
	return &Request{
		Op:     op,
		Method: method,
		Path:   path,
		Args:   NewArgs(),
	}
}

// SetArgs replaces the argument set and returns the request for chaining.
func (r *Request) SetArgs(args *Args) *Request {
	r.Args = args
	return r
}

// SetSigned marks the request as needing a signature and returns it for chaining.
func (r *Request) SetSigned(signed bool) *Request {
	r.Signed = signed
	return r
}

// IsWrite reports whether the request changes state on the exchange.
func (r *Request) IsWrite() bool {
	return r.Method == http.MethodPost || r.Method == http.MethodDelete
}
