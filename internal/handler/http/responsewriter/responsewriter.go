// Package responsewriter observes the status code and body size of a
// response as it is written, for use by logging and metrics middleware.
package responsewriter

import "net/http"

// ResponseWriter decorates an http.ResponseWriter and remembers what went
// over the wire. The zero value is not usable; construct with Wrap.
type ResponseWriter struct {
	http.ResponseWriter

	status int
	bytes  int
	wrote  bool
}

// Wrap decorates w. The status defaults to 200 until WriteHeader is called,
// matching net/http's implicit behavior.
func Wrap(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{ResponseWriter: w, status: http.StatusOK}
}

// WriteHeader forwards the first status code and ignores any later calls,
// the same way net/http warns on duplicate WriteHeader.
func (w *ResponseWriter) WriteHeader(status int) {
	if w.wrote {
		return
	}
	w.wrote = true
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *ResponseWriter) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// StatusCode reports the status sent to the client.
func (w *ResponseWriter) StatusCode() int { return w.status }

// BytesWritten reports the body size sent to the client.
func (w *ResponseWriter) BytesWritten() int { return w.bytes }

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *ResponseWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }
