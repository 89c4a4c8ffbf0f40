package http

import "net/http"

// responseWriter wraps http.ResponseWriter to capture the status code and
// the number of body bytes written, for use by the logging middleware.
type responseWriter struct {
	http.ResponseWriter

	status int
	size   int
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	size, err := w.ResponseWriter.Write(b)
	w.size += size
	return size, err
}

func (w *responseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
