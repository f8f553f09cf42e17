package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// HeaderProcessingTime carries the handler latency in microseconds.
const HeaderProcessingTime = "X-Processing-Time-Micros"

// ObserveFunc receives the method, status and latency of a finished request.
type ObserveFunc func(method string, status int, elapsed time.Duration)

// Timing adds the X-Processing-Time-Micros header to every response and
// reports each request to observe, which may be nil.
func Timing(observe ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapped := &timingResponseWriter{
				ResponseWriter: w,
				start:          time.Now(),
				status:         http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			if observe != nil {
				observe(r.Method, wrapped.status, time.Since(wrapped.start))
			}
		})
	}
}

type timingResponseWriter struct {
	http.ResponseWriter
	start       time.Time
	status      int
	wroteHeader bool
}

func (w *timingResponseWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		micros := time.Since(w.start).Microseconds()
		w.Header().Set(HeaderProcessingTime, strconv.FormatInt(micros, 10))
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}
