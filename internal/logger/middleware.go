package logger

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Middleware logs one API line per request once the handler returns.
func (l *Logger) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				elapsed := float64(time.Since(start).Microseconds()) / 1000
				duration := fmt.Sprintf("%.3f ms - %d bytes", elapsed, ww.BytesWritten())
				if id := middleware.GetReqID(r.Context()); id != "" {
					duration += " req=" + id
				}
				l.LogAPI(r.Method, r.URL.RequestURI(), strconv.Itoa(status), duration)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
