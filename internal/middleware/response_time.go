package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// timedWriter injects the X-Response-Time header just before the first
// byte of the response goes out. After that point headers are frozen, so
// it cannot be set after c.Next() returns.
type timedWriter struct {
	gin.ResponseWriter
	start   time.Time
	stamped bool
}

func (w *timedWriter) stamp() {
	if w.stamped {
		return
	}
	w.stamped = true
	elapsed := float64(time.Since(w.start).Microseconds()) / 1000.0
	w.Header().Set("X-Response-Time", strconv.FormatFloat(elapsed, 'f', 2, 64)+"ms")
}

func (w *timedWriter) WriteHeader(code int) {
	w.stamp()
	w.ResponseWriter.WriteHeader(code)
}

func (w *timedWriter) Write(b []byte) (int, error) {
	w.stamp()
	return w.ResponseWriter.Write(b)
}

func (w *timedWriter) WriteString(s string) (int, error) {
	w.stamp()
	return w.ResponseWriter.WriteString(s)
}

// ResponseTime reports elapsed milliseconds on every response, success
// or failure.
func ResponseTime() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer = &timedWriter{ResponseWriter: c.Writer, start: time.Now()}
		c.Next()
	}
}
