package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

type timingWriter struct {
	gin.ResponseWriter
	start time.Time
}

func (w *timingWriter) WriteHeader(code int) {
	if !w.Written() {
		elapsed := time.Since(w.start).Seconds()
		w.Header().Set("X-Process-Time", strconv.FormatFloat(elapsed, 'f', 4, 64))
	}
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger logs every request with method, path, status and elapsed time,
// and injects the elapsed time as an X-Process-Time response header.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Writer = &timingWriter{ResponseWriter: c.Writer, start: start}

		c.Next()

		elapsed := time.Since(start)
		log.Printf("%s %s - Status: %d - Time: %.4fs",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), elapsed.Seconds())
	}
}
