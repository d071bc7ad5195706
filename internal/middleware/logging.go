package middleware

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

// recorder remembers what the handler did with the response. Game
// connections never write a status of their own once upgraded, so the
// upgrade is recorded separately.
type recorder struct {
	http.ResponseWriter
	status   int
	written  int
	upgraded bool
}

func (rec *recorder) WriteHeader(status int) {
	if rec.status == 0 {
		rec.status = status
	}
	rec.ResponseWriter.WriteHeader(status)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if rec.status == 0 {
		rec.status = http.StatusOK
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.written += n
	return n, err
}

func (rec *recorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer cannot be hijacked")
	}
	conn, rw, err := h.Hijack()
	if err == nil {
		rec.upgraded = true
		rec.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

func (rec *recorder) level() slog.Level {
	switch {
	case rec.status >= http.StatusInternalServerError:
		return slog.LevelError
	case rec.status >= http.StatusBadRequest:
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

// Logging logs one line per request once the handler returns. For game
// connections that is when the websocket closes.
func Logging(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &recorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			logger.LogAttrs(r.Context(), rec.level(), "handled request",
				slog.String("method", r.Method),
				slog.String("uri", r.URL.RequestURI()),
				slog.String("remote", r.RemoteAddr),
				slog.Int("status", rec.status),
				slog.Int("bytes", rec.written),
				slog.Bool("upgraded", rec.upgraded),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}
