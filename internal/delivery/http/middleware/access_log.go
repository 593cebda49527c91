package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// AccessLogMiddleware tags every request with an id, echoed in the response
// header, and logs one line per request once the handler chain returns.
type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(RequestIDHeader, rid)

		err := c.Next()

		dur := time.Since(start)
		status := c.Response().StatusCode()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] access rid=%s ip=%s method=%s path=%s status=%d latency=%s resp_bytes=%d ua=%q",
				rid, c.IP(), c.Method(), c.OriginalURL(), status, dur, len(c.Response().Body()), c.Get("User-Agent"),
			)
		}

		return err
	}
}
