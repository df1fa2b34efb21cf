package handler

import (
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader передается клиенту в каждом ответе; входящее значение сохраняется.
const RequestIDHeader = "X-Request-ID"

// RequestLogger пишет в лог каждый обработанный запрос.
func RequestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)
		c.Next()

		level := slog.LevelInfo
		if c.Writer.Status() >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "http request",
			"request_id", reqID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}

var versionPattern = regexp.MustCompile(`^v(\d+)(?:\.(\d+))?$`)

// parseAPIVersion разбирает сегмент пути вида v1 или v2.0.
func parseAPIVersion(s string) (major, minor int, ok bool) {
	m := versionPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	major, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		minor, _ = strconv.Atoi(m[2])
	}
	return major, minor, true
}

// RequireAPIVersion отклоняет запросы, у которых параметр :version не похож на версию API.
func RequireAPIVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, _, ok := parseAPIVersion(c.Param("version")); !ok {
			c.AbortWithStatusJSON(http.StatusNotFound, NewModelErrors("Unsupported API version '%s'.", c.Param("version")))
			return
		}
		c.Next()
	}
}
