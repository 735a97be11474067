package middlewares

import (
	"fmt"
	"log"

	"riderservice/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditMiddleware logs every inbound request and appends a matching audit
// row before admission control runs, so rejected requests still show up in
// the traffic record. The row write is best-effort: on failure it warns and
// lets the request proceed.
func AuditMiddleware(logs *repository.LogRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := uuid.NewString()
		c.Set("requestId", reqID)
		c.Header("X-Request-ID", reqID)

		msg := fmt.Sprintf("Incoming %s request: %s", c.Request.Method, c.Request.URL.Path)
		log.Printf("INFO: %s [request_id=%s]", msg, reqID)

		if err := logs.Append("INFO", msg); err != nil {
			log.Printf("WARNING: could not log to DB: %v", err)
		}

		c.Next()
	}
}
