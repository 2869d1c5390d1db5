package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// CurrentTimeFunc is swapped out by tests that need a fixed clock.
var CurrentTimeFunc = time.Now

// StartRequest stamps the arrival time; TraceLog reads it back to report
// the request duration.
func StartRequest(c *gin.Context) {
	c.Set("requestStartTime", CurrentTimeFunc())
}
