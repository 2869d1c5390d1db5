package handlers

import (
	"net/http"

	"bitbucket.org/jkcars/booking-hub/internal/booking"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

// PrepareSession loads the booking session addressed by the :id path
// segment. A missing or expired session aborts with 404; the client starts
// over with a fresh configuration.
func PrepareSession(sessions *booking.SessionStore) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.Params.ByName("id")

		session, err := sessions.Find(ctx.Request.Context(), id)
		if err != nil {
			web.HandleError(ctx, http.StatusNotFound, "Failed to find booking session", err)
			ctx.Abort()
			return
		}

		ctx.Set(SessionKey, session)
	}
}
