package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"bitbucket.org/jkcars/booking-hub/internal/store"
	"bitbucket.org/jkcars/booking-hub/internal/web"
	"github.com/gin-gonic/gin"
)

const AdminSessionKey string = "adminSession"

// RequireSession gates the admin surface on a store-issued bearer token.
// The token is checked against the session held from the last sign-in, not
// just parsed: the claims inside a JWT are attacker-controlled until the
// store has vouched for the token, so a well-formed self-minted one must
// not pass. Absent or mismatched tokens are a 401, never a crash; the UI
// answers by rendering its sign-in form.
func RequireSession(deps Dependencies) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")

		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			web.HandleError(ctx, http.StatusUnauthorized, "Admin session required", store.ErrNoSession)
			ctx.Abort()
			return
		}

		session, err := deps.Store.CurrentSession()
		if err != nil || subtle.ConstantTimeCompare([]byte(session.AccessToken), []byte(token)) != 1 {
			web.HandleError(ctx, http.StatusUnauthorized, "Admin session invalid or expired", store.ErrNoSession)
			ctx.Abort()
			return
		}

		ctx.Set(AdminSessionKey, session)
	}
}
