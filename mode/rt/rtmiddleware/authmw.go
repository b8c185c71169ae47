package rtmiddleware

import (
	"crypto/subtle"
	"net/http"
	"slices"

	"github.com/dzr01145/chatbot/enum/rterr"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

const UTIL_KEY = "RUTIL"

// AuthMiddleware は、リクエストごとに RtUtil を注入し、
// BASIC_AUTH_USER / BASIC_AUTH_PASSWORD が設定されている場合のみ
// Basic認証を要求します。未設定なら認証なしで公開されます。
func AuthMiddleware(u *rtutil.RtUtil, basicUser, basicPassword string) gin.HandlerFunc {
	authSkipTargets := []string{
		"/api/health",
	}
	enabled := basicUser != "" && basicPassword != ""
	return func(c *gin.Context) {
		c.Set(UTIL_KEY, u)
		if !enabled || slices.Contains(authSkipTargets, c.FullPath()) {
			c.Next()
			return
		}
		user, password, ok := c.Request.BasicAuth()
		if !ok ||
			subtle.ConstantTimeCompare([]byte(user), []byte(basicUser)) != 1 ||
			subtle.ConstantTimeCompare([]byte(password), []byte(basicPassword)) != 1 {
			c.Header("WWW-Authenticate", `Basic realm="Restricted"`)
			authFailed(c, &rtres.DummyRes{})
			return
		}
		c.Next()
	}
}

func authFailed(c *gin.Context, res *rtres.DummyRes) {
	res.Errors = []rtres.Err{{Field: "auth", Code: rterr.Unauthorized.Code(), Message: rterr.Unauthorized.Msg()}}
	c.JSON(http.StatusUnauthorized, res)
	c.Abort()
}
