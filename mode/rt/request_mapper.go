package rt

import (
	"net/http"

	"github.com/dzr01145/chatbot/mode/rt/rthandler/hv1"
	"github.com/dzr01145/chatbot/mode/rt/rtmiddleware"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

func MapRequest(r *gin.Engine, u *rtutil.RtUtil, basicUser, basicPassword string) {
	rtutil.RegisterValidations()

	/**********************
	 * api mapping
	 **********************/
	api := r.Group("/api")
	api.Use(rtmiddleware.AuthMiddleware(u, basicUser, basicPassword))
	{

		// Chat
		api.POST("/chat", func(c *gin.Context) {
			u, ok := GetUtil(c)
			if !ok {
				c.JSON(http.StatusForbidden, nil)
				return
			}
			hv1.Chat(c, u)
		})

		// Knowledge
		knowledge := api.Group("/knowledge")
		knowledge.GET("", func(c *gin.Context) {
			u, ok := GetUtil(c)
			if !ok {
				c.JSON(http.StatusForbidden, nil)
				return
			}
			hv1.GetKnowledge(c, u)
		})
		knowledge.POST("", func(c *gin.Context) {
			u, ok := GetUtil(c)
			if !ok {
				c.JSON(http.StatusForbidden, nil)
				return
			}
			hv1.AddKnowledge(c, u)
		})

		// Health
		api.GET("/health", func(c *gin.Context) {
			u, ok := GetUtil(c)
			if !ok {
				c.JSON(http.StatusForbidden, nil)
				return
			}
			hv1.GetHealth(c, u)
		})

	}

}

func GetUtil(c *gin.Context) (*rtutil.RtUtil, bool) {
	v, ok := c.Get(rtmiddleware.UTIL_KEY)
	if !ok {
		return nil, false
	}
	u, ok := v.(*rtutil.RtUtil)
	if !ok {
		return nil, false
	}
	return u, true
}
