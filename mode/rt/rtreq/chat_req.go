package rtreq

import (
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/dzr01145/chatbot/pkg/safety/providers"
	"github.com/gin-gonic/gin"
)

type ChatReq struct {
	Message             string               `json:"message" binding:"required,max=2000"`
	ConversationHistory []providers.ChatTurn `json:"conversation_history" binding:"omitempty,max=50"`
	Model               string               `json:"model" binding:"max=100"`
	ResponseLength      string               `json:"response_length" binding:"omitempty,oneof=short long"`
}

func ChatReqBind(c *gin.Context, u *rtutil.RtUtil) (ChatReq, rtres.ChatRes, bool) {
	ok := true
	req := ChatReq{}
	res := rtres.ChatRes{Errors: []rtres.Err{}}
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Errors = u.GetValidationErrs(err)
		ok = false
	}
	return req, res, ok
}
