package hv1

import (
	"github.com/dzr01145/chatbot/mode/rt/rtbl"
	"github.com/dzr01145/chatbot/mode/rt/rtreq"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

// @Tags api Chat
// @Router /api/chat [post]
// @Summary 労働安全チャット
// @Description - ナレッジベース検索の結果をコンテキストとして添え、設定済みのAIプロバイダーで回答を生成する
// @Accept application/json
// @Produce application/json
// @Param json body rtreq.ChatReq true "json"
// @Success 200 {object} rtres.ChatRes "Success"
// @Failure 400 {object} rtres.ErrRes "Validation Error"
// @Failure 500 {object} rtres.ErrRes "Internal Server Error"
// @Failure 503 {object} rtres.ErrRes "AI Provider Unavailable"
func Chat(c *gin.Context, u *rtutil.RtUtil) {
	if req, res, ok := rtreq.ChatReqBind(c, u); ok {
		rtbl.Chat(c, u, &req, &res)
	} else {
		rtbl.BadRequest(c, &res)
	}
}
