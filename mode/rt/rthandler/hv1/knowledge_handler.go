package hv1

import (
	"github.com/dzr01145/chatbot/mode/rt/rtbl"
	"github.com/dzr01145/chatbot/mode/rt/rtreq"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

// @Tags api Knowledge
// @Router /api/knowledge [get]
// @Summary ナレッジベース一覧取得
// @Produce application/json
// @Success 200 {object} rtres.GetKnowledgeRes "Success"
// @Failure 500 {object} rtres.ErrRes "Internal Server Error"
func GetKnowledge(c *gin.Context, u *rtutil.RtUtil) {
	if req, res, ok := rtreq.GetKnowledgeReqBind(c, u); ok {
		rtbl.GetKnowledge(c, u, &req, &res)
	} else {
		rtbl.BadRequest(c, &res)
	}
}

// @Tags api Knowledge
// @Router /api/knowledge [post]
// @Summary ナレッジ追加
// @Description - 指定カテゴリーへQ&A形式のナレッジを1件追記する
// @Accept application/json
// @Produce application/json
// @Param json body rtreq.AddKnowledgeReq true "json"
// @Success 200 {object} rtres.AddKnowledgeRes "Success"
// @Failure 400 {object} rtres.ErrRes "Validation Error"
// @Failure 404 {object} rtres.ErrRes "Category Not Found"
// @Failure 500 {object} rtres.ErrRes "Internal Server Error"
func AddKnowledge(c *gin.Context, u *rtutil.RtUtil) {
	if req, res, ok := rtreq.AddKnowledgeReqBind(c, u); ok {
		rtbl.AddKnowledge(c, u, &req, &res)
	} else {
		rtbl.BadRequest(c, &res)
	}
}
