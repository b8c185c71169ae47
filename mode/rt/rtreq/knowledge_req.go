package rtreq

import (
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

type GetKnowledgeReq struct {
}

func GetKnowledgeReqBind(c *gin.Context, u *rtutil.RtUtil) (GetKnowledgeReq, rtres.GetKnowledgeRes, bool) {
	req := GetKnowledgeReq{}
	res := rtres.GetKnowledgeRes{Errors: []rtres.Err{}}
	return req, res, true
}

type AddKnowledgeReq struct {
	CategoryID string   `json:"category_id" binding:"required,max=100"`
	Question   string   `json:"question" binding:"required,max=500"`
	Answer     string   `json:"answer" binding:"required,max=5000"`
	Keywords   []string `json:"keywords" binding:"required,not_empty_str_arr"`
}

func AddKnowledgeReqBind(c *gin.Context, u *rtutil.RtUtil) (AddKnowledgeReq, rtres.AddKnowledgeRes, bool) {
	ok := true
	req := AddKnowledgeReq{}
	res := rtres.AddKnowledgeRes{Errors: []rtres.Err{}}
	if err := c.ShouldBindJSON(&req); err != nil {
		res.Errors = u.GetValidationErrs(err)
		ok = false
	}
	return req, res, ok
}
