package rtbl

import (
	"fmt"

	"github.com/dzr01145/chatbot/enum/rterr"
	"github.com/dzr01145/chatbot/lib/common"
	"github.com/dzr01145/chatbot/mode/rt/rtreq"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/dzr01145/chatbot/pkg/safety/store"
	"github.com/gin-gonic/gin"
)

func GetKnowledge(c *gin.Context, u *rtutil.RtUtil, req *rtreq.GetKnowledgeReq, res *rtres.GetKnowledgeRes) bool {
	kb := u.Store.Knowledge()
	data := (&rtres.GetKnowledgeResData{}).Of(&kb)
	return OK(c, data, res)
}

func AddKnowledge(c *gin.Context, u *rtutil.RtUtil, req *rtreq.AddKnowledgeReq, res *rtres.AddKnowledgeRes) bool {
	item := store.KnowledgeItem{
		Question: req.Question,
		Answer:   req.Answer,
		Keywords: req.Keywords,
	}
	if err := u.Store.AddKnowledgeItem(req.CategoryID, item, common.GetTodayStr()); err != nil {
		if u.Store.HasCategory(req.CategoryID) {
			u.Logger.Error(fmt.Sprintf("Failed to add knowledge item: %s", err.Error()))
			return InternalServerErrorCustomMsg(c, res, "system", rterr.KnowledgeSaveFailed.Code(), rterr.KnowledgeSaveFailed.Msg())
		}
		return NotFoundCustomMsg(c, res, "category_id", rterr.ValidCategory.Code(), rterr.ValidCategory.Msg())
	}
	data := rtres.AddKnowledgeResData{}
	return OK(c, &data, res)
}
