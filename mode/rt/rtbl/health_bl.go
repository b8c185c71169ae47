package rtbl

import (
	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/lib/common"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

func GetHealth(c *gin.Context, u *rtutil.RtUtil, res *rtres.GetHealthRes) bool {
	data := rtres.GetHealthResData{
		Status:        "ok",
		Provider:      string(u.Provider.Type),
		Model:         u.Provider.ModelName,
		APIConfigured: u.LLM != nil,
		Version:       config.VERSION,
		Timestamp:     common.GetNowStr(),
	}
	return OK(c, &data, res)
}
