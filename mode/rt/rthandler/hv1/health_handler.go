package hv1

import (
	"github.com/dzr01145/chatbot/mode/rt/rtbl"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/gin-gonic/gin"
)

// @Tags api Health
// @Router /api/health [get]
// @Summary ヘルスチェック
// @Description - 使用中のAIプロバイダーと認証情報の有無を返す
// @Produce application/json
// @Success 200 {object} rtres.GetHealthRes "Success"
func GetHealth(c *gin.Context, u *rtutil.RtUtil) {
	res := rtres.GetHealthRes{Errors: []rtres.Err{}}
	rtbl.GetHealth(c, u, &res)
}
