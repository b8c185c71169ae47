package rtbl

import (
	"errors"
	"fmt"

	"github.com/dzr01145/chatbot/enum/category"
	"github.com/dzr01145/chatbot/enum/rterr"
	"github.com/dzr01145/chatbot/mode/rt/rtreq"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/dzr01145/chatbot/pkg/safety/prompt"
	"github.com/dzr01145/chatbot/pkg/safety/providers"
	"github.com/dzr01145/chatbot/pkg/safety/search"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Chat は、検索 → 開示判定 → コンテキスト整形 → LLM生成 のパイプラインです。
func Chat(c *gin.Context, u *rtutil.RtUtil, req *rtreq.ChatReq, res *rtres.ChatRes) bool {
	results := u.Searcher.Search(u.Store.Documents(), req.Message)
	disclosure := prompt.Classify(req.Message)
	contextText := prompt.BuildContext(results, disclosure)

	knowledgeCount, caseCount, lawCount := countByCategory(results)
	topCategory := ""
	if len(results) > 0 {
		topCategory = results[0].Doc.Category.Label()
	}
	u.Logger.Info("Chat context assembled.",
		zap.String("request_id", *u.GetRequestID(c)),
		zap.Int("knowledge", knowledgeCount),
		zap.Int("cases", caseCount),
		zap.Int("laws", lawCount),
		zap.String("top_category", topCategory),
		zap.Bool("examples_requested", disclosure == prompt.DisclosureExamples),
	)

	llm := u.LLM
	modelName := u.Provider.ModelName
	if req.Model != "" && req.Model != u.Provider.ModelName {
		// リクエスト単位のモデル上書き。プロバイダーは変わらない
		cfg := u.Provider
		cfg.ModelName = req.Model
		override, err := providers.NewChatModel(c.Request.Context(), cfg)
		if err != nil {
			u.Logger.Warn(fmt.Sprintf("Failed to create chat model for override %s: %s", req.Model, err.Error()))
			return chatErr(c, u, res, providers.Classify(err))
		}
		llm = override
		modelName = req.Model
	}

	userTurn := req.Message + contextText + prompt.LengthInstruction(req.ResponseLength)
	reply, err := providers.Generate(c.Request.Context(), llm, prompt.SystemPrompt, req.ConversationHistory, userTurn, u.Timeout)
	if err != nil {
		return chatErr(c, u, res, err)
	}

	data := rtres.ChatResData{
		Reply:          reply,
		KnowledgeUsed:  len(results) > 0,
		KnowledgeCount: knowledgeCount,
		CaseCount:      caseCount,
		LawCount:       lawCount,
		Provider:       string(u.Provider.Type),
		Model:          modelName,
	}
	return OK(c, &data, res)
}

func countByCategory(results []search.Result) (knowledge, cases, laws int) {
	for _, r := range results {
		switch r.Doc.Category {
		case category.CASES:
			cases++
		case category.LAWS:
			laws++
		default:
			knowledge++
		}
	}
	return
}

// chatErr は、分類済みの上流エラーをユーザー向けメッセージへ写像します。
// 生のエラー内容はログにのみ残します。
func chatErr(c *gin.Context, u *rtutil.RtUtil, res *rtres.ChatRes, err error) bool {
	u.Logger.Error(fmt.Sprintf("Chat failed: %s", err.Error()),
		zap.String("request_id", *u.GetRequestID(c)))
	switch {
	case errors.Is(err, providers.ErrNotConfigured):
		msg := fmt.Sprintf(rterr.AiNotConfigured.Msg(), providers.EnvKeyFor(u.Provider.Type))
		return ServiceUnavailableCustomMsg(c, res, "system", rterr.AiNotConfigured.Code(), msg)
	case errors.Is(err, providers.ErrUpstreamRejected):
		return ServiceUnavailableCustomMsg(c, res, "system", rterr.AiUpstreamRejected.Code(), rterr.AiUpstreamRejected.Msg())
	case errors.Is(err, providers.ErrUpstreamTimeout):
		return ServiceUnavailableCustomMsg(c, res, "system", rterr.AiUpstreamTimeout.Code(), rterr.AiUpstreamTimeout.Msg())
	default:
		return InternalServerErrorCustomMsg(c, res, "system", rterr.AiChatFailed.Code(), rterr.AiChatFailed.Msg())
	}
}
