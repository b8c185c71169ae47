package rt

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	ipa "github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/joho/godotenv"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/lib/common"
	"github.com/dzr01145/chatbot/mode/rt/rtutil"
	"github.com/dzr01145/chatbot/pkg/safety/providers"
	"github.com/dzr01145/chatbot/pkg/safety/search"
	"github.com/dzr01145/chatbot/pkg/safety/store"

	_ "github.com/dzr01145/chatbot/docs"
	"go.uber.org/zap"
)

type RTFlags struct {
	Dotenv  string
	DataDir string
}

func MainOfRT() {
	flgs := RTFlags{}
	_, cflgs, l, env, err := common.Init("chatbot rt mode", &[]common.Flag{
		{Dst: &flgs.Dotenv, Name: "d", Default: ".env", Doc: "Settings dotenv file path."},
		{Dst: &flgs.DataDir, Name: "data", Default: config.DEFAULT_DATA_DIR, Doc: "Directory of knowledge base json files."},
	})
	if err != nil {
		log.Fatalf("Error: %s", err.Error())
		return
	}
	if err := godotenv.Load(flgs.Dotenv); err != nil {
		l.Warn(fmt.Sprintf("Failed to load env file (%s): %s", flgs.Dotenv, err.Error()))
	}
	l.Info(
		"Set RT flags: ",
		zap.String("e", cflgs.Env),
		zap.String("l", cflgs.LogLevel),
		zap.String("o", cflgs.Output),
		zap.String("d", flgs.Dotenv),
		zap.String("data", flgs.DataDir),
	)
	defer l.Info("REST API server was closed.")

	dataDir := common.GetenvOr("DATA_DIR", flgs.DataDir)
	providerName := common.GetenvOr("AI_PROVIDER", string(providers.ProviderGoogle))
	providerType := providers.ProviderType(strings.ToLower(providerName))
	modelName := common.GetenvOr("AI_MODEL", defaultModelFor(providerType))
	timeoutSec := common.StrToInt(common.GetenvOr("LLM_TIMEOUT_SEC", fmt.Sprintf("%d", config.DEFAULT_LLM_TIMEOUT_SEC)))
	if timeoutSec <= 0 {
		timeoutSec = config.DEFAULT_LLM_TIMEOUT_SEC
	}
	basicUser := os.Getenv("BASIC_AUTH_USER")
	basicPassword := os.Getenv("BASIC_AUTH_PASSWORD")

	providerCfg := providers.ProviderConfig{
		Type:      providerType,
		APIKey:    os.Getenv(providers.EnvKeyFor(providerType)),
		ModelName: modelName,
		MaxTokens: config.DEFAULT_MAX_TOKENS,
	}

	// APIキー未設定でも起動は継続する。チャット時に構成エラーを返す
	llm, err := providers.NewChatModel(context.Background(), providerCfg)
	if err != nil {
		l.Warn(fmt.Sprintf("AI provider is not available: %s", err.Error()))
	} else {
		l.Info(fmt.Sprintf("Using AI provider: %s (%s)", providerCfg.Type, providerCfg.ModelName))
	}

	st := store.Load(dataDir, config.KNOWLEDGE_FILE, config.JIREI_FILE, config.LAWS_FILE, l)

	tok, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		l.Warn(fmt.Sprintf("Failed to build tokenizer: %s", err.Error()))
		tok = nil
	}
	searcher := search.NewSearcher(search.NewExtractor(tok), search.DefaultWeights(), search.DefaultLimits())

	u := &rtutil.RtUtil{
		Logger:   l,
		Env:      env,
		Store:    st,
		Searcher: searcher,
		Provider: providerCfg,
		LLM:      llm,
		Timeout:  time.Duration(timeoutSec) * time.Second,
	}

	if env.Name == config.ProdEnv.Name {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Set("RequestID", uuid.New().String())
		c.Next()
	})
	r.Use(corsFunc())

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{}) })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// チャットUI
	r.Static("/chat", config.PUBLIC_DIR)

	MapRequest(r, u, basicUser, basicPassword)

	port := common.GetenvOr("PORT", fmt.Sprintf("%d", config.REST_PORT))
	if err := r.Run(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Failed to create REST API on port %s.", port)
		return
	}
}

func defaultModelFor(t providers.ProviderType) string {
	switch t {
	case providers.ProviderOpenAI:
		return config.DEFAULT_OPENAI_MODEL
	case providers.ProviderAnthropic:
		return config.DEFAULT_ANTHROPIC_MODEL
	default:
		return config.DEFAULT_GOOGLE_MODEL
	}
}

func corsFunc() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
