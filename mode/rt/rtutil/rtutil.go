package rtutil

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/dzr01145/chatbot/config"
	"github.com/dzr01145/chatbot/enum/rterr"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/dzr01145/chatbot/pkg/safety/providers"
	"github.com/dzr01145/chatbot/pkg/safety/search"
	"github.com/dzr01145/chatbot/pkg/safety/store"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/iancoleman/strcase"
	"go.uber.org/zap"
)

// RtUtil は、ハンドラーとビジネスロジックが共有する依存の運搬役です。
type RtUtil struct {
	Logger   *zap.Logger
	Env      *config.Env
	Store    *store.Store
	Searcher *search.Searcher
	Provider providers.ProviderConfig
	LLM      model.ToolCallingChatModel
	Timeout  time.Duration
}

var (
	RegexpChecker = func(str string, exp string) bool {
		re := regexp.MustCompile(exp)
		return re.MatchString(str)
	}
	NotEmptyStrArrValidator = func() validator.Func {
		return func(fl validator.FieldLevel) bool {
			i := fl.Field().Interface()
			if i == nil {
				return true
			}
			if f, ok := i.([]string); ok {
				return len(f) != 0
			}
			return false
		}
	}
)

func (u *RtUtil) GetRequestID(c *gin.Context) (requestID *string) {
	rID := ""
	requestID = &rID
	v, ok := c.Get("RequestID")
	if !ok || v == nil {
		*requestID = ""
		return
	}
	rID, ok = v.(string)
	if !ok {
		*requestID = ""
		return
	}
	requestID = &rID
	return
}

func (u *RtUtil) GetValidationErrs(err error) []rtres.Err {
	rtn := []rtres.Err{}
	if err != nil {
		if ve, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range ve {
				code, msg := CreateCodeMsg(fe.Tag(), fe.Param())
				rtn = append(rtn, rtres.Err{Field: strcase.ToSnake(fe.Field()), Code: code, Message: msg})
			}
		} else {
			rtn = append(rtn, rtres.Err{Field: "system", Code: 9999, Message: "Any of the parameters sent may have fatal formatting errors."})
		}
	}
	return rtn
}

func CreateCodeMsg(tag string, param string) (uint16, string) {
	switch tag {
	case "required":
		return rterr.Required.Code(), rterr.Required.Msg()
	case "min":
		return rterr.Min.Code(), fmt.Sprintf(rterr.Min.Msg(), param)
	case "max":
		return rterr.Max.Code(), fmt.Sprintf(rterr.Max.Msg(), param)
	case "oneof":
		return rterr.Oneof.Code(), fmt.Sprintf(rterr.Oneof.Msg(), strings.ReplaceAll(param, " ", ", "))
	case "not_empty_str_arr":
		return rterr.NotEmptyStrArr.Code(), rterr.NotEmptyStrArr.Msg()
	}
	return 0, ""
}

func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("not_empty_str_arr", NotEmptyStrArrValidator())
	}
}
