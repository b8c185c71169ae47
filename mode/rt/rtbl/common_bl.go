package rtbl

import (
	"net/http"
	"reflect"

	"github.com/dzr01145/chatbot/enum/rterr"
	"github.com/dzr01145/chatbot/mode/rt/rtres"
	"github.com/gin-gonic/gin"
)

func OK[DATA any, RES any](c *gin.Context, data *DATA, res *RES) bool {
	v := reflect.ValueOf(res).Elem()
	field := v.FieldByName("Data")
	if field.IsValid() && field.CanSet() {
		field.Set(reflect.ValueOf(*data))
	}
	c.JSON(http.StatusOK, res)
	return true
}

func BadRequest[T any](c *gin.Context, res *T) bool {
	c.JSON(http.StatusBadRequest, res)
	return false
}

func BadRequestWithSpecErr[T any](c *gin.Context, res *T) bool {
	SetErrInRes(res, "system", rterr.BadRequest.Code(), rterr.BadRequest.Msg())
	c.JSON(http.StatusBadRequest, res)
	return false
}

func BadRequestCustomMsg[T any](c *gin.Context, res *T, field string, code uint16, msg string) bool {
	return errRes(c, res, http.StatusBadRequest, field, code, msg)
}

func Unauthorized[T any](c *gin.Context, res *T) bool {
	return errRes(c, res, http.StatusUnauthorized, "auth", rterr.Unauthorized.Code(), rterr.Unauthorized.Msg())
}

func NotFound[T any](c *gin.Context, res *T) bool {
	return errRes(c, res, http.StatusNotFound, "system", rterr.NotFound.Code(), rterr.NotFound.Msg())
}

func NotFoundCustomMsg[T any](c *gin.Context, res *T, field string, code uint16, msg string) bool {
	return errRes(c, res, http.StatusNotFound, field, code, msg)
}

func InternalServerError[T any](c *gin.Context, res *T) bool {
	return errRes(c, res, http.StatusInternalServerError, "system", rterr.InternalServerError.Code(), rterr.InternalServerError.Msg())
}

func InternalServerErrorCustomMsg[T any](c *gin.Context, res *T, field string, code uint16, msg string) bool {
	return errRes(c, res, http.StatusInternalServerError, field, code, msg)
}

func ServiceUnavailableCustomMsg[T any](c *gin.Context, res *T, field string, code uint16, msg string) bool {
	return errRes(c, res, http.StatusServiceUnavailable, field, code, msg)
}

func SetErrInRes[T any](res *T, field string, code uint16, msg string) {
	v := reflect.ValueOf(res).Elem()
	f := v.FieldByName("Errors")
	if f.IsValid() && f.CanSet() {
		f.Set(reflect.ValueOf([]rtres.Err{{Field: field, Code: code, Message: msg}}))
	}
}

func errRes[T any](c *gin.Context, res *T, status int, field string, code uint16, msg string) bool {
	v := reflect.ValueOf(res).Elem()
	f := v.FieldByName("Errors")
	if f.IsValid() && f.CanSet() {
		f.Set(reflect.ValueOf([]rtres.Err{{Field: field, Code: code, Message: msg}}))
	}
	c.JSON(status, res)
	return false
}
