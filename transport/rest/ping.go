package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PingHandler interface {
	Ping(ctx *gin.Context)
}

type pingHandler struct{}

func NewPingHandler() PingHandler {
	return &pingHandler{}
}

func (that *pingHandler) Ping(ctx *gin.Context) {
	ctx.String(http.StatusOK, "pong")
}
