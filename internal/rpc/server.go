package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/hongminglow/payload-master/internal/blog"
)

func New(logger *slog.Logger, manager *blog.Manager) *zenrpc.Server {
	rpcService := NewPostService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("post", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "payload-master", nil))

	return rpcServer
}
