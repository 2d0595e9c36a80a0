package http

import (
	"github.com/gin-gonic/gin"
)

// Server bundles the storefront API's engine with its run loop; the
// app layer builds one and drives it from main.
type Server struct {
	Engine *gin.Engine
}

func NewServer(cfg RouterConfig) *Server {
	return &Server{Engine: NewRouter(cfg)}
}

func (s *Server) Run(address string) error {
	return s.Engine.Run(address)
}
