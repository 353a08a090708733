package api

import (
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// websocketHandler handles GET /api/v1/ws. Authentication happened in the
// requireAuth middleware; browsers pass the token as a query parameter
// since they cannot set headers on the handshake.
func (s *Server) websocketHandler(c *gin.Context) {
	opts := &websocket.AcceptOptions{}
	if len(s.cfg.Server.AllowedWSOrigins) > 0 {
		opts.OriginPatterns = s.cfg.Server.AllowedWSOrigins
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		s.logger.Warn("websocket accept failed", "error", err)
		return
	}

	// Blocks for the lifetime of the connection.
	s.manager.HandleConnection(c.Request.Context(), conn)
}
