package tcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"

	"github.com/duongnt/taskchat/internal/logging"
	"github.com/duongnt/taskchat/internal/protocol"
	"github.com/google/uuid"
)

// handleConn owns one client connection: read a frame, dispatch it, write
// the response, repeat. The loop ends when the peer closes the connection or
// an unrecoverable read/write error occurs; a malformed frame only produces
// an error response.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	log := s.logger.With("conn_id", uuid.NewString(), "remote", conn.RemoteAddr().String())
	log.Info(ctx, "client connected")

	reader := bufio.NewReader(conn)

	for {
		frame, err := protocol.ReadFrame(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info(ctx, "client disconnected")
				return
			}
			log.Error(ctx, "connection read error", "error", err)
			return
		}

		var req protocol.Request
		if err := json.Unmarshal(frame, &req); err != nil {
			// one bad frame does not kill the session
			log.Warn(ctx, "malformed request", "error", err)
			if err := protocol.WriteFrame(conn, protocol.Error("Invalid request")); err != nil {
				log.Error(ctx, "connection write error", "error", err)
				return
			}
			continue
		}

		resp := s.dispatch(ctx, log, &req)

		if err := protocol.WriteFrame(conn, resp); err != nil {
			log.Error(ctx, "connection write error", "error", err)
			return
		}
	}
}

// dispatch routes a decoded request to the handler registered for its
// action. Unknown actions answer with an error response; the connection
// stays open.
func (s *Server) dispatch(ctx context.Context, log logging.Logger, req *protocol.Request) any {
	handler, ok := s.actions[req.Action]
	if !ok {
		log.Warn(ctx, "invalid action", "action", req.Action)
		return protocol.Error("Invalid action")
	}
	return handler(ctx, log, req)
}
