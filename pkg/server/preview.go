package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/websocket"

	aferrors "github.com/vango-dev/autoform/internal/errors"
	"github.com/vango-dev/autoform/pkg/schema"
)

// PreviewReply is sent for every schema received on /ws/preview. Exactly
// one of HTML and Error is set.
type PreviewReply struct {
	HTML  string          `json:"html,omitempty"`
	Error json.RawMessage `json:"error,omitempty"`
}

// handlePreview upgrades to a WebSocket. Each text message is a JSON or
// YAML schema; the reply carries the rendered fragment or the error.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("preview upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(s.config.MaxBodyBytes)

	s.config.Metrics.PreviewOpened()
	defer s.config.Metrics.PreviewClosed()

	logger := s.logger.With("remote", r.RemoteAddr)
	logger.Debug("preview connected")

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("preview read failed", "error", err)
			}
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		reply := s.preview(r, data)
		if reply.Error != nil {
			s.config.Metrics.PreviewRendered("error")
		} else {
			s.config.Metrics.PreviewRendered("ok")
		}
		if err := conn.WriteJSON(reply); err != nil {
			logger.Warn("preview write failed", "error", err)
			return
		}
	}
}

func (s *Server) preview(r *http.Request, data []byte) PreviewReply {
	doc, err := schema.Parse(data)
	if err != nil {
		return errorReply(err)
	}
	node, err := s.builder.Build(r.Context(), doc)
	if err != nil {
		return errorReply(err)
	}
	html, err := s.renderer.RenderToString(node)
	if err != nil {
		return errorReply(err)
	}
	return PreviewReply{HTML: html}
}

func errorReply(err error) PreviewReply {
	var ae *aferrors.Error
	if !errors.As(err, &ae) {
		ae = aferrors.New("E232").Wrap(err)
	}
	return PreviewReply{Error: json.RawMessage(ae.FormatJSON())}
}
