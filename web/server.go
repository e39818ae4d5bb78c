package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

//go:embed static/*
var staticFS embed.FS

// PaneInfo describes one pane to the frontend.
type PaneInfo struct {
	Title  string `json:"title"`
	Cells  int    `json:"cells"`
	Active int    `json:"active"`
}

// Result is one evaluation result attached to a cell.
type Result struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// CellInfo carries a cell's contents and its evaluation results.
type CellInfo struct {
	Contents string   `json:"contents"`
	Results  []Result `json:"results"`
}

// NotebookState provides read/write access to the notebook's panes and cells.
type NotebookState interface {
	ListPanes() []PaneInfo
	ReadCell(pane, cell int) (CellInfo, error)
	WriteCell(pane, cell int, text string) error
	InsertText(pane, cell int, text string) (string, error)
	NewCell(pane int) (int, error)
	CloseCell(pane, cell int) error
	NewPane(title string) int
	ClosePane(pane int) error
	SetResults(pane, cell int, results []Result) error
}

// Server provides the notebook web frontend HTTP + WebSocket server.
type Server struct {
	state    NotebookState
	upgrader websocket.Upgrader
	mu       sync.Mutex
	clients  []*wsClient
}

type wsClient struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

type rpcRequest struct {
	ID     any             `json:"id"`
	Method string          `json:"method"`
	Params json.RawMessage `json:"params,omitempty"`
}

type rpcResponse struct {
	ID     any       `json:"id"`
	Result any       `json:"result,omitempty"`
	Error  *rpcError `json:"error,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewServer creates a web server backed by the given notebook state.
func NewServer(state NotebookState) *Server {
	return &Server{
		state: state,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/ws" {
		s.handleWebSocket(w, r)
		return
	}
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		http.Error(w, "static files unavailable", 500)
		return
	}
	http.FileServer(http.FS(sub)).ServeHTTP(w, r)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade: %v", err)
		return
	}
	client := &wsClient{conn: conn}
	s.mu.Lock()
	s.clients = append(s.clients, client)
	s.mu.Unlock()

	defer func() {
		conn.Close()
		s.mu.Lock()
		for i, c := range s.clients {
			if c == client {
				s.clients = append(s.clients[:i], s.clients[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var req rpcRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			continue
		}
		resp := s.handleRPC(req)
		data, _ := json.Marshal(resp)
		client.mu.Lock()
		_ = conn.WriteMessage(websocket.TextMessage, data)
		client.mu.Unlock()
	}
}

func (s *Server) handleRPC(req rpcRequest) rpcResponse {
	switch req.Method {
	case "listPanes":
		return s.rpcListPanes(req)
	case "readCell":
		return s.rpcReadCell(req)
	case "writeCell":
		return s.rpcWriteCell(req)
	case "insertText":
		return s.rpcInsertText(req)
	case "newCell":
		return s.rpcNewCell(req)
	case "closeCell":
		return s.rpcCloseCell(req)
	case "newPane":
		return s.rpcNewPane(req)
	case "closePane":
		return s.rpcClosePane(req)
	case "setResults":
		return s.rpcSetResults(req)
	default:
		return rpcResponse{
			ID:    req.ID,
			Error: &rpcError{Code: -32601, Message: fmt.Sprintf("unknown method: %s", req.Method)},
		}
	}
}

func (s *Server) rpcListPanes(req rpcRequest) rpcResponse {
	panes := s.state.ListPanes()
	return rpcResponse{ID: req.ID, Result: map[string]any{"panes": panes}}
}

func (s *Server) rpcReadCell(req rpcRequest) rpcResponse {
	var p struct {
		Pane int `json:"pane"`
		Cell int `json:"cell"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	info, err := s.state.ReadCell(p.Pane, p.Cell)
	if err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	return rpcResponse{ID: req.ID, Result: info}
}

func (s *Server) rpcWriteCell(req rpcRequest) rpcResponse {
	var p struct {
		Pane int    `json:"pane"`
		Cell int    `json:"cell"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	if err := s.state.WriteCell(p.Pane, p.Cell, p.Text); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.Broadcast("cellChanged", map[string]any{"pane": p.Pane, "cell": p.Cell, "contents": p.Text})
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcInsertText(req rpcRequest) rpcResponse {
	var p struct {
		Pane int    `json:"pane"`
		Cell int    `json:"cell"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	contents, err := s.state.InsertText(p.Pane, p.Cell, p.Text)
	if err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.Broadcast("cellChanged", map[string]any{"pane": p.Pane, "cell": p.Cell, "contents": contents})
	return rpcResponse{ID: req.ID, Result: map[string]string{"contents": contents}}
}

func (s *Server) rpcNewCell(req rpcRequest) rpcResponse {
	var p struct {
		Pane int `json:"pane"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	idx, err := s.state.NewCell(p.Pane)
	if err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.broadcastPanes()
	return rpcResponse{ID: req.ID, Result: map[string]int{"cell": idx}}
}

func (s *Server) rpcCloseCell(req rpcRequest) rpcResponse {
	var p struct {
		Pane int `json:"pane"`
		Cell int `json:"cell"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	if err := s.state.CloseCell(p.Pane, p.Cell); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.broadcastPanes()
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcNewPane(req rpcRequest) rpcResponse {
	var p struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	idx := s.state.NewPane(p.Title)
	s.broadcastPanes()
	return rpcResponse{ID: req.ID, Result: map[string]int{"pane": idx}}
}

func (s *Server) rpcClosePane(req rpcRequest) rpcResponse {
	var p struct {
		Pane int `json:"pane"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	if err := s.state.ClosePane(p.Pane); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.broadcastPanes()
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) rpcSetResults(req rpcRequest) rpcResponse {
	var p struct {
		Pane    int      `json:"pane"`
		Cell    int      `json:"cell"`
		Results []Result `json:"results"`
	}
	if err := json.Unmarshal(req.Params, &p); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32602, Message: err.Error()}}
	}
	if err := s.state.SetResults(p.Pane, p.Cell, p.Results); err != nil {
		return rpcResponse{ID: req.ID, Error: &rpcError{Code: -32000, Message: err.Error()}}
	}
	s.Broadcast("resultsChanged", map[string]any{"pane": p.Pane, "cell": p.Cell, "results": p.Results})
	return rpcResponse{ID: req.ID, Result: map[string]string{"status": "ok"}}
}

func (s *Server) broadcastPanes() {
	s.Broadcast("panesChanged", map[string]any{"panes": s.state.ListPanes()})
}

// Broadcast sends a notification to all connected WebSocket clients.
func (s *Server) Broadcast(method string, params any) {
	msg, err := json.Marshal(map[string]any{
		"method": method,
		"params": params,
	})
	if err != nil {
		return
	}
	s.mu.Lock()
	clients := append([]*wsClient(nil), s.clients...)
	s.mu.Unlock()

	for _, c := range clients {
		c.mu.Lock()
		_ = c.conn.WriteMessage(websocket.TextMessage, msg)
		c.mu.Unlock()
	}
}
