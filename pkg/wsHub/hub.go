package ws

import (
	"context"
	"errors"
	"sync"

	"github.com/Temutjin2k/fitness-tracker/pkg/logger"
	wrap "github.com/Temutjin2k/fitness-tracker/pkg/logger/wrapper"
	"github.com/google/uuid"
)

var (
	ErrEmptyConn      = errors.New("connection is empty")
	ErrConnIsNotFound = errors.New("connection not found")
)

// ConnectionHub хранит и управляет всеми активными WebSocket соединениями
type ConnectionHub struct {
	clients map[uuid.UUID]*Conn
	l       logger.Logger
	mu      sync.Mutex
}

func NewConnHub(l logger.Logger) *ConnectionHub {
	return &ConnectionHub{
		clients: make(map[uuid.UUID]*Conn),
		l:       l,
	}
}

// Add добавляет новое соединение в хаб.
// Если соединение с этим ID уже существует, оно закрывается.
func (h *ConnectionHub) Add(newConn *Conn) error {
	if newConn == nil {
		return ErrEmptyConn
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if existing, ok := h.clients[newConn.id]; ok {
		ctx := wrap.WithAction(context.Background(), "add_ws_connection")
		h.l.Warn(ctx, "replacing existing connection", "conn_id", existing.id)
		if err := existing.Close(); err != nil {
			h.l.Warn(ctx, "failed to close existing conn", "conn_id", existing.id, "err", err.Error())
		}
	}

	h.clients[newConn.id] = newConn

	return nil
}

// Delete удаляет и закрывает соединение по ID
func (h *ConnectionHub) Delete(id uuid.UUID) error {
	h.mu.Lock()
	conn, ok := h.clients[id]
	delete(h.clients, id)
	h.mu.Unlock()

	if !ok {
		return ErrConnIsNotFound
	}

	if err := conn.Close(); err != nil {
		h.l.Debug(wrap.WithAction(context.Background(), "ws_connection_delete"),
			"failed to close conn", "conn_id", id, "err", err.Error())
	}

	return nil
}

// Broadcast ставит сообщение в очередь каждого клиента и возвращает число клиентов, принявших его.
// Не ждёт сети; клиенты с переполненной очередью удаляются.
func (h *ConnectionHub) Broadcast(msg any) int {
	ctx := wrap.WithAction(context.Background(), "ws_broadcast")

	sent := 0
	for id, conn := range h.Clients() {
		if err := conn.Send(msg); err != nil {
			h.l.Debug(ctx, "dropping websocket subscriber", "conn_id", id, "err", err.Error())
			_ = h.Delete(id)
			continue
		}
		sent++
	}
	return sent
}

// Close закрывает каждое websocket соединение
func (h *ConnectionHub) Close() {
	for id := range h.Clients() {
		_ = h.Delete(id)
	}

	h.l.Info(wrap.WithAction(context.Background(), "hub_close"), "all websocket connections closed gracefully")
}

// Clients возвращает копию списка клиентов
func (h *ConnectionHub) Clients() map[uuid.UUID]*Conn {
	h.mu.Lock()
	defer h.mu.Unlock()

	copyMap := make(map[uuid.UUID]*Conn, len(h.clients))
	for id, conn := range h.clients {
		copyMap[id] = conn
	}
	return copyMap
}

// Len - число активных соединений
func (h *ConnectionHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.clients)
}
