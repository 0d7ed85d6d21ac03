package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 3 * time.Second
	pingPeriod = 30 * time.Second
	sendBuffer = 16
)

var (
	ErrConnClosed    = errors.New("connection is closed")
	ErrSendQueueFull = errors.New("send queue is full")
)

// Conn - одно websocket соединение со своей очередью отправки.
// Запись в сокет делает только writeLoop.
type Conn struct {
	conn    *websocket.Conn
	id      uuid.UUID
	send    chan any
	doneCtx context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex // serialises writes
}

func NewConn(ctx context.Context, id uuid.UUID, conn *websocket.Conn) *Conn {
	ctx, cancel := context.WithCancel(ctx)

	c := &Conn{
		conn:    conn,
		id:      id,
		send:    make(chan any, sendBuffer),
		doneCtx: ctx,
		cancel:  cancel,
	}
	go c.writeLoop(pingPeriod)

	return c
}

func (c *Conn) ID() uuid.UUID {
	return c.id
}

// Send ставит msg в очередь и не ждёт сети.
// Если подписчик не успевает читать, возвращает ErrSendQueueFull.
func (c *Conn) Send(msg any) error {
	select {
	case <-c.doneCtx.Done():
		return ErrConnClosed
	default:
	}

	select {
	case c.send <- msg:
		return nil
	default:
		return ErrSendQueueFull
	}
}

func (c *Conn) writeLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-c.doneCtx.Done():
			return
		case msg := <-c.send:
			if err := c.write(msg); err != nil {
				_ = c.Close()
				return
			}
		case <-ticker.C:
			if err := c.health(); err != nil {
				_ = c.Close()
				return
			}
		}
	}
}

func (c *Conn) write(msg any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("connection is nil")
	}
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	return c.conn.WriteJSON(msg)
}

// health pings the peer
func (c *Conn) health() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return errors.New("connection is nil")
	}

	select {
	case <-c.doneCtx.Done():
		return errors.New("connection context cancelled")
	default:
	}

	if err := c.conn.WriteControl(
		websocket.PingMessage,
		[]byte("ping"),
		time.Now().Add(writeWait),
	); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

// Listen reads messages until the peer goes away or the connection is closed.
// Subscribers only receive, so incoming frames are handed to handler as-is.
func (c *Conn) Listen(handler func(msg map[string]any) error) error {
	for {
		select {
		case <-c.doneCtx.Done():
			return errors.New("listen stopped: context done")
		default:
		}

		var msg map[string]any
		if err := c.conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("read failed: %w", err)
		}
		if err := handler(msg); err != nil {
			return fmt.Errorf("handler failed: %w", err)
		}
	}
}

// Close не берёт mu: websocket.Conn.Close можно вызывать параллельно с записью
func (c *Conn) Close() error {
	c.cancel()

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
