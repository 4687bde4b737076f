// Package pool provides a bounded, mutex-guarded stack of reusable
// *core.Message drafts, generalizing the buffer-pool pattern the
// teacher's pool.go uses for byte slices to the builder's Message
// type. Include it only under real allocation pressure: a fresh
// *core.Message is otherwise the simpler and safer choice.
package pool

import (
	"sync"

	"github.com/mojave-labs/iso8583/pkg/core"
)

// MessagePool is a bounded stack of released *core.Message values.
// Unlike sync.Pool, capacity is fixed and explicit: Release beyond
// capacity drops the message instead of growing the stack, so the
// pool never becomes an unbounded retention path.
type MessagePool struct {
	mu    sync.Mutex
	stack []*core.Message
	cap   int
}

// New returns a MessagePool holding at most capacity released messages.
func New(capacity int) *MessagePool {
	return &MessagePool{cap: capacity}
}

// Acquire returns a zeroed *core.Message, reusing one from the pool
// when available.
func (p *MessagePool) Acquire() *core.Message {
	p.mu.Lock()

	if n := len(p.stack); n > 0 {
		msg := p.stack[n-1]
		p.stack = p.stack[:n-1]
		p.mu.Unlock()

		return msg
	}

	p.mu.Unlock()

	return &core.Message{Fields: make(map[int]core.FieldValue)}
}

// Release clears msg's state and returns it to the pool, unless the
// pool is already at capacity, in which case msg is left for the
// garbage collector. The caller must not use msg, nor any FieldValue
// retrieved from it, after calling Release: a released message is no
// longer referenced by any caller, and double-release or
// use-after-release is undefined.
func (p *MessagePool) Release(msg *core.Message) {
	msg.MTI = ""
	msg.Bitmap = ""
	msg.Network = ""
	msg.Version = ""
	msg.EMV = nil
	msg.Raw = nil

	for k := range msg.Fields {
		delete(msg.Fields, k)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.stack) >= p.cap {
		return
	}

	p.stack = append(p.stack, msg)
}

// Len reports how many messages are currently held by the pool.
func (p *MessagePool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.stack)
}
