package storage

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/miloscript/monify/internal/model"
)

// JSON-RPC 2.0 message types for the host channel.

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      any    `json:"id,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type rawMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      any             `json:"id,omitempty"`
}

type response struct {
	Result json.RawMessage
	Err    *rpcError
}

// callTimeout bounds one round-trip to the host. The host answers from local
// disk, so anything slower means it is wedged.
const callTimeout = 30 * time.Second

// HostBridge implements Store over a line-delimited JSON-RPC channel to the
// host process that owns the on-disk document. Requests carry incrementing
// ids; a reader goroutine routes each response to the waiting call.
type HostBridge struct {
	cmd    *exec.Cmd // nil when attached to an existing channel
	stdin  io.Writer
	reader *bufio.Reader

	mu      sync.Mutex
	nextID  int
	pending map[int]chan response

	done chan struct{}
}

// NewHostBridge starts the host command and speaks the document protocol
// over its stdin/stdout.
func NewHostBridge(name string, args ...string) (*HostBridge, error) {
	cmd := exec.Command(name, args...)
	cmd.Stderr = os.Stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting host %s: %w", name, err)
	}

	b := attach(stdout, stdin)
	b.cmd = cmd
	return b, nil
}

// Attach wires a bridge to an already open channel, for hosts that spawn
// this process themselves (and for tests).
func Attach(r io.Reader, w io.Writer) *HostBridge {
	return attach(r, w)
}

func attach(r io.Reader, w io.Writer) *HostBridge {
	b := &HostBridge{
		stdin:   w,
		reader:  bufio.NewReader(r),
		pending: make(map[int]chan response),
		done:    make(chan struct{}),
	}
	go b.readLoop()
	return b
}

// Load asks the host for the saved document. A null result means nothing
// was ever saved.
func (b *HostBridge) Load() (*model.Document, bool, error) {
	resp, err := b.call("load", nil)
	if err != nil {
		return nil, false, err
	}
	if len(resp) == 0 || string(resp) == "null" {
		return nil, false, nil
	}

	var doc model.Document
	if err := json.Unmarshal(resp, &doc); err != nil {
		return nil, false, fmt.Errorf("decoding loaded document: %w", err)
	}
	return &doc, true, nil
}

// Save sends the full document to the host for an atomic write.
func (b *HostBridge) Save(doc *model.Document) error {
	_, err := b.call("save", doc)
	return err
}

// Shutdown notifies the host and, when this side owns the process, waits
// for it to exit.
func (b *HostBridge) Shutdown() error {
	_ = b.send(request{JSONRPC: "2.0", Method: "shutdown"})
	if b.cmd != nil {
		return b.cmd.Wait()
	}
	return nil
}

func (b *HostBridge) call(method string, params any) (json.RawMessage, error) {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	ch := make(chan response, 1)
	b.pending[id] = ch
	b.mu.Unlock()

	if err := b.send(request{JSONRPC: "2.0", Method: method, Params: params, ID: id}); err != nil {
		b.mu.Lock()
		delete(b.pending, id)
		b.mu.Unlock()
		return nil, err
	}

	select {
	case resp := <-ch:
		if resp.Err != nil {
			return nil, fmt.Errorf("host %s: %s", method, resp.Err.Message)
		}
		return resp.Result, nil
	case <-b.done:
		return nil, errors.New("host channel closed")
	case <-time.After(callTimeout):
		return nil, fmt.Errorf("host %s timed out after %s", method, callTimeout)
	}
}

func (b *HostBridge) send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	b.mu.Lock()
	_, err = fmt.Fprintf(b.stdin, "%s\n", data)
	b.mu.Unlock()
	return err
}

func (b *HostBridge) readLoop() {
	defer close(b.done)
	for {
		line, err := b.reader.ReadString('\n')
		if err != nil {
			return
		}

		var msg rawMessage
		if err := json.Unmarshal([]byte(line), &msg); err != nil {
			continue
		}

		id := toInt(msg.ID)
		b.mu.Lock()
		ch, ok := b.pending[id]
		if ok {
			delete(b.pending, id)
		}
		b.mu.Unlock()
		if ok {
			ch <- response{Result: msg.Result, Err: msg.Error}
		}
	}
}

func toInt(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}
