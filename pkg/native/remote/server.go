package remote

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/mandelsoft/drivebind/pkg/native"
)

// Handler serves a native.Space over websocket connections.
type Handler struct {
	lock        sync.Mutex
	space       native.Space
	closed      bool
	connections []net.Conn
}

var _ http.Handler = (*Handler)(nil)

func NewHandler(space native.Space) *Handler {
	return &Handler{space: space}
}

// Close closes all open connections. Further requests are rejected.
func (h *Handler) Close() error {
	h.lock.Lock()
	h.closed = true
	conns := slices.Clone(h.connections)
	h.lock.Unlock()

	for _, c := range conns {
		c.Close()
	}
	return nil
}

// Health reports whether the handler accepts connections.
func (h *Handler) Health() error {
	h.lock.Lock()
	defer h.lock.Unlock()

	if h.closed {
		return fmt.Errorf("native access handler closed")
	}
	return nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.Health(); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	log.Info("new native access request from {{remote}}", "remote", r.RemoteAddr)
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.LogError(err, "upgrading connection")
		return
	}
	h.add(conn)
	go h.serve(conn)
}

func (h *Handler) add(conn net.Conn) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = append(h.connections, conn)
}

func (h *Handler) remove(conn net.Conn) {
	h.lock.Lock()
	defer h.lock.Unlock()
	h.connections = slices.DeleteFunc(h.connections, func(c net.Conn) bool { return c == conn })
}

func (h *Handler) serve(conn net.Conn) {
	defer func() {
		h.remove(conn)
		conn.Close()
	}()

	for {
		msg, op, err := wsutil.ReadClientData(conn)
		if err != nil {
			if !IsErrClosed(err) {
				log.LogError(err, "reading request")
			}
			return
		}
		if op != ws.OpText && op != ws.OpBinary {
			continue
		}

		var req Request
		var resp *Response
		err = json.Unmarshal(msg, &req)
		if err != nil {
			resp = &Response{Error: fmt.Sprintf("invalid request: %s", err)}
		} else {
			log.Trace("request {{op}} {{id}} {{name}}", "op", req.Op, "id", req.Id, "name", req.Name)
			resp = h.Process(&req)
		}

		err = wsutil.WriteServerMessage(conn, op, encode(resp))
		if err != nil {
			log.LogError(err, "cannot send response -> closing connection")
			return
		}
	}
}

// encode marshals a response. Responses which cannot be marshaled
// are replaced by an error response.
func encode(resp *Response) []byte {
	data, err := json.Marshal(resp)
	if err != nil {
		log.LogError(err, "cannot encode response")
		data, _ = json.Marshal(&Response{Error: fmt.Sprintf("cannot encode response: %s", err)})
	}
	return data
}

// Process executes a single request against the served space.
func (h *Handler) Process(req *Request) *Response {
	resp, err := h.process(req)
	if err != nil {
		return &Response{Error: err.Error(), Code: errorCode(err)}
	}
	return resp
}

func (h *Handler) process(req *Request) (*Response, error) {
	if req.Op == OP_ROOTS {
		roots, err := h.space.Roots()
		if err != nil {
			return nil, err
		}
		resp := &Response{Refs: []*Ref{}}
		for _, r := range roots {
			resp.Refs = append(resp.Refs, ref(r))
		}
		return resp, nil
	}

	o, err := h.space.Lookup(req.Id)
	if err != nil {
		return nil, err
	}

	switch req.Op {
	case OP_LOOKUP:
		return &Response{Ref: ref(o)}, nil
	case OP_FIELD:
		v, err := o.Field(req.Name)
		if err != nil {
			return nil, err
		}
		if native.IsNull(v) {
			return &Response{}, nil
		}
		return &Response{Value: v}, nil
	case OP_OBJECT:
		c, err := o.Object(req.Name)
		if err != nil {
			return nil, err
		}
		if native.IsNull(c) {
			return &Response{}, nil
		}
		return &Response{Ref: ref(c)}, nil
	case OP_COLLECTION:
		c, err := o.Collection(req.Name)
		if err != nil {
			return nil, err
		}
		if native.IsNull(c) {
			return &Response{}, nil
		}
		resp := &Response{Refs: make([]*Ref, c.Len())}
		for i := range resp.Refs {
			e, err := c.Element(i)
			if err != nil {
				return nil, err
			}
			if !native.IsNull(e) {
				resp.Refs[i] = ref(e)
			}
		}
		return resp, nil
	case OP_ISA:
		c, ok := o.(native.TypeChecker)
		if !ok {
			return &Response{Bool: o.TypeName() == req.Name}, nil
		}
		b, err := c.IsInstanceOf(req.Name)
		if err != nil {
			return nil, err
		}
		return &Response{Bool: b}, nil
	case OP_LINEAGE:
		l, ok := o.(native.Lineage)
		if !ok {
			return &Response{Lineage: []string{o.TypeName()}}, nil
		}
		names, err := l.TypeLineage()
		if err != nil {
			return nil, err
		}
		return &Response{Lineage: names}, nil
	default:
		return nil, fmt.Errorf("unknown operation %q", req.Op)
	}
}

func ref(h native.Handle) *Ref {
	return &Ref{Id: h.Identity(), Type: h.TypeName()}
}
