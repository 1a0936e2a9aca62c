package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/mandelsoft/drivebind/pkg/native"
	"github.com/mandelsoft/drivebind/pkg/utils"
)

// Client is a native.Space reached over a websocket connection.
// Calls are synchronous and serialized per connection.
type Client struct {
	lock sync.Mutex
	url  string
	conn net.Conn
}

var _ native.Space = (*Client)(nil)

// Dial connects to a native access endpoint.
func Dial(ctx context.Context, url string, dialer ...ws.Dialer) (*Client, error) {
	d := utils.OptionalDefaulted(ws.DefaultDialer, dialer...)
	conn, _, _, err := d.Dial(ctx, url)
	if err != nil {
		return nil, err
	}
	log.Debug("connected to {{url}}", "url", url)
	return &Client{url: url, conn: conn}, nil
}

func (c *Client) Close() error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	return err
}

func (c *Client) call(req *Request) (*Response, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	c.lock.Lock()
	defer c.lock.Unlock()

	if c.conn == nil {
		return nil, fmt.Errorf("connection to %s closed", c.url)
	}
	err = wsutil.WriteClientMessage(c.conn, ws.OpText, data)
	if err != nil {
		return nil, err
	}
	msg, _, err := wsutil.ReadServerData(c.conn)
	if err != nil {
		return nil, err
	}

	var resp Response
	err = json.Unmarshal(msg, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &Error{Message: resp.Error, Code: resp.Code}
	}
	return &resp, nil
}

func (c *Client) handle(r *Ref) native.Handle {
	if r == nil {
		return nil
	}
	return &handle{client: c, id: r.Id, typ: r.Type}
}

func (c *Client) Lookup(id string) (native.Handle, error) {
	resp, err := c.call(&Request{Op: OP_LOOKUP, Id: id})
	if err != nil {
		return nil, err
	}
	if resp.Ref == nil {
		return nil, fmt.Errorf("%w: %q", native.ErrNotFound, id)
	}
	return c.handle(resp.Ref), nil
}

func (c *Client) Roots() ([]native.Handle, error) {
	resp, err := c.call(&Request{Op: OP_ROOTS})
	if err != nil {
		return nil, err
	}
	var r []native.Handle
	for _, ref := range resp.Refs {
		r = append(r, c.handle(ref))
	}
	return r, nil
}

////////////////////////////////////////////////////////////////////////////////

type handle struct {
	client *Client
	id     string
	typ    string
}

var (
	_ native.Handle      = (*handle)(nil)
	_ native.TypeChecker = (*handle)(nil)
	_ native.Lineage     = (*handle)(nil)
)

func (h *handle) TypeName() string {
	return h.typ
}

func (h *handle) Identity() string {
	return h.id
}

func (h *handle) Field(name string) (any, error) {
	resp, err := h.client.call(&Request{Op: OP_FIELD, Id: h.id, Name: name})
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (h *handle) Object(name string) (native.Handle, error) {
	resp, err := h.client.call(&Request{Op: OP_OBJECT, Id: h.id, Name: name})
	if err != nil {
		return nil, err
	}
	return h.client.handle(resp.Ref), nil
}

func (h *handle) Collection(name string) (native.Collection, error) {
	resp, err := h.client.call(&Request{Op: OP_COLLECTION, Id: h.id, Name: name})
	if err != nil {
		return nil, err
	}
	if resp.Refs == nil {
		return nil, nil
	}
	c := make(native.SliceCollection, len(resp.Refs))
	for i, r := range resp.Refs {
		c[i] = h.client.handle(r)
	}
	return c, nil
}

func (h *handle) IsInstanceOf(typ string) (bool, error) {
	resp, err := h.client.call(&Request{Op: OP_ISA, Id: h.id, Name: typ})
	if err != nil {
		return false, err
	}
	return resp.Bool, nil
}

func (h *handle) TypeLineage() ([]string, error) {
	resp, err := h.client.call(&Request{Op: OP_LINEAGE, Id: h.id})
	if err != nil {
		return nil, err
	}
	return resp.Lineage, nil
}

func (h *handle) String() string {
	return fmt.Sprintf("%s[%s]", h.typ, h.id)
}
