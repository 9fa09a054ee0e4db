// Package notice implements the transient error banner. A notice is shown
// until it is dismissed, or closes itself after a fixed delay. The close
// callback runs at most once regardless of how the notice goes away, and a
// cancelled notice (the page it belonged to is gone) never runs it at all.
package notice

import (
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DefaultAutoClose is how long a banner stays up if nobody dismisses it.
const DefaultAutoClose = 5 * time.Second

// Notice is one visible banner.
type Notice struct {
	ID      string
	Message string

	timer   *time.Timer
	once    sync.Once
	onClose func()
}

func (n *Notice) close() {
	n.once.Do(func() {
		if n.onClose != nil {
			n.onClose()
		}
	})
}

// Center tracks active notices per browser key (a cookie value). Keys that go
// quiet are evicted so abandoned browsers do not accumulate.
type Center struct {
	autoClose time.Duration

	mu   sync.Mutex
	keys *gocache.Cache
}

func NewCenter(autoClose time.Duration) *Center {
	if autoClose <= 0 {
		autoClose = DefaultAutoClose
	}
	return &Center{
		autoClose: autoClose,
		keys:      gocache.New(time.Hour, 2*time.Hour),
	}
}

// Push shows a new notice under key. onClose may be nil; when set it is
// invoked exactly once, on auto-close or manual dismissal, never on Cancel.
func (c *Center) Push(key, message string, onClose func()) *Notice {
	n := &Notice{
		ID:      uuid.New().String(),
		Message: message,
		onClose: onClose,
	}

	c.mu.Lock()
	c.keys.SetDefault(key, append(c.list(key), n))
	c.mu.Unlock()

	n.timer = time.AfterFunc(c.autoClose, func() {
		c.remove(key, n.ID)
		n.close()
	})
	return n
}

// Active returns the notices currently visible under key, oldest first.
func (c *Center) Active(key string) []*Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	list := c.list(key)
	out := make([]*Notice, len(list))
	copy(out, list)
	return out
}

// Dismiss closes a notice early via its close callback.
func (c *Center) Dismiss(key, id string) {
	if n := c.remove(key, id); n != nil {
		n.timer.Stop()
		n.close()
	}
}

// Cancel drops a notice without running its close callback, the equivalent of
// the owning page going away before the banner timed out.
func (c *Center) Cancel(key, id string) {
	if n := c.remove(key, id); n != nil {
		n.timer.Stop()
		n.once.Do(func() {})
	}
}

// list must be called with c.mu held.
func (c *Center) list(key string) []*Notice {
	if v, found := c.keys.Get(key); found {
		if list, ok := v.([]*Notice); ok {
			return list
		}
	}
	return nil
}

func (c *Center) remove(key, id string) *Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	list := c.list(key)
	for i, n := range list {
		if n.ID == id {
			c.keys.SetDefault(key, append(list[:i:i], list[i+1:]...))
			return n
		}
	}
	return nil
}
