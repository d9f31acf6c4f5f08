package counter

import (
	"fmt"
	"sync"

	c "github.com/d0ngw/clicker/common"
	"go.uber.org/atomic"
)

// Store is the Counter whose value is persisted by Persist after every increment
type Store struct {
	c.BaseService
	Persist Persist
	value   *atomic.Int64
	mu      sync.Mutex // serializes increment and store
}

// NewStore create the counter store service
func NewStore(name string, persist Persist) *Store {
	return &Store{
		BaseService: c.BaseService{SName: name},
		Persist:     persist,
		value:       atomic.NewInt64(0),
	}
}

// Init implements Service.Init, load the persisted value
func (p *Store) Init() error {
	if p.Persist == nil {
		return fmt.Errorf("Persist must be set")
	}
	if p.value == nil {
		p.value = atomic.NewInt64(0)
	}
	p.Load()
	return nil
}

// Load read the persisted value into memory and return it.
// A missing or broken record is treated as 0.
func (p *Store) Load() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	value, exist, err := p.Persist.Load()
	switch {
	case err != nil:
		c.Warnf("load counter %s fail, start from 0, err:%v", p.Name(), err)
		value = 0
	case !exist:
		c.Infof("no persisted counter %s, start from 0", p.Name())
	default:
		c.Infof("load counter %s, value:%d", p.Name(), value)
	}
	p.value.Store(value)
	return value
}

// Incr implements Counter.Incr. The new value is stored before Incr returns,
// a store failure is logged and the new value is still returned.
func (p *Store) Incr() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	value := p.value.Inc()
	if err := p.Persist.Store(value); err != nil {
		c.Errorf("store counter %s value %d fail, err:%v", p.Name(), value, err)
	}
	return value
}

// Value implements Counter.Value
func (p *Store) Value() int64 {
	return p.value.Load()
}
