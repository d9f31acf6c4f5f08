package counter

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	c "github.com/d0ngw/clicker/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersist struct {
	mu     sync.Mutex
	value  int64
	stored bool
	writes []int64
	err    error
}

func (p *memPersist) Load() (int64, bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value, p.stored, p.err
}

func (p *memPersist) Store(value int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writes = append(p.writes, value)
	if p.err != nil {
		return p.err
	}
	p.value = value
	p.stored = true
	return nil
}

func newFileStore(t *testing.T, path string) *Store {
	s := NewStore("clicks", NewFilePersist(path))
	require.True(t, c.ServiceInit(s))
	return s
}

func TestStoreColdStart(t *testing.T) {
	s := newFileStore(t, filepath.Join(t.TempDir(), "count.txt"))
	assert.EqualValues(t, 0, s.Value())
	assert.EqualValues(t, 1, s.Incr())
	assert.EqualValues(t, 2, s.Incr())
	assert.EqualValues(t, 2, s.Value())
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.txt")
	s := newFileStore(t, path)
	var last int64
	for i := 0; i < 5; i++ {
		last = s.Incr()
	}
	assert.EqualValues(t, 5, last)

	reloaded := newFileStore(t, path)
	assert.Equal(t, last, reloaded.Value())
	assert.EqualValues(t, 6, reloaded.Incr())
}

func TestStoreCorruptRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0644))

	s := newFileStore(t, path)
	assert.EqualValues(t, 0, s.Value())
	assert.EqualValues(t, 1, s.Incr())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1", string(content))
}

func TestStoreExistingRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "count.txt")
	require.NoError(t, os.WriteFile(path, []byte("41"), 0644))

	s := newFileStore(t, path)
	assert.EqualValues(t, 41, s.Value())
	assert.EqualValues(t, 42, s.Incr())
}

func TestStoreWriteFailure(t *testing.T) {
	p := &memPersist{value: 10, stored: true}
	s := NewStore("clicks", p)
	require.NoError(t, s.Init())
	assert.EqualValues(t, 10, s.Value())

	p.mu.Lock()
	p.err = errors.New("disk full")
	p.mu.Unlock()
	assert.EqualValues(t, 11, s.Incr())
	assert.EqualValues(t, 12, s.Incr())
	assert.EqualValues(t, 12, s.Value())

	p.mu.Lock()
	p.err = nil
	p.mu.Unlock()
	assert.EqualValues(t, 13, s.Incr())
	assert.EqualValues(t, 13, p.value)
}

func TestStoreLoadError(t *testing.T) {
	s := NewStore("clicks", &memPersist{value: 99, stored: true, err: errors.New("io")})
	require.NoError(t, s.Init())
	assert.EqualValues(t, 0, s.Value())
}

func TestStoreInitWithoutPersist(t *testing.T) {
	s := NewStore("clicks", nil)
	assert.Error(t, s.Init())
}

func TestStoreConcurrentIncr(t *testing.T) {
	const (
		start   = 100
		workers = 16
		perWork = 50
		total   = workers * perWork
	)
	p := &memPersist{value: start, stored: true}
	s := NewStore("clicks", p)
	require.NoError(t, s.Init())

	results := make(chan int64, total)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWork; j++ {
				results <- s.Incr()
			}
		}()
	}
	wg.Wait()
	close(results)

	var got []int64
	for v := range results {
		got = append(got, v)
	}
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	require.Len(t, got, total)
	for i, v := range got {
		assert.EqualValues(t, start+1+i, v)
	}
	assert.EqualValues(t, start+total, s.Value())

	// writes happen in increment order, the last one is the final value
	require.Len(t, p.writes, total)
	for i := 1; i < len(p.writes); i++ {
		assert.Equal(t, p.writes[i-1]+1, p.writes[i])
	}
	assert.EqualValues(t, start+total, p.value)
}
