package counter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// FilePersist keep the counter value as decimal text in a single file
type FilePersist struct {
	Path string
	Perm os.FileMode
}

// NewFilePersist create FilePersist which store the value in path
func NewFilePersist(path string) *FilePersist {
	return &FilePersist{Path: path, Perm: 0644}
}

// Load implements Persist.Load
func (p *FilePersist) Load() (value int64, exist bool, err error) {
	content, err := os.ReadFile(p.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, true, fmt.Errorf("read %s fail: %w", p.Path, err)
	}
	value, err = parseRecord(content)
	if err != nil {
		return 0, true, fmt.Errorf("parse %s fail: %w", p.Path, err)
	}
	return value, true, nil
}

// Store implements Persist.Store, the whole file is overwritten
func (p *FilePersist) Store(value int64) error {
	perm := p.Perm
	if perm == 0 {
		perm = 0644
	}
	if err := os.WriteFile(p.Path, []byte(strconv.FormatInt(value, 10)), perm); err != nil {
		return fmt.Errorf("write %s fail: %w", p.Path, err)
	}
	return nil
}

// parseRecord parse the first line of content as a non-negative decimal, an empty record is 0.
// Only the line terminator is stripped, surrounding spaces make the record invalid.
func parseRecord(content []byte) (int64, error) {
	if len(content) == 0 {
		return 0, nil
	}
	line := string(content)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSuffix(line, "\r")
	value, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidRecord, line)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative value %d", ErrInvalidRecord, value)
	}
	return value, nil
}
