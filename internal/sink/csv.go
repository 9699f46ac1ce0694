package sink

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Header is the first line of every record file.
const Header = "address,private_key"

// Sink is a shared append-only CSV record stream. All writes happen
// under the sink's own mutex so concurrent workers never interleave
// partial lines.
type Sink struct {
	mu   sync.Mutex
	path string
	f    *os.File
	w    *bufio.Writer
}

// Open creates (or truncates) the destination, creating parent
// directories as needed, and writes the header line before returning.
func Open(path string) (*Sink, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %q: %w", dir, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	s := &Sink{path: path, f: f, w: bufio.NewWriter(f)}
	if _, err := fmt.Fprintln(s.w, Header); err != nil {
		f.Close()
		return nil, fmt.Errorf("write header to %q: %w", path, err)
	}
	return s, nil
}

// Append writes one complete record line.
func (s *Sink) Append(address, secret string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintf(s.w, "%s,%s\n", address, secret); err != nil {
		return fmt.Errorf("append to %q: %w", s.path, err)
	}
	return nil
}

// Flush pushes buffered records to disk.
func (s *Sink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("flush %q: %w", s.path, err)
	}
	return nil
}

// Close flushes and closes the underlying file.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ferr := s.w.Flush()
	cerr := s.f.Close()
	if ferr != nil {
		return fmt.Errorf("flush %q: %w", s.path, ferr)
	}
	if cerr != nil {
		return fmt.Errorf("close %q: %w", s.path, cerr)
	}
	return nil
}

// Path returns the destination path.
func (s *Sink) Path() string { return s.path }
