package engine

import (
	"io"
	"os"
)

// Source yields the raw bytes of a problem instance. Bytes may be called
// once per solve; implementations must return the same content each time.
type Source interface {
	Bytes() ([]byte, error)
}

// readSource reads src, treating a nil Source like one that failed to read.
func readSource(src Source) ([]byte, error) {
	if src == nil {
		return nil, ErrNilSource
	}

	return src.Bytes()
}

type bytesSource struct {
	data []byte
	err  error
}

func (s bytesSource) Bytes() ([]byte, error) { return s.data, s.err }

// FromBytes wraps an in-memory document. The slice is not copied and must
// not be modified while in use.
func FromBytes(data []byte) Source { return bytesSource{data: data} }

// FromString wraps an in-memory document.
func FromString(s string) Source { return bytesSource{data: []byte(s)} }

// FromReader drains r immediately so that the source can be replayed by
// HybridSolve. A read error is kept and surfaces as a fallback reason.
func FromReader(r io.Reader) Source {
	data, err := io.ReadAll(r)

	return bytesSource{data: data, err: err}
}

type fileSource string

func (p fileSource) Bytes() ([]byte, error) { return os.ReadFile(string(p)) }

// FromFile reads path on every solve. A missing or unreadable file yields
// the family's fallback instance.
func FromFile(path string) Source { return fileSource(path) }
