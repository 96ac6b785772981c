package audio

import (
	"strconv"
)

// MemoryURLs is an in-process URLStore. Handles are opaque strings; the
// store tracks which ones are still live.
type MemoryURLs struct {
	next    int
	live    map[string]File
	revoked []string
}

// NewMemoryURLs creates an empty store.
func NewMemoryURLs() *MemoryURLs {
	return &MemoryURLs{live: make(map[string]File)}
}

// Create returns a new handle for f.
func (m *MemoryURLs) Create(f File) (string, error) {
	m.next++
	url := "mem:" + strconv.Itoa(m.next) + "/" + f.Name()
	m.live[url] = f
	return url, nil
}

// Revoke releases url. Unknown or already revoked handles are ignored.
func (m *MemoryURLs) Revoke(url string) {
	if _, ok := m.live[url]; !ok {
		return
	}
	delete(m.live, url)
	m.revoked = append(m.revoked, url)
}

// Live returns the number of unreleased handles.
func (m *MemoryURLs) Live() int {
	return len(m.live)
}

// Revoked returns the released handles in order.
func (m *MemoryURLs) Revoked() []string {
	return append([]string(nil), m.revoked...)
}

// LocalFile is a File described by name and media type.
type LocalFile struct {
	FileName  string
	MediaType string
}

func (f LocalFile) Name() string { return f.FileName }
func (f LocalFile) Type() string { return f.MediaType }
