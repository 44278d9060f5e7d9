package exposure

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/golang/groupcache/lru"
)

// CSVHeader is the header row of the exposure table export.
var CSVHeader = []string{"Name", "Current Exposure %", "Future Exposure %"}

// EncodeCSV writes the exposure table: stock name, current and future percent.
func EncodeCSV(w io.Writer, exposures []Exposure) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, e := range exposures {
		if err := cw.Write([]string{e.Stock, formatFloat(e.Current), formatFloat(e.Future)}); err != nil {
			return fmt.Errorf("cannot write CSV row for %q: %w", e.Stock, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// formatFloat writes the shortest representation of p, always with a decimal
// point: 50 is "50.0", 33.33 is "33.33".
func formatFloat(p Percent) string {
	s := strconv.FormatFloat(float64(p), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// CSVCache memoizes EncodeCSV. The encoding is a pure function of the table,
// so entries never go stale; the least recently used are evicted.
//
// It is safe for concurrent use.
type CSVCache struct {
	mu     sync.Mutex
	lru    *lru.Cache
	hits   int
	misses int
}

// NewCSVCache returns a cache of at most size encodings, 0 meaning no limit.
func NewCSVCache(size int) *CSVCache {
	return &CSVCache{lru: lru.New(size)}
}

// Encode returns the CSV encoding of exposures, computing it only once for a
// given table. The returned bytes must not be modified.
func (c *CSVCache) Encode(exposures []Exposure) ([]byte, error) {
	key := tableKey(exposures)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.lru.Get(key); ok {
		c.hits++
		return v.([]byte), nil
	}
	c.misses++
	var b bytes.Buffer
	if err := EncodeCSV(&b, exposures); err != nil {
		return nil, err
	}
	c.lru.Add(key, b.Bytes())
	return b.Bytes(), nil
}

// Stats returns the number of cache hits and misses.
func (c *CSVCache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// tableKey hashes the exported columns of the table.
func tableKey(exposures []Exposure) [sha256.Size]byte {
	h := sha256.New()
	for _, e := range exposures {
		fmt.Fprintf(h, "%q\x00%v\x00%v\n", e.Stock, float64(e.Current), float64(e.Future))
	}
	var key [sha256.Size]byte
	copy(key[:], h.Sum(nil))
	return key
}
