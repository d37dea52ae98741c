package detect

import (
	"sync"

	"github.com/saylorsolutions/cryptopals/pkg/xor"
)

const (
	fullKeySpace   = 256
	legacyKeySpace = 255
)

// Candidate is a key that decodes the input to printable text.
type Candidate struct {
	Text string
	Key  byte
}

// Detector searches the single-byte key space for keys that produce printable text.
// The zero value is not usable, use NewDetector instead.
type Detector struct {
	chars      *charSet
	keys       int
	concurrent bool
}

// Opt customizes a Detector, and is used in NewDetector.
type Opt = func(d *Detector)

// AllowWhitespace adds tab, newline, and carriage return to the printable allow-list.
func AllowWhitespace() Opt {
	return func(d *Detector) {
		d.chars = newCharSet(true)
	}
}

// LegacyKeySpace stops the search before key 0xff, trying only 0x00 through 0xfe.
func LegacyKeySpace() Opt {
	return func(d *Detector) {
		d.keys = legacyKeySpace
	}
}

// Concurrent runs each key trial in its own goroutine.
// Results are still reported in ascending key order.
func Concurrent() Opt {
	return func(d *Detector) {
		d.concurrent = true
	}
}

// NewDetector creates a Detector using zero or more Opt.
// By default, every key from 0x00 through 0xff is tried sequentially against the space through tilde allow-list.
func NewDetector(opts ...Opt) *Detector {
	d := &Detector{
		chars: printableASCII,
		keys:  fullKeySpace,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Find returns every Candidate for data, ordered by ascending key.
// An empty slice is returned if no key produces printable text.
func (d *Detector) Find(data []byte) []Candidate {
	if d.concurrent {
		return d.findConcurrent(data)
	}
	found := []Candidate{}
	for k := 0; k < d.keys; k++ {
		if cand, ok := d.try(data, byte(k)); ok {
			found = append(found, cand)
		}
	}
	return found
}

func (d *Detector) findConcurrent(data []byte) []Candidate {
	var (
		wg      sync.WaitGroup
		results = make([]*Candidate, d.keys)
	)
	for k := 0; k < d.keys; k++ {
		wg.Add(1)
		go func(k int) {
			defer wg.Done()
			if cand, ok := d.try(data, byte(k)); ok {
				results[k] = &cand
			}
		}(k)
	}
	wg.Wait()

	found := []Candidate{}
	for _, cand := range results {
		if cand != nil {
			found = append(found, *cand)
		}
	}
	return found
}

func (d *Detector) try(data []byte, key byte) (Candidate, bool) {
	plain := xor.SingleByte(data, key)
	if !d.chars.all(plain) {
		return Candidate{}, false
	}
	return Candidate{Text: string(plain), Key: key}, true
}

var defaultDetector = NewDetector()

// FindXoredCandidates tries every single-byte key against data with the default Detector.
func FindXoredCandidates(data []byte) []Candidate {
	return defaultDetector.Find(data)
}
