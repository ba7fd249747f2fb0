package core

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sarchlab/scasm/isa"
)

// Builder can create new classifiers.
type Builder struct {
	isa       *isa.ISA
	cacheSize int
	observer  Observer
}

// NewBuilder returns a builder for the default grammar without a cache.
func NewBuilder() Builder {
	return Builder{
		isa: isa.Default(),
	}
}

// WithISA sets the grammar to match against.
func (b Builder) WithISA(grammar *isa.ISA) Builder {
	b.isa = grammar
	return b
}

// WithCacheSize sets how many distinct lines the classifier remembers. Zero
// disables the cache.
func (b Builder) WithCacheSize(size int) Builder {
	if size < 0 {
		panic("cache size must not be negative")
	}
	b.cacheSize = size
	return b
}

// WithObserver sets an observer notified of every classified line.
func (b Builder) WithObserver(observer Observer) Builder {
	b.observer = observer
	return b
}

// Build creates a classifier.
func (b Builder) Build() *Classifier {
	if b.isa == nil {
		panic("classifier needs an ISA")
	}

	c := &Classifier{
		isa:      b.isa,
		observer: b.observer,
	}
	c.split = c.decomposers()

	if b.cacheSize > 0 {
		cache, err := lru.New[string, Line](b.cacheSize)
		if err != nil {
			panic(fmt.Sprintf("cannot create line cache: %v", err))
		}
		c.cache = cache
	}

	return c
}
