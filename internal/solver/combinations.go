package solver

// CombinationIterator lazily yields every k-element subset of {0..n-1} as
// ascending index slices, in lexicographic order. Only the current
// combination is held in memory.
type CombinationIterator struct {
	n, k    int
	indices []int
	started bool
	done    bool
}

// Combinations returns an iterator over the C(n, k) index combinations.
// k == 0 yields a single empty combination; k > n yields none.
func Combinations(n, k int) *CombinationIterator {
	return &CombinationIterator{n: n, k: k, indices: make([]int, 0, max(k, 0))}
}

// Next advances to the following combination and reports whether one exists.
func (c *CombinationIterator) Next() bool {
	if c.done {
		return false
	}
	if !c.started {
		c.started = true
		if c.k < 0 || c.k > c.n {
			c.done = true
			return false
		}
		c.indices = c.indices[:c.k]
		for i := range c.indices {
			c.indices[i] = i
		}
		return true
	}

	// Rightmost index that has not reached its final position.
	i := c.k - 1
	for i >= 0 && c.indices[i] == i+c.n-c.k {
		i--
	}
	if i < 0 {
		c.done = true
		return false
	}
	c.indices[i]++
	for j := i + 1; j < c.k; j++ {
		c.indices[j] = c.indices[j-1] + 1
	}
	return true
}

// Indices returns the current combination. The slice is reused by Next and
// must not be modified.
func (c *CombinationIterator) Indices() []int {
	return c.indices
}

// Reset rewinds the iterator to before the first combination.
func (c *CombinationIterator) Reset() {
	c.started = false
	c.done = false
	c.indices = c.indices[:0]
}
