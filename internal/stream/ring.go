package stream

// ring is a fixed-capacity FIFO of raw records. Pushing into a full ring
// evicts the oldest record.
type ring struct {
	buf   []string
	start int // index of the oldest record
	count int
}

func newRing(capacity int) *ring {
	return &ring{buf: make([]string, capacity)}
}

// push appends line at the tail. When the ring was already full the evicted
// head record is returned with ok set.
func (r *ring) push(line string) (evicted string, ok bool) {
	capacity := len(r.buf)
	if r.count < capacity {
		r.buf[(r.start+r.count)%capacity] = line
		r.count++
		return "", false
	}
	evicted = r.buf[r.start]
	r.buf[r.start] = line
	r.start = (r.start + 1) % capacity
	return evicted, true
}

func (r *ring) len() int { return r.count }

func (r *ring) capacity() int { return len(r.buf) }

// each visits records oldest first with their position in the ring.
func (r *ring) each(fn func(pos int, line string)) {
	capacity := len(r.buf)
	for i := 0; i < r.count; i++ {
		fn(i, r.buf[(r.start+i)%capacity])
	}
}

func (r *ring) slice() []string {
	if r.count == 0 {
		return nil
	}
	lines := make([]string, 0, r.count)
	r.each(func(_ int, line string) {
		lines = append(lines, line)
	})
	return lines
}
