package gotimer

// timerList is the deadline list: doubly-linked, nil-terminated, ordered by
// expiry ascending. Records with equal expiries keep insertion order, so
// insert places a new record after every existing equal one.
type timerList struct {
	head *timerRecord
	size int
}

func (l *timerList) front() *timerRecord { return l.head }

func (l *timerList) insert(t *timerRecord) {
	l.size++
	if l.head == nil {
		t.prev, t.next = nil, nil
		l.head = t
		return
	}
	if t.expiry.Before(l.head.expiry) {
		t.prev, t.next = nil, l.head
		l.head.prev = t
		l.head = t
		return
	}
	prev, cur := l.head, l.head.next
	for ; cur != nil; prev, cur = cur, cur.next {
		if t.expiry.Before(cur.expiry) {
			break
		}
	}
	t.prev, t.next = prev, cur
	prev.next = t
	if cur != nil {
		cur.prev = t
	}
}

func (l *timerList) remove(t *timerRecord) {
	l.size--
	if t.prev == nil {
		l.head = t.next
	} else {
		t.prev.next = t.next
	}
	if t.next != nil {
		t.next.prev = t.prev
	}
	t.prev, t.next = nil, nil
}

// resort re-places a record whose expiry changed.
func (l *timerList) resort(t *timerRecord) {
	l.remove(t)
	l.insert(t)
}
