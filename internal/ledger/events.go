package ledger

// Subscribe returns a channel of change events and a function that
// unsubscribes and closes it. Slow subscribers miss events rather than
// block writers; each channel buffers the latest one.
func (l *Ledger) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 1)

	l.subMu.Lock()
	id := l.nextID
	l.nextID++
	l.subs[id] = ch
	l.subMu.Unlock()

	return ch, func() {
		l.subMu.Lock()
		defer l.subMu.Unlock()
		if c, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(c)
		}
	}
}

func (l *Ledger) publish(ev Event) {
	l.subMu.Lock()
	defer l.subMu.Unlock()
	for _, ch := range l.subs {
		select {
		case ch <- ev:
		default:
			// Replace the stale pending event with the newer one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- ev:
			default:
			}
		}
	}
}
