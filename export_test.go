package slist

// ChainLen walks the chain from head and returns the number of reachable nodes.
// It panics if the chain is longer than the recorded length, which means it is cyclic.
func (l *List) ChainLen() int {
	if l.absent() {
		return 0
	}

	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
		if count > l.len {
			panic("slist: chain longer than list length")
		}
	}

	return count
}
