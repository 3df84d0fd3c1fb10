package book

import "container/list"

// location is everything needed to remove or mutate a live order in O(1)
// once its id is known: which order, which side, which price level it
// rests on, and the stable queue handle obtained when it was enqueued.
type location struct {
	order *Order
	side  Side
	level *priceLevel
	elem  *list.Element
}

// locator maps OrderID to location with O(1) average lookup. It holds a
// non-owning reference: the priceLevel/container/list own the order, the
// locator is just an index into that ownership.
type locator struct {
	byID map[OrderID]location
}

func newLocator() *locator {
	return &locator{byID: make(map[OrderID]location)}
}

func (l *locator) get(id OrderID) (location, bool) {
	loc, ok := l.byID[id]
	return loc, ok
}

func (l *locator) put(id OrderID, loc location) {
	l.byID[id] = loc
}

func (l *locator) delete(id OrderID) {
	delete(l.byID, id)
}

func (l *locator) len() int {
	return len(l.byID)
}

func (l *locator) clear() {
	l.byID = make(map[OrderID]location)
}
