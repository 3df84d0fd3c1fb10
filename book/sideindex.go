package book

import "github.com/google/btree"

const sideIndexDegree = 32

// levelItem is the btree.Item wrapping a priceLevel. less is supplied at
// construction per side: bids wrap price so that ascending B-tree order
// (which Min()/Ascend() always produce) yields descending price order —
// i.e. best-bid-first — while asks wrap price so ascending order is
// already best-ask-first. This lets sideIndex.best() be the same one-line
// Min() call regardless of side, instead of carrying a side switch through
// every traversal.
type levelItem struct {
	level *priceLevel
	less  func(a, b Price) bool
}

func (it *levelItem) Less(than btree.Item) bool {
	other := than.(*levelItem)
	return it.less(it.level.price, other.level.price)
}

// sideIndex is a price-ordered map from price to *priceLevel for one side
// of the book, backed by github.com/google/btree for O(log n) insert/erase
// and O(1)-amortized best-price access via Min().
type sideIndex struct {
	tree *btree.BTree
	less func(a, b Price) bool
}

func newBidIndex() *sideIndex {
	return &sideIndex{
		tree: btree.New(sideIndexDegree),
		less: func(a, b Price) bool { return a > b }, // descending: best bid is highest price
	}
}

func newAskIndex() *sideIndex {
	return &sideIndex{
		tree: btree.New(sideIndexDegree),
		less: func(a, b Price) bool { return a < b }, // ascending: best ask is lowest price
	}
}

func (s *sideIndex) probe(price Price) *levelItem {
	return &levelItem{level: &priceLevel{price: price}, less: s.less}
}

// find returns the level at price, or nil if none rests there.
func (s *sideIndex) find(price Price) *priceLevel {
	item := s.tree.Get(s.probe(price))
	if item == nil {
		return nil
	}
	return item.(*levelItem).level
}

// findOrCreate returns the level at price, creating and inserting an empty
// one if none exists yet.
func (s *sideIndex) findOrCreate(price Price) *priceLevel {
	if lvl := s.find(price); lvl != nil {
		return lvl
	}
	lvl := newPriceLevel(price)
	s.tree.ReplaceOrInsert(&levelItem{level: lvl, less: s.less})
	return lvl
}

// erase removes the level at price. It is the caller's responsibility to
// only call this once the level's queue is empty.
func (s *sideIndex) erase(price Price) {
	s.tree.Delete(s.probe(price))
}

// best returns the best (first-priority) level for this side, or nil if
// the side is empty.
func (s *sideIndex) best() *priceLevel {
	item := s.tree.Min()
	if item == nil {
		return nil
	}
	return item.(*levelItem).level
}

func (s *sideIndex) empty() bool {
	return s.tree.Len() == 0
}

func (s *sideIndex) len() int {
	return s.tree.Len()
}

// ascend walks every level in best-first order, invoking fn with each
// until fn returns false or levels are exhausted.
func (s *sideIndex) ascend(fn func(*priceLevel) bool) {
	s.tree.Ascend(func(item btree.Item) bool {
		return fn(item.(*levelItem).level)
	})
}

func (s *sideIndex) clear() {
	s.tree.Clear(false)
}
