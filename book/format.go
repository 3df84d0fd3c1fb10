package book

import (
	"fmt"
	"strings"
)

// FormatDepth renders a textual snapshot of the book, in the spirit of the
// original implementation's print_book debugging aid. It is a pure
// string-returning function — never called from the matching path, and
// kept out of the engine's own I/O surface; printing is a caller concern,
// not part of the engine's contract.
func FormatDepth(e *Engine, depth int) string {
	bids, asks := e.Snapshot(depth)
	stats := e.Stats()

	var b strings.Builder
	fmt.Fprintf(&b, "ASKS (%d levels, top %d shown):\n", e.AskLevels(), len(asks))
	for i := len(asks) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "  %10d | %10d\n", asks[i].Price, asks[i].Quantity)
	}

	bestBid, haveBid := e.BestBid()
	bestAsk, haveAsk := e.BestAsk()
	if haveBid && haveAsk {
		fmt.Fprintf(&b, "--- spread %d, mid %d ---\n",
			bestAsk.Price-bestBid.Price, (bestAsk.Price+bestBid.Price)/2)
	} else {
		fmt.Fprintf(&b, "--- no spread ---\n")
	}

	fmt.Fprintf(&b, "BIDS (%d levels, top %d shown):\n", e.BidLevels(), len(bids))
	for _, lvl := range bids {
		fmt.Fprintf(&b, "  %10d | %10d\n", lvl.Price, lvl.Quantity)
	}

	fmt.Fprintf(&b, "added=%d cancelled=%d matched=%d\n",
		stats.TotalOrdersAdded, stats.TotalOrdersCancelled, stats.TotalOrdersMatched)
	return b.String()
}
