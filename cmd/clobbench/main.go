// Command clobbench replays a synthetic order feed through book.Engine and
// reports add/cancel latency, in the spirit of the reference
// implementation's score harness. The command-generating driver is an
// external collaborator, kept out of the engine package itself.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/quantcup-clob/engine/book"
)

const (
	msgBatchSize = 10
	replays      = 50
	feedSize     = 5000
)

type command struct {
	cancel bool
	id     book.OrderID
	side   book.Side
	price  book.Price
	qty    book.Quantity
}

func buildFeed(n int) []command {
	rng := rand.New(rand.NewSource(42))
	priceGrid := []book.Price{980, 985, 990, 995, 1000, 1005, 1010, 1015, 1020}

	feed := make([]command, 0, n)
	var live []book.OrderID
	var nextID book.OrderID = 1

	for len(feed) < n {
		if len(live) > 0 && rng.Intn(4) == 0 {
			idx := rng.Intn(len(live))
			feed = append(feed, command{cancel: true, id: live[idx]})
			live = append(live[:idx], live[idx+1:]...)
			continue
		}

		id := nextID
		nextID++
		side := book.Bid
		if rng.Intn(2) == 1 {
			side = book.Ask
		}
		feed = append(feed, command{
			id:    id,
			side:  side,
			price: priceGrid[rng.Intn(len(priceGrid))],
			qty:   book.Quantity(rng.Intn(50) + 1),
		})
		live = append(live, id)
	}
	return feed
}

func main() {
	feed := buildFeed(feedSize)
	samples := replays * (len(feed) / msgBatchSize)
	latencies := make([]time.Duration, 0, samples)

	for r := 0; r < replays; r++ {
		e := book.New(book.WithOnTrade(func(book.TradeEvent) {}))

		for i := msgBatchSize; i <= len(feed); i += msgBatchSize {
			begin := time.Now()
			applyBatch(e, feed[i-msgBatchSize:i])
			latencies = append(latencies, time.Since(begin))
		}
	}

	mean, sd := meanAndStddev(latencies)
	fmt.Printf("mean(batch latency) = %v, sd(batch latency) = %v\n", mean, sd)
	fmt.Printf("score (lower is better) = %v\n", 0.5*(float64(mean)+sd))
}

func applyBatch(e *book.Engine, batch []command) {
	for _, cmd := range batch {
		if cmd.cancel {
			e.CancelOrder(cmd.id)
			continue
		}
		_ = e.AddOrder(cmd.id, cmd.side, cmd.price, cmd.qty, book.Timestamp(cmd.id))
	}
}

func meanAndStddev(samples []time.Duration) (time.Duration, float64) {
	var total int64
	for _, s := range samples {
		total += int64(s)
	}
	mean := float64(total) / float64(len(samples))

	var sqTotal float64
	for _, s := range samples {
		d := float64(s) - mean
		sqTotal += d * d / float64(len(samples))
	}
	return time.Duration(mean), math.Sqrt(sqTotal)
}
