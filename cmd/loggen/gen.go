package main

import (
	"fmt"
	"math/rand"
	"time"
)

// level mix, in percent; "" produces a line without a category keyword
var levelWeights = []struct {
	level  string
	weight int
}{
	{"INFO", 55},
	{"DEBUG", 15},
	{"WARNING", 12},
	{"ERROR", 10},
	{"CRITICAL", 3},
	{"", 5},
}

var services = []string{"api", "auth", "billing", "worker", "scheduler", "db"}

var messages = map[string][]string{
	"INFO":     {"request completed in %dms", "user %d logged in", "cache warmed with %d keys", "job %d finished"},
	"DEBUG":    {"retrying connection attempt %d", "payload size %d bytes", "lock acquired after %dms"},
	"WARNING":  {"slow query took %dms", "queue depth at %d", "retry budget low: %d left"},
	"ERROR":    {"upstream returned status %d", "failed to write record %d", "timeout after %dms"},
	"CRITICAL": {"disk usage at %d%%", "replica %d unreachable", "out of memory after %d allocations"},
	"":         {"--- heartbeat %d ---", "    at frame %d", "starting shard %d"},
}

type generator struct {
	rng *rand.Rand
}

func newGenerator(seed int64) *generator {
	return &generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *generator) pickLevel() string {
	n := g.rng.Intn(100)
	for _, lw := range levelWeights {
		if n < lw.weight {
			return lw.level
		}
		n -= lw.weight
	}
	return "INFO"
}

// line returns one log line stamped with ts.
func (g *generator) line(ts time.Time) string {
	level := g.pickLevel()
	msgs := messages[level]
	msg := fmt.Sprintf(msgs[g.rng.Intn(len(msgs))], g.rng.Intn(5000))
	if level == "" {
		return msg
	}
	svc := services[g.rng.Intn(len(services))]
	return fmt.Sprintf("%s %s [%s] %s", ts.UTC().Format(time.RFC3339), level, svc, msg)
}
