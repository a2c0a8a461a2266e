// Command proc-demo exercises the kernos process layer end to end: pool
// allocation to exhaustion, ready-queue traffic, the process tree, and
// blocking/unblocking on semaphores.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"kernos/pkg/config"
	"kernos/pkg/logger"
	"kernos/pkg/proc"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if err := logger.Init(cfg.LogPath, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}

	slog.Info("process layer configured", "max_proc", cfg.MaxProc)

	pool := proc.NewPool(cfg.MaxProc)
	sems := proc.NewSemTable(pool, proc.SemKey(cfg.MinSemKey), proc.SemKey(cfg.MaxSemKey))

	// Allocation to exhaustion.
	held := make([]proc.Handle, 0, cfg.MaxProc)
	for {
		h, err := pool.Alloc()
		if err != nil {
			slog.Info("pool exhausted as expected", "allocated", len(held), "err", err)
			break
		}
		held = append(held, h)
	}
	if len(held) < 4 {
		slog.Error("demo needs max_proc of at least 4", "max_proc", cfg.MaxProc)
		os.Exit(1)
	}

	// FIFO ready queue.
	var ready proc.Queue
	for _, h := range held[:3] {
		pool.Enqueue(&ready, h)
	}
	slog.Info("ready queue built", "head", pool.Head(&ready))
	for !ready.Empty() {
		h := pool.Dequeue(&ready)
		pool.ChargeCPUTime(h, 100)
		slog.Info("dispatched", "handle", h, "cpu_time", pool.CPUTime(h))
	}

	// Process tree: a parent with three children, torn down youngest-first.
	parent := held[0]
	for _, child := range held[1:4] {
		pool.InsertChild(parent, child)
	}
	for !pool.NoChildren(parent) {
		child := pool.RemoveFirstChild(parent)
		slog.Info("reaped child", "handle", child)
	}

	// Semaphore blocking.
	const dev0, dev1 = proc.SemKey(0x254), proc.SemKey(0x25c)
	a, b := held[0], held[1]
	mustBlock(sems, dev1, a)
	mustBlock(sems, dev0, b)
	slog.Info("active semaphores", "keys", sems.ActiveKeys())

	for _, key := range []proc.SemKey{dev0, dev1} {
		for {
			h := sems.RemoveBlocked(key)
			if h == proc.None {
				break
			}
			slog.Info("unblocked", "key", key, "handle", h)
		}
	}
	slog.Info("all semaphores idle", "active", sems.ActiveCount())

	for _, h := range held {
		pool.Release(h)
	}
	slog.Info("pool drained back", "free", pool.FreeCount())
}

func mustBlock(sems *proc.SemTable, key proc.SemKey, h proc.Handle) {
	if err := sems.InsertBlocked(key, h); err != nil {
		slog.Error("block failed", "key", key, "handle", h, "err", err)
		os.Exit(1)
	}
	slog.Info("blocked", "key", key, "handle", h)
}
