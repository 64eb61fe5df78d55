package service

import (
	"context"
	"log"
	"sync"
	"time"

	"verify-server/repository"
)

// HealthMonitor probes the code store on a fixed interval and logs degraded
// state. It never stops traffic: a degraded store makes requests fail fast
// on their own connectivity check.
type HealthMonitor struct {
	store    repository.CodeStore
	interval time.Duration

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

func NewHealthMonitor(store repository.CodeStore, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{
		store:    store,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start probes once immediately, then on every tick until Stop.
func (m *HealthMonitor) Start() {
	go func() {
		defer close(m.done)

		m.probe()

		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()
		for {
			select {
			case <-m.stop:
				return
			case <-ticker.C:
				m.probe()
			}
		}
	}()
}

// Stop cancels the timer and waits for the loop to exit. Safe to call more
// than once.
func (m *HealthMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}

func (m *HealthMonitor) probe() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if m.store.Ping(ctx) {
		log.Println("health check: code store ok")
		return
	}
	log.Println("health check: code store unhealthy, requests fail fast until it recovers")
}
