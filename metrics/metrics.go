// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics periodic report of the go-metrics registry to the log
package metrics

import (
	"sync"
	"time"

	"github.com/33cn/duel/common/log"
	"github.com/33cn/duel/types"
	go_metrics "github.com/rcrowley/go-metrics"
)

var mlog = log.New("module", "metrics")

// DefaultDuration seconds between two reports
const DefaultDuration = 60

// Reporter logs every metric of a registry on each tick
type Reporter struct {
	reg      go_metrics.Registry
	interval time.Duration
	done     chan struct{}
	once     sync.Once
	wg       sync.WaitGroup
}

//StartMetrics 根据配置文件相关参数启动, nil when disabled
func StartMetrics(cfg *types.Metrics) *Reporter {
	if cfg == nil || !cfg.Enable {
		mlog.Info("Metrics data is not enabled to emit")
		return nil
	}
	duration := cfg.Duration
	if duration <= 0 {
		duration = DefaultDuration
	}
	r := NewReporter(go_metrics.DefaultRegistry, time.Duration(duration)*time.Second)
	r.Start()
	mlog.Info("StartMetrics", "duration", duration)
	return r
}

// NewReporter reporter of reg
func NewReporter(reg go_metrics.Registry, interval time.Duration) *Reporter {
	return &Reporter{reg: reg, interval: interval, done: make(chan struct{})}
}

// Start report in the background until Stop
func (r *Reporter) Start() {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.Report()
			case <-r.done:
				return
			}
		}
	}()
}

// Stop the reporter, nil safe
func (r *Reporter) Stop() {
	if r == nil {
		return
	}
	r.once.Do(func() { close(r.done) })
	r.wg.Wait()
}

// Report log one line per metric
func (r *Reporter) Report() {
	r.reg.Each(func(name string, i interface{}) {
		switch metric := i.(type) {
		case go_metrics.Counter:
			mlog.Info("counter", "name", name, "count", metric.Count())
		case go_metrics.Gauge:
			mlog.Info("gauge", "name", name, "value", metric.Value())
		case go_metrics.Meter:
			m := metric.Snapshot()
			mlog.Info("meter", "name", name, "count", m.Count(), "rate1", m.Rate1(), "mean", m.RateMean())
		case go_metrics.Timer:
			t := metric.Snapshot()
			ps := t.Percentiles([]float64{0.5, 0.95, 0.99})
			mlog.Info("timer", "name", name, "count", t.Count(),
				"mean", time.Duration(t.Mean()), "p50", time.Duration(ps[0]),
				"p95", time.Duration(ps[1]), "p99", time.Duration(ps[2]))
		}
	})
}
