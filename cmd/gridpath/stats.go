package main

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

var (
	statsOnce   sync.Once
	statsReader *sdkmetric.ManualReader
)

// installStats registers an in-process meter provider once per process.
// Search instruments bind to the first provider installed globally.
func installStats() *sdkmetric.ManualReader {
	statsOnce.Do(func() {
		statsReader = sdkmetric.NewManualReader()
		otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(statsReader)))
	})
	return statsReader
}

type statsKey struct{ engine, reason string }

// printStats writes cumulative search counts and expanded cells per engine to stderr.
func (a *app) printStats(ctx context.Context, reader *sdkmetric.ManualReader) error {
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		return fmt.Errorf("collect metrics: %w", err)
	}

	searches := make(map[statsKey]int64)
	expanded := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch data := m.Data.(type) {
			case metricdata.Sum[int64]:
				if m.Name != "gridpath_search_total" {
					continue
				}
				for _, dp := range data.DataPoints {
					engine, _ := dp.Attributes.Value("engine")
					reason, _ := dp.Attributes.Value("reason")
					searches[statsKey{engine.AsString(), reason.AsString()}] += dp.Value
				}
			case metricdata.Histogram[int64]:
				if m.Name != "gridpath_cells_expanded" {
					continue
				}
				for _, dp := range data.DataPoints {
					engine, _ := dp.Attributes.Value("engine")
					expanded[engine.AsString()] += dp.Sum
				}
			}
		}
	}

	keys := make([]statsKey, 0, len(searches))
	for k := range searches {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].engine != keys[j].engine {
			return keys[i].engine < keys[j].engine
		}
		return keys[i].reason < keys[j].reason
	})
	for _, k := range keys {
		fmt.Fprintf(a.stderr, "stats: engine=%s reason=%s searches=%d\n", k.engine, k.reason, searches[k])
	}

	engines := make([]string, 0, len(expanded))
	for e := range expanded {
		engines = append(engines, e)
	}
	sort.Strings(engines)
	for _, e := range engines {
		fmt.Fprintf(a.stderr, "stats: engine=%s cells_expanded=%d\n", e, expanded[e])
	}
	return nil
}
