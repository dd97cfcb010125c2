package benchmark

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"example.com/fuzzy-infer/core/defuzz"
	"example.com/fuzzy-infer/core/model"
)

// RunCrispBenchmark measures crisp evaluation latency for a model over
// its target domain and prints per-goroutine percentiles.
func RunCrispBenchmark(m *model.Model, d defuzz.Domain, inputs []float64) {
	const numGoroutine = 1
	const numEvalPerGoroutine = 100_000
	var mu sync.Mutex
	sg := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numGoroutine)
	for i := numGoroutine; i > 0; i-- {
		go func() {
			hg := hdrhistogram.New(1, 50_000_000, 5)

			defer wg.Done()
			<-sg
			for j := numEvalPerGoroutine; j > 0; j-- {
				t0 := time.Now()
				_ = m.EvaluateCrisp(d.Min, d.Max, d.Steps, inputs)
				err := hg.RecordValue(time.Since(t0).Nanoseconds())
				if err != nil {
					log.Printf("Failed to record histogram value: %v", err)
					return
				}
			}
			mu.Lock()
			defer mu.Unlock()
			hg.PercentilesPrint(os.Stdout, 1, 1.0)
		}()
	}
	t0 := time.Now()
	close(sg)
	wg.Wait()
	log.Printf("Evaluated %d times in %v, %d samples per evaluation",
		numGoroutine*numEvalPerGoroutine, time.Since(t0), d.Steps)
}
