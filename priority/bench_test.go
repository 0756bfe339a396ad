package priority_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/priority"
)

// sink defeats dead-code elimination.
var sinkResult *priority.Result

func BenchmarkCompute(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{3, 7, 15} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(int64(n)))
			es := entity.Generate(entity.Criterion, n)
			m := comparison.Build(es)
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					v, _ := comparison.FromSlider(rng.Intn(17) - 8)
					m, _ = m.Set(es[i].ID, es[j].ID, v)
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				res, err := priority.Compute(m, es)
				if err != nil {
					b.Fatal(err)
				}
				sinkResult = res
			}
		})
	}
}
