package priority_test

import (
	"fmt"

	"github.com/katalvlaran/ahp/comparison"
	"github.com/katalvlaran/ahp/entity"
	"github.com/katalvlaran/ahp/priority"
)

// ExampleCompute ranks three criteria whose comparisons contradict each other:
// A is preferred to C directly, but the chain A > B > C is much stronger than
// the direct judgement suggests.
func ExampleCompute() {
	es := []entity.Entity{{ID: "A", Name: "Price"}, {ID: "B", Name: "Quality"}, {ID: "C", Name: "Delivery"}}
	m := comparison.Build(es)
	m, _ = m.Set("A", "B", 3)
	m, _ = m.Set("A", "C", 5)
	m, _ = m.Set("B", "C", 7)

	res, err := priority.Compute(m, es)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	for _, r := range res.Ranking() {
		fmt.Printf("%d. %s %.4f\n", r.Rank, r.Entity.Name, r.Weight)
	}
	c := res.Consistency
	fmt.Printf("lambda=%.4f CI=%.4f CR=%.4f consistent=%t\n", c.LambdaMax, c.CI, c.CR, c.IsConsistent)
	// Output:
	// 1. Price 0.5870
	// 2. Quality 0.3324
	// 3. Delivery 0.0806
	// lambda=3.2390 CI=0.1195 CR=0.2061 consistent=false
}
