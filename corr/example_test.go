package corr_test

import (
	"fmt"
	"log"

	"github.com/arloliu/corrstat/corr"
)

// ExampleNew demonstrates fitting a line over a small window.
func ExampleNew() {
	c, err := corr.New(20)
	if err != nil {
		log.Fatal(err)
	}

	// Y = 2X exactly.
	c.Add(1, 2)
	c.Add(2, 4)
	c.Add(3, 6)

	if !c.Calculate(false) {
		log.Fatal("empty window")
	}

	fmt.Printf("Y = %.1f + %.1f * X\n", c.A(), c.B())
	fmt.Printf("r = %.1f, E² = %.1f\n", c.R(), c.ESquared())
	fmt.Printf("estimate Y(10) = %.1f\n", c.EstimateY(10))

	// Output:
	// Y = 0.0 + 2.0 * X
	// r = 1.0, E² = 0.0
	// estimate Y(10) = 20.0
}

// ExampleWithRunningCorrelation demonstrates the sliding-window
// ingestion policy: once the window is full, new samples replace the
// oldest ones and the fit tracks the most recent data.
func ExampleWithRunningCorrelation() {
	c, err := corr.New(3, corr.WithRunningCorrelation(true))
	if err != nil {
		log.Fatal(err)
	}

	for _, v := range []float64{1, 2, 3, 4, 5} {
		c.Add(v, 2*v)
	}

	c.Calculate(false)
	fmt.Printf("window holds %d of %d seen samples\n", c.Count(), 5)
	fmt.Printf("avgX = %.1f\n", c.AvgX())

	// Output:
	// window holds 3 of 5 seen samples
	// avgX = 4.0
}
