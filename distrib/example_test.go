package distrib_test

import (
	"fmt"

	"github.com/katalvlaran/randist/distrib"
	"github.com/katalvlaran/randist/randsrc"
)

// ExampleNewTriangular builds two distributions and shows the display
// form, with and without a name.
func ExampleNewTriangular() {
	tri, err := distrib.NewTriangular(distrib.Scalar(0), distrib.Scalar(0.5), distrib.Scalar(1))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	named, _ := distrib.NewTriangular(
		distrib.Scalar(0), distrib.Scalar(0.5), distrib.Scalar(1),
		distrib.WithName("T"),
	)

	fmt.Println(tri)
	fmt.Println(named)
	// Output:
	// Triangular(low=0, mode=0.5, high=1)
	// Triangular(low=0, mode=0.5, high=1, name=T)
}

// ExampleTriangular_LogPDF evaluates the log-density of Triangular(0,1,2)
// at the mode, on the ascending branch, and out of support.
func ExampleTriangular_LogPDF() {
	tri, _ := distrib.NewTriangular(distrib.Scalar(0), distrib.Scalar(1), distrib.Scalar(2))

	lp, _ := tri.LogPDF(distrib.Vec{1, 0.5, 3})
	fmt.Printf("%.4f %.4f %.4f\n", lp[0], lp[1], lp[2])
	// Output:
	// 0.0000 -0.6931 -Inf
}

// ExampleTriangular_Quantile inverts three cumulative probabilities of
// the symmetric Triangular(0, 0.5, 1).
func ExampleTriangular_Quantile() {
	tri, _ := distrib.NewTriangular(distrib.Scalar(0), distrib.Scalar(0.5), distrib.Scalar(1))

	q, _ := tri.Quantile(distrib.Vec{0.18, 0.5, 0.82})
	fmt.Printf("%.2f %.2f %.2f\n", q[0], q[1], q[2])
	// Output:
	// 0.30 0.50 0.70
}

// ExampleTriangular_Sample draws five variates from an explicit seeded
// source; every draw lands inside the support.
func ExampleTriangular_Sample() {
	tri, _ := distrib.NewTriangular(distrib.Scalar(0), distrib.Scalar(0.5), distrib.Scalar(1))
	src := randsrc.New(42)

	xs, _ := tri.Sample(src, 5)
	within := true
	for _, x := range xs {
		if x < 0 || x > 1 {
			within = false
		}
	}
	fmt.Println(len(xs), within)
	// Output:
	// 5 true
}

// ExampleNewUniform shows the second ContinuousRV implementation.
func ExampleNewUniform() {
	u, _ := distrib.NewUniform(distrib.Scalar(2), distrib.Scalar(5))

	c, _ := u.CDF(distrib.Scalar(3.5))
	fmt.Println(u)
	fmt.Printf("%.2f\n", c[0])
	// Output:
	// Uniform(low=2, high=5)
	// 0.50
}
