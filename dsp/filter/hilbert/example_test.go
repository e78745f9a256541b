package hilbert_test

import (
	"fmt"

	"github.com/cwbudde/hilbert-envelope/dsp/filter/hilbert"
)

func ExampleFIR_Push() {
	f, err := hilbert.New(hilbert.ReferenceKernel())
	if err != nil {
		panic(err)
	}

	fmt.Printf("q0=%.4f\n", f.Push(1))
	fmt.Printf("q1=%.4f\n", f.Push(0))
	// Output:
	// q0=-0.0164
	// q1=-0.0164
}
