package model_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/arloliu/curvefit/model"
)

// ExampleNew demonstrates dynamic model construction by type.
func ExampleNew() {
	m, err := model.New(model.TypeLogistic, []float64{0.01, 500})
	if err != nil {
		log.Fatal(err)
	}

	for _, x := range []float64{0, 250, 500, 750, 1000} {
		y, _ := m.Eval(x)
		fmt.Printf("x=%4.0f -> y=%.4f\n", x, y)
	}

	fmt.Printf("Model type: %s\n", m.Type())
	fmt.Printf("Formula: %s\n", m.Formula())

	// Output:
	// x=   0 -> y=0.0067
	// x= 250 -> y=0.0759
	// x= 500 -> y=0.5000
	// x= 750 -> y=0.9241
	// x=1000 -> y=0.9933
	// Model type: logistic
	// Formula: y = 1 / (1 + e^(-0.01*(x - 500)))
}

// ExampleNewDecay demonstrates direct construction and slice evaluation.
func ExampleNewDecay() {
	m := model.NewDecay(10, 0.1)

	ys, err := model.EvalAll(m, []float64{0, 10, 20})
	if err != nil {
		log.Fatal(err)
	}

	for i, y := range ys {
		fmt.Printf("ys[%d] = %.4f\n", i, y)
	}

	// Output:
	// ys[0] = 10.0000
	// ys[1] = 3.6788
	// ys[2] = 1.3534
}

// ExampleNewLogarithmic demonstrates the package's only domain error.
func ExampleNewLogarithmic() {
	m := model.NewLogarithmic(1, 2)

	if _, err := m.Eval(0); errors.Is(err, model.ErrDomain) {
		fmt.Println("ln(0) is outside the model domain")
	}

	y, _ := m.Eval(1)
	fmt.Printf("y(1) = %.1f\n", y)

	// Output:
	// ln(0) is outside the model domain
	// y(1) = 1.0
}
