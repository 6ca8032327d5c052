package curve

import "fmt"

func ExampleGaussian() {
	g := NewGaussian(50, 100, 5)
	fmt.Printf("%.2f %.2f %.2f\n", g.Eval(50), g.Eval(55), g.Eval(45))
	// Output:
	// 100.00 60.65 60.65
}

func ExampleComposite_Eval() {
	c := NewComposite()
	c.Add(NewConstant(2))
	c.Add(NewGaussian(10, 8, 2))

	fmt.Printf("%.2f %.2f\n", c.Eval(10), c.Eval(0))
	// Output:
	// 10.00 2.00
}

func ExampleComposite_Sort() {
	c := NewComposite()
	c.Add(NewGaussian(60, 40, 3))
	c.Add(NewConstant(1))
	c.Add(NewGaussian(20, 100, 5))
	c.Sort()

	for _, g := range c.Peaks() {
		fmt.Printf("%.0f ", g.Center())
	}
	// Output:
	// 20 60
}
