package ir_test

import (
	"fmt"

	"github.com/signadot/fjson/ir"
)

func Example() {
	o := ir.NewObject().
		AddString("name", "sensor").
		AddFloat("temp", 21.50).
		AddArray("readings", ir.NewArray().PushInt(3).PushInt(1))
	o.AddBool("ok", true)
	o.Remove("temp")
	fmt.Println(o)
	fmt.Println(o.TypeNameOf("readings"), o.Index("ok"))
	// Output:
	// {"name":"sensor","readings":[3,1],"ok":true}
	// array 1
}

func ExampleValue_Object() {
	v := ir.FromRaw(`{"x": {"y": 1}}`, ir.ObjectType)
	fmt.Println(v.IsMaterialized())
	x, _ := v.GetPath("x")
	o, _ := x.Object()
	y, _ := o.Get("y")
	fmt.Println(ir.As[int](y), v.IsMaterialized())
	// Output:
	// false
	// 1 true
}
