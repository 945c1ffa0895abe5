package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse       bool
	Materialize bool
	Patch       bool
	Diff        bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("FJSON_DEBUG_PARSE")
	d.Materialize = boolEnv("FJSON_DEBUG_MATERIALIZE")
	d.Patch = boolEnv("FJSON_DEBUG_PATCH")
	d.Diff = boolEnv("FJSON_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Materialize() bool {
	return d.Materialize
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
