package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Walk   bool
	Leaf   bool
	Dedupe bool
}

var d *debug

func init() {
	d = &debug{}
	d.Walk = boolEnv("DV_DEBUG_WALK")
	d.Leaf = boolEnv("DV_DEBUG_LEAF")
	d.Dedupe = boolEnv("DV_DEBUG_DEDUPE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Walk() bool {
	return d.Walk
}

func Leaf() bool {
	return d.Leaf
}

func Dedupe() bool {
	return d.Dedupe
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
