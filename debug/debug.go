package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Lex   bool
	Parse bool
	Eval  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Lex = boolEnv("UJSONPATH_DEBUG_LEX")
	d.Parse = boolEnv("UJSONPATH_DEBUG_PARSE")
	d.Eval = boolEnv("UJSONPATH_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Eval() bool {
	return d.Eval
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
