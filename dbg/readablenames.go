package dbg

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
)

// This converts arbitrary pointers into random readable names. It flagrantly
// leaks memory but generates the names lazily, so it's not a problem unless
// you're actually using it. This is helpful for telling polylines and their
// split outputs apart when debugging, since several of them share an id.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	// Since the ids are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if r, ok := memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[obj] = r
	return r
}

// ColorName colors a name green when ok, red otherwise, for quick scanning
// of debug output.
func ColorName(obj interface{}, ok bool) string {
	name := Name(obj)
	if ok {
		return aurora.Green(name).String()
	}
	return aurora.Red(name).String()
}

// Dump pretty-prints a value with its name.
func Dump(obj interface{}) string {
	return fmt.Sprintf("%s: %s", Name(obj), spew.Sdump(obj))
}
