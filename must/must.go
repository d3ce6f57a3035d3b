// Package must turns an error return into a panic, for fixtures
// and tests where an error means the program itself is wrong.
package must

// Must2 returns p1, or panics with err if it is not nil.
//
//	r := must.Must2(tree.Parse("R{A{A1,A2},B}"))
func Must2[T1 any](p1 T1, err error) T1 {
	if err != nil {
		panic(err)
	}
	return p1
}
