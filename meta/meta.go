// meta/meta.go
package meta

// MaxDepth defines the depth of the search tree explored from the root.
const MaxDepth = 3

// WinScore is the value of a position with four aligned tokens.
const WinScore = 100

// AllowedColumns are the only columns either player may play in.
var AllowedColumns = []int{0, 1, 2}
