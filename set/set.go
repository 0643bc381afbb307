package set

// Set is the capability shared by the set containers of this module.
type Set[T any] interface {
	Insert(item T) (modified bool)
	InsertSlice(items []T) (modified bool)
	Has(item T) bool
	Len() int
}
