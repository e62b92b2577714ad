package blend

// Objects is an Array of managed elements: reference-counted records such
// as paths and images. The array holds one reference to each element.
//
// Elements returned by Slice are borrowed from the array; At returns an
// element with its own reference.
type Objects[T any, K ObjectKind[T]] struct {
	Array[T, K]
}

// Push appends a reference to item.
func (o *Objects[T, K]) Push(item *T) error {
	if item == nil {
		return ErrInvalidArgument
	}
	var k K
	rt, c := o.mut()
	return errFromStatus(rt.AppendItem(c, k.object(item)))
}

// Insert inserts a reference to item before element i. i may equal Len.
func (o *Objects[T, K]) Insert(i int, item *T) error {
	if item == nil {
		return ErrInvalidArgument
	}
	var k K
	rt, c := o.mut()
	return errFromStatus(rt.InsertItem(c, i, k.object(item)))
}

// Replace releases element i and stores a reference to item in its place.
func (o *Objects[T, K]) Replace(i int, item *T) error {
	if item == nil {
		return ErrInvalidArgument
	}
	var k K
	rt, c := o.mut()
	return errFromStatus(rt.ReplaceItem(c, i, k.object(item)))
}

// At returns element i holding its own reference, so writing to it
// leaves the array untouched. It panics if i is out of range.
func (o *Objects[T, K]) At(i int) T {
	var k K
	item := o.Slice()[i]
	obj := k.object(&item)
	*obj = obj.Retain()
	return item
}

// Clone returns an array sharing o's storage.
func (o *Objects[T, K]) Clone() Objects[T, K] {
	return Objects[T, K]{Array: o.Array.Clone()}
}

// Equal reports whether both arrays hold pairwise equal elements.
func (o *Objects[T, K]) Equal(other *Objects[T, K]) bool {
	return o.Array.Equal(&other.Array)
}
