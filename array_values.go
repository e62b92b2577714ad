package blend

// Values is an Array of plain values: numbers and fixed-size records that
// are copied bit for bit.
type Values[T any, K ScalarKind[T]] struct {
	Array[T, K]
}

// Push appends x.
func (v *Values[T, K]) Push(x T) error {
	var k K
	rt, c := v.mut()
	return errFromStatus(k.append(rt, c, x))
}

// Insert inserts x before element i. i may equal Len.
func (v *Values[T, K]) Insert(i int, x T) error {
	var k K
	rt, c := v.mut()
	return errFromStatus(k.insert(rt, c, i, x))
}

// Replace overwrites element i with x.
func (v *Values[T, K]) Replace(i int, x T) error {
	var k K
	rt, c := v.mut()
	return errFromStatus(k.replace(rt, c, i, x))
}

// Clone returns an array sharing v's storage.
func (v *Values[T, K]) Clone() Values[T, K] {
	return Values[T, K]{Array: v.Array.Clone()}
}

// Equal reports whether both arrays hold the same bit patterns.
func (v *Values[T, K]) Equal(other *Values[T, K]) bool {
	return v.Array.Equal(&other.Array)
}
