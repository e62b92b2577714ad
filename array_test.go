package blend

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"strconv"
	"testing"

	"github.com/go-text/typesetting/font/opentype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/blend/arraycore"
)

// useRuntime installs a fresh runtime for the duration of the test.
func useRuntime(t *testing.T, opts ...RuntimeOption) arraycore.Runtime {
	t.Helper()
	orig := CurrentRuntime()
	rt := NewRuntime(opts...)
	SetRuntime(rt)
	t.Cleanup(func() { SetRuntime(orig) })
	return rt
}

func TestPushInsert(t *testing.T) {
	var a Uint32Array
	require.NoError(t, a.Push(5))
	require.NoError(t, a.Push(7))
	require.NoError(t, a.Insert(1, 6))

	assert.Equal(t, []uint32{5, 6, 7}, a.Slice())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "[5 6 7]", a.String())
	assert.Equal(t, uint32(6), a.At(1))
}

func TestZeroValue(t *testing.T) {
	var a Float64Array
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	assert.True(t, a.IsEmpty())
	assert.Nil(t, a.Slice())
	assert.Equal(t, "[]", a.String())

	// Operations that never allocate leave the zero value unbound.
	a.Clear()
	a.ShrinkToFit()
	a.Truncate(0)
	a.Reset()
	assert.Nil(t, a.core.Impl)

	var b Float64Array
	assert.True(t, a.Equal(&b))
	require.NoError(t, b.Push(1))
	b.Clear()
	assert.True(t, a.Equal(&b), "zero value equals a cleared array")

	clone := a.Clone()
	assert.True(t, clone.IsEmpty())
}

func TestCloneIsolation(t *testing.T) {
	var a Int16Array
	require.NoError(t, a.AppendSlice([]int16{1, 2, 3}))

	b := a.Clone()
	assert.Same(t, a.core.Impl, b.core.Impl, "clone shares storage")
	assert.True(t, a.Equal(&b))

	require.NoError(t, b.Replace(0, -1))
	require.NoError(t, b.Push(4))

	assert.Equal(t, []int16{1, 2, 3}, a.Slice())
	assert.Equal(t, []int16{-1, 2, 3, 4}, b.Slice())
	assert.False(t, a.Equal(&b))
	assert.Equal(t, int64(1), a.core.Impl.RefCount())
}

func TestInvalidArguments(t *testing.T) {
	var a Int32Array
	require.NoError(t, a.AppendSlice([]int32{1, 2, 3}))
	want := slices.Clone(a.Slice())

	tests := []struct {
		name string
		op   func() error
	}{
		{"remove past end", func() error { return a.Remove(3) }},
		{"remove negative", func() error { return a.Remove(-1) }},
		{"reversed range", func() error { return a.RemoveRange(2, 1) }},
		{"range past end", func() error { return a.RemoveRange(1, 4) }},
		{"insert past end", func() error { return a.Insert(4, 9) }},
		{"insert slice past end", func() error { return a.InsertSlice(4, []int32{9}) }},
		{"replace past end", func() error { return a.Replace(3, 9) }},
		{"replace slice reversed", func() error { return a.ReplaceSlice(2, 0, []int32{9}) }},
		{"replace slice past end", func() error { return a.ReplaceSlice(0, 10, []int32{9}) }},
		{"negative reserve", func() error { return a.TryReserve(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), ErrInvalidArgument)
			assert.Equal(t, want, a.Slice(), "array must be unchanged")
		})
	}
}

func TestInsertAtEnd(t *testing.T) {
	var a Uint8Array
	require.NoError(t, a.Insert(0, 1))
	require.NoError(t, a.Insert(a.Len(), 2))
	require.NoError(t, a.InsertSlice(a.Len(), []uint8{3, 4}))
	assert.Equal(t, []uint8{1, 2, 3, 4}, a.Slice())
}

func TestReplaceSlice(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		data       []uint16
		want       []uint16
	}{
		{"same length", 1, 3, []uint16{8, 9}, []uint16{1, 8, 9, 4}},
		{"grow", 1, 2, []uint16{7, 8, 9}, []uint16{1, 7, 8, 9, 3, 4}},
		{"shrink", 0, 3, []uint16{5}, []uint16{5, 4}},
		{"delete", 1, 3, nil, []uint16{1, 4}},
		{"insert", 2, 2, []uint16{0}, []uint16{1, 2, 0, 3, 4}},
		{"whole", 0, 4, []uint16{6}, []uint16{6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a Uint16Array
			require.NoError(t, a.AppendSlice([]uint16{1, 2, 3, 4}))
			require.NoError(t, a.ReplaceSlice(tt.start, tt.end, tt.data))
			assert.Equal(t, tt.want, a.Slice())
		})
	}
}

func TestAppendSelf(t *testing.T) {
	var a Uint64Array
	require.NoError(t, a.AppendSlice([]uint64{1, 2, 3}))
	require.NoError(t, a.AppendSlice(a.Slice()))
	assert.Equal(t, []uint64{1, 2, 3, 1, 2, 3}, a.Slice())

	require.NoError(t, a.InsertSlice(1, a.Slice()[:2]))
	assert.Equal(t, []uint64{1, 1, 2, 2, 3, 1, 2, 3}, a.Slice())
}

func TestTruncate(t *testing.T) {
	var a Int64Array
	require.NoError(t, a.AppendSlice([]int64{1, 2, 3, 4}))

	a.Truncate(10)
	assert.Equal(t, 4, a.Len(), "truncate never grows")
	a.Truncate(-1)
	assert.Equal(t, 4, a.Len())

	a.Truncate(2)
	assert.Equal(t, []int64{1, 2}, a.Slice())

	a.Truncate(0)
	assert.True(t, a.IsEmpty())
}

func TestTruncateShared(t *testing.T) {
	useRuntime(t)

	var a Int64Array
	require.NoError(t, a.AppendSlice([]int64{1, 2, 3, 4, 5, 6}))
	b := a.Clone()

	b.Truncate(2)
	assert.Equal(t, []int64{1, 2}, b.Slice())
	assert.Equal(t, 2, b.Cap(), "only the kept elements are copied")
	assert.Equal(t, []int64{1, 2, 3, 4, 5, 6}, a.Slice())

	st, ok := RuntimeStats()
	require.True(t, ok)
	assert.Equal(t, uint64(1), st.Detaches)
	assert.Equal(t, uint64(8*8+2*8), st.BytesAllocated)

	c := a.Clone()
	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Cap(), "clearing shared storage drops it")
	assert.Equal(t, 6, a.Len())
}

func TestResize(t *testing.T) {
	var a Int8Array
	require.NoError(t, a.Resize([]int8{1, -2, 3}))
	assert.Equal(t, []int8{1, -2, 3}, a.Slice())

	// Resizing to the current contents changes nothing.
	require.NoError(t, a.Resize(a.Slice()))
	assert.Equal(t, []int8{1, -2, 3}, a.Slice())
	require.NoError(t, a.Resize([]int8{1, -2, 3}))
	assert.Equal(t, []int8{1, -2, 3}, a.Slice())

	require.NoError(t, a.Resize([]int8{4}))
	assert.Equal(t, []int8{4}, a.Slice())

	require.NoError(t, a.Resize(nil))
	assert.True(t, a.IsEmpty())
}

func TestRemoveInsertRoundTrip(t *testing.T) {
	var a Float32Array
	require.NoError(t, a.AppendSlice([]float32{0.5, 1.5, 2.5, 3.5}))
	orig := slices.Clone(a.Slice())

	for i := range orig {
		v := a.At(i)
		require.NoError(t, a.Remove(i))
		require.NoError(t, a.Insert(i, v))
		assert.Equal(t, orig, a.Slice())
	}

	removed := slices.Clone(a.Slice()[1:3])
	require.NoError(t, a.RemoveRange(1, 3))
	require.NoError(t, a.InsertSlice(1, removed))
	assert.Equal(t, orig, a.Slice())
}

func TestExtendReadBack(t *testing.T) {
	var a UintArray
	require.NoError(t, a.AppendSlice([]uint{1, 2}))
	data := []uint{7, 8, 9}
	n := a.Len()
	require.NoError(t, a.AppendSlice(data))
	assert.Equal(t, data, a.Slice()[n:])
}

func TestClearAndShrink(t *testing.T) {
	var a Uint32Array
	require.NoError(t, a.AppendSlice([]uint32{1, 2, 3}))
	cap0 := a.Cap()
	require.GreaterOrEqual(t, cap0, 3)

	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, cap0, a.Cap(), "exclusive storage keeps its capacity")

	require.NoError(t, a.AppendSlice([]uint32{1, 2, 3}))
	a.ShrinkToFit()
	assert.Equal(t, a.Len(), a.Cap())
	assert.Equal(t, []uint32{1, 2, 3}, a.Slice())

	b := a.Clone()
	a.Clear()
	assert.True(t, a.IsEmpty())
	assert.Equal(t, []uint32{1, 2, 3}, b.Slice(), "clear on shared storage leaves the clone")
}

func TestReserve(t *testing.T) {
	var a Uint16Array
	a.Reserve(100)
	assert.GreaterOrEqual(t, a.Cap(), 100)
	assert.True(t, a.IsEmpty())

	require.NoError(t, a.TryReserve(10))
	assert.GreaterOrEqual(t, a.Cap(), 100, "reserve never shrinks")
}

func TestReserveAllocationFailure(t *testing.T) {
	useRuntime(t, WithAllocLimit(1<<20))

	var a Uint32Array
	require.NoError(t, a.Push(1))

	huge := int64(1_000_000_000_000)
	if huge > math.MaxInt {
		huge = math.MaxInt
	}
	assert.ErrorIs(t, a.TryReserve(int(huge)), ErrAllocationFailure)
	assert.Equal(t, []uint32{1}, a.Slice(), "failed reserve leaves the array intact")

	assert.PanicsWithError(t, ErrAllocationFailure.Error(), func() {
		a.Reserve(int(huge))
	})

	// Growth past the limit fails the same way for every mutator.
	big := make([]uint32, (1<<20)/4+1)
	assert.ErrorIs(t, a.AppendSlice(big), ErrAllocationFailure)
	assert.ErrorIs(t, a.Resize(big), ErrAllocationFailure)
	assert.Equal(t, []uint32{1}, a.Slice())
}

func TestReserveHugeDefaultRuntime(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("needs 64-bit int")
	}
	useRuntime(t)

	var a Uint32Array
	huge := int64(1_000_000_000_000)
	assert.ErrorIs(t, a.TryReserve(int(huge)), ErrAllocationFailure)
	assert.Panics(t, func() { a.Reserve(int(huge)) })
}

func TestFloatEqualityIsBitwise(t *testing.T) {
	var a, b Float64Array
	require.NoError(t, a.Push(math.NaN()))
	require.NoError(t, b.Push(math.NaN()))
	assert.True(t, a.Equal(&b), "identical NaN bit patterns are equal")

	var pos, neg Float64Array
	require.NoError(t, pos.Push(0))
	require.NoError(t, neg.Push(math.Copysign(0, -1)))
	assert.False(t, pos.Equal(&neg), "+0 and -0 differ")
}

func TestSignedValues(t *testing.T) {
	var a Int8Array
	require.NoError(t, a.AppendSlice([]int8{math.MinInt8, -1, 0, math.MaxInt8}))
	require.NoError(t, a.Push(-128))
	require.NoError(t, a.Replace(2, -7))
	assert.Equal(t, []int8{-128, -1, -7, 127, -128}, a.Slice())

	var b IntArray
	require.NoError(t, b.Push(math.MinInt))
	require.NoError(t, b.Push(math.MaxInt))
	require.NoError(t, b.Insert(1, -42))
	assert.Equal(t, []int{math.MinInt, -42, math.MaxInt}, b.Slice())
}

func TestWordKindsMatchTarget(t *testing.T) {
	var (
		ki KindInt
		ku KindUint
		kp KindUintptr
	)
	assert.Equal(t, arraycore.TagIntPtr, ki.tag())
	assert.Equal(t, arraycore.TagUintPtr, ku.tag())
	assert.Equal(t, arraycore.TagUintPtr, kp.tag())
	assert.Equal(t, strconv.IntSize/8, ki.tag().Size())

	var p UintptrArray
	require.NoError(t, p.Push(^uintptr(0)))
	assert.Equal(t, ^uintptr(0), p.At(0))
}

func TestFontTagArray(t *testing.T) {
	var a FontTagArray
	tags := []opentype.Tag{opentype.MustNewTag("liga"), opentype.MustNewTag("kern")}
	require.NoError(t, a.AppendSlice(tags))
	require.NoError(t, a.InsertSlice(1, []opentype.Tag{opentype.MustNewTag("smcp")}))

	assert.Equal(t, arraycore.TagStruct4, a.tag())
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, opentype.MustNewTag("smcp"), a.At(1))

	b := a.Clone()
	assert.True(t, a.Equal(&b))
	require.NoError(t, b.Remove(0))
	assert.Equal(t, 3, a.Len())
}

// faultyRuntime reports status for the entry points it overrides.
type faultyRuntime struct {
	arraycore.Runtime
	status arraycore.Status
}

func (f faultyRuntime) Clear(*arraycore.Core) arraycore.Status { return f.status }

func (f faultyRuntime) Shrink(*arraycore.Core) arraycore.Status { return f.status }

func (f faultyRuntime) Reserve(*arraycore.Core, int) arraycore.Status { return f.status }

func (f faultyRuntime) RemoveIndex(*arraycore.Core, int) arraycore.Status { return f.status }

func TestRuntimeFailures(t *testing.T) {
	rt := useRuntime(t)

	var a Uint8Array
	require.NoError(t, a.AppendSlice([]uint8{1, 2, 3}))

	SetRuntime(faultyRuntime{Runtime: rt, status: arraycore.Status(99)})

	assert.PanicsWithValue(t, &ContractError{Op: "Clear", Code: 99}, func() { a.Clear() })
	assert.PanicsWithValue(t, &ContractError{Op: "ShrinkToFit", Code: 99}, func() { a.ShrinkToFit() })

	err := a.TryReserve(1000)
	var rerr *RuntimeError
	require.True(t, errors.As(err, &rerr), "got %v", err)
	assert.Equal(t, arraycore.Status(99), rerr.Code)
	assert.Contains(t, err.Error(), "status(99)")

	SetRuntime(faultyRuntime{Runtime: rt, status: arraycore.StatusOutOfMemory})
	assert.ErrorIs(t, a.Remove(0), ErrAllocationFailure)
	assert.Equal(t, []uint8{1, 2, 3}, a.Slice())
}

// TestMatchesSliceModel drives an array and a plain slice through the same
// random operations and compares them after every step.
func TestMatchesSliceModel(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	var a Int32Array
	var model []int32

	check := func(step int, op string) {
		t.Helper()
		if !slices.Equal(model, a.Slice()) {
			t.Fatalf("step %d (%s): array %v, model %v", step, op, a.Slice(), model)
		}
		if a.Len() > a.Cap() {
			t.Fatalf("step %d (%s): len %d > cap %d", step, op, a.Len(), a.Cap())
		}
	}

	for step := range 2000 {
		n := len(model)
		v := rng.Int32()
		switch op := rng.IntN(9); op {
		case 0:
			require.NoError(t, a.Push(v))
			model = append(model, v)
			check(step, "push")
		case 1:
			i := rng.IntN(n + 2)
			err := a.Insert(i, v)
			if i > n {
				require.ErrorIs(t, err, ErrInvalidArgument)
			} else {
				require.NoError(t, err)
				model = slices.Insert(model, i, v)
			}
			check(step, "insert")
		case 2:
			if n == 0 {
				require.ErrorIs(t, a.Remove(0), ErrInvalidArgument)
				break
			}
			i := rng.IntN(n)
			require.NoError(t, a.Remove(i))
			model = slices.Delete(model, i, i+1)
			check(step, "remove")
		case 3:
			start := rng.IntN(n + 1)
			end := start + rng.IntN(n-start+1)
			require.NoError(t, a.RemoveRange(start, end))
			model = slices.Delete(model, start, end)
			check(step, "remove range")
		case 4:
			data := make([]int32, rng.IntN(5))
			for i := range data {
				data[i] = rng.Int32()
			}
			require.NoError(t, a.AppendSlice(data))
			model = append(model, data...)
			check(step, "append slice")
		case 5:
			start := rng.IntN(n + 1)
			end := start + rng.IntN(n-start+1)
			data := []int32{v, v + 1}
			require.NoError(t, a.ReplaceSlice(start, end, data))
			model = slices.Replace(model, start, end, data...)
			check(step, "replace slice")
		case 6:
			k := rng.IntN(n + 2)
			a.Truncate(k)
			if k < n {
				model = model[:k]
			}
			check(step, "truncate")
		case 7:
			// Mutating a clone never shows through the original.
			b := a.Clone()
			require.NoError(t, b.Push(v))
			check(step, "clone")
			b.Reset()
		case 8:
			if n > 0 {
				i := rng.IntN(n)
				require.NoError(t, a.Replace(i, v))
				model[i] = v
			}
			check(step, "replace")
		}
		if len(model) > 200 {
			a.Clear()
			model = model[:0]
		}
	}
}

func BenchmarkPush(b *testing.B) {
	for b.Loop() {
		var a Uint32Array
		for i := range 1024 {
			_ = a.Push(uint32(i))
		}
		a.Reset()
	}
}

func BenchmarkAppendSlice(b *testing.B) {
	data := make([]float64, 4096)
	for b.Loop() {
		var a Float64Array
		_ = a.AppendSlice(data)
		a.Reset()
	}
}
