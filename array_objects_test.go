package blend

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trianglePath() Path {
	var p Path
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(5, 8)
	p.Close()
	return p
}

func TestObjectsHoldReferences(t *testing.T) {
	p := trianglePath()
	var arr PathArray
	require.NoError(t, arr.Push(&p))
	assert.Equal(t, int64(2), p.obj.RefCount())

	require.NoError(t, arr.Insert(0, &p))
	assert.Equal(t, int64(3), p.obj.RefCount())

	require.NoError(t, arr.Remove(0))
	assert.Equal(t, int64(2), p.obj.RefCount())

	arr.Reset()
	assert.Equal(t, int64(1), p.obj.RefCount())
	assert.True(t, arr.IsEmpty())
}

func TestObjectsCloneIsolation(t *testing.T) {
	p := trianglePath()
	var arr PathArray
	require.NoError(t, arr.Push(&p))

	clone := arr.Clone()
	var q Path
	q.MoveTo(1, 1)
	require.NoError(t, clone.Push(&q))

	assert.Equal(t, 1, arr.Len())
	assert.Equal(t, 2, clone.Len())
	assert.Equal(t, int64(3), p.obj.RefCount(), "detached storage retains its copies")

	clone.Reset()
	assert.Equal(t, int64(2), p.obj.RefCount())
	assert.Equal(t, int64(1), q.obj.RefCount())
}

func TestObjectsAtIsIndependent(t *testing.T) {
	p := trianglePath()
	var arr PathArray
	require.NoError(t, arr.Push(&p))

	elem := arr.At(0)
	defer elem.Reset()
	assert.True(t, elem.Equal(&p))

	elem.LineTo(20, 20)
	assert.Equal(t, 5, elem.Len())
	assert.Equal(t, 4, p.Len())
	stored := arr.Slice()[0]
	assert.Equal(t, 4, stored.Len())
}

func TestObjectsReplace(t *testing.T) {
	a, b := trianglePath(), Path{}
	b.MoveTo(3, 3)

	var arr PathArray
	require.NoError(t, arr.Push(&a))
	require.NoError(t, arr.Replace(0, &b))
	assert.Equal(t, int64(1), a.obj.RefCount())
	assert.Equal(t, int64(2), b.obj.RefCount())

	assert.ErrorIs(t, arr.Replace(1, &a), ErrInvalidArgument)
	assert.ErrorIs(t, arr.Replace(0, nil), ErrInvalidArgument)
	assert.ErrorIs(t, arr.Push(nil), ErrInvalidArgument)
	assert.ErrorIs(t, arr.Insert(0, nil), ErrInvalidArgument)
	assert.Equal(t, 1, arr.Len())
}

func TestObjectsSliceOperations(t *testing.T) {
	p1, p2 := trianglePath(), Path{}
	p2.Rectangle(0, 0, 4, 4)

	var arr PathArray
	require.NoError(t, arr.AppendSlice([]Path{p1, p2, p1}))
	assert.Equal(t, int64(3), p1.obj.RefCount())
	assert.Equal(t, int64(2), p2.obj.RefCount())

	require.NoError(t, arr.ReplaceSlice(0, 2, []Path{p2}))
	assert.Equal(t, 2, arr.Len())
	assert.Equal(t, int64(2), p1.obj.RefCount())
	assert.Equal(t, int64(2), p2.obj.RefCount())

	require.NoError(t, arr.AppendSlice(arr.Slice()))
	assert.Equal(t, 4, arr.Len())
	assert.Equal(t, int64(3), p1.obj.RefCount())
	assert.Equal(t, int64(3), p2.obj.RefCount())

	arr.Truncate(1)
	assert.Equal(t, int64(1), p1.obj.RefCount())
	assert.Equal(t, int64(2), p2.obj.RefCount())

	require.NoError(t, arr.Resize([]Path{p1, p1}))
	assert.Equal(t, int64(3), p1.obj.RefCount())
	assert.Equal(t, int64(1), p2.obj.RefCount())

	arr.Clear()
	assert.Equal(t, int64(1), p1.obj.RefCount())
}

// pushContexts adds n contexts to arr, each rendering into its own 4x4
// image, and drops every other reference so the array holds the only one.
func pushContexts(t *testing.T, arr *ContextArray, n int) {
	t.Helper()
	for range n {
		img, err := NewImage(4, 4)
		require.NoError(t, err)
		ctx, err := NewContext(&img)
		require.NoError(t, err)
		require.NoError(t, arr.Push(&ctx))
		ctx.Reset()
		img.Reset()
	}
}

func targetWidth(arr *ContextArray, i int) int {
	ctx := arr.At(i)
	defer ctx.Reset()
	target := ctx.Target()
	defer target.Reset()
	return target.Width()
}

func TestObjectsSelfAliasingViews(t *testing.T) {
	t.Run("replace", func(t *testing.T) {
		var arr ContextArray
		defer arr.Reset()
		pushContexts(t, &arr, 2)

		require.NoError(t, arr.ReplaceSlice(0, 2, arr.Slice()))
		require.Equal(t, 2, arr.Len())
		for i, ctx := range arr.Slice() {
			assert.Equal(t, 4, targetWidth(&arr, i), "context %d keeps its target", i)
			assert.Equal(t, int64(1), ctx.obj.RefCount())
		}
	})

	t.Run("resize", func(t *testing.T) {
		var arr ContextArray
		defer arr.Reset()
		pushContexts(t, &arr, 2)
		second := arr.At(1)
		defer second.Reset()

		require.NoError(t, arr.Resize(arr.Slice()[1:]))
		require.Equal(t, 1, arr.Len())
		assert.Equal(t, 4, targetWidth(&arr, 0))
		stored := arr.Slice()[0]
		assert.True(t, stored.Equal(&second))
		assert.Equal(t, int64(2), second.obj.RefCount())
	})

	t.Run("insert", func(t *testing.T) {
		var arr ContextArray
		defer arr.Reset()
		pushContexts(t, &arr, 2)

		require.NoError(t, arr.InsertSlice(1, arr.Slice()))
		require.Equal(t, 4, arr.Len())
		for i, ctx := range arr.Slice() {
			assert.Equal(t, 4, targetWidth(&arr, i))
			assert.Equal(t, int64(2), ctx.obj.RefCount())
		}
	})
}

func TestObjectsSelfAliasingFailureKeepsElements(t *testing.T) {
	useRuntime(t, WithAllocLimit(64))

	var arr ContextArray
	defer arr.Reset()
	pushContexts(t, &arr, 2)
	for range arr.Cap() - arr.Len() {
		require.NoError(t, arr.AppendSlice(arr.Slice()[:1]))
	}

	err := arr.InsertSlice(0, arr.Slice())
	require.ErrorIs(t, err, ErrAllocationFailure)
	assert.Equal(t, arr.Cap(), arr.Len())
	assert.Equal(t, int64(arr.Len()-1), arr.Slice()[0].obj.RefCount(), "failed insert leaves no extra references")
	assert.Equal(t, int64(1), arr.Slice()[1].obj.RefCount())
}

func TestObjectsEqual(t *testing.T) {
	a, b := trianglePath(), trianglePath()

	var x, y PathArray
	require.NoError(t, x.Push(&a))
	require.NoError(t, y.Push(&b))
	assert.True(t, x.Equal(&y), "equal paths in distinct records")

	b.LineTo(1, 1)
	var z PathArray
	require.NoError(t, z.Push(&b))
	assert.False(t, x.Equal(&z))

	// An empty element equals another empty element.
	var e1, e2 Path
	var m, n PathArray
	require.NoError(t, m.Push(&e1))
	require.NoError(t, n.Push(&e2))
	assert.True(t, m.Equal(&n))
}

func TestContextArrayReleasesTarget(t *testing.T) {
	img, err := NewImage(4, 4)
	require.NoError(t, err)

	ctx, err := NewContext(&img)
	require.NoError(t, err)
	assert.Equal(t, int64(2), img.obj.RefCount())

	var arr ContextArray
	require.NoError(t, arr.Push(&ctx))
	ctx.Reset()
	assert.Equal(t, int64(2), img.obj.RefCount(), "array keeps the context alive")

	arr.Reset()
	assert.Equal(t, int64(1), img.obj.RefCount(), "last context reference releases its target")
}

func TestImageArray(t *testing.T) {
	img, err := NewImage(2, 2)
	require.NoError(t, err)

	var arr ImageArray
	require.NoError(t, arr.Push(&img))

	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	stored := arr.At(0)
	defer stored.Reset()
	assert.Equal(t, color.NRGBA{}, stored.At(0, 0), "writing the original detached it from the array")
	assert.Equal(t, "[Image(2x2)]", arr.String())
}
