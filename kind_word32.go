//go:build 386 || arm || mips || mipsle

package blend

import (
	"unsafe"

	"github.com/gogpu/blend/arraycore"
)

// The build constraint above must match the pointer width of the target.
const (
	_ = unsafe.Sizeof(uintptr(0)) - 4
	_ = 4 - unsafe.Sizeof(uintptr(0))
)

func (KindInt) tag() arraycore.Tag { return arraycore.TagIntPtr }
func (KindInt) elem(*int) {}

func (KindInt) append(rt arraycore.Runtime, c *arraycore.Core, v int) arraycore.Status {
	return rt.AppendU32(c, uint32(v))
}

func (KindInt) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v int) arraycore.Status {
	return rt.InsertU32(c, index, uint32(v))
}

func (KindInt) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v int) arraycore.Status {
	return rt.ReplaceU32(c, index, uint32(v))
}

func (KindUint) tag() arraycore.Tag { return arraycore.TagUintPtr }
func (KindUint) elem(*uint) {}

func (KindUint) append(rt arraycore.Runtime, c *arraycore.Core, v uint) arraycore.Status {
	return rt.AppendU32(c, uint32(v))
}

func (KindUint) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uint) arraycore.Status {
	return rt.InsertU32(c, index, uint32(v))
}

func (KindUint) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uint) arraycore.Status {
	return rt.ReplaceU32(c, index, uint32(v))
}

func (KindUintptr) tag() arraycore.Tag { return arraycore.TagUintPtr }
func (KindUintptr) elem(*uintptr) {}

func (KindUintptr) append(rt arraycore.Runtime, c *arraycore.Core, v uintptr) arraycore.Status {
	return rt.AppendU32(c, uint32(v))
}

func (KindUintptr) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uintptr) arraycore.Status {
	return rt.InsertU32(c, index, uint32(v))
}

func (KindUintptr) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uintptr) arraycore.Status {
	return rt.ReplaceU32(c, index, uint32(v))
}
