package blend

import "github.com/gogpu/blend/arraycore"

// Signed values travel through the unsigned entry point of the same width
// as their two's complement bit pattern.

func (KindInt8) tag() arraycore.Tag { return arraycore.TagI8 }
func (KindInt8) elem(*int8) {}

func (KindInt8) append(rt arraycore.Runtime, c *arraycore.Core, v int8) arraycore.Status {
	return rt.AppendU8(c, uint8(v))
}

func (KindInt8) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v int8) arraycore.Status {
	return rt.InsertU8(c, index, uint8(v))
}

func (KindInt8) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v int8) arraycore.Status {
	return rt.ReplaceU8(c, index, uint8(v))
}

func (KindUint8) tag() arraycore.Tag { return arraycore.TagU8 }
func (KindUint8) elem(*uint8) {}

func (KindUint8) append(rt arraycore.Runtime, c *arraycore.Core, v uint8) arraycore.Status {
	return rt.AppendU8(c, v)
}

func (KindUint8) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uint8) arraycore.Status {
	return rt.InsertU8(c, index, v)
}

func (KindUint8) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uint8) arraycore.Status {
	return rt.ReplaceU8(c, index, v)
}

func (KindInt16) tag() arraycore.Tag { return arraycore.TagI16 }
func (KindInt16) elem(*int16) {}

func (KindInt16) append(rt arraycore.Runtime, c *arraycore.Core, v int16) arraycore.Status {
	return rt.AppendU16(c, uint16(v))
}

func (KindInt16) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v int16) arraycore.Status {
	return rt.InsertU16(c, index, uint16(v))
}

func (KindInt16) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v int16) arraycore.Status {
	return rt.ReplaceU16(c, index, uint16(v))
}

func (KindUint16) tag() arraycore.Tag { return arraycore.TagU16 }
func (KindUint16) elem(*uint16) {}

func (KindUint16) append(rt arraycore.Runtime, c *arraycore.Core, v uint16) arraycore.Status {
	return rt.AppendU16(c, v)
}

func (KindUint16) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uint16) arraycore.Status {
	return rt.InsertU16(c, index, v)
}

func (KindUint16) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uint16) arraycore.Status {
	return rt.ReplaceU16(c, index, v)
}

func (KindInt32) tag() arraycore.Tag { return arraycore.TagI32 }
func (KindInt32) elem(*int32) {}

func (KindInt32) append(rt arraycore.Runtime, c *arraycore.Core, v int32) arraycore.Status {
	return rt.AppendU32(c, uint32(v))
}

func (KindInt32) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v int32) arraycore.Status {
	return rt.InsertU32(c, index, uint32(v))
}

func (KindInt32) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v int32) arraycore.Status {
	return rt.ReplaceU32(c, index, uint32(v))
}

func (KindUint32) tag() arraycore.Tag { return arraycore.TagU32 }
func (KindUint32) elem(*uint32) {}

func (KindUint32) append(rt arraycore.Runtime, c *arraycore.Core, v uint32) arraycore.Status {
	return rt.AppendU32(c, v)
}

func (KindUint32) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uint32) arraycore.Status {
	return rt.InsertU32(c, index, v)
}

func (KindUint32) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uint32) arraycore.Status {
	return rt.ReplaceU32(c, index, v)
}

func (KindInt64) tag() arraycore.Tag { return arraycore.TagI64 }
func (KindInt64) elem(*int64) {}

func (KindInt64) append(rt arraycore.Runtime, c *arraycore.Core, v int64) arraycore.Status {
	return rt.AppendU64(c, uint64(v))
}

func (KindInt64) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v int64) arraycore.Status {
	return rt.InsertU64(c, index, uint64(v))
}

func (KindInt64) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v int64) arraycore.Status {
	return rt.ReplaceU64(c, index, uint64(v))
}

func (KindUint64) tag() arraycore.Tag { return arraycore.TagU64 }
func (KindUint64) elem(*uint64) {}

func (KindUint64) append(rt arraycore.Runtime, c *arraycore.Core, v uint64) arraycore.Status {
	return rt.AppendU64(c, v)
}

func (KindUint64) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v uint64) arraycore.Status {
	return rt.InsertU64(c, index, v)
}

func (KindUint64) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v uint64) arraycore.Status {
	return rt.ReplaceU64(c, index, v)
}

func (KindFloat32) tag() arraycore.Tag { return arraycore.TagF32 }
func (KindFloat32) elem(*float32) {}

func (KindFloat32) append(rt arraycore.Runtime, c *arraycore.Core, v float32) arraycore.Status {
	return rt.AppendF32(c, v)
}

func (KindFloat32) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v float32) arraycore.Status {
	return rt.InsertF32(c, index, v)
}

func (KindFloat32) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v float32) arraycore.Status {
	return rt.ReplaceF32(c, index, v)
}

func (KindFloat64) tag() arraycore.Tag { return arraycore.TagF64 }
func (KindFloat64) elem(*float64) {}

func (KindFloat64) append(rt arraycore.Runtime, c *arraycore.Core, v float64) arraycore.Status {
	return rt.AppendF64(c, v)
}

func (KindFloat64) insert(rt arraycore.Runtime, c *arraycore.Core, index int, v float64) arraycore.Status {
	return rt.InsertF64(c, index, v)
}

func (KindFloat64) replace(rt arraycore.Runtime, c *arraycore.Core, index int, v float64) arraycore.Status {
	return rt.ReplaceF64(c, index, v)
}
