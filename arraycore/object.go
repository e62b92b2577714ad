// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package arraycore

import "sync/atomic"

// Releaser is implemented by payloads that hold further resources.
// Release runs once, when the last reference to the object goes away.
type Releaser interface {
	Release()
}

// PayloadEqualer is implemented by payloads with structural equality.
// other is the payload of the second object and may be nil, which stands
// for an empty object of the same type.
type PayloadEqualer interface {
	EqualPayload(other any) bool
}

// PayloadCloner is implemented by payloads that must be copied before a
// shared object is written. The copy takes its own references to any
// sub-resources.
type PayloadCloner interface {
	ClonePayload() any
}

// ObjectImpl is the refcounted record behind a managed element.
type ObjectImpl struct {
	refs atomic.Int64

	Tag     Tag
	Payload any
}

// Object is the handle of a managed element. Managed element types wrap
// exactly one Object so that arrays can store them as Object slots.
type Object struct {
	Impl *ObjectImpl
}

// NewObject returns a handle with one reference to a new record.
func NewObject(tag Tag, payload any) Object {
	impl := &ObjectImpl{Tag: tag, Payload: payload}
	impl.refs.Store(1)
	return Object{Impl: impl}
}

// Retain adds a reference and returns the same handle.
func (o Object) Retain() Object {
	if o.Impl != nil {
		o.Impl.refs.Add(1)
	}
	return o
}

// Release drops the handle's reference and clears the handle.
func (o *Object) Release() {
	impl := o.Impl
	o.Impl = nil
	if impl == nil {
		return
	}
	if impl.refs.Add(-1) == 0 {
		if r, ok := impl.Payload.(Releaser); ok {
			r.Release()
		}
	}
}

// RefCount returns the number of references, 0 for an empty handle.
func (o Object) RefCount() int64 {
	if o.Impl == nil {
		return 0
	}
	return o.Impl.refs.Load()
}

// Payload returns the record payload, nil for an empty handle.
func (o Object) Payload() any {
	if o.Impl == nil {
		return nil
	}
	return o.Impl.Payload
}

// MakeMutable gives o a private record if the current one is shared.
// The payload is copied through PayloadCloner when it implements it.
func (o *Object) MakeMutable() {
	impl := o.Impl
	if impl == nil || impl.refs.Load() == 1 {
		return
	}
	payload := impl.Payload
	if c, ok := payload.(PayloadCloner); ok {
		payload = c.ClonePayload()
	}
	fresh := NewObject(impl.Tag, payload)
	o.Release()
	*o = fresh
}

// Equal reports whether two handles refer to equal records.
func (o Object) Equal(other Object) bool {
	if o.Impl == other.Impl {
		return true
	}
	if o.Impl != nil && other.Impl != nil && o.Impl.Tag != other.Impl.Tag {
		return false
	}
	a, b := o.Payload(), other.Payload()
	if a == nil {
		a, b = b, a
	}
	if e, ok := a.(PayloadEqualer); ok {
		return e.EqualPayload(b)
	}
	return false
}
