// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package jdec

// A Lazy is a decoded JSON tree whose leaves have not yet been classified.
// The concrete type of a Lazy is one of Deferred, LazyObject, LazyArray, or
// LazyInvalidLocation.
//
// Use Materialize to convert a Lazy tree into an equivalent Value.
type Lazy interface {
	// At returns the member of a LazyObject with the given key. If the value
	// is not a LazyObject, or has no such member, At returns
	// LazyInvalidLocation.
	At(key string) Lazy

	// Index returns the element of a LazyArray at offset i. Negative offsets
	// count backward from the end. Otherwise Index returns
	// LazyInvalidLocation.
	Index(i int) Lazy

	isLazy()
}

// A Deferred is a leaf holding the unparsed text of an atom, including the
// quotation marks of a string.
type Deferred string

// Value classifies d into a concrete Value.
func (d Deferred) Value() (Value, error) { return classify(string(d)) }

// A LazyObject is a collection of key-value members with deferred leaves.
type LazyObject map[string]Lazy

// A LazyArray is a sequence of values with deferred leaves.
type LazyArray []Lazy

// LazyInvalidLocation is the result of a lookup in a Lazy tree that did not
// find a value. It materializes to InvalidLocation.
type LazyInvalidLocation struct{}

func (Deferred) At(string) Lazy            { return LazyInvalidLocation{} }
func (LazyArray) At(string) Lazy           { return LazyInvalidLocation{} }
func (LazyInvalidLocation) At(string) Lazy { return LazyInvalidLocation{} }

func (o LazyObject) At(key string) Lazy {
	if v, ok := o[key]; ok {
		return v
	}
	return LazyInvalidLocation{}
}

func (Deferred) Index(int) Lazy            { return LazyInvalidLocation{} }
func (LazyObject) Index(int) Lazy          { return LazyInvalidLocation{} }
func (LazyInvalidLocation) Index(int) Lazy { return LazyInvalidLocation{} }

func (a LazyArray) Index(i int) Lazy {
	if j, ok := fixArrayBound(len(a), i); ok {
		return a[j]
	}
	return LazyInvalidLocation{}
}

func (Deferred) isLazy()            {}
func (LazyObject) isLazy()          {}
func (LazyArray) isLazy()           {}
func (LazyInvalidLocation) isLazy() {}

// Materialize converts a Lazy tree into an equivalent Value tree, classifying
// each Deferred leaf. If any leaf fails to classify, Materialize reports that
// error and no tree.
func Materialize(l Lazy) (Value, error) {
	switch t := l.(type) {
	case Deferred:
		return t.Value()
	case LazyObject:
		out := make(Object, len(t))
		for key, elt := range t {
			v, err := Materialize(elt)
			if err != nil {
				return nil, err
			}
			out[key] = v
		}
		return out, nil
	case LazyArray:
		out := make(Array, len(t))
		for i, elt := range t {
			v, err := Materialize(elt)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case LazyInvalidLocation:
		return InvalidLocation{}, nil
	default:
		return nil, &DecodeError{Kind: MalformedStructure, Message: "invalid lazy value"}
	}
}
