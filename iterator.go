// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonview

// Iterator facilitates iterating over the top-level elements of a Document
// one at a time. Each call to Next decodes the header of the next element in
// place; the underlying bytes are never copied.
//
// The zero value is not usable; an Iterator is obtained from
// Document.Iterator or Document.Find. Copies of an Iterator are independent
// positions, there is no cursor state shared between them.
type Iterator struct {
	d    Document
	pos  uint32
	end  uint32
	elem Element
	err  error
}

// newIterator positions an iterator at the start of d's first element. It
// returns an error if d is too small to hold a document or if d's length
// prefix overruns the buffer.
func newIterator(d Document) (*Iterator, error) {
	if len(d) < 5 {
		return nil, NewErrTooSmall()
	}
	givenLength := readi32(d[0:4])
	if givenLength < 5 || len(d) < int(givenLength) {
		return nil, ErrInvalidLength
	}

	return &Iterator{d: d, pos: 4, end: uint32(givenLength)}, nil
}

// Next advances the iterator to the next element of the document. It returns
// false when the terminating null byte is reached or when the document turns
// out to be malformed; Err distinguishes the two.
func (itr *Iterator) Next() bool {
	if itr.err != nil {
		return false
	}
	if itr.pos >= itr.end {
		// We've run off the end of the buffer without seeing the null
		// terminator.
		itr.err = ErrInvalidDocument
		itr.elem = Element{}
		return false
	}
	if itr.d[itr.pos] == '\x00' {
		itr.elem = Element{}
		return false
	}
	elemStart := itr.pos
	itr.pos++
	n, err := itr.d.validateKey(itr.pos, itr.end)
	itr.pos += n
	if err != nil {
		itr.err = err
		itr.elem = Element{}
		return false
	}
	elem := newElement(elemStart, itr.pos, itr.d)

	n, err = elem.valueSize()
	itr.pos += n
	if err != nil {
		itr.err = err
		itr.elem = Element{}
		return false
	}
	if itr.pos > itr.end {
		itr.err = ErrInvalidDocument
		itr.elem = Element{}
		return false
	}
	itr.elem = elem
	return true
}

// Element returns the current element of the iterator. The invalid Element
// is returned before the first call to Next and after iteration ends.
func (itr *Iterator) Element() Element {
	return itr.elem
}

// Err returns the error that stopped iteration, if any. A nil error after
// Next has returned false means the document's elements were exhausted
// normally.
func (itr *Iterator) Err() error {
	return itr.err
}

// Equal compares itr to itr2 and returns true if they denote the same
// element. Two exhausted iterators are equal regardless of the documents they
// iterated.
func (itr *Iterator) Equal(itr2 *Iterator) bool {
	return itr.elem.Equal(itr2.elem)
}
