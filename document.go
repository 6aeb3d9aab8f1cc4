// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonview

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// errWalkDone is returned from a readElements callback to stop the walk
// early without reporting an error.
var errWalkDone = errors.New("element walk complete")

// emptyDoc is the canonical representation of the empty BSON document: the
// number 5 in little endian followed by the terminating null byte.
var emptyDoc = Document{'\x05', '\x00', '\x00', '\x00', '\x00'}

// Document is a non-owning view of a byte slice that contains a single BSON
// document. It never copies or mutates the bytes it wraps. All methods run in
// O(n) time over the top-level elements because no metadata is cached;
// validation is incremental and happens as elements are decoded.
//
// The caller must ensure the backing buffer remains valid and unmutated for
// as long as the Document, or any Element or Iterator derived from it, is in
// use.
type Document []byte

// NewDocument returns a Document view over b. If b is nil, the canonical
// empty document is returned. No copying and no validation is performed.
func NewDocument(b []byte) Document {
	if b == nil {
		return emptyDoc
	}
	return Document(b)
}

// NewDocumentFromReader reads a single document from the given io.Reader. This
// is the only constructor that allocates: the document is read into a fresh
// buffer sized from its length prefix, and the returned Document views that
// buffer.
func NewDocumentFromReader(r io.Reader) (Document, error) {
	if r == nil {
		return nil, ErrNilReader
	}

	var lengthBytes [4]byte

	_, err := io.ReadFull(r, lengthBytes[:])
	if err != nil {
		return nil, errors.Wrap(err, "unable to read document length")
	}

	length := readi32(lengthBytes[:])
	if length < 5 {
		return nil, ErrInvalidLength
	}

	doc := make(Document, length)
	copy(doc, lengthBytes[:])

	_, err = io.ReadFull(r, doc[4:])
	if err != nil {
		return nil, errors.Wrap(err, "unable to read document body")
	}

	return doc, nil
}

// Data returns the raw bytes of the underlying buffer. The returned slice is
// not a copy.
func (d Document) Data() []byte {
	return d
}

// Length returns the length of the underlying buffer in bytes. This is not
// the number of elements in the document; to count elements, exhaust an
// Iterator.
func (d Document) Length() int {
	return len(d)
}

// Empty returns true if the document is the trivial document '{}'. The
// length encoding is unambiguous, so this is a constant-time check.
func (d Document) Empty() bool {
	return len(d) == len(emptyDoc)
}

// Equal compares d to d2 and returns true if their lengths and bytes match.
// This is a buffer content comparison: two semantically equal documents whose
// fields are ordered differently are not equal under this method.
func (d Document) Equal(d2 Document) bool {
	return bytes.Equal(d, d2)
}

// Iterator returns an Iterator positioned before the first element of the
// document. It returns an error if the buffer is too small to hold a
// document or if the length prefix overruns the buffer.
func (d Document) Iterator() (*Iterator, error) {
	return newIterator(d)
}

// Find returns an Iterator positioned at the first element whose key equals
// the provided key, comparing byte for byte. The scan is linear over the
// top-level elements, stops at the first match, and does not recurse into
// embedded documents or arrays. If no element matches, or the document is
// malformed, the returned Iterator is exhausted; Err reports the malformed
// case.
func (d Document) Find(key string) *Iterator {
	itr, err := newIterator(d)
	if err != nil {
		return &Iterator{err: err}
	}
	for itr.Next() {
		if itr.Element().Key() == key {
			break
		}
	}
	return itr
}

// Lookup searches the document, potentially recursively, for the given keys
// and returns the matching element. If more than one key is provided, the
// keys before the last must be embedded documents or arrays, and each step
// descends into the previous step's value. The invalid Element is returned
// when no element matches or the document is malformed; use LookupErr to
// distinguish the two.
func (d Document) Lookup(key ...string) Element {
	elem, err := d.LookupErr(key...)
	if err != nil {
		return Element{}
	}
	return elem
}

// LookupErr behaves the same as Lookup, but returns an error instead of
// swallowing it. ErrElementNotFound is returned when no element matches and
// ErrInvalidDepthTraversal when an intermediate key denotes a value that is
// neither a document nor an array.
func (d Document) LookupErr(key ...string) (Element, error) {
	if len(key) < 1 {
		return Element{}, ErrEmptyKey
	}

	itr := d.Find(key[0])
	if itr.Err() != nil {
		return Element{}, itr.Err()
	}
	elem := itr.Element()
	if !elem.Valid() {
		return Element{}, ErrElementNotFound
	}
	if len(key) == 1 {
		return elem, nil
	}

	switch elem.Type() {
	case TypeEmbeddedDocument:
		return elem.Document().LookupErr(key[1:]...)
	case TypeArray:
		return elem.Array().LookupErr(key[1:]...)
	default:
		return Element{}, ErrInvalidDepthTraversal
	}
}

// Validate validates the document and returns its total byte size, including
// the length prefix and the null terminator. Every top-level element is
// validated deeply, recursing into embedded documents and arrays.
func (d Document) Validate() (uint32, error) {
	return d.readElements(nil)
}

// Keys returns the keys of this document in declaration order. If recursive
// is true, the keys of embedded documents and arrays are included, with their
// paths recorded as prefixes.
func (d Document) Keys(recursive bool) (Keys, error) {
	return d.recursiveKeys(recursive)
}

// recursiveKeys implements the logic for the Keys method. This is a separate
// function to facilitate recursive calls.
func (d Document) recursiveKeys(recursive bool, prefix ...string) (Keys, error) {
	ks := make(Keys, 0)
	_, err := d.readElements(func(elem Element) error {
		key := elem.Key()
		ks = append(ks, Key{Prefix: prefix, Name: key})
		if recursive {
			// The prefix must be copied: appending in place would let sibling
			// subdocuments share a backing array and overwrite the prefixes
			// already recorded in earlier keys.
			recursivePrefix := append(append([]string(nil), prefix...), key)
			switch elem.Type() {
			case TypeEmbeddedDocument:
				recurKeys, err := elem.Document().recursiveKeys(recursive, recursivePrefix...)
				if err != nil {
					return err
				}
				ks = append(ks, recurKeys...)
			case TypeArray:
				recurKeys, err := elem.Array().recursiveKeys(recursive, recursivePrefix...)
				if err != nil {
					return err
				}
				ks = append(ks, recurKeys...)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ks, nil
}

// validateKey ensures the key at pos is a null terminated cstring within end
// and returns its length, including the null terminator.
func (d Document) validateKey(pos, end uint32) (uint32, error) {
	var total uint32
	for ; pos < end && d[pos] != '\x00'; pos++ {
		total++
	}
	if pos == end || d[pos] != '\x00' {
		return total, ErrInvalidKey
	}
	total++
	return total, nil
}

// readElements is an internal method used to traverse the document. It
// validates the document and the underlying elements. If the provided
// function is non-nil it will be called for each element. If errWalkDone is
// returned from the function, this method will return with a nil error; any
// other error is passed through.
func (d Document) readElements(f func(e Element) error) (uint32, error) {
	if len(d) < 5 {
		return 0, NewErrTooSmall()
	}
	givenLength := readi32(d[0:4])
	if givenLength < 0 || len(d) < int(givenLength) {
		return 0, ErrInvalidLength
	}
	var pos uint32 = 4
	end := uint32(givenLength)
	for {
		if pos >= end {
			// We've gone off the end of the buffer and we're missing
			// a null terminator.
			return pos, ErrInvalidDocument
		}
		if d[pos] == '\x00' {
			break
		}
		elemStart := pos
		pos++
		n, err := d.validateKey(pos, end)
		pos += n
		if err != nil {
			return pos, err
		}
		elem := newElement(elemStart, pos, d)
		n, err = elem.validateValue(true)
		pos += n
		if err != nil {
			return pos, err
		}
		if f != nil {
			err = f(elem)
			if err != nil {
				if err == errWalkDone {
					break
				}
				return pos, err
			}
		}
	}

	// The size is always 1 larger than the position, since position is 0
	// indexed.
	return pos + 1, nil
}

// Keys represents the keys of a BSON document.
type Keys []Key

// Key represents an individual key of a BSON document. The Prefix property is
// used to represent the depth of this key.
type Key struct {
	Prefix []string
	Name   string
}

// String implements the fmt.Stringer interface.
func (k Key) String() string {
	str := strings.Join(k.Prefix, ".")
	if str != "" {
		return str + "." + k.Name
	}
	return k.Name
}

// readi32 is a helper function for reading an int32 from a slice of bytes.
func readi32(b []byte) int32 {
	_ = b[3] // bounds check hint to compiler; see golang.org/issue/14808
	return int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16 | int32(b[3])<<24
}
