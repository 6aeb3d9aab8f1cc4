// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonview

import (
	"bytes"
	"encoding/binary"
	"math"
	"time"

	"github.com/ikmak/bsonview/decimal"
	"github.com/ikmak/bsonview/objectid"
)

// Element represents a single element of a BSON document, i.e. a key-value
// pair located at an offset within the document's underlying buffer. Element
// holds offsets into a potentially shared slice of bytes; it does not own the
// bytes it references and must not be retained past the lifetime of the
// buffer that backs its parent Document.
//
// The zero value of Element is the invalid element. It is returned by Lookup
// when no element matches and is the state an exhausted Iterator denotes.
// Invoking Key, Type, or any typed accessor on the invalid element panics
// with ErrUninitializedElement.
type Element struct {
	// start is the offset into the data slice of bytes where this element
	// begins.
	start uint32
	// value is the offset into the data slice of bytes where this element's
	// value begins.
	value uint32

	data []byte
}

// newElement constructs an element at the given offsets of data.
func newElement(start, value uint32, data []byte) Element {
	return Element{start: start, value: value, data: data}
}

// Valid returns false if e is the invalid (not found or past-the-end)
// element.
func (e Element) Valid() bool {
	return e.data != nil && e.value != 0
}

// Validate validates the element and returns its total byte size.
func (e Element) Validate() (uint32, error) {
	if !e.Valid() {
		return 0, ErrUninitializedElement
	}
	var total uint32 = 1
	n, err := e.keySize()
	total += n
	if err != nil {
		return total, err
	}
	n, err = e.validateValue(true)
	total += n
	if err != nil {
		return total, err
	}
	return total, nil
}

// keySize returns the size of the key, including the null terminator, by
// scanning for the terminator between the type tag and the value offset.
func (e Element) keySize() (uint32, error) {
	pos, end := e.start+1, e.value
	var total uint32
	if end > uint32(len(e.data)) {
		end = uint32(len(e.data))
	}
	for ; pos < end && e.data[pos] != '\x00'; pos++ {
		total++
	}
	if pos == end || e.data[pos] != '\x00' {
		return total, ErrInvalidKey
	}
	total++
	return total, nil
}

// valueSize returns the number of bytes the element's value occupies. The
// size of variable-width values is read from the buffer; no deep validation
// is performed.
func (e Element) valueSize() (uint32, error) {
	return e.validateValue(false)
}

// validateValue computes the byte size of the element's value per its type
// tag's encoding rule and verifies the value fits inside the buffer. When
// deep is true, embedded documents and arrays are validated recursively and
// string-like values are checked for their null terminators; when deep is
// false only enough is read to size the value.
func (e Element) validateValue(deep bool) (uint32, error) {
	var total uint32

	switch Type(e.data[e.start]) {
	case TypeUndefined, TypeNull, TypeMinKey, TypeMaxKey:
	case TypeDouble:
		if int(e.value+8) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total += 8
	case TypeString, TypeJavaScript, TypeSymbol:
		if int(e.value+4) > len(e.data) {
			return total, NewErrTooSmall()
		}
		l := readi32(e.data[e.value : e.value+4])
		total += 4
		// The comparison must not be done in 32 bits: a length near the int32
		// maximum would wrap the sum negative and pass.
		if l < 1 || int64(e.value)+4+int64(l) > int64(len(e.data)) {
			return total, NewErrTooSmall()
		}
		if deep && e.data[e.value+4+uint32(l)-1] != '\x00' {
			return total, ErrInvalidString
		}
		total += uint32(l)
	case TypeEmbeddedDocument, TypeArray:
		if int(e.value+4) > len(e.data) {
			return total, NewErrTooSmall()
		}
		l := readi32(e.data[e.value : e.value+4])
		total += 4
		if l < 5 {
			return total, ErrInvalidDocument
		}
		if int64(e.value)+int64(l) > int64(len(e.data)) {
			return total, NewErrTooSmall()
		}
		if deep {
			n, err := Document(e.data[e.value : e.value+uint32(l)]).Validate()
			total += n - 4
			if err != nil {
				return total, err
			}
			break
		}
		total += uint32(l) - 4
	case TypeBinary:
		if int(e.value+5) > len(e.data) {
			return total, NewErrTooSmall()
		}
		l := readi32(e.data[e.value : e.value+4])
		total += 5
		if e.data[e.value+4] > '\x05' && e.data[e.value+4] < '\x80' {
			return total, ErrInvalidBinarySubtype
		}
		if l < 0 || int64(e.value)+5+int64(l) > int64(len(e.data)) {
			return total, NewErrTooSmall()
		}
		total += uint32(l)
	case TypeObjectID:
		if int(e.value+12) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total += 12
	case TypeBoolean:
		if int(e.value+1) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total++
		if deep && e.data[e.value] != '\x00' && e.data[e.value] != '\x01' {
			return total, ErrInvalidBooleanType
		}
	case TypeDateTime, TypeTimestamp, TypeInt64:
		if int(e.value+8) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total += 8
	case TypeRegex:
		i := e.value
		for ; int(i) < len(e.data) && e.data[i] != '\x00'; i++ {
			total++
		}
		if int(i) == len(e.data) || e.data[i] != '\x00' {
			return total, ErrInvalidString
		}
		i++
		total++
		for ; int(i) < len(e.data) && e.data[i] != '\x00'; i++ {
			total++
		}
		if int(i) == len(e.data) || e.data[i] != '\x00' {
			return total, ErrInvalidString
		}
		total++
	case TypeDBPointer:
		if int(e.value+4) > len(e.data) {
			return total, NewErrTooSmall()
		}
		l := readi32(e.data[e.value : e.value+4])
		total += 4
		if l < 1 || int64(e.value)+4+int64(l)+12 > int64(len(e.data)) {
			return total, NewErrTooSmall()
		}
		total += uint32(l) + 12
	case TypeCodeWithScope:
		if int(e.value+4) > len(e.data) {
			return total, NewErrTooSmall()
		}
		l := readi32(e.data[e.value : e.value+4])
		total += 4
		if l < 14 || int64(e.value)+int64(l) > int64(len(e.data)) {
			return total, NewErrTooSmall()
		}
		if deep {
			sLength := readi32(e.data[e.value+4 : e.value+8])
			total += 4
			// The string must leave room for the int32 that holds its own
			// length, the int32 that holds the total length, and a minimum
			// five byte scope document.
			if sLength < 1 || sLength > l-13 {
				return total, ErrStringLargerThanContainer
			}
			if e.data[e.value+8+uint32(sLength)-1] != '\x00' {
				return total, ErrInvalidString
			}
			total += uint32(sLength)
			n, err := Document(e.data[e.value+8+uint32(sLength) : e.value+uint32(l)]).Validate()
			total += n
			if err != nil {
				return total, err
			}
			break
		}
		total += uint32(l) - 4
	case TypeInt32:
		if int(e.value+4) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total += 4
	case TypeDecimal128:
		if int(e.value+16) > len(e.data) {
			return total, NewErrTooSmall()
		}
		total += 16
	default:
		return total, ErrInvalidElement
	}

	return total, nil
}

// Key returns the key for this element.
// It panics if e is uninitialized.
func (e Element) Key() string {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	return string(e.data[e.start+1 : e.value-1])
}

// Type returns the type tag for this element.
// It panics if e is uninitialized.
func (e Element) Type() Type {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	return Type(e.data[e.start])
}

// RawValue returns a view of the raw bytes of this element's value, sized
// according to the type tag's encoding rule. The bytes are not copied; the
// returned slice aliases the parent document's buffer.
func (e Element) RawValue() ([]byte, error) {
	if !e.Valid() {
		return nil, ErrUninitializedElement
	}
	size, err := e.valueSize()
	if err != nil {
		return nil, err
	}
	return e.data[e.value : e.value+size], nil
}

// MarshalBSON implements the Marshaler interface. The returned bytes are a
// copy of the element, i.e. the type tag, the key, and the value.
func (e Element) MarshalBSON() ([]byte, error) {
	size, err := e.Validate()
	if err != nil {
		return nil, err
	}
	b := make([]byte, size)
	copy(b, e.data[e.start:e.start+size])
	return b, nil
}

// Equal compares e to e2 and returns true if they are equal. Two invalid
// elements are always equal. Two valid elements are equal if they have the
// same key, the same type tag, and the same value bytes.
func (e Element) Equal(e2 Element) bool {
	if !e.Valid() || !e2.Valid() {
		return !e.Valid() && !e2.Valid()
	}
	if e.data[e.start] != e2.data[e2.start] {
		return false
	}
	if !bytes.Equal(e.data[e.start+1:e.value], e2.data[e2.start+1:e2.value]) {
		return false
	}
	size, err := e.valueSize()
	if err != nil {
		return false
	}
	size2, err := e2.valueSize()
	if err != nil {
		return false
	}
	return bytes.Equal(e.data[e.value:e.value+size], e2.data[e2.value:e2.value+size2])
}

// Double returns the float64 value for this element.
// It panics if e's BSON type is not double ('\x01') or if e is uninitialized.
func (e Element) Double() float64 {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeDouble {
		panic(ElementTypeError{"bsonview.Element.Double", Type(e.data[e.start])})
	}
	bits := binary.LittleEndian.Uint64(e.data[e.value : e.value+8])
	return math.Float64frombits(bits)
}

// DoubleOK is the same as Double, but returns a boolean instead of panicking.
func (e Element) DoubleOK() (float64, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeDouble {
		return 0, false
	}
	return e.Double(), true
}

// StringValue returns the string value for this element.
// It panics if e's BSON type is not string ('\x02') or if e is uninitialized.
//
// NOTE: This method is called StringValue to avoid it implementing the
// fmt.Stringer interface.
func (e Element) StringValue() string {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeString {
		panic(ElementTypeError{"bsonview.Element.StringValue", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return string(e.data[e.value+4 : int32(e.value)+4+l-1])
}

// StringValueOK is the same as StringValue, but returns a boolean instead of
// panicking.
func (e Element) StringValueOK() (string, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeString {
		return "", false
	}
	return e.StringValue(), true
}

// Document returns the subdocument for this element. The returned Document
// aliases the parent document's buffer; no bytes are copied.
// It panics if e's BSON type is not embedded document ('\x03') or if e is
// uninitialized.
func (e Element) Document() Document {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeEmbeddedDocument {
		panic(ElementTypeError{"bsonview.Element.Document", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return Document(e.data[e.value : int32(e.value)+l])
}

// DocumentOK is the same as Document, but returns a boolean instead of
// panicking.
func (e Element) DocumentOK() (Document, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeEmbeddedDocument {
		return nil, false
	}
	return e.Document(), true
}

// Array returns the array for this element as a Document, since BSON arrays
// are documents with monotonically increasing numeric keys. The returned
// Document aliases the parent document's buffer; no bytes are copied.
// It panics if e's BSON type is not array ('\x04') or if e is uninitialized.
func (e Element) Array() Document {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeArray {
		panic(ElementTypeError{"bsonview.Element.Array", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return Document(e.data[e.value : int32(e.value)+l])
}

// ArrayOK is the same as Array, but returns a boolean instead of panicking.
func (e Element) ArrayOK() (Document, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeArray {
		return nil, false
	}
	return e.Array(), true
}

// Binary returns the BSON binary value for this element. The data slice
// aliases the parent document's buffer; callers that need to retain it past
// the buffer's lifetime must copy it.
// It panics if e's BSON type is not binary ('\x05') or if e is uninitialized.
func (e Element) Binary() (subtype byte, data []byte) {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeBinary {
		panic(ElementTypeError{"bsonview.Element.Binary", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return e.data[e.value+4], e.data[e.value+5 : int32(e.value)+5+l]
}

// BinaryOK is the same as Binary, but returns a boolean instead of panicking.
func (e Element) BinaryOK() (subtype byte, data []byte, ok bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeBinary {
		return 0, nil, false
	}
	st, b := e.Binary()
	return st, b, true
}

// ObjectID returns the BSON ObjectID value for this element.
// It panics if e's BSON type is not objectID ('\x07') or if e is
// uninitialized.
func (e Element) ObjectID() objectid.ObjectID {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeObjectID {
		panic(ElementTypeError{"bsonview.Element.ObjectID", Type(e.data[e.start])})
	}
	var oid objectid.ObjectID
	copy(oid[:], e.data[e.value:e.value+12])
	return oid
}

// ObjectIDOK is the same as ObjectID, but returns a boolean instead of
// panicking.
func (e Element) ObjectIDOK() (objectid.ObjectID, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeObjectID {
		return objectid.NilObjectID, false
	}
	return e.ObjectID(), true
}

// Boolean returns the boolean value for this element.
// It panics if e's BSON type is not boolean ('\x08') or if e is
// uninitialized.
func (e Element) Boolean() bool {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeBoolean {
		panic(ElementTypeError{"bsonview.Element.Boolean", Type(e.data[e.start])})
	}
	return e.data[e.value] == '\x01'
}

// BooleanOK is the same as Boolean, but returns a boolean instead of
// panicking.
func (e Element) BooleanOK() (bool, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeBoolean {
		return false, false
	}
	return e.Boolean(), true
}

// DateTime returns the BSON datetime value for this element as the number of
// milliseconds since the Unix epoch.
// It panics if e's BSON type is not datetime ('\x09') or if e is
// uninitialized.
func (e Element) DateTime() int64 {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeDateTime {
		panic(ElementTypeError{"bsonview.Element.DateTime", Type(e.data[e.start])})
	}
	return int64(binary.LittleEndian.Uint64(e.data[e.value : e.value+8]))
}

// DateTimeOK is the same as DateTime, but returns a boolean instead of
// panicking.
func (e Element) DateTimeOK() (int64, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeDateTime {
		return 0, false
	}
	return e.DateTime(), true
}

// Time returns the BSON datetime value for this element as a time.Time.
// It panics if e's BSON type is not datetime ('\x09') or if e is
// uninitialized.
func (e Element) Time() time.Time {
	i := e.DateTime()
	return time.Unix(i/1000, i%1000*1000000)
}

// TimeOK is the same as Time, but returns a boolean instead of panicking.
func (e Element) TimeOK() (time.Time, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeDateTime {
		return time.Time{}, false
	}
	return e.Time(), true
}

// Regex returns the BSON regex value for this element.
// It panics if e's BSON type is not regex ('\x0B') or if e is uninitialized.
func (e Element) Regex() (pattern, options string) {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeRegex {
		panic(ElementTypeError{"bsonview.Element.Regex", Type(e.data[e.start])})
	}
	i := e.value
	pstart := i
	for ; e.data[i] != '\x00'; i++ {
	}
	pend := i
	i++
	ostart := i
	for ; e.data[i] != '\x00'; i++ {
	}
	oend := i
	return string(e.data[pstart:pend]), string(e.data[ostart:oend])
}

// RegexOK is the same as Regex, but returns a boolean instead of panicking.
func (e Element) RegexOK() (pattern, options string, ok bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeRegex {
		return "", "", false
	}
	pattern, options = e.Regex()
	return pattern, options, true
}

// DBPointer returns the BSON dbPointer value for this element.
// It panics if e's BSON type is not dbPointer ('\x0C') or if e is
// uninitialized.
func (e Element) DBPointer() (string, objectid.ObjectID) {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeDBPointer {
		panic(ElementTypeError{"bsonview.Element.DBPointer", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	var oid objectid.ObjectID
	copy(oid[:], e.data[int32(e.value)+4+l:int32(e.value)+4+l+12])
	return string(e.data[e.value+4 : int32(e.value)+4+l-1]), oid
}

// DBPointerOK is the same as DBPointer, but returns a boolean instead of
// panicking.
func (e Element) DBPointerOK() (string, objectid.ObjectID, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeDBPointer {
		return "", objectid.NilObjectID, false
	}
	ns, oid := e.DBPointer()
	return ns, oid, true
}

// JavaScript returns the BSON JavaScript code value for this element.
// It panics if e's BSON type is not JavaScript code ('\x0D') or if e is
// uninitialized.
func (e Element) JavaScript() string {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeJavaScript {
		panic(ElementTypeError{"bsonview.Element.JavaScript", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return string(e.data[e.value+4 : int32(e.value)+4+l-1])
}

// JavaScriptOK is the same as JavaScript, but returns a boolean instead of
// panicking.
func (e Element) JavaScriptOK() (string, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeJavaScript {
		return "", false
	}
	return e.JavaScript(), true
}

// Symbol returns the BSON symbol value for this element.
// It panics if e's BSON type is not symbol ('\x0E') or if e is uninitialized.
func (e Element) Symbol() string {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeSymbol {
		panic(ElementTypeError{"bsonview.Element.Symbol", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	return string(e.data[e.value+4 : int32(e.value)+4+l-1])
}

// SymbolOK is the same as Symbol, but returns a boolean instead of panicking.
func (e Element) SymbolOK() (string, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeSymbol {
		return "", false
	}
	return e.Symbol(), true
}

// CodeWithScope returns the BSON JavaScript code with scope value for this
// element. The scope Document aliases the parent document's buffer.
// It panics if e's BSON type is not JavaScript code with scope ('\x0F') or if
// e is uninitialized.
func (e Element) CodeWithScope() (string, Document) {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeCodeWithScope {
		panic(ElementTypeError{"bsonview.Element.CodeWithScope", Type(e.data[e.start])})
	}
	l := readi32(e.data[e.value : e.value+4])
	sLength := readi32(e.data[e.value+4 : e.value+8])
	code := string(e.data[e.value+8 : int32(e.value)+8+sLength-1])
	scope := Document(e.data[int32(e.value)+8+sLength : int32(e.value)+l])
	return code, scope
}

// CodeWithScopeOK is the same as CodeWithScope, but returns a boolean instead
// of panicking.
func (e Element) CodeWithScopeOK() (string, Document, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeCodeWithScope {
		return "", nil, false
	}
	code, scope := e.CodeWithScope()
	return code, scope, true
}

// Int32 returns the int32 value for this element.
// It panics if e's BSON type is not 32-bit integer ('\x10') or if e is
// uninitialized.
func (e Element) Int32() int32 {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeInt32 {
		panic(ElementTypeError{"bsonview.Element.Int32", Type(e.data[e.start])})
	}
	return readi32(e.data[e.value : e.value+4])
}

// Int32OK is the same as Int32, but returns a boolean instead of panicking.
func (e Element) Int32OK() (int32, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeInt32 {
		return 0, false
	}
	return e.Int32(), true
}

// Timestamp returns the BSON timestamp value for this element as the seconds
// since the Unix epoch and the ordinal.
// It panics if e's BSON type is not timestamp ('\x11') or if e is
// uninitialized.
func (e Element) Timestamp() (t, i uint32) {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeTimestamp {
		panic(ElementTypeError{"bsonview.Element.Timestamp", Type(e.data[e.start])})
	}
	return binary.LittleEndian.Uint32(e.data[e.value+4 : e.value+8]), binary.LittleEndian.Uint32(e.data[e.value : e.value+4])
}

// TimestampOK is the same as Timestamp, but returns a boolean instead of
// panicking.
func (e Element) TimestampOK() (t, i uint32, ok bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeTimestamp {
		return 0, 0, false
	}
	t, i = e.Timestamp()
	return t, i, true
}

// Int64 returns the int64 value for this element.
// It panics if e's BSON type is not 64-bit integer ('\x12') or if e is
// uninitialized.
func (e Element) Int64() int64 {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeInt64 {
		panic(ElementTypeError{"bsonview.Element.Int64", Type(e.data[e.start])})
	}
	return int64(binary.LittleEndian.Uint64(e.data[e.value : e.value+8]))
}

// Int64OK is the same as Int64, but returns a boolean instead of panicking.
func (e Element) Int64OK() (int64, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeInt64 {
		return 0, false
	}
	return e.Int64(), true
}

// Decimal128 returns the decimal128 value for this element.
// It panics if e's BSON type is not decimal128 ('\x13') or if e is
// uninitialized.
func (e Element) Decimal128() decimal.Decimal128 {
	if !e.Valid() {
		panic(ErrUninitializedElement)
	}
	if Type(e.data[e.start]) != TypeDecimal128 {
		panic(ElementTypeError{"bsonview.Element.Decimal128", Type(e.data[e.start])})
	}
	l := binary.LittleEndian.Uint64(e.data[e.value : e.value+8])
	h := binary.LittleEndian.Uint64(e.data[e.value+8 : e.value+16])
	return decimal.NewDecimal128(h, l)
}

// Decimal128OK is the same as Decimal128, but returns a boolean instead of
// panicking.
func (e Element) Decimal128OK() (decimal.Decimal128, bool) {
	if !e.Valid() || Type(e.data[e.start]) != TypeDecimal128 {
		return decimal.Decimal128{}, false
	}
	return e.Decimal128(), true
}
