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
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/ikmak/bsonview/objectid"
)

// testDoc assembles a document from the given element byte sequences.
func testDoc(elems ...[]byte) Document {
	size := 5
	for _, e := range elems {
		size += len(e)
	}
	d := make(Document, 4, size)
	binary.LittleEndian.PutUint32(d[0:4], uint32(size))
	for _, e := range elems {
		d = append(d, e...)
	}
	return append(d, '\x00')
}

// testElem assembles a single element from a type tag, a key, and value
// bytes.
func testElem(bt Type, key string, value ...byte) []byte {
	e := []byte{byte(bt)}
	e = append(e, key...)
	e = append(e, '\x00')
	return append(e, value...)
}

func u32Bytes(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func u64Bytes(v uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return b[:]
}

// strBytes encodes a BSON string value: int32 length prefix, bytes, null
// terminator.
func strBytes(s string) []byte {
	b := u32Bytes(uint32(len(s) + 1))
	b = append(b, s...)
	return append(b, '\x00')
}

// lookup finds key in the document built from elems and fails the test if it
// is absent.
func lookup(t *testing.T, key string, elems ...[]byte) Element {
	t.Helper()
	elem := testDoc(elems...).Lookup(key)
	require.True(t, elem.Valid(), "fixture element %q not found", key)
	return elem
}

func TestElement(t *testing.T) {
	t.Run("Invalid", func(t *testing.T) {
		var elem Element
		if elem.Valid() {
			t.Error("The zero Element is valid")
		}
		require.PanicsWithValue(t, ErrUninitializedElement, func() { elem.Key() })
		require.PanicsWithValue(t, ErrUninitializedElement, func() { elem.Type() })
		require.PanicsWithValue(t, ErrUninitializedElement, func() { elem.Int32() })
		_, err := elem.Validate()
		if err != ErrUninitializedElement {
			t.Errorf("Did not get expected error. got %v; want %v", err, ErrUninitializedElement)
		}
		_, err = elem.RawValue()
		if err != ErrUninitializedElement {
			t.Errorf("Did not get expected error. got %v; want %v", err, ErrUninitializedElement)
		}
	})
	t.Run("Double", func(t *testing.T) {
		elem := lookup(t, "pi", testElem(TypeDouble, "pi", u64Bytes(math.Float64bits(3.14159))...))
		if got := elem.Double(); got != 3.14159 {
			t.Errorf("Values do not match. got %g; want 3.14159", got)
		}
		if _, ok := elem.StringValueOK(); ok {
			t.Error("StringValueOK succeeded on a double element")
		}
		require.Panics(t, func() { elem.StringValue() })
	})
	t.Run("String", func(t *testing.T) {
		elem := lookup(t, "greet", testElem(TypeString, "greet", strBytes("world")...))
		if got := elem.StringValue(); got != "world" {
			t.Errorf("Values do not match. got %s; want world", got)
		}
		if _, ok := elem.DoubleOK(); ok {
			t.Error("DoubleOK succeeded on a string element")
		}
	})
	t.Run("Document", func(t *testing.T) {
		sub := testDoc(testElem(TypeNull, "n"))
		elem := lookup(t, "doc", testElem(TypeEmbeddedDocument, "doc", sub...))
		got := elem.Document()
		if !got.Equal(sub) {
			t.Errorf("Subdocuments do not match. got %v; want %v", got, sub)
		}
		// The subdocument view must alias the parent buffer, not copy it.
		parent := testDoc(testElem(TypeEmbeddedDocument, "doc", sub...))
		view := parent.Lookup("doc").Document()
		if &parent[9] != &view.Data()[0] {
			t.Error("Document accessor copied the underlying bytes")
		}
	})
	t.Run("Array", func(t *testing.T) {
		arr := testDoc(testElem(TypeNull, "0"), testElem(TypeNull, "1"))
		elem := lookup(t, "arr", testElem(TypeArray, "arr", arr...))
		if !elem.Array().Equal(arr) {
			t.Errorf("Arrays do not match. got %v; want %v", elem.Array(), arr)
		}
		if _, ok := elem.DocumentOK(); ok {
			t.Error("DocumentOK succeeded on an array element")
		}
	})
	t.Run("Binary", func(t *testing.T) {
		val := append(u32Bytes(3), '\x00', '\x01', '\x02', '\x03')
		elem := lookup(t, "bin", testElem(TypeBinary, "bin", val...))
		subtype, data := elem.Binary()
		if subtype != 0x00 {
			t.Errorf("Subtypes do not match. got %d; want 0", subtype)
		}
		if !bytes.Equal(data, []byte{'\x01', '\x02', '\x03'}) {
			t.Errorf("Data does not match. got %v; want [1 2 3]", data)
		}
	})
	t.Run("ObjectID", func(t *testing.T) {
		oid := objectid.ObjectID{0x5a, 0x15, 0xd0, 0xa4, 0xd5, 0xda, 0xa5, 0xf1, 0x0a, 0x5e, 0x51, 0x26}
		elem := lookup(t, "_id", testElem(TypeObjectID, "_id", oid[:]...))
		if got := elem.ObjectID(); got != oid {
			t.Errorf("ObjectIDs do not match. got %s; want %s", got, oid)
		}
	})
	t.Run("Boolean", func(t *testing.T) {
		elem := lookup(t, "ok", testElem(TypeBoolean, "ok", '\x01'))
		if !elem.Boolean() {
			t.Error("Values do not match. got false; want true")
		}
	})
	t.Run("DateTime", func(t *testing.T) {
		millis := int64(1136214245000)
		elem := lookup(t, "ts", testElem(TypeDateTime, "ts", u64Bytes(uint64(millis))...))
		if got := elem.DateTime(); got != millis {
			t.Errorf("Values do not match. got %d; want %d", got, millis)
		}
		want := time.Unix(millis/1000, millis%1000*1000000)
		if !elem.Time().Equal(want) {
			t.Errorf("Times do not match. got %v; want %v", elem.Time(), want)
		}
	})
	t.Run("Regex", func(t *testing.T) {
		val := append([]byte("^a"), '\x00')
		val = append(val, 'i', '\x00')
		elem := lookup(t, "re", testElem(TypeRegex, "re", val...))
		pattern, options := elem.Regex()
		if pattern != "^a" || options != "i" {
			t.Errorf("Values do not match. got (%s, %s); want (^a, i)", pattern, options)
		}
	})
	t.Run("DBPointer", func(t *testing.T) {
		oid := objectid.ObjectID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c}
		val := strBytes("db.c")
		val = append(val, oid[:]...)
		elem := lookup(t, "ptr", testElem(TypeDBPointer, "ptr", val...))
		ns, got := elem.DBPointer()
		if ns != "db.c" || got != oid {
			t.Errorf("Values do not match. got (%s, %s); want (db.c, %s)", ns, got, oid)
		}
	})
	t.Run("JavaScript", func(t *testing.T) {
		elem := lookup(t, "js", testElem(TypeJavaScript, "js", strBytes("var x = 1;")...))
		if got := elem.JavaScript(); got != "var x = 1;" {
			t.Errorf("Values do not match. got %s; want var x = 1;", got)
		}
	})
	t.Run("Symbol", func(t *testing.T) {
		elem := lookup(t, "sym", testElem(TypeSymbol, "sym", strBytes("sym")...))
		if got := elem.Symbol(); got != "sym" {
			t.Errorf("Values do not match. got %s; want sym", got)
		}
	})
	t.Run("CodeWithScope", func(t *testing.T) {
		scope := testDoc()
		val := u32Bytes(uint32(4 + 6 + len(scope)))
		val = append(val, strBytes("x")...)
		val = append(val, scope...)
		elem := lookup(t, "cws", testElem(TypeCodeWithScope, "cws", val...))
		code, got := elem.CodeWithScope()
		if code != "x" {
			t.Errorf("Code does not match. got %s; want x", code)
		}
		if !got.Equal(scope) {
			t.Errorf("Scopes do not match. got %v; want %v", got, scope)
		}
	})
	t.Run("Int32", func(t *testing.T) {
		elem := lookup(t, "i", testElem(TypeInt32, "i", u32Bytes(42)...))
		if got := elem.Int32(); got != 42 {
			t.Errorf("Values do not match. got %d; want 42", got)
		}
		if _, ok := elem.Int64OK(); ok {
			t.Error("Int64OK succeeded on an int32 element")
		}
	})
	t.Run("Timestamp", func(t *testing.T) {
		val := append(u32Bytes(1), u32Bytes(2)...)
		elem := lookup(t, "ts", testElem(TypeTimestamp, "ts", val...))
		tVal, iVal := elem.Timestamp()
		if tVal != 2 || iVal != 1 {
			t.Errorf("Values do not match. got (%d, %d); want (2, 1)", tVal, iVal)
		}
	})
	t.Run("Int64", func(t *testing.T) {
		elem := lookup(t, "i", testElem(TypeInt64, "i", u64Bytes(1<<40)...))
		if got := elem.Int64(); got != 1<<40 {
			t.Errorf("Values do not match. got %d; want %d", got, int64(1)<<40)
		}
	})
	t.Run("Decimal128", func(t *testing.T) {
		val := append(u64Bytes(1), u64Bytes(0x3040000000000000)...)
		elem := lookup(t, "d", testElem(TypeDecimal128, "d", val...))
		if got := elem.Decimal128().String(); got != "1" {
			t.Errorf("Values do not match. got %s; want 1", got)
		}
	})
	t.Run("NoValueTypes", func(t *testing.T) {
		doc := testDoc(
			testElem(TypeNull, "n"),
			testElem(TypeUndefined, "u"),
			testElem(TypeMinKey, "min"),
			testElem(TypeMaxKey, "max"),
		)
		for key, want := range map[string]Type{
			"n": TypeNull, "u": TypeUndefined, "min": TypeMinKey, "max": TypeMaxKey,
		} {
			elem := doc.Lookup(key)
			require.True(t, elem.Valid())
			if got := elem.Type(); got != want {
				t.Errorf("Types do not match for %q. got %v; want %v", key, got, want)
			}
			raw, err := elem.RawValue()
			require.NoError(t, err)
			if len(raw) != 0 {
				t.Errorf("Value bytes for %q should be empty. got %v", key, raw)
			}
		}
	})
	t.Run("RawValue", func(t *testing.T) {
		elem := lookup(t, "i", testElem(TypeInt32, "i", u32Bytes(42)...))
		raw, err := elem.RawValue()
		require.NoError(t, err)
		if !bytes.Equal(raw, u32Bytes(42)) {
			t.Errorf("Value bytes do not match. got %v; want %v", raw, u32Bytes(42))
		}
	})
	t.Run("MarshalBSON", func(t *testing.T) {
		want := testElem(TypeInt32, "i", u32Bytes(42)...)
		elem := lookup(t, "i", want)
		got, err := elem.MarshalBSON()
		require.NoError(t, err)
		if !bytes.Equal(got, want) {
			t.Errorf("Element bytes do not match. got %v; want %v", got, want)
		}
	})
	t.Run("Equal", func(t *testing.T) {
		e1 := lookup(t, "a", testElem(TypeInt32, "a", u32Bytes(1)...))
		e2 := lookup(t, "a", testElem(TypeInt32, "a", u32Bytes(1)...))
		e3 := lookup(t, "a", testElem(TypeInt32, "a", u32Bytes(2)...))
		e4 := lookup(t, "b", testElem(TypeInt32, "b", u32Bytes(1)...))
		e5 := lookup(t, "a", testElem(TypeInt64, "a", u64Bytes(1)...))

		if !e1.Equal(e2) {
			spew.Dump(e1, e2)
			t.Error("Identical elements in distinct buffers are not equal")
		}
		if e1.Equal(e3) {
			t.Error("Elements with different values are equal")
		}
		if e1.Equal(e4) {
			t.Error("Elements with different keys are equal")
		}
		if e1.Equal(e5) {
			t.Error("Elements with different types are equal")
		}
		if !(Element{}).Equal(Element{}) {
			t.Error("Two invalid elements are not equal")
		}
		if e1.Equal(Element{}) || (Element{}).Equal(e1) {
			t.Error("A valid element equals the invalid element")
		}
	})
}
