// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonview

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// String implements the fmt.Stringer interface. The element is rendered as a
// canonical extended JSON member, i.e. a quoted key followed by the value. An
// invalid or malformed element renders as the empty string.
func (e Element) String() string {
	if !e.Valid() {
		return ""
	}
	val := e.valueString()
	if val == "" {
		return ""
	}
	return strconv.Quote(e.Key()) + ": " + val
}

// valueString returns the canonical extended JSON form of the element's
// value, or the empty string if the value cannot be decoded.
func (e Element) valueString() string {
	switch Type(e.data[e.start]) {
	case TypeDouble:
		f64, ok := e.DoubleOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$numberDouble":"%s"}`, formatDouble(f64))
	case TypeString:
		s, ok := e.StringValueOK()
		if !ok {
			return ""
		}
		return strconv.Quote(s)
	case TypeEmbeddedDocument:
		doc, ok := e.DocumentOK()
		if !ok {
			return ""
		}
		return doc.String()
	case TypeArray:
		arr, ok := e.ArrayOK()
		if !ok {
			return ""
		}
		return arr.arrayString()
	case TypeBinary:
		subtype, data, ok := e.BinaryOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(
			`{"$binary":{"base64":"%s","subType":"%02x"}}`,
			base64.StdEncoding.EncodeToString(data), subtype,
		)
	case TypeUndefined:
		return `{"$undefined":true}`
	case TypeObjectID:
		oid, ok := e.ObjectIDOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$oid":"%s"}`, hex.EncodeToString(oid[:]))
	case TypeBoolean:
		b, ok := e.BooleanOK()
		if !ok {
			return ""
		}
		return strconv.FormatBool(b)
	case TypeDateTime:
		dt, ok := e.DateTimeOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$date":{"$numberLong":"%d"}}`, dt)
	case TypeNull:
		return "null"
	case TypeRegex:
		pattern, options, ok := e.RegexOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(
			`{"$regularExpression":{"pattern":%s,"options":"%s"}}`,
			strconv.Quote(pattern), sortStringAlphebeticAscending(options),
		)
	case TypeDBPointer:
		ns, pointer, ok := e.DBPointerOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(
			`{"$dbPointer":{"$ref":%s,"$id":{"$oid":"%s"}}}`,
			strconv.Quote(ns), hex.EncodeToString(pointer[:]),
		)
	case TypeJavaScript:
		js, ok := e.JavaScriptOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$code":%s}`, strconv.Quote(js))
	case TypeSymbol:
		symbol, ok := e.SymbolOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$symbol":%s}`, strconv.Quote(symbol))
	case TypeCodeWithScope:
		code, scope, ok := e.CodeWithScopeOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$code":%s,"$scope":%s}`, strconv.Quote(code), scope.String())
	case TypeInt32:
		i32, ok := e.Int32OK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$numberInt":"%d"}`, i32)
	case TypeTimestamp:
		t, i, ok := e.TimestampOK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$timestamp":{"t":%v,"i":%v}}`, t, i)
	case TypeInt64:
		i64, ok := e.Int64OK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$numberLong":"%d"}`, i64)
	case TypeDecimal128:
		d128, ok := e.Decimal128OK()
		if !ok {
			return ""
		}
		return fmt.Sprintf(`{"$numberDecimal":"%s"}`, d128.String())
	case TypeMinKey:
		return `{"$minKey":1}`
	case TypeMaxKey:
		return `{"$maxKey":1}`
	default:
		return ""
	}
}

// String implements the fmt.Stringer interface. The document is rendered in
// canonical extended JSON. If the underlying bytes are malformed, the empty
// string is returned.
func (d Document) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')

	itr, err := newIterator(d)
	if err != nil {
		return ""
	}
	first := true
	for itr.Next() {
		if !first {
			buf.WriteByte(',')
		}
		str := itr.Element().String()
		if str == "" {
			return ""
		}
		buf.WriteString(str)
		first = false
	}
	if itr.Err() != nil {
		return ""
	}

	buf.WriteByte('}')
	return buf.String()
}

// arrayString renders d as an extended JSON array, dropping the numeric keys.
func (d Document) arrayString() string {
	var buf bytes.Buffer
	buf.WriteByte('[')

	itr, err := newIterator(d)
	if err != nil {
		return ""
	}
	first := true
	for itr.Next() {
		if !first {
			buf.WriteByte(',')
		}
		str := itr.Element().valueString()
		if str == "" {
			return ""
		}
		buf.WriteString(str)
		first = false
	}
	if itr.Err() != nil {
		return ""
	}

	buf.WriteByte(']')
	return buf.String()
}

func formatDouble(f float64) string {
	var s string
	switch {
	case math.IsInf(f, 1):
		s = "Infinity"
	case math.IsInf(f, -1):
		s = "-Infinity"
	case math.IsNaN(f):
		s = "NaN"
	default:
		// Print exactly one decimal place for integers; otherwise, print as
		// many as are necessary to perfectly represent it.
		s = strconv.FormatFloat(f, 'G', -1, 64)
		if !strings.ContainsRune(s, '.') {
			s += ".0"
		}
	}

	return s
}

type sortableString []rune

func (ss sortableString) Len() int {
	return len(ss)
}

func (ss sortableString) Less(i, j int) bool {
	return ss[i] < ss[j]
}

func (ss sortableString) Swap(i, j int) {
	ss[i], ss[j] = ss[j], ss[i]
}

func sortStringAlphebeticAscending(s string) string {
	ss := sortableString([]rune(s))
	sort.Sort(ss)
	return string([]rune(ss))
}
