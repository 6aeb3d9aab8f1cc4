// Copyright (C) MongoDB, Inc. 2017-present.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsonview provides a zero-copy, non-owning view over a single BSON
// document and a forward iterator that decodes the document's top-level
// elements lazily, one at a time.
//
// The Document type is a wrapper around a byte slice. It does not own the
// bytes it references and never copies them; the caller is responsible for
// ensuring the backing buffer outlives every Document, Element, and Iterator
// derived from it. No validation is performed when a Document is constructed.
// Instead, validation happens incrementally as elements are decoded, so the
// cost of handling a document is proportional to how much of it is actually
// read.
//
// An Element is a (key, type, value bytes) triple located at an offset inside
// the parent document's buffer. The zero Element is the invalid element, used
// as the not-found result of Lookup and as the past-the-end state of an
// Iterator. Typed accessors come in pairs: Double panics if the element is
// not a double, DoubleOK reports failure through its second return value.
//
// Because there is no metadata cached anywhere, lookups run in O(n) time over
// the top-level elements. Callers that need repeated random access should
// decode the document into a richer representation instead.
package bsonview
