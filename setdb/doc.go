// Package setdb provides the set-membership backends the "s:"/"set:"
// predicate draws from.
//
// A deployment picks exactly one Provider at startup and injects it into
// the engine; the engine only ever sees the Provider interface. All
// backends serve from memory so that set lookups stay fast and local —
// remote backends (see the s3, dynamo and minio subpackages) load a
// snapshot up front and answer from that.
//
// Item-id sets are roaring bitmaps, which keeps even large set databases
// compact and makes membership checks cheap.
package setdb
