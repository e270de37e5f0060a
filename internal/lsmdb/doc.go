// Package lsmdb provides an HTTP client for the LSM key-value service.
//
// # Overview
//
// The service exposes three endpoints. lsmdash only reads statistics, writes
// single keys and reads single keys; it never talks to the storage engine in
// any other way.
//
//	GET  /api/stats          → {"memTableSize": 120, "sstableCount": 3}
//	POST /api/set            ← {"key": "user:1", "value": "Alice"}
//	GET  /api/get?key=user:1 → Alice        (text/plain)
//	GET  /api/get?key=nope   → NOT_FOUND    (text/plain)
//
// # Response Handling
//
//   - /api/stats is decoded as JSON into Stats. Malformed JSON is an error.
//   - /api/set accepts any 2xx status. The body ("OK" today) is discarded.
//   - /api/get returns the body untouched. The service signals a missing key
//     with the literal NotFound body and a 200 status, so it is data, not an
//     error. Use IsNotFound for presentation decisions.
//
// Any status outside 200-299 becomes a *StatusError. Transport, decode and
// status failures are wrapped in a *RequestError carrying the X-Request-ID
// sent with the request, so log lines can be matched with server logs.
//
// # Timeouts
//
// NewClient takes an explicit timeout. Zero means no client-side bound at all;
// a hung request then blocks its caller until the transport gives up.
//
// # Base URL
//
// The base URL accepts "http://host:port", "host:port" or an empty string
// (DefaultBaseURL). Any path, query or fragment is stripped.
package lsmdb
