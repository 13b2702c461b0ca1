// Package inspect exposes the cookie parser and serializer over HTTP for
// debugging clients and proxies.
//
// Routes:
//
//	POST /parse?mode=strict|tolerant   body: raw Cookie header octets
//	POST /format?quote=1               body: {"codec":"percent","cookies":[{"name":"a","value":"b"}]}
//	GET  /echo?mode=strict|tolerant    parses the request's own Cookie headers
//	GET  /health                       liveness probe
//
// Every JSON response uses the {"data":...,"error":...} envelope. Parsed
// names and values are reported twice: as exact octets (base64 in JSON) and
// as display text that is safe to print.
package inspect
