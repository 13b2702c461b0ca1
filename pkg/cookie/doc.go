// Package cookie provides an HTTP cookie manager built on the byte-exact
// rawcookie parser and serializer.
//
// Unlike net/http, the manager never sanitizes: a name or value that does not
// fit the RFC 6265 grammar is reported as ErrInvalidCookie instead of being
// silently rewritten, and values read back are the exact octets the client
// sent. Any text encoding is explicit and comes from a cookiecodec.Codec.
//
// # Overview
//
// The `Manager` type is the entry point. It is initialised with one or more secrets and
// a set of default cookie `Options`. Each secret is expanded with HKDF-SHA256 into a
// signing key and an encryption key, so the two uses never share key material.
//
// Once created you can:
//
//   • Set(), Get(), Delete() – plain cookies through the configured codec
//   • SetRaw(), GetRaw() – wire octets, no codec
//   • SetSigned(), GetSigned() – signed cookies (integrity only)
//   • SetEncrypted(), GetEncrypted() – encrypted cookies (integrity + privacy)
//   • SetFlash(), GetFlash() – single-use JSON-encoded flash messages
//
// # Architecture
//
// Request cookies are located with rawcookie.Lookup in tolerant mode. Response cookies
// are validated with rawcookie.Validate, serialized with rawcookie.Serialize and followed
// by the Path, Domain, Expires, Max-Age, HttpOnly, Secure and SameSite attributes.
// Signing uses HMAC-SHA256, encryption AES-256-GCM with a random nonce prepended to the
// ciphertext. Multiple secrets enable key rotation – the first is used for writing,
// all of them for reading.
//
// # Usage
//
//	import "github.com/dmitrymomot/cookiewire/pkg/cookie"
//
//	// secrets must be at least 32 bytes
//	man, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")},
//		cookie.WithCodec(cookiecodec.Percent),
//	)
//	if err != nil { log.Fatal(err) }
//
//	http.HandleFunc("/set", func(w http.ResponseWriter, r *http.Request) {
//	    _ = man.SetSigned(w, "session", "user-id")
//	})
//
//	http.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
//	    id, err := man.GetSigned(r, "session")
//	    _ = id
//	    _ = err
//	})
//
// # Configuration
//
// The `Config` struct allows the manager to be constructed from environment variables via
// github.com/caarlos0/env. COOKIE_CODEC selects "identity", "percent" or "base64".
//
//	cfg := cookie.DefaultConfig()
//	_ = env.Parse(&cfg)
//	man, _ := cookie.NewFromConfig(cfg)
//
// # Error Handling
//
// Package-level sentinel errors are returned for common failure scenarios such as
// `ErrCookieNotFound`, `ErrInvalidCookie`, `ErrInvalidSignature` and `ErrDecryptionFailed`
// so callers can use `errors.Is`. Grammar violations also match the rawcookie sentinels.
package cookie
