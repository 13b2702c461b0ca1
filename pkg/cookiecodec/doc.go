// Package cookiecodec converts between wire-level cookies and application text.
//
// The rawcookie package never interprets cookie octets. When an application
// wants an encoding on top of them it picks a Codec from this package and
// calls it explicitly:
//
//   - Identity keeps the octets as they are and only checks that they are
//     valid UTF-8 on the way in and valid cookie grammar on the way out.
//   - Percent applies percent-encoding to name and value alike. Only octets
//     the grammar forbids, and '%' itself, are escaped, so Decode(Encode(x))
//     is x while a decoded wire value may come back with fewer escapes.
//   - Base64 stores the value as unpadded URL-safe base64.
//
// Display turns raw octets into something printable for logs and UIs. Its
// output must never be written back into a header.
//
//	raw, _ := rawcookie.ParseString("key=value%23foobar", rawcookie.Strict)
//	text, _ := cookiecodec.Percent.Decode(raw) // text.Value == "value#foobar"
//	back, _ := cookiecodec.Percent.Encode(text) // back.Value == "value#foobar"
package cookiecodec
