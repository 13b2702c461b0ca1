package cookie

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiewire/pkg/cookiecodec"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

const (
	minSecretLength = 32
	flashPrefix     = "__flash_"
)

type Manager struct {
	keys     []keyPair
	defaults Options
}

func New(secrets []string, opts ...Option) (*Manager, error) {
	secrets = slices.DeleteFunc(slices.Clone(secrets), func(s string) bool { return s == "" })
	if len(secrets) == 0 {
		return nil, ErrNoSecret
	}

	keys := make([]keyPair, 0, len(secrets))
	for i, s := range secrets {
		if len(s) < minSecretLength {
			return nil, fmt.Errorf("%w: secret %d has %d chars, need at least %d", ErrSecretTooShort, i, len(s), minSecretLength)
		}
		kp, err := deriveKeys(s)
		if err != nil {
			return nil, err
		}
		keys = append(keys, kp)
	}

	defaults := Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Codec:    cookiecodec.Identity,
	}

	return &Manager{
		keys:     keys,
		defaults: applyOptions(defaults, opts),
	}, nil
}

// Set encodes value with the configured codec and writes a Set-Cookie header.
// Nothing is sanitized: a name or value the codec cannot represent is an error.
func (m *Manager) Set(w http.ResponseWriter, name, value string, opts ...Option) error {
	options := applyOptions(m.defaults, opts)

	c, err := options.Codec.Encode(cookiecodec.DecodedCookie{Name: name, Value: value})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	return writeSetCookie(w, c, options, time.Time{})
}

// SetRaw writes c exactly as given, after checking it against the strict grammar.
func (m *Manager) SetRaw(w http.ResponseWriter, c rawcookie.RawCookie, opts ...Option) error {
	return writeSetCookie(w, c, applyOptions(m.defaults, opts), time.Time{})
}

// Get reads the first cookie named name and decodes it with the configured
// codec. The name is encoded with the same codec before the lookup.
func (m *Manager) Get(r *http.Request, name string, opts ...Option) (string, error) {
	options := applyOptions(m.defaults, opts)
	c, err := find(r, options.Codec, name)
	if err != nil {
		return "", err
	}

	decoded, err := options.Codec.Decode(c)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return decoded.Value, nil
}

// GetRaw returns the wire octets of the first cookie named name, where name is
// encoded with the manager's codec. The request's Cookie headers are read
// tolerantly, as RFC 6265 asks of servers.
func (m *Manager) GetRaw(r *http.Request, name string) (rawcookie.RawCookie, error) {
	return find(r, m.defaults.Codec, name)
}

// Delete expires the cookie that Set would have written under name.
func (m *Manager) Delete(w http.ResponseWriter, name string) {
	options := m.defaults
	options.MaxAge = -1
	options.Quoted = false

	wire, err := wireName(options.Codec, name)
	if err != nil {
		// An unrepresentable name was never set.
		return
	}
	_ = writeSetCookie(w, rawcookie.RawCookie{Name: wire}, options, time.Unix(0, 0))
}

func (m *Manager) SetSigned(w http.ResponseWriter, name, value string, opts ...Option) error {
	return m.setWire(w, name, m.sign(value), opts)
}

func (m *Manager) GetSigned(r *http.Request, name string) (string, error) {
	c, err := m.GetRaw(r, name)
	if err != nil {
		return "", err
	}
	return m.verify(string(c.Value))
}

func (m *Manager) SetEncrypted(w http.ResponseWriter, name, value string, opts ...Option) error {
	encrypted, err := m.encrypt(value)
	if err != nil {
		return err
	}
	return m.setWire(w, name, encrypted, opts)
}

func (m *Manager) GetEncrypted(r *http.Request, name string) (string, error) {
	c, err := m.GetRaw(r, name)
	if err != nil {
		return "", err
	}
	return m.decrypt(string(c.Value))
}

func (m *Manager) SetFlash(w http.ResponseWriter, r *http.Request, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal flash: %w", err)
	}

	return m.SetEncrypted(w, flashPrefix+key, string(data))
}

func (m *Manager) GetFlash(w http.ResponseWriter, r *http.Request, key string, dest any) error {
	cookieName := flashPrefix + key

	data, err := m.GetEncrypted(r, cookieName)
	if err != nil {
		return err
	}

	// Flash cookies are single use
	m.Delete(w, cookieName)

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("unmarshal flash: %w", err)
	}

	return nil
}

// setWire writes a value that is already valid cookie-octets (base64 output).
// Only the name goes through the codec.
func (m *Manager) setWire(w http.ResponseWriter, name, value string, opts []Option) error {
	options := applyOptions(m.defaults, opts)
	wire, err := wireName(options.Codec, name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCookie, err)
	}
	return writeSetCookie(w, rawcookie.RawCookie{Name: wire, Value: []byte(value)}, options, time.Time{})
}

// wireName is the name octets codec produces for name.
func wireName(codec cookiecodec.Codec, name string) ([]byte, error) {
	c, err := codec.Encode(cookiecodec.DecodedCookie{Name: name})
	if err != nil {
		return nil, err
	}
	return c.Name, nil
}

// find looks up the cookie whose wire name is the codec encoding of name.
func find(r *http.Request, codec cookiecodec.Codec, name string) (rawcookie.RawCookie, error) {
	wire, err := wireName(codec, name)
	if err != nil {
		return rawcookie.RawCookie{}, ErrCookieNotFound
	}
	c, ok := lookup(r, wire)
	if !ok {
		return rawcookie.RawCookie{}, ErrCookieNotFound
	}
	return c, nil
}

func (m *Manager) sign(value string) string {
	mac := hmac.New(sha256.New, m.keys[0].sign)
	mac.Write([]byte(value))
	signature := base64.URLEncoding.EncodeToString(mac.Sum(nil))

	return base64.URLEncoding.EncodeToString([]byte(value)) + "|" + signature
}

func (m *Manager) verify(signed string) (string, error) {
	encodedValue, signature, ok := strings.Cut(signed, "|")
	if !ok {
		return "", ErrInvalidFormat
	}

	value, err := base64.URLEncoding.DecodeString(encodedValue)
	if err != nil {
		return "", ErrInvalidFormat
	}

	// Every key is tried so cookies signed before a rotation stay valid.
	for _, kp := range m.keys {
		mac := hmac.New(sha256.New, kp.sign)
		mac.Write(value)
		expectedSig := base64.URLEncoding.EncodeToString(mac.Sum(nil))

		if subtle.ConstantTimeCompare([]byte(signature), []byte(expectedSig)) == 1 {
			return string(value), nil
		}
	}

	return "", ErrInvalidSignature
}

func (m *Manager) encrypt(value string) (string, error) {
	gcm, err := newGCM(m.keys[0].encrypt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	// nonce || ciphertext
	ciphertext := gcm.Seal(nonce, nonce, []byte(value), nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

func (m *Manager) decrypt(encrypted string) (string, error) {
	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ErrInvalidFormat
	}

	for _, kp := range m.keys {
		gcm, err := newGCM(kp.encrypt)
		if err != nil {
			continue
		}
		if len(ciphertext) < gcm.NonceSize() {
			return "", ErrInvalidFormat
		}

		nonce, sealed := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
		if plaintext, err := gcm.Open(nil, nonce, sealed, nil); err == nil {
			return string(plaintext), nil
		}
	}

	return "", ErrDecryptionFailed
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
