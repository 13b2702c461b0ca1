package rawcookie_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	type seg struct {
		offset int
		text   string
	}

	var got []seg
	for offset, s := range rawcookie.Split([]byte("a=1; b=2;; ;c")) {
		got = append(got, seg{offset, string(s)})
	}

	assert.Equal(t, []seg{{0, "a=1"}, {4, " b=2"}, {12, "c"}}, got)
}

func TestSplit_EarlyStop(t *testing.T) {
	t.Parallel()

	n := 0
	for range rawcookie.Split([]byte("a=1;b=2;c=3")) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestParseHeader_Tolerant(t *testing.T) {
	t.Parallel()

	results := rawcookie.ParseHeader([]byte(" a=1 ;;b = \"2\"; justavalue ; c=x%0Ay;"), rawcookie.Tolerant)
	require.Len(t, results, 4)

	want := []rawcookie.RawCookie{
		rawcookie.New("a", "1"),
		rawcookie.New("b", "2"),
		rawcookie.New("", "justavalue"),
		rawcookie.New("c", "x%0Ay"),
	}
	for i, res := range results {
		require.NoError(t, res.Err)
		assert.True(t, want[i].Equal(res.Cookie), "cookie %d: got %q", i, res.Cookie.String())
	}
	assert.Equal(t, 0, results[0].Offset)
	assert.Equal(t, 7, results[1].Offset)
}

func TestParseHeader_StrictOffsets(t *testing.T) {
	t.Parallel()

	header := []byte("a=1; b=x y; c=3")
	results := rawcookie.ParseHeader(header, rawcookie.Strict)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[2].Err)
	assert.Equal(t, "c", string(results[2].Cookie.Name))

	var perr *rawcookie.ParseError
	require.True(t, errors.As(results[1].Err, &perr))
	assert.Equal(t, rawcookie.InvalidValueChar, perr.Kind)
	assert.Equal(t, 8, perr.Offset)
	assert.Equal(t, byte(' '), header[perr.Offset])
	assert.Equal(t, 5, results[1].Offset)
}

func TestParseHeader_StrictNoFallback(t *testing.T) {
	t.Parallel()

	results := rawcookie.ParseHeader([]byte("justavalue"), rawcookie.Strict)
	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, rawcookie.ErrMissingEquals)
}

func TestParseHeader_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, rawcookie.ParseHeader(nil, rawcookie.Tolerant))
	assert.Empty(t, rawcookie.ParseHeader([]byte(";; ;"), rawcookie.Strict))
}

func TestCookies(t *testing.T) {
	t.Parallel()

	cookies, err := rawcookie.Cookies([]byte("a=1; =2; b=\x01"), rawcookie.Strict)
	require.Len(t, cookies, 1)
	assert.Equal(t, "a=1", cookies[0].String())
	assert.ErrorIs(t, err, rawcookie.ErrEmptyName)
	assert.ErrorIs(t, err, rawcookie.ErrInvalidValueChar)

	cookies, err = rawcookie.Cookies([]byte("a=1; b=2"), rawcookie.Strict)
	require.NoError(t, err)
	assert.Len(t, cookies, 2)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	header := []byte("session=abc; Session=def; theme=\"dark\"; session=later")

	c, ok := rawcookie.Lookup(header, []byte("session"))
	require.True(t, ok)
	assert.Equal(t, "abc", string(c.Value))

	c, ok = rawcookie.Lookup(header, []byte("Session"))
	require.True(t, ok)
	assert.Equal(t, "def", string(c.Value))

	c, ok = rawcookie.Lookup(header, []byte("theme"))
	require.True(t, ok)
	assert.Equal(t, "dark", string(c.Value))

	_, ok = rawcookie.Lookup(header, []byte("missing"))
	assert.False(t, ok)
}

func TestSerializeHeader_RoundTrip(t *testing.T) {
	t.Parallel()

	header := []byte("a=1; b=value%23foobar; c=")
	cookies, err := rawcookie.Cookies(header, rawcookie.Strict)
	require.NoError(t, err)
	assert.Equal(t, string(header), string(rawcookie.SerializeHeader(cookies)))
}

func TestParseHeader_ParallelSegments(t *testing.T) {
	t.Parallel()

	header := []byte("a=1; b=2; c=3; d=4; e=5; f=6")
	sequential := rawcookie.ParseHeader(header, rawcookie.Tolerant)

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		byName = make(map[string]string)
	)
	for _, seg := range rawcookie.Split(header) {
		wg.Add(1)
		go func(seg []byte) {
			defer wg.Done()
			c, err := rawcookie.Parse(seg, rawcookie.Tolerant)
			if err != nil {
				return
			}
			mu.Lock()
			byName[string(c.Name)] = string(c.Value)
			mu.Unlock()
		}(seg)
	}
	wg.Wait()

	require.Len(t, byName, len(sequential))
	for _, res := range sequential {
		assert.Equal(t, string(res.Cookie.Value), byName[string(res.Cookie.Name)])
	}
}
