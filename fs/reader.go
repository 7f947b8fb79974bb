package fs

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/sitetext"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// Policy controls how decode errors are handled when reading files.
type Policy string

// Decode-error policies. Strict fails the read on undecodable input,
// Replace keeps the replacement character the decoder substitutes, and
// Ignore drops it.
const (
	PolicyStrict  Policy = "strict"
	PolicyReplace Policy = "replace"
	PolicyIgnore  Policy = "ignore"
)

// Ensure Reader implements sitetext.FileReader at compile time.
var _ sitetext.FileReader = (*Reader)(nil)

// Reader reads files and decodes them to UTF-8 text using a named
// character encoding and a decode-error policy. A Reader is safe for
// concurrent use; each read gets its own decoder.
type Reader struct {
	enc    encoding.Encoding
	policy Policy
}

// NewReader creates a Reader for the named encoding (an IANA/WHATWG
// name such as "utf-8" or "iso-8859-1"; empty means UTF-8) and policy.
// Unknown encodings and policies fail construction.
func NewReader(encodingName string, policy Policy) (*Reader, error) {
	if encodingName == "" {
		encodingName = "utf-8"
	}
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, sitetext.Errorf(sitetext.ECONFIG, "unsupported encoding %q", encodingName)
	}

	if policy == "" {
		policy = PolicyStrict
	}
	switch policy {
	case PolicyStrict, PolicyReplace, PolicyIgnore:
	default:
		return nil, sitetext.Errorf(sitetext.ECONFIG, "unsupported decode policy %q", policy)
	}

	return &Reader{enc: enc, policy: policy}, nil
}

// ReadFile reads the file at path and returns its decoded contents.
// Decoders signal undecodable bytes by substituting U+FFFD; the policy
// decides whether that fails the read, is kept, or is stripped.
func (r *Reader) ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, err := r.enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", sitetext.Errorf(sitetext.EINVALID, "failed to decode %q: %v", path, err)
	}

	text := string(decoded)
	switch r.policy {
	case PolicyStrict:
		if strings.ContainsRune(text, utf8.RuneError) {
			return "", sitetext.Errorf(sitetext.EINVALID, "undecodable byte sequence in %q", path)
		}
	case PolicyIgnore:
		text = strings.ReplaceAll(text, string(utf8.RuneError), "")
	}
	return text, nil
}
