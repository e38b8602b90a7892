package har

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNoLog is returned when a document has no top-level "log" object.
var ErrNoLog = errors.New("missing log object")

// Decode reads a HAR document from r and calls fn for every entry in capture
// order. Decoding is sequential and stops at the first error, including any
// error returned by fn, so callers never observe a partially valid document
// as a success.
func Decode(r io.Reader, fn func(index int, entry HAREntry) error) error {
	decoder := json.NewDecoder(r)

	if err := expectDelim(decoder, '{'); err != nil {
		return err
	}

	sawLog := false
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		if key, ok := token.(string); ok && key == "log" {
			sawLog = true
			if err := parseLog(decoder, fn); err != nil {
				return err
			}
			continue
		}
		if err := skipValue(decoder); err != nil {
			return err
		}
	}

	if err := expectDelim(decoder, '}'); err != nil {
		return err
	}
	if !sawLog {
		return ErrNoLog
	}
	return nil
}

func parseLog(decoder *json.Decoder, fn func(int, HAREntry) error) error {
	if err := expectDelim(decoder, '{'); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		if key, ok := token.(string); ok && key == "entries" {
			if err := parseEntries(decoder, fn); err != nil {
				return err
			}
			continue
		}
		if err := skipValue(decoder); err != nil {
			return err
		}
	}

	return expectDelim(decoder, '}')
}

func parseEntries(decoder *json.Decoder, fn func(int, HAREntry) error) error {
	if err := expectDelim(decoder, '['); err != nil {
		return fmt.Errorf("entries: %w", err)
	}

	index := 0
	for decoder.More() {
		var entry HAREntry
		if err := decoder.Decode(&entry); err != nil {
			return fmt.Errorf("entry %d: %w", index, err)
		}
		if err := fn(index, entry); err != nil {
			return fmt.Errorf("entry %d: %w", index, err)
		}
		index++
	}

	return expectDelim(decoder, ']')
}

func expectDelim(decoder *json.Decoder, want json.Delim) error {
	token, err := decoder.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.ErrUnexpectedEOF
		}
		return err
	}
	if delim, ok := token.(json.Delim); !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, token)
	}
	return nil
}

func skipValue(decoder *json.Decoder) error {
	var dummy json.RawMessage
	return decoder.Decode(&dummy)
}

// DecodeBase64 decodes content stored with the HAR "base64" encoding.
// Other encodings are returned as their raw bytes.
func DecodeBase64(text, encoding string) ([]byte, error) {
	if encoding != "base64" {
		return []byte(text), nil
	}
	return base64.StdEncoding.DecodeString(text)
}
