package novae

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
)

// objectBufSize bounds the memory used per menu item. Items larger than this
// are treated as garbled and skipped.
const objectBufSize = 768

// item retains only the fields the menu pipeline needs; everything else in
// the upstream objects is ignored by the decoder.
type item struct {
	Title struct {
		En string `json:"en"`
		Fr string `json:"fr"`
	} `json:"title"`
	Model struct {
		Service string `json:"service"`
	} `json:"model"`
}

// scanMenuArray streams a JSON array of objects from r without buffering the
// whole body. Each object is captured into a fixed-size buffer and decoded;
// objects that overflow the buffer or fail to decode are skipped by brace
// balancing so the rest of the array still parses. A body that ends early
// simply ends the scan.
func scanMenuArray(r io.Reader, handle func(item)) error {
	br := bufio.NewReader(r)

	if err := seekArrayStart(br); err != nil {
		return err
	}

	buf := make([]byte, 0, objectBufSize)
	for {
		c, err := skipFiller(br)
		if err != nil {
			return ignoreEOF(err)
		}
		if c == ']' {
			return nil
		}
		if c != '{' {
			// stray byte between objects, drop it
			if _, err := br.ReadByte(); err != nil {
				return ignoreEOF(err)
			}
			continue
		}

		buf = buf[:0]
		obj, depth, err := captureObject(br, buf)
		if err != nil {
			if errors.Is(err, errObjectTooLarge) {
				if rerr := recoverObject(br, depth); rerr != nil {
					return ignoreEOF(rerr)
				}
				continue
			}
			return ignoreEOF(err)
		}

		var it item
		if json.Unmarshal(obj, &it) == nil {
			handle(it)
		}
	}
}

var errObjectTooLarge = errors.New("object exceeds parse buffer")

// seekArrayStart discards leading whitespace and consumes the opening '['.
func seekArrayStart(br *bufio.Reader) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		switch {
		case c == '[':
			return nil
		case isSpace(c):
		default:
			return errors.New("response is not a JSON array")
		}
	}
}

// skipFiller consumes whitespace and commas and peeks at the next byte.
func skipFiller(br *bufio.Reader) (byte, error) {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return 0, err
		}
		if isSpace(c) || c == ',' {
			continue
		}
		if err := br.UnreadByte(); err != nil {
			return 0, err
		}
		return c, nil
	}
}

// captureObject consumes one JSON object and returns its bytes. Brace depth
// is tracked string-aware so braces inside titles do not end the object. When
// the object outgrows buf, the bytes consumed so far are abandoned and the
// current depth is returned for recovery.
func captureObject(br *bufio.Reader, buf []byte) ([]byte, int, error) {
	depth := 0
	inString := false
	escaped := false

	for {
		if len(buf) == cap(buf) {
			// depth counts the braces consumed so far; recovery balances
			// the final close itself, hence the -1.
			return nil, depth - 1, errObjectTooLarge
		}
		c, err := br.ReadByte()
		if err != nil {
			return nil, depth, err
		}
		buf = append(buf, c)

		switch {
		case escaped:
			escaped = false
		case inString:
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
		default:
			switch c {
			case '"':
				inString = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return buf, 0, nil
				}
			}
		}
	}
}

// recoverObject skips the remainder of a garbled object by naive brace
// balancing: depth is the number of unclosed braces already consumed.
func recoverObject(br *bufio.Reader, depth int) error {
	for {
		c, err := br.ReadByte()
		if err != nil {
			return err
		}
		switch c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil
	}
	return err
}
