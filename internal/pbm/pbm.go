// Package pbm reads and writes plain (ASCII, "P1") portable bitmaps. A 1 is a
// black pixel, which is how alive cells are rendered.
package pbm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"eca/internal/core"
)

// Magic is the format tag of a plain PBM file.
const Magic = "P1"

// MaxPixels bounds the image size Decode will allocate.
const MaxPixels = 1 << 28

var (
	// ErrFormat is wrapped by every decoding error.
	ErrFormat = errors.New("pbm: malformed bitmap")
	// ErrRowCount reports an encoder closed with the wrong number of rows.
	ErrRowCount = errors.New("pbm: row count does not match header")
	// ErrRowWidth reports a row whose length does not match the header.
	ErrRowWidth = errors.New("pbm: row width does not match header")
)

// Encoder streams rows into a plain PBM. The header is written up front, so
// the dimensions must be known before the first row.
type Encoder struct {
	w      *bufio.Writer
	width  int
	height int
	rows   int
	line   []byte
}

// NewEncoder writes the PBM header for a width×height image to w.
func NewEncoder(w io.Writer, width, height int) (*Encoder, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("pbm: invalid dimensions %dx%d", width, height)
	}
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\n%d %d\n", Magic, width, height); err != nil {
		return nil, err
	}
	return &Encoder{w: bw, width: width, height: height, line: make([]byte, 0, 2*width)}, nil
}

// WriteRow writes one scanline of space-separated 0/1 tokens.
func (e *Encoder) WriteRow(row []uint8) error {
	if len(row) != e.width {
		return fmt.Errorf("%w: got %d cells, header says %d", ErrRowWidth, len(row), e.width)
	}
	if e.rows >= e.height {
		return fmt.Errorf("%w: more than %d rows", ErrRowCount, e.height)
	}
	e.line = e.line[:0]
	for i, c := range row {
		if i > 0 {
			e.line = append(e.line, ' ')
		}
		e.line = append(e.line, '0'+core.Bit(c))
	}
	e.line = append(e.line, '\n')
	if _, err := e.w.Write(e.line); err != nil {
		return err
	}
	e.rows++
	return nil
}

// Close flushes buffered output and checks that every row was written. It
// does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.w.Flush(); err != nil {
		return err
	}
	if e.rows != e.height {
		return fmt.Errorf("%w: wrote %d of %d rows", ErrRowCount, e.rows, e.height)
	}
	return nil
}

// Encode writes a whole grid, generation 0 as the top scanline.
func Encode(w io.Writer, g *core.ByteGrid) error {
	enc, err := NewEncoder(w, g.W, g.H)
	if err != nil {
		return err
	}
	for y := 0; y < g.H; y++ {
		if err := enc.WriteRow(g.Row(y)); err != nil {
			return err
		}
	}
	return enc.Close()
}

// Decode parses a plain PBM. Comments, arbitrary whitespace and pixels packed
// without separators are accepted.
func Decode(r io.Reader) (*core.ByteGrid, error) {
	s := &scanner{r: bufio.NewReader(r)}
	magic, err := s.token()
	if err != nil {
		return nil, err
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: format tag %q, expected %s", ErrFormat, magic, Magic)
	}
	w, err := s.dimension("width")
	if err != nil {
		return nil, err
	}
	h, err := s.dimension("height")
	if err != nil {
		return nil, err
	}
	if w != 0 && h > MaxPixels/w {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrFormat, w, h, MaxPixels)
	}
	g := core.NewByteGrid(w, h)
	cells := g.Cells()
	for i := range cells {
		if cells[i], err = s.pixel(); err != nil {
			return nil, fmt.Errorf("%w (pixel %d of %d)", err, i+1, len(cells))
		}
	}
	return g, nil
}

type scanner struct {
	r *bufio.Reader
}

// skip consumes whitespace and comments.
func (s *scanner) skip() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return err
		}
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
		case '#':
			if _, err := s.r.ReadString('\n'); err != nil {
				return err
			}
		default:
			return s.r.UnreadByte()
		}
	}
}

func (s *scanner) token() (string, error) {
	if err := s.skip(); err != nil {
		return "", s.eof(err)
	}
	var tok []byte
	for {
		b, err := s.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f' || b == '#' {
			_ = s.r.UnreadByte()
			break
		}
		tok = append(tok, b)
	}
	return string(tok), nil
}

func (s *scanner) dimension(name string) (int, error) {
	tok, err := s.token()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrFormat, name, tok)
	}
	return v, nil
}

func (s *scanner) pixel() (uint8, error) {
	if err := s.skip(); err != nil {
		return 0, s.eof(err)
	}
	b, err := s.r.ReadByte()
	if err != nil {
		return 0, s.eof(err)
	}
	switch b {
	case '0':
		return core.Dead, nil
	case '1':
		return core.Alive, nil
	}
	return 0, fmt.Errorf("%w: unexpected byte %q", ErrFormat, b)
}

func (s *scanner) eof(err error) error {
	if err == io.EOF {
		return fmt.Errorf("%w: unexpected end of data", ErrFormat)
	}
	return err
}
