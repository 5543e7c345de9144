package artifact

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	npyMagic = []byte("\x93NUMPY")

	npyDescrRe   = regexp.MustCompile(`'descr'\s*:\s*'([^']*)'`)
	npyFortranRe = regexp.MustCompile(`'fortran_order'\s*:\s*(True|False)`)
	npyShapeRe   = regexp.MustCompile(`'shape'\s*:\s*\(([^)]*)\)`)
)

type npyHeader struct {
	order   binary.ByteOrder
	size    int // bytes per element, 4 or 8
	fortran bool
	shape   []int
	dataLen int64 // bytes of array data the shape implies
}

// readNPY decodes a 2-D floating point array in NumPy .npy format. size is
// the total length of the input; a shape needing more data than that is
// rejected before anything is allocated.
func readNPY(r io.Reader, size int64) ([][]float64, error) {
	br := bufio.NewReader(r)

	prefix := make([]byte, len(npyMagic)+2)
	if _, err := io.ReadFull(br, prefix); err != nil {
		return nil, fmt.Errorf("cannot read npy preamble: %w", err)
	}
	if !bytes.Equal(prefix[:len(npyMagic)], npyMagic) {
		return nil, fmt.Errorf("not an npy file")
	}

	var headerLen, lenField int64
	switch major := prefix[len(npyMagic)]; major {
	case 1:
		var n uint16
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("cannot read npy header length: %w", err)
		}
		headerLen, lenField = int64(n), 2
	case 2, 3:
		var n uint32
		if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
			return nil, fmt.Errorf("cannot read npy header length: %w", err)
		}
		headerLen, lenField = int64(n), 4
	default:
		return nil, fmt.Errorf("unsupported npy version %d", major)
	}

	remaining := size - int64(len(prefix)) - lenField
	if headerLen > remaining {
		return nil, fmt.Errorf("npy header length %d exceeds file size %d", headerLen, size)
	}
	remaining -= headerLen

	raw := make([]byte, headerLen)
	if _, err := io.ReadFull(br, raw); err != nil {
		return nil, fmt.Errorf("cannot read npy header: %w", err)
	}
	h, err := parseNPYHeader(string(raw))
	if err != nil {
		return nil, err
	}
	if h.dataLen > remaining {
		return nil, fmt.Errorf("npy shape (%d, %d) needs %d data bytes, file has %d", h.shape[0], h.shape[1], h.dataLen, remaining)
	}

	rows, cols := h.shape[0], h.shape[1]
	flat := make([]float64, rows*cols)
	switch h.size {
	case 8:
		if err := binary.Read(br, h.order, flat); err != nil {
			return nil, fmt.Errorf("cannot read npy data (%dx%d float64): %w", rows, cols, err)
		}
	case 4:
		f32 := make([]float32, rows*cols)
		if err := binary.Read(br, h.order, f32); err != nil {
			return nil, fmt.Errorf("cannot read npy data (%dx%d float32): %w", rows, cols, err)
		}
		for i, v := range f32 {
			flat[i] = float64(v)
		}
	}

	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if h.fortran {
				out[i][j] = flat[j*rows+i]
			} else {
				out[i][j] = flat[i*cols+j]
			}
		}
	}
	return out, nil
}

func parseNPYHeader(s string) (npyHeader, error) {
	var h npyHeader

	m := npyDescrRe.FindStringSubmatch(s)
	if m == nil {
		return h, fmt.Errorf("npy header has no descr: %q", s)
	}
	descr := m[1]
	if len(descr) != 3 || descr[1] != 'f' {
		return h, fmt.Errorf("unsupported npy dtype %q: want f4 or f8", descr)
	}
	switch descr[0] {
	case '<', '|', '=':
		h.order = binary.LittleEndian
	case '>':
		h.order = binary.BigEndian
	default:
		return h, fmt.Errorf("unsupported npy byte order in %q", descr)
	}
	switch descr[2] {
	case '4':
		h.size = 4
	case '8':
		h.size = 8
	default:
		return h, fmt.Errorf("unsupported npy dtype %q: want f4 or f8", descr)
	}

	if m := npyFortranRe.FindStringSubmatch(s); m != nil {
		h.fortran = m[1] == "True"
	}

	m = npyShapeRe.FindStringSubmatch(s)
	if m == nil {
		return h, fmt.Errorf("npy header has no shape: %q", s)
	}
	for _, part := range strings.Split(m[1], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return h, fmt.Errorf("invalid npy shape %q", m[1])
		}
		h.shape = append(h.shape, n)
	}
	if len(h.shape) != 2 {
		return h, fmt.Errorf("npy array must be 2-D, got shape (%s)", m[1])
	}

	rows, cols := int64(h.shape[0]), int64(h.shape[1])
	if cols != 0 && rows > math.MaxInt64/cols {
		return h, fmt.Errorf("npy shape (%s) overflows", m[1])
	}
	elems := rows * cols
	if elems > math.MaxInt64/int64(h.size) {
		return h, fmt.Errorf("npy shape (%s) overflows", m[1])
	}
	h.dataLen = elems * int64(h.size)

	return h, nil
}
