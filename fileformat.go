package dbscan

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReadPointFile reads a raw little-endian (y, x) uint32 pair per point,
// with no header, returning the points as float64 coordinates plus the
// underlying uint32 x/y arrays so a caller can feed the same data into the
// grid-L1 engines without re-deriving them.
func ReadPointFile(r io.Reader) (points []Point[float64], x, y []uint32, err error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("dbscan: reading point file: %w", err)
	}
	const wordSize = 4
	if len(raw)%(wordSize*2) != 0 {
		return nil, nil, nil, fmt.Errorf("%w: point file does not contain a whole number of (y,x) uint32 pairs", ErrInvalidInput)
	}

	numPoints := len(raw) / (wordSize * 2)
	points = make([]Point[float64], numPoints)
	x = make([]uint32, numPoints)
	y = make([]uint32, numPoints)

	for i := 0; i < numPoints; i++ {
		yi := binary.LittleEndian.Uint32(raw[i*8:])
		xi := binary.LittleEndian.Uint32(raw[i*8+4:])
		x[i], y[i] = xi, yi
		points[i] = Point[float64]{X: float64(xi), Y: float64(yi)}
	}
	return points, x, y, nil
}

// ReadLabelFile reads a raw little-endian int32 label per point, with no
// header, as used for ground-truth files. ReadLegacyFixture reads its own
// trailing label block and does not call this function.
func ReadLabelFile(r io.Reader) ([]int32, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dbscan: reading label file: %w", err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("%w: label file does not contain a whole number of int32 labels", ErrInvalidInput)
	}
	n := len(raw) / 4
	labels := make([]int32, n)
	for i := 0; i < n; i++ {
		labels[i] = int32(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return labels, nil
}

// WritePointFile writes the x/y coordinates in the same raw (y, x)
// little-endian uint32 pair format ReadPointFile reads, so the two round-trip
// exactly. x and y must have equal length.
func WritePointFile(w io.Writer, x, y []uint32) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: x and y must have equal length, got %d and %d", ErrInvalidInput, len(x), len(y))
	}
	buf := make([]byte, 8)
	for i := range x {
		binary.LittleEndian.PutUint32(buf[0:4], y[i])
		binary.LittleEndian.PutUint32(buf[4:8], x[i])
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("dbscan: writing point file: %w", err)
		}
	}
	return nil
}

// WriteLabelFile writes labels in the same raw little-endian int32 format
// ReadLabelFile reads.
func WriteLabelFile(w io.Writer, labels []int32) error {
	buf := make([]byte, 4)
	for _, l := range labels {
		binary.LittleEndian.PutUint32(buf, uint32(l))
		if _, err := w.Write(buf); err != nil {
			return fmt.Errorf("dbscan: writing label file: %w", err)
		}
	}
	return nil
}

// legacyFixture is the header-prefixed binary layout used by older
// baseline benchmark fixtures: a uint32 point count, followed by that many
// (x, y) float64 pairs, followed by that many int32 labels. ReadLegacyFixture
// exists so those fixtures remain loadable without being migrated to the
// headerless format ReadPointFile/ReadLabelFile use.
type legacyFixture struct {
	Points []Point[float64]
	Labels []int32
}

// ReadLegacyFixture reads the uint32-count-prefixed legacy baseline
// fixture format: `uint32 n`, `n*(float64 x, float64 y)`, `n*int32 label`.
func ReadLegacyFixture(r io.Reader) (*legacyFixture, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, fmt.Errorf("dbscan: reading legacy fixture header: %w", err)
	}

	points := make([]Point[float64], n)
	for i := range points {
		var xy [2]float64
		if err := binary.Read(r, binary.LittleEndian, &xy); err != nil {
			return nil, fmt.Errorf("dbscan: reading legacy fixture point %d: %w", i, err)
		}
		points[i] = Point[float64]{X: xy[0], Y: xy[1]}
	}

	labels := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, &labels); err != nil {
		return nil, fmt.Errorf("dbscan: reading legacy fixture labels: %w", err)
	}

	return &legacyFixture{Points: points, Labels: labels}, nil
}
