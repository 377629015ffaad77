// Package sampleimage accumulates per-pixel color samples and stores them in
// a resumable binary checkpoint.
package sampleimage

import (
	"bufio"
	"compress/zlib"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"spheretrace/sampleimage/headerproto"
	"spheretrace/vmath/vec3"

	"google.golang.org/protobuf/proto"
)

const dataLayoutVersion = 1

// ErrBadLayout is returned when reading a checkpoint this package does not
// understand.
var ErrBadLayout = errors.New("unsupported sample image layout")

// SampleImage holds running sums of linear RGB samples and the number of
// samples taken for each pixel.  Row 0 is the top of the image.
type SampleImage struct {
	RowSize, ColSize int

	// MaxDepth records the bounce limit the samples were taken with, so that
	// resumed renders stay consistent.
	MaxDepth int

	Sums   []float64
	Counts []uint32
}

func New(rowSize, colSize int) *SampleImage {
	s := &SampleImage{}
	s.Resize(rowSize, colSize)
	return s
}

func (s *SampleImage) Resize(rowSize, colSize int) {
	s.RowSize = rowSize
	s.ColSize = colSize

	s.Sums = make([]float64, rowSize*colSize*3)
	s.Counts = make([]uint32, rowSize*colSize)
}

func (s *SampleImage) RecordSample(r, c int, color vec3.T) {
	idx := r*s.ColSize + c
	s.Sums[3*idx+0] += color[0]
	s.Sums[3*idx+1] += color[1]
	s.Sums[3*idx+2] += color[2]
	s.Counts[idx]++
}

// ReadSample returns the summed color and the number of samples at (r, c).
func (s *SampleImage) ReadSample(r, c int) (vec3.T, int) {
	idx := r*s.ColSize + c
	return vec3.T{s.Sums[3*idx+0], s.Sums[3*idx+1], s.Sums[3*idx+2]}, int(s.Counts[idx])
}

// Mean returns the average color at (r, c), or black if it has no samples.
func (s *SampleImage) Mean(r, c int) vec3.T {
	sum, count := s.ReadSample(r, c)
	if count == 0 {
		return vec3.T{}
	}
	return vec3.DivVS(sum, float64(count))
}

func (s *SampleImage) TotalSamples() int {
	total := 0
	for _, c := range s.Counts {
		total += int(c)
	}
	return total
}

// Cut copies out the given rectangle as a standalone image.
func (s *SampleImage) Cut(rowSrc, rowLim, colSrc, colLim int) *SampleImage {
	dst := New(rowLim-rowSrc, colLim-colSrc)
	dst.MaxDepth = s.MaxDepth

	dstIndex := 0
	for r := rowSrc; r < rowLim; r++ {
		for c := colSrc; c < colLim; c++ {
			srcIndex := r*s.ColSize + c
			copy(dst.Sums[3*dstIndex:3*dstIndex+3], s.Sums[3*srcIndex:3*srcIndex+3])
			dst.Counts[dstIndex] = s.Counts[srcIndex]
			dstIndex++
		}
	}

	return dst
}

// Paste overwrites the rectangle at (rowSrc, colSrc) with src.
func (s *SampleImage) Paste(src *SampleImage, rowSrc, colSrc int) {
	for r := 0; r < src.RowSize; r++ {
		for c := 0; c < src.ColSize; c++ {
			srcIndex := r*src.ColSize + c
			dstIndex := (r+rowSrc)*s.ColSize + (c + colSrc)
			copy(s.Sums[3*dstIndex:3*dstIndex+3], src.Sums[3*srcIndex:3*srcIndex+3])
			s.Counts[dstIndex] = src.Counts[srcIndex]
		}
	}
}

// maxPixels bounds the image size a header may declare.
const maxPixels = 1 << 28

func Read(in io.Reader) (*SampleImage, error) {
	var headerLength uint64
	if err := binary.Read(in, binary.LittleEndian, &headerLength); err != nil {
		return nil, fmt.Errorf("while reading header length: %w", err)
	}
	if headerLength > 1<<20 {
		return nil, fmt.Errorf("%w: header length %d", ErrBadLayout, headerLength)
	}

	headerBytes := make([]byte, int(headerLength))
	if _, err := io.ReadFull(in, headerBytes); err != nil {
		return nil, fmt.Errorf("while reading header bytes: %w", err)
	}

	hdr := &headerproto.SampleImageHeader{}
	if err := proto.Unmarshal(headerBytes, hdr); err != nil {
		return nil, fmt.Errorf("while unmarshaling header: %w", err)
	}

	if hdr.GetDataLayoutVersion() != dataLayoutVersion {
		return nil, fmt.Errorf("%w: data layout version %d", ErrBadLayout, hdr.GetDataLayoutVersion())
	}
	if uint64(hdr.GetRowSize())*uint64(hdr.GetColSize()) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d image is too large", ErrBadLayout, hdr.GetRowSize(), hdr.GetColSize())
	}

	im := New(int(hdr.GetRowSize()), int(hdr.GetColSize()))
	im.MaxDepth = int(hdr.GetMaxDepth())

	zipReader, err := zlib.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("while opening zip reader: %w", err)
	}
	defer zipReader.Close()

	if err := binary.Read(zipReader, binary.LittleEndian, im.Sums); err != nil {
		return nil, fmt.Errorf("while reading color sums: %w", err)
	}

	if err := binary.Read(zipReader, binary.LittleEndian, im.Counts); err != nil {
		return nil, fmt.Errorf("while reading sample counts: %w", err)
	}

	return im, nil
}

func ReadFile(name string) (*SampleImage, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("while opening file: %w", err)
	}
	defer f.Close()

	return Read(bufio.NewReader(f))
}

func Write(im *SampleImage, w io.Writer) error {
	hdr := &headerproto.SampleImageHeader{
		RowSize:           uint32(im.RowSize),
		ColSize:           uint32(im.ColSize),
		DataLayoutVersion: dataLayoutVersion,
		MaxDepth:          uint32(im.MaxDepth),
	}

	hdrBytes, err := proto.Marshal(hdr)
	if err != nil {
		return fmt.Errorf("while marshaling header: %w", err)
	}

	headerLengthBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(headerLengthBytes, uint64(len(hdrBytes)))
	if _, err := w.Write(headerLengthBytes); err != nil {
		return fmt.Errorf("while writing header length: %w", err)
	}

	if _, err := w.Write(hdrBytes); err != nil {
		return fmt.Errorf("while writing header: %w", err)
	}

	zipWriter := zlib.NewWriter(w)

	if err := binary.Write(zipWriter, binary.LittleEndian, im.Sums); err != nil {
		return fmt.Errorf("while writing color sums: %w", err)
	}

	if err := binary.Write(zipWriter, binary.LittleEndian, im.Counts); err != nil {
		return fmt.Errorf("while writing sample counts: %w", err)
	}

	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("while closing zip writer: %w", err)
	}

	return nil
}

// WriteFile writes im to a temporary file beside name and renames it into
// place, so an interrupted write never clobbers an earlier checkpoint.
func WriteFile(im *SampleImage, name string) error {
	tmpName := name + ".tmp"
	f, err := os.Create(tmpName)
	if err != nil {
		return fmt.Errorf("while creating temporary file: %w", err)
	}

	bw := bufio.NewWriter(f)
	if err := Write(im, bw); err != nil {
		f.Close()
		return fmt.Errorf("while writing sample image: %w", err)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("while flushing sample image: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("while closing temporary file: %w", err)
	}

	if err := os.Rename(tmpName, name); err != nil {
		return fmt.Errorf("while renaming temporary file into place: %w", err)
	}
	return nil
}
