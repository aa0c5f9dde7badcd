package cachefile

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// Magic starts every cache file.
	Magic = "BROT"

	// FormatVersion is the version of the payload layout.
	FormatVersion uint16 = 1

	headerSize   = len(Magic) + 2
	checksumSize = 8
)

var encoderPool = sync.Pool{
	New: func() any {
		enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		return enc
	},
}

var decoderPool = sync.Pool{
	New: func() any {
		dec, _ := zstd.NewReader(nil)
		return dec
	},
}

// Encode writes cache to w: header, zstd-compressed payload, and the xxhash of the payload.
func Encode(w io.Writer, cache *domain.Cache) error {
	payload := marshalPayload(cache)

	enc, _ := encoderPool.Get().(*zstd.Encoder)
	body := enc.EncodeAll(payload, nil)
	encoderPool.Put(enc)

	out := make([]byte, 0, headerSize+len(body)+checksumSize)
	out = append(out, Magic...)
	out = binary.LittleEndian.AppendUint16(out, FormatVersion)
	out = append(out, body...)
	out = binary.LittleEndian.AppendUint64(out, xxhash.Sum64(payload))

	_, err := w.Write(out)
	return err
}

// Decode reads a cache written by Encode.
func Decode(r io.Reader) (*domain.Cache, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < headerSize+checksumSize {
		return nil, decodeError("file is truncated")
	}
	if string(data[:len(Magic)]) != Magic {
		return nil, decodeError("bad magic")
	}
	if v := binary.LittleEndian.Uint16(data[len(Magic):headerSize]); v != FormatVersion {
		return nil, zerr.With(decodeError("unsupported format version"), "version", v)
	}

	body := data[headerSize : len(data)-checksumSize]
	sum := binary.LittleEndian.Uint64(data[len(data)-checksumSize:])

	dec, _ := decoderPool.Get().(*zstd.Decoder)
	payload, err := dec.DecodeAll(body, nil)
	decoderPool.Put(dec)
	if err != nil {
		return nil, zerr.Wrap(errors.Join(domain.ErrCacheDecodeFailed, err), "corrupt body")
	}
	if xxhash.Sum64(payload) != sum {
		return nil, decodeError("checksum mismatch")
	}

	return unmarshalPayload(payload)
}

func decodeError(msg string) error {
	return zerr.Wrap(domain.ErrCacheDecodeFailed, msg)
}

func marshalPayload(cache *domain.Cache) []byte {
	size := cache.Dimensions.Size()
	buf := make([]byte, 0, 4*8+3*4+len(cache.Layers)*(4+4*size)+1)

	for _, v := range [...]float64{cache.Area.X.Min, cache.Area.X.Max, cache.Area.Y.Min, cache.Area.Y.Max} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	buf = binary.LittleEndian.AppendUint32(buf, uint32(cache.Dimensions.X))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(cache.Dimensions.Y))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(cache.Layers)))
	for _, l := range cache.Layers {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(l.Iterations))
		for _, c := range l.Counts {
			buf = binary.LittleEndian.AppendUint32(buf, c)
		}
	}
	if cache.Valid {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	return buf
}

// payloadReader consumes a payload front to back, remembering the first short read.
type payloadReader struct {
	buf []byte
	err error
}

func (r *payloadReader) next(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.buf) < n {
		r.err = decodeError("payload is truncated")
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *payloadReader) uint32() uint32 {
	if b := r.next(4); b != nil {
		return binary.LittleEndian.Uint32(b)
	}
	return 0
}

func (r *payloadReader) float64() float64 {
	if b := r.next(8); b != nil {
		return math.Float64frombits(binary.LittleEndian.Uint64(b))
	}
	return 0
}

func unmarshalPayload(payload []byte) (*domain.Cache, error) {
	r := &payloadReader{buf: payload}
	cache := &domain.Cache{}

	cache.Area.X = domain.Interval{Min: r.float64(), Max: r.float64()}
	cache.Area.Y = domain.Interval{Min: r.float64(), Max: r.float64()}

	w, h := uint64(r.uint32()), uint64(r.uint32())
	if r.err == nil && (w == 0 || h == 0 || w*h > domain.MaxCells) {
		err := zerr.With(decodeError("invalid dimensions"), "x", w)
		return nil, zerr.With(err, "y", h)
	}
	cache.Dimensions = domain.Dimensions{X: int(w), Y: int(h)}
	size := cache.Dimensions.Size()

	n := r.uint32()
	// Each layer needs at least its threshold and its grid.
	layerSize := 4 + 4*uint64(size)
	if r.err == nil && uint64(n) > uint64(len(r.buf))/layerSize {
		return nil, zerr.With(decodeError("payload is truncated"), "layers", n)
	}
	cache.Layers = make([]domain.LayerData, n)
	for i := range cache.Layers {
		iterations := r.uint32()
		if iterations > domain.MaxLayerIterations {
			return nil, zerr.With(decodeError("layer iterations out of range"), "iterations", iterations)
		}
		cache.Layers[i].Iterations = int(iterations)
		grid := r.next(4 * size)
		if grid == nil {
			break
		}
		counts := make([]uint32, size)
		for j := range counts {
			counts[j] = binary.LittleEndian.Uint32(grid[4*j:])
		}
		cache.Layers[i].Counts = counts
	}

	valid := r.next(1)
	if r.err != nil {
		return nil, r.err
	}
	switch valid[0] {
	case 0:
	case 1:
		cache.Valid = true
	default:
		return nil, decodeError("invalid validity flag")
	}
	if len(r.buf) != 0 {
		return nil, zerr.With(decodeError("trailing bytes after payload"), "bytes", len(r.buf))
	}

	return cache, nil
}
