// Package framesource converts decoded frames into the flat RGBA pixel
// buffers the scope engine consumes, and extracts frames from video files
// through ffmpeg.
//
// Conversion fast paths: NRGBA, RGBA, YCbCr, Gray — zero image.At calls.
// JPEG frames go through a 4 KB lookup table instead of per-pixel
// floating-point conversion.
package framesource

import (
	"image"
	"math"

	"github.com/AnyUserName/vscope-cli/internal/scope"
)

// YCbCr → RGB lookup tables, pre-computed at init.
// 4 tables × 256 × 4 bytes = 4 KB.
var (
	ycbcrCrR [256]int32 // R = Y + ycbcrCrR[Cr]
	ycbcrCbG [256]int32 // G = Y - ycbcrCbG[Cb] - ycbcrCrG[Cr]
	ycbcrCrG [256]int32
	ycbcrCbB [256]int32 // B = Y + ycbcrCbB[Cb]
)

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i) - 128.0
		ycbcrCrR[i] = int32(math.Round(1.40200 * v))
		ycbcrCbG[i] = int32(math.Round(0.34414 * v))
		ycbcrCrG[i] = int32(math.Round(0.71414 * v))
		ycbcrCbB[i] = int32(math.Round(1.77200 * v))
	}
}

// FromImage converts any image.Image into a scope.PixelBuffer: RGBA bytes,
// row-major, non-premultiplied, the canvas-style layout the engine expects.
func FromImage(img image.Image) *scope.PixelBuffer {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return &scope.PixelBuffer{}
	}

	buf := &scope.PixelBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]byte, w*h*4),
	}

	switch src := img.(type) {
	case *image.NRGBA:
		fillNRGBA(src, bounds, w, h, buf.Pix)
	case *image.RGBA:
		fillRGBA(src, bounds, w, h, buf.Pix)
	case *image.YCbCr:
		fillYCbCr(src, bounds, w, h, buf.Pix)
	case *image.Gray:
		fillGray(src, bounds, w, h, buf.Pix)
	default:
		fillGeneric(img, bounds, w, h, buf.Pix)
	}
	return buf
}

// fillNRGBA — already the target layout; straight row copies.
func fillNRGBA(src *image.NRGBA, bounds image.Rectangle, w, h int, dst []byte) {
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		copy(dst[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
	}
}

// fillRGBA — premultiplied source; un-premultiply with rounding so a fully
// opaque image round-trips byte-exact.
func fillRGBA(src *image.RGBA, bounds image.Rectangle, w, h int, dst []byte) {
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX4 := (bounds.Min.X - src.Rect.Min.X) * 4
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX4
		for x := 0; x < w; x++ {
			a := uint32(src.Pix[off+3])
			if a == 0 {
				dst[di], dst[di+1], dst[di+2], dst[di+3] = 0, 0, 0, 0
			} else {
				dst[di] = byte((uint32(src.Pix[off])*255 + a/2) / a)
				dst[di+1] = byte((uint32(src.Pix[off+1])*255 + a/2) / a)
				dst[di+2] = byte((uint32(src.Pix[off+2])*255 + a/2) / a)
				dst[di+3] = byte(a)
			}
			off += 4
			di += 4
		}
	}
}

// fillYCbCr — LUT conversion with direct subsample addressing via COffset.
func fillYCbCr(src *image.YCbCr, bounds image.Rectangle, w, h int, dst []byte) {
	yData, cbData, crData := src.Y, src.Cb, src.Cr
	yStride := src.YStride
	minX, minY := bounds.Min.X, bounds.Min.Y
	ryBase := minY - src.Rect.Min.Y
	rxBase := minX - src.Rect.Min.X

	di := 0
	for y := 0; y < h; y++ {
		yOff := (ryBase+y)*yStride + rxBase
		for x := 0; x < w; x++ {
			yv := int32(yData[yOff+x])
			ci := src.COffset(minX+x, minY+y)
			cr, cb := crData[ci], cbData[ci]

			dst[di] = clampByte(yv + ycbcrCrR[cr])
			dst[di+1] = clampByte(yv - ycbcrCbG[cb] - ycbcrCrG[cr])
			dst[di+2] = clampByte(yv + ycbcrCbB[cb])
			dst[di+3] = 255
			di += 4
		}
	}
}

func fillGray(src *image.Gray, bounds image.Rectangle, w, h int, dst []byte) {
	stride := src.Stride
	bY := bounds.Min.Y - src.Rect.Min.Y
	bX := bounds.Min.X - src.Rect.Min.X
	di := 0
	for y := 0; y < h; y++ {
		off := (bY+y)*stride + bX
		for x := 0; x < w; x++ {
			v := src.Pix[off]
			dst[di] = v
			dst[di+1] = v
			dst[di+2] = v
			dst[di+3] = 255
			off++
			di += 4
		}
	}
}

// fillGeneric — interface dispatch per pixel; only hit for exotic formats.
func fillGeneric(img image.Image, bounds image.Rectangle, w, h int, dst []byte) {
	di := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			if a > 0 && a < 0xffff {
				// RGBA() is alpha-premultiplied; undo it.
				r = (r*0xffff + a/2) / a
				g = (g*0xffff + a/2) / a
				b = (b*0xffff + a/2) / a
			}
			dst[di] = byte(r >> 8)
			dst[di+1] = byte(g >> 8)
			dst[di+2] = byte(b >> 8)
			dst[di+3] = byte(a >> 8)
			di += 4
		}
	}
}

func clampByte(v int32) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
