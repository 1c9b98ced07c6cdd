package render

import (
	"encoding/binary"
	"fmt"
	"os"
)

// SaveBMP writes the framebuffer as an uncompressed 24-bit BMP, matching
// the "RayTracing_Buffer.bmp" frame-dump convention of the host this core
// was extracted from. Rows are stored bottom-up per the BMP format and
// padded to a 4-byte boundary.
func (fb *Framebuffer) SaveBMP(path string) error {
	rowSize := (fb.Width*3 + 3) &^ 3
	pixelDataSize := rowSize * fb.Height
	fileSize := 14 + 40 + pixelDataSize

	buf := make([]byte, fileSize)

	// File header (14 bytes)
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(fileSize))
	binary.LittleEndian.PutUint32(buf[10:], 14+40)

	// DIB header (BITMAPINFOHEADER, 40 bytes)
	binary.LittleEndian.PutUint32(buf[14:], 40)
	binary.LittleEndian.PutUint32(buf[18:], uint32(fb.Width))
	binary.LittleEndian.PutUint32(buf[22:], uint32(fb.Height))
	binary.LittleEndian.PutUint16(buf[26:], 1)  // color planes
	binary.LittleEndian.PutUint16(buf[28:], 24) // bits per pixel
	binary.LittleEndian.PutUint32(buf[34:], uint32(pixelDataSize))

	offset := 54
	for y := fb.Height - 1; y >= 0; y-- {
		rowStart := offset + (fb.Height-1-y)*rowSize
		for x := range fb.Width {
			c := fb.GetPixel(x, y)
			p := rowStart + x*3
			buf[p] = c.B
			buf[p+1] = c.G
			buf[p+2] = c.R
		}
	}

	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return fmt.Errorf("write bmp: %w", err)
	}
	return nil
}
