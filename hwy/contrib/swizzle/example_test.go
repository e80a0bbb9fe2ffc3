package swizzle_test

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-swizzle/hwy/contrib/swizzle"
)

func ExampleRGBAToBGRAInplace() {
	buf := []byte{10, 20, 30, 255, 40, 50, 60, 128}
	if err := swizzle.RGBAToBGRAInplace(buf); err != nil {
		panic(err)
	}
	fmt.Println(buf)
	// Output: [30 20 10 255 60 50 40 128]
}

func ExampleGrayToRGBA() {
	dst := make([]byte, 8)
	if err := swizzle.GrayToRGBA([]byte{100, 200}, dst); err != nil {
		panic(err)
	}
	fmt.Println(dst)
	// Output: [100 100 100 255 200 200 200 255]
}

func ExampleRGBToRGBAInplace() {
	// Two RGB pixels packed at the start of a buffer sized for RGBA.
	buf := []byte{1, 2, 3, 4, 5, 6, 0, 0}
	if err := swizzle.RGBToRGBAInplace(buf); err != nil {
		panic(err)
	}
	fmt.Println(buf)
	// Output: [1 2 3 255 4 5 6 255]
}

func ExampleRGBAToBGRAInplaceStrided() {
	// Two rows of two pixels, each row padded to three pixels.
	buf := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, 0, 0, 0, 0,
		9, 10, 11, 12, 13, 14, 15, 16, 0, 0, 0, 0,
	}
	if err := swizzle.RGBAToBGRAInplaceStrided(buf, 2, 2, 12); err != nil {
		panic(err)
	}
	fmt.Println(buf[:12])
	fmt.Println(buf[12:])
	// Output:
	// [3 2 1 4 7 6 5 8 0 0 0 0]
	// [11 10 9 12 15 14 13 16 0 0 0 0]
}

func ExampleSizeError() {
	err := swizzle.RGBToRGBA(make([]byte, 6), make([]byte, 4))
	fmt.Println(errors.Is(err, swizzle.ErrPixelCountMismatch))
	fmt.Println(err)
	// Output:
	// true
	// swizzle: destination is smaller than the source pixel count requires
}
