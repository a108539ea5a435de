package export

import "fmt"

// Page geometry is expressed in PDF points (1/72 inch).
type PageSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4     = PageSize{Name: "A4", Width: 595.28, Height: 841.89}
	Letter = PageSize{Name: "Letter", Width: 612, Height: 792}
)

// PageByName resolves a user-chosen paper size. The empty string defaults
// to A4.
func PageByName(name string) (PageSize, error) {
	switch name {
	case "", "a4", "A4":
		return A4, nil
	case "letter", "Letter":
		return Letter, nil
	}
	return PageSize{}, fmt.Errorf("unknown page size %q", name)
}

// Placement describes where a captured bitmap lands on the page.
type Placement struct {
	Scale   float64
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
}

// FitPage computes the uniform aspect-fit scale for a bitmap of the given
// pixel dimensions and centers the scaled bitmap on the page. The scale is
// always uniform; stretching either axis would distort the layout.
func FitPage(bitmapW, bitmapH int, page PageSize) Placement {
	sw := page.Width / float64(bitmapW)
	sh := page.Height / float64(bitmapH)
	scale := sw
	if sh < sw {
		scale = sh
	}
	w := float64(bitmapW) * scale
	h := float64(bitmapH) * scale
	return Placement{
		Scale:   scale,
		Width:   w,
		Height:  h,
		OffsetX: (page.Width - w) / 2,
		OffsetY: (page.Height - h) / 2,
	}
}
