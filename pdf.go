// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"

	"github.com/nickjwhite/gofpdf"

	"rescribe.xyz/charpipeline/dataset"
)

const (
	sheetMargin  = 36 // page margin in pt
	sheetCell    = 54 // size of each sample in pt
	sheetGap     = 6  // gap between samples in pt
	captionSize  = 14 // caption font size in pt
	sheetColumns = 9  // samples per row
)

// SampleSheet is a PDF showing samples of each label of a dataset
type SampleSheet struct {
	fpdf    *gofpdf.Fpdf
	nimg    int
	hasFont bool
}

// Setup creates a new PDF. If fontpath is set, it should be a TTF
// font able to show the glyphs of the character set, which will be
// used for captions; otherwise captions use a core font, which can
// only show latin text.
func (p *SampleSheet) Setup(fontpath string) error {
	p.fpdf = gofpdf.New("P", "pt", "A4", "")
	if fontpath != "" {
		p.fpdf.AddUTF8Font("caption", "", fontpath)
		p.fpdf.SetFont("caption", "", captionSize)
		p.hasFont = true
	} else {
		p.fpdf.SetFont("Helvetica", "", captionSize)
	}
	p.fpdf.SetAutoPageBreak(false, float64(0))
	return p.fpdf.Error()
}

// AddLabel adds a page showing samples of a label, captioned with
// the label number, glyph and meaning if a suitable font was given,
// or just the label number and meaning if not.
func (p *SampleSheet) AddLabel(label int, glyph string, meaning string, samples []dataset.Sample) error {
	if p.fpdf == nil {
		return errors.New("SampleSheet has not been set up")
	}
	p.fpdf.AddPage()
	pagew, pageh := p.fpdf.GetPageSize()

	caption := fmt.Sprintf("%d", label)
	if p.hasFont {
		caption += " " + glyph
	}
	if meaning != "" {
		caption += " (" + meaning + ")"
	}
	caption += fmt.Sprintf(" - %d samples", len(samples))
	p.fpdf.SetXY(sheetMargin, sheetMargin)
	p.fpdf.CellFormat(pagew-sheetMargin*2, captionSize*1.5, caption, "", 0, "L", false, 0, "")

	top := float64(sheetMargin) + captionSize*2
	for i, s := range samples {
		row, col := i/sheetColumns, i%sheetColumns
		y := top + float64(row)*(sheetCell+sheetGap)
		if y+sheetCell > pageh-sheetMargin {
			break
		}
		x := float64(sheetMargin) + float64(col)*(sheetCell+sheetGap)

		var buf bytes.Buffer
		err := png.Encode(&buf, s.Image())
		if err != nil {
			return fmt.Errorf("Error encoding sample %d of label %d: %v", i, label, err)
		}
		name := fmt.Sprintf("sample%d", p.nimg)
		p.nimg++
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		p.fpdf.RegisterImageOptionsReader(name, opts, &buf)
		p.fpdf.ImageOptions(name, x, y, sheetCell, sheetCell, false, opts, 0, "")
		p.fpdf.Rect(x, y, sheetCell, sheetCell, "D")
	}
	return p.fpdf.Error()
}

// Pages returns the number of pages added so far
func (p *SampleSheet) Pages() int {
	if p.fpdf == nil {
		return 0
	}
	return p.fpdf.PageCount()
}

// Save saves the PDF to the file at path
func (p *SampleSheet) Save(path string) error {
	return p.fpdf.OutputFileAndClose(path)
}
