package main

// Block is one element of a document's content flow.
// Implementations: TextBlock, ColumnsBlock, RuleBlock, TableBlock.
type Block interface {
	isBlock()
}

// Margin is spacing around a block in points: left, top, right, bottom
type Margin [4]float64

func (m Margin) Left() float64   { return m[0] }
func (m Margin) Top() float64    { return m[1] }
func (m Margin) Right() float64  { return m[2] }
func (m Margin) Bottom() float64 { return m[3] }

// Alignment is the horizontal alignment of a text run
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// TextBlock is a run of text in a named style
type TextBlock struct {
	Text     string
	Style    StyleName
	Override Style
	Align    Alignment
	Margin   Margin
}

// ColumnsBlock lays text runs side by side across the content width
type ColumnsBlock struct {
	Columns []TextBlock
	Margin  Margin
}

// RuleBlock is a horizontal line spanning the content width.
// Dash is the dash length; zero draws a solid line.
type RuleBlock struct {
	LineWidth float64
	Color     string
	Dash      float64
	Margin    Margin
}

// TableCell is one cell of a TableBlock
type TableCell struct {
	Text  string
	Style StyleName
	Bold  bool
}

// TableBlock is a table with equal column widths.
// The first HeaderRows rows of Body are header rows.
type TableBlock struct {
	HeaderRows int
	Body       [][]TableCell
	Margin     Margin
}

func (TextBlock) isBlock()    {}
func (ColumnsBlock) isBlock() {}
func (RuleBlock) isBlock()    {}
func (TableBlock) isBlock()   {}
