package target

type BlockType int

const (
	LineBlock BlockType = iota
	BoxBlock
	StreamBlock
	ColumnBlock
)

func (b BlockType) String() string {
	switch b {
	case LineBlock:
		return "LINE"
	case BoxBlock:
		return "BOX"
	case StreamBlock:
		return "STREAM"
	case ColumnBlock:
		return "COLUMN"
	}
	return "?"
}

// Block is the marked block.
type Block struct {
	Type      BlockType
	File      string
	StartLine int
	EndLine   int
	StartCol  int
	EndCol    int
}

// Lines returns the number of lines the block covers.
func (b *Block) Lines() int {
	if b.EndLine < b.StartLine {
		return b.StartLine - b.EndLine + 1
	}
	return b.EndLine - b.StartLine + 1
}
