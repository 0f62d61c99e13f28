package align

// Filler is an instruction to insert Count blank visual lines after
// AnchorLine in one side's pane. AnchorLine 0 inserts before the first line.
// Count is always positive. Fillers carry no document content; they exist
// purely so corresponding lines across panes share a visual row.
type Filler struct {
	AnchorLine int
	Count      int
}

// ComputeFillers walks the concatenated synchronization points of all
// alignment regions, in base order, and derives the blank-line insertions
// for each side. At every point with both side lines present, the side that
// is visually ahead stays put and the other receives fillers so that
// sideLine + fillers-so-far is equal on both sides. Points missing a side
// are consumed but contribute no fillers.
func ComputeFillers(alignments []LineAlignment) (side1, side2 []Filler) {
	side1Total := 0
	side2Total := 0
	for _, la := range alignments {
		if la.Side1Line == 0 || la.Side2Line == 0 {
			continue
		}
		adjusted1 := la.Side1Line + side1Total
		adjusted2 := la.Side2Line + side2Total
		target := max(adjusted1, adjusted2)
		if target > adjusted1 {
			side1 = append(side1, Filler{AnchorLine: la.Side1Line - 1, Count: target - adjusted1})
			side1Total += target - adjusted1
		}
		if target > adjusted2 {
			side2 = append(side2, Filler{AnchorLine: la.Side2Line - 1, Count: target - adjusted2})
			side2Total += target - adjusted2
		}
	}
	return side1, side2
}
