package mdnorm

// Tracker follows block context across lines in document order. The zero
// value is ready to use and represents the start of a document.
type Tracker struct {
	InCodeFence  bool
	InMathBlock  bool
	InListBlock  bool
	InQuoteBlock bool
	InTableBlock bool

	// Fence is the marker of the open code fence, empty when none is open.
	Fence string
}

// Advance updates the context with one trimmed line.
//
// A fence closes only on the marker that opened it. Blank lines end list,
// quote and table blocks but not fences or math blocks, which may contain
// blank lines. List, quote and table membership is sticky until the next
// blank line; the first of the three that the line starts and that is not
// already active is entered.
func (tr *Tracker) Advance(t string) {
	if m, ok := FenceMarker(t); ok {
		switch {
		case !tr.InCodeFence:
			tr.InCodeFence = true
			tr.Fence = m
		case tr.Fence == m:
			tr.InCodeFence = false
			tr.Fence = ""
		}
	}

	if IsMathDelimiter(t) {
		tr.InMathBlock = !tr.InMathBlock
	}

	switch {
	case t == "":
		tr.InListBlock = false
		tr.InQuoteBlock = false
		tr.InTableBlock = false
	case !tr.InListBlock && IsListItemStart(t):
		tr.InListBlock = true
	case !tr.InQuoteBlock && IsBlockquote(t):
		tr.InQuoteBlock = true
	case !tr.InTableBlock && IsTableRow(t):
		tr.InTableBlock = true
	}
}

// Structural reports whether any block context is active. Blank lines are
// never inserted while it is true.
func (tr *Tracker) Structural() bool {
	return tr.InCodeFence || tr.InMathBlock || tr.InListBlock || tr.InQuoteBlock || tr.InTableBlock
}

// Reset returns the tracker to the start-of-document state.
func (tr *Tracker) Reset() { *tr = Tracker{} }
