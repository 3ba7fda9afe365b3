package splice

// Iteration phases for FragmentIterator.
const (
	phaseIntro = iota
	phaseContent
	phaseOutro
	phaseDone
)

// FragmentIterator walks a chunk's contribution to the output in emission
// order: intro fragments front-to-back, then the chunk's current content,
// then outro fragments front-to-back. Concatenating every fragment yields
// the chunk's exact output text.
//
// Each call to Chunk.Fragments derives a fresh sequence from the chunk's
// state at that moment; mutating the chunk invalidates live iterators.
type FragmentIterator struct {
	intro   []Text
	outro   []Text
	content string
	phase   int
	index   int
	current string
}

// Fragments returns an iterator over the chunk's output fragments.
// source must be the text the chunk's span offsets were computed against.
func (c *Chunk) Fragments(source string) *FragmentIterator {
	return &FragmentIterator{
		intro:   c.intro,
		outro:   c.outro,
		content: c.content(source),
	}
}

// Next advances to the next fragment, returning false when the sequence is
// exhausted.
func (it *FragmentIterator) Next() bool {
	switch it.phase {
	case phaseIntro:
		if it.index < len(it.intro) {
			it.current = it.intro[it.index].String()
			it.index++
			return true
		}
		it.phase = phaseContent
		fallthrough
	case phaseContent:
		it.phase = phaseOutro
		it.index = 0
		it.current = it.content
		return true
	case phaseOutro:
		if it.index < len(it.outro) {
			it.current = it.outro[it.index].String()
			it.index++
			return true
		}
		it.phase = phaseDone
	}
	it.current = ""
	return false
}

// Fragment returns the fragment at the current position.
// Only valid after Next has returned true.
func (it *FragmentIterator) Fragment() string {
	return it.current
}

// Len returns the total byte length of the chunk's contribution without
// iterating: intro and outro fragment lengths plus the content length.
func (it *FragmentIterator) Len() int {
	n := len(it.content)
	for _, t := range it.intro {
		n += len(t.String())
	}
	for _, t := range it.outro {
		n += len(t.String())
	}
	return n
}
