package menu

// registry maps top-level items that own a dropdown panel to the panel index.
// It is built once per pass and never shared between passes. Entries are
// keyed by top-level position, which is unique within a pass even when items
// share an OriginalID.
type registry struct {
	index map[int]int
	items []*Item
}

func newRegistry(roots []*Item, hasChildren func(*Item) bool) *registry {
	reg := &registry{index: make(map[int]int)}
	for pos, item := range roots {
		if !hasChildren(item) {
			continue
		}
		reg.index[pos] = len(reg.items)
		reg.items = append(reg.items, item)
	}
	return reg
}

// lookup returns the panel index for the top-level item at pos.
func (reg *registry) lookup(pos int) (int, bool) {
	if reg == nil {
		return 0, false
	}
	idx, ok := reg.index[pos]
	return idx, ok
}
