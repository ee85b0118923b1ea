package ledger

// indexMaintainer owns the derived per-identity views. It is only mutated
// together with the item log, inside a committed transition.
type indexMaintainer struct {
	ownItems  map[string][]uint64
	listed    []uint64
	sold      map[string][]uint64
	purchased map[string][]uint64
}

func newIndexMaintainer() *indexMaintainer {
	return &indexMaintainer{
		ownItems:  make(map[string][]uint64),
		sold:      make(map[string][]uint64),
		purchased: make(map[string][]uint64),
	}
}

func (m *indexMaintainer) recordListing(id uint64, owner string) {
	m.ownItems[owner] = append(m.ownItems[owner], id)
	m.listed = append(m.listed, id)
}

func (m *indexMaintainer) recordPurchase(id uint64, seller, buyer string) {
	for i, listedID := range m.listed {
		if listedID == id {
			m.listed = append(m.listed[:i], m.listed[i+1:]...)
			break
		}
	}
	m.sold[seller] = append(m.sold[seller], id)
	m.purchased[buyer] = append(m.purchased[buyer], id)
}

func (m *indexMaintainer) ownedBy(identity string) []uint64 {
	return m.ownItems[identity]
}

func (m *indexMaintainer) listedItems() []uint64 {
	return m.listed
}

func (m *indexMaintainer) soldCount(identity string) int {
	return len(m.sold[identity])
}

func (m *indexMaintainer) purchasedCount(identity string) int {
	return len(m.purchased[identity])
}
