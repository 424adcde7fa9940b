package farm

type Item string

const (
	ItemSeeds Item = "seeds"
	ItemCrops Item = "crops"
)

// Inventory is a ledger of item counts. Counts never go below zero.
type Inventory struct {
	counts map[Item]int
}

func NewInventory(seeds int) *Inventory {
	inv := &Inventory{counts: map[Item]int{ItemSeeds: 0, ItemCrops: 0}}
	inv.Add(ItemSeeds, seeds)
	return inv
}

func (i *Inventory) Count(item Item) int {
	return i.counts[item]
}

func (i *Inventory) Has(item Item, amount int) bool {
	return amount > 0 && i.counts[item] >= amount
}

func (i *Inventory) Add(item Item, amount int) {
	if amount <= 0 || item == "" {
		return
	}
	i.counts[item] += amount
}

func (i *Inventory) Consume(item Item, amount int) bool {
	if !i.Has(item, amount) {
		return false
	}
	i.counts[item] -= amount
	return true
}

func (i *Inventory) Snapshot() map[Item]int {
	out := make(map[Item]int, len(i.counts))
	for item, n := range i.counts {
		out[item] = n
	}
	return out
}
