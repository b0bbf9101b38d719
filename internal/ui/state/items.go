package state

// Item is one row of the list.
type Item struct {
	ID    string
	Label string
}

// ItemsFromLabels wraps labels as items keyed by their label.
func ItemsFromLabels(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, label := range labels {
		items[i] = Item{ID: label, Label: label}
	}
	return items
}

// Labels returns the labels of items in order.
func Labels(items []Item) []string {
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	return labels
}

// CloneItems produces a shallow copy of the provided items.
func CloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
