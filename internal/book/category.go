package book

// ResolveCategories joins ids against the registry. Ids with no registry
// entry are dropped and repeated ids are rendered once, so the result is
// never longer than ids. Output order follows ids.
func ResolveCategories(ids []int, registry []Category) []Category {
	out := make([]Category, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		for _, c := range registry {
			if c.ID == id {
				out = append(out, c)
				seen[id] = true
				break
			}
		}
	}
	return out
}

// Decorate resolves the categories of a single book.
func Decorate(b Book, registry []Category) View {
	return View{
		Book:           b,
		Categories:     ResolveCategories(b.CategoryIDs, registry),
		Published:      b.PublishedDate.Format(),
		PrecisionLabel: b.PublishedDate.Precision.Label(),
	}
}

// DecorateAll resolves the categories of every book, keeping order.
func DecorateAll(books []Book, registry []Category) []View {
	out := make([]View, 0, len(books))
	for _, b := range books {
		out = append(out, Decorate(b, registry))
	}
	return out
}
