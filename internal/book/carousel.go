package book

// Carousel is the ordered list of featured book ids. Duplicates are allowed.
type Carousel []int

// Add appends id unconditionally.
func (c Carousel) Add(id int) Carousel {
	out := make(Carousel, 0, len(c)+1)
	out = append(out, c...)
	return append(out, id)
}

// Remove drops every occurrence of id.
func (c Carousel) Remove(id int) Carousel {
	out := make(Carousel, 0, len(c))
	for _, v := range c {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (c Carousel) Contains(id int) bool {
	for _, v := range c {
		if v == id {
			return true
		}
	}
	return false
}

// Featured maps the membership through books in carousel order, skipping
// ids that no longer reference a book.
func (c Carousel) Featured(books []Book) []Book {
	byID := make(map[int]Book, len(books))
	for _, b := range books {
		if _, ok := byID[b.ID]; !ok {
			byID[b.ID] = b
		}
	}
	out := make([]Book, 0, len(c))
	for _, id := range c {
		if b, ok := byID[id]; ok {
			out = append(out, b)
		}
	}
	return out
}
