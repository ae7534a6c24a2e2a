package checklist

import "fmt"

// Catalog is the immutable, ordered checklist definition.
type Catalog struct {
	categories []Category
	items      map[string]Item
	total      int
}

// NewCatalog validates categories and builds a Catalog. Category ids must be
// unique and item ids must be unique across the whole catalog, since progress
// is keyed by item id alone.
func NewCatalog(categories []Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		items:      make(map[string]Item),
	}
	seenCategories := make(map[string]bool, len(categories))

	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("%w: category id is empty", ErrInvalidCatalog)
		}
		if seenCategories[cat.ID] {
			return nil, fmt.Errorf("%w: duplicate category id %q", ErrInvalidCatalog, cat.ID)
		}
		seenCategories[cat.ID] = true

		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		for _, item := range items {
			if item.ID == "" {
				return nil, fmt.Errorf("%w: empty item id in category %q", ErrInvalidCatalog, cat.ID)
			}
			if _, dup := c.items[item.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate item id %q", ErrInvalidCatalog, item.ID)
			}
			c.items[item.ID] = item
		}
		cat.Items = items
		c.categories = append(c.categories, cat)
		c.total += len(items)
	}

	return c, nil
}

// MustCatalog is NewCatalog that panics on invalid input.
func MustCatalog(categories []Category) *Catalog {
	c, err := NewCatalog(categories)
	if err != nil {
		panic(err)
	}
	return c
}

// Categories returns a copy of the categories in display order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		items := make([]Item, len(cat.Items))
		copy(items, cat.Items)
		cat.Items = items
		out[i] = cat
	}
	return out
}

// TotalCount returns the number of items across all categories.
func (c *Catalog) TotalCount() int {
	return c.total
}

// Contains reports whether id is a catalog item id.
func (c *Catalog) Contains(id string) bool {
	_, ok := c.items[id]
	return ok
}

// Item looks up an item by id.
func (c *Catalog) Item(id string) (Item, bool) {
	item, ok := c.items[id]
	return item, ok
}
