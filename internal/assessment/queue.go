package assessment

// Queue sequences the categories for one run. It holds no question
// data: which section comes next is independent of whether that
// section's questions have loaded.
type Queue struct {
	categories []Category
	index      int
}

// NewFullQueue returns the fixed five-category queue.
func NewFullQueue() *Queue {
	cats := make([]Category, len(FullOrder))
	copy(cats, FullOrder)
	return &Queue{categories: cats}
}

// NewPracticeQueue returns a singleton queue for one category.
func NewPracticeQueue(c Category) *Queue {
	return &Queue{categories: []Category{c}}
}

// Current returns the category at the cursor, or false if exhausted.
func (q *Queue) Current() (Category, bool) {
	if q == nil || q.index >= len(q.categories) {
		return "", false
	}
	return q.categories[q.index], true
}

// Advance moves to the next category and reports whether one exists.
func (q *Queue) Advance() bool {
	if q.index < len(q.categories) {
		q.index++
	}
	return q.index < len(q.categories)
}

// Index returns the cursor position.
func (q *Queue) Index() int { return q.index }

// Len returns the number of categories in the run.
func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.categories)
}

// Categories returns a copy of the run order.
func (q *Queue) Categories() []Category {
	out := make([]Category, len(q.categories))
	copy(out, q.categories)
	return out
}
