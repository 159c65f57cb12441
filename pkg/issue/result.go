package issue

// IssueResult is the outcome of a single issue creation. Err holds the API
// failure when Success is false.
type IssueResult struct {
	Success bool
	Issue   *Issue
	Err     error
}

// Listing is the outcome of a list operation. Err holds the API failure when
// Success is false.
type Listing[T any] struct {
	Success bool
	Items   []T
	Err     error
}

// Outcome is the result of one draft of a batch.
type Outcome struct {
	// Index is the position of the draft in the submitted batch.
	Index int
	Draft Draft
	Issue *Issue
	Err   error
}

// Success reports whether the draft was created.
func (o Outcome) Success() bool {
	return o.Err == nil && o.Issue != nil
}

// BatchResult holds one outcome per submitted draft, in submission order.
// Success is true only if every draft was created.
type BatchResult struct {
	Outcomes []Outcome
	Success  bool
}

// Succeeded returns the number of created issues.
func (r BatchResult) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Success() {
			n++
		}
	}
	return n
}

// Failures returns the failed outcomes in submission order.
func (r BatchResult) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Success() {
			failed = append(failed, o)
		}
	}
	return failed
}
