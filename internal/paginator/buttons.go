package paginator

// Buttons returns the page numbers a UI should render as direct-navigation
// buttons: a contiguous, ascending window of min(ButtonsMax, PageCount) pages.
//
// On the first page the window starts at 1; on the last page it ends at PageCount.
// Otherwise it is centered on the current page and shifted inwards when it would
// run past either end. With an even ButtonsMax the extra slot goes to the left.
func (p *Paginator) Buttons() []int {
	size := min(p.buttonsMax, p.pageCount)
	if size <= 0 {
		return []int{}
	}

	var from int
	switch {
	case p.IsFirst():
		from = 1
	case p.IsLast():
		from = p.pageCount - size + 1
	default:
		from = p.page - p.buttonsMax/2
		if from < 1 {
			from = 1
		}
		if to := from + size - 1; to > p.pageCount {
			from = p.pageCount - size + 1
		}
	}

	buttons := make([]int, size)
	for i := range buttons {
		buttons[i] = from + i
	}
	return buttons
}
