package core

// NextSelection returns the tab to select when closingIndex is removed from a
// collection of lengthBeforeDelete tabs while current is selected. It must be
// evaluated before the deletion happens.
//
// Closing the only tab yields 0, which callers read as "no selection" once the
// collection is empty.
func NextSelection(current, lengthBeforeDelete, closingIndex int) int {
	switch {
	case lengthBeforeDelete == 1:
		return 0
	case closingIndex == current:
		if current == lengthBeforeDelete-1 {
			return max(current-1, 0)
		}
		// the next tab shifts into this position
		return current
	case closingIndex < current:
		return current - 1
	default:
		return current
	}
}

// ClampSelection keeps index inside a collection of length tabs.
func ClampSelection(index, length int) int {
	if index >= length {
		return max(0, length-1)
	}
	return max(index, 0)
}
