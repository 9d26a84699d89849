package t2048

import "slices"

// ShiftLeft compacts the non-zero values of nums toward index 0, keeping
// their order and filling the tail with zeros.
// Returns true if any value ended up at a different index.
func ShiftLeft(nums []int) bool {
	changed := false
	writePos := 0

	for i := range nums {
		if nums[i] == 0 {
			continue
		}

		// Swapping a value onto itself is not a change.
		prev := nums[writePos]
		nums[writePos], nums[i] = nums[i], prev
		if prev != nums[writePos] {
			changed = true
		}
		writePos++
	}

	return changed
}

// CombineLeft merges adjacent equal non-zero values in a single left-to-right
// pass. The left cell receives the sum and the right cell becomes zero; the
// scan then skips past the pair, so {2, 2, 2} becomes {4, 0, 2}.
// Returns true if at least one merge happened.
func CombineLeft(nums []int) bool {
	changed := false

	for i := 0; i < len(nums)-1; i++ {
		if nums[i] == 0 || nums[i] != nums[i+1] {
			continue
		}

		nums[i] *= 2
		nums[i+1] = 0
		i++
		changed = true
	}

	return changed
}

// ShiftCombineShift performs one full move on a single line: shift, combine,
// shift again to close the gaps left by merges. When towardLeft is false the
// line is processed from its far end, which maps "left" onto "right" or "down".
// Returns true if any step changed the line.
func ShiftCombineShift(nums []int, towardLeft bool) bool {
	if !towardLeft {
		slices.Reverse(nums)
		defer slices.Reverse(nums)
	}

	shifted := ShiftLeft(nums)
	combined := CombineLeft(nums)
	closed := ShiftLeft(nums)

	return shifted || combined || closed
}
