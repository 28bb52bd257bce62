// Package csvout writes generated ticket batches as CSV: a draw,n1..nK
// header, then one row per ticket.
package csvout

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

func Write(w io.Writer, tickets [][]int, picks int) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, picks+1)
	header = append(header, "draw")
	for i := 1; i <= picks; i++ {
		header = append(header, fmt.Sprintf("n%d", i))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, nums := range tickets {
		row := make([]string, 0, len(nums)+1)
		row = append(row, strconv.Itoa(i+1))
		for _, n := range nums {
			row = append(row, strconv.Itoa(n))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
