package automatic

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/domino14/isolation/board"
)

// AnalyzeLogFile rebuilds a match report from a game log. Search depths are
// not logged, so the report has none.
func AnalyzeLogFile(filepath string) (*Report, error) {
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	r := csv.NewReader(file)
	r.FieldsPerRecord = 7

	// Record looks like:
	// gameID,p1,p2,first,winner,reason,plies
	var records []*GameRecord
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if record[0] == "gameID" {
			continue
		}
		ints := make([]int, 0, 4)
		for _, idx := range []int{0, 3, 4, 6} {
			v, err := strconv.Atoi(record[idx])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", len(records)+2, err)
			}
			ints = append(ints, v)
		}
		if ints[1] < 0 || ints[1] > 1 || ints[2] < 0 || ints[2] > 1 || ints[3] < 0 {
			return nil, fmt.Errorf("line %d: field out of range", len(records)+2)
		}
		records = append(records, &GameRecord{
			ID:          ints[0],
			Names:       [2]string{record[1], record[2]},
			FirstPlayer: ints[1],
			Winner:      ints[2],
			Reason:      record[5],
			// Only the count is logged.
			Moves: make([]board.Move, ints[3]),
		})
	}
	return NewReport(records), nil
}
