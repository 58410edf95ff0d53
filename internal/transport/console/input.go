package console

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var (
	ErrInvalidColumn = errors.New("invalid column value")
	ErrInvalidRow    = errors.New("invalid row value")
)

// ParseMove - reads a move typed as a column letter and a row number,
// "A 1" or the compact "a1". Column and row are validated independently;
// when both are bad the returned error matches both sentinels.
func ParseMove(input string) (entity.Move, error) {
	fields := strings.Fields(input)

	var colToken, rowToken string

	switch {
	case len(fields) == 0:
		return entity.Move{}, errors.Join(ErrInvalidColumn, ErrInvalidRow)
	case len(fields) == 1 && len(fields[0]) > 1:
		colToken, rowToken = fields[0][:1], fields[0][1:]
	case len(fields) == 1:
		colToken, rowToken = fields[0], ""
	default:
		colToken, rowToken = fields[0], fields[1]
	}

	col, colErr := parseColumn(colToken)
	row, rowErr := parseRow(rowToken)

	if err := errors.Join(colErr, rowErr); err != nil {
		return entity.Move{}, err
	}

	return entity.Move{Row: row, Col: col}, nil
}

func parseColumn(token string) (int, error) {
	switch strings.ToLower(token) {
	case "a":
		return 0, nil
	case "b":
		return 1, nil
	case "c":
		return 2, nil
	default:
		return 0, ErrInvalidColumn
	}
}

func parseRow(token string) (int, error) {
	row, err := strconv.Atoi(token)
	if err != nil || row < 0 || row >= entity.Size {
		return 0, ErrInvalidRow
	}

	return row, nil
}
