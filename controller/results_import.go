package controller

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jthomisee/changing-500-sub000/model"
)

// ImportResultsCSV parses a game's results from a CSV file and records
// them. Rows are matched to group members by email. Tournament files
// need EMAIL and POSITION columns; cash files need EMAIL, BUY IN and
// CASH OUT. WINNINGS, REBUYS, BEST HAND and BEST HAND WINNER are
// optional.
func (c *controller) ImportResultsCSV(ctx context.Context, gameID string, r io.Reader) (*model.Game, error) {
	g, err := c.db.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	reader, err := newResultsCSVReader(r, g.Type)
	if err != nil {
		return nil, err
	}

	results := make([]model.GameResult, 0, 8)
	for {
		line, err := reader.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		u, err := c.db.GetUserByEmail(ctx, line.email)
		if err != nil {
			return nil, fmt.Errorf("error finding member for %s: %w", line.email, err)
		}
		line.result.UserID = u.ID
		results = append(results, line.result)
	}

	return c.RecordResults(ctx, gameID, results)
}

type resultsCSVReader struct {
	csvReader *csv.Reader
	gameType  model.GameType
	emailIdx  int
	posIdx    int
	winIdx    int
	rebuyIdx  int
	buyInIdx  int
	cashIdx   int
	bhIdx     int
	bhWinIdx  int
}

type resultsCSVLine struct {
	email  string
	result model.GameResult
}

func newResultsCSVReader(r io.Reader, gameType model.GameType) (*resultsCSVReader, error) {
	rr := &resultsCSVReader{
		csvReader: csv.NewReader(r),
		gameType:  gameType,
		emailIdx:  -1,
		posIdx:    -1,
		winIdx:    -1,
		rebuyIdx:  -1,
		buyInIdx:  -1,
		cashIdx:   -1,
		bhIdx:     -1,
		bhWinIdx:  -1,
	}

	header, err := rr.csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading results CSV header: %v", err)
	}

	for i, h := range header {
		switch strings.ToUpper(strings.TrimSpace(h)) {
		case "EMAIL":
			rr.emailIdx = i
		case "POSITION":
			rr.posIdx = i
		case "WINNINGS":
			rr.winIdx = i
		case "REBUYS":
			rr.rebuyIdx = i
		case "BUY IN":
			rr.buyInIdx = i
		case "CASH OUT":
			rr.cashIdx = i
		case "BEST HAND":
			rr.bhIdx = i
		case "BEST HAND WINNER":
			rr.bhWinIdx = i
		}
	}

	if rr.emailIdx == -1 {
		return nil, errors.New("results CSV is missing the EMAIL column")
	}
	if gameType == model.GameTournament && rr.posIdx == -1 {
		return nil, errors.New("tournament results CSV is missing the POSITION column")
	}
	if gameType == model.GameCash && (rr.buyInIdx == -1 || rr.cashIdx == -1) {
		return nil, errors.New("cash results CSV is missing the BUY IN or CASH OUT column")
	}

	return rr, nil
}

func (rr *resultsCSVReader) readLine() (*resultsCSVLine, error) {
	record, err := rr.csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("error reading line in results file (%v): %w", record, err)
	}

	line := resultsCSVLine{
		email: strings.TrimSpace(record[rr.emailIdx]),
	}
	if line.email == "" {
		return nil, fmt.Errorf("results line has no email (%v)", record)
	}

	switch rr.gameType {
	case model.GameCash:
		buyIn, err := parseCSVFloat(record, rr.buyInIdx)
		if err != nil {
			return nil, fmt.Errorf("error parsing buy in for %s: %w", line.email, err)
		}
		cashOut, err := parseCSVFloat(record, rr.cashIdx)
		if err != nil {
			return nil, fmt.Errorf("error parsing cash out for %s: %w", line.email, err)
		}
		line.result.Cash = &model.CashFinish{
			BuyInAmount:   buyIn,
			CashOutAmount: cashOut,
		}
	default:
		pos, err := strconv.Atoi(strings.TrimSpace(record[rr.posIdx]))
		if err != nil {
			return nil, fmt.Errorf("error parsing position for %s: %w", line.email, err)
		}
		winnings, err := parseCSVFloat(record, rr.winIdx)
		if err != nil {
			return nil, fmt.Errorf("error parsing winnings for %s: %w", line.email, err)
		}
		rebuys := 0
		if rr.rebuyIdx != -1 && strings.TrimSpace(record[rr.rebuyIdx]) != "" {
			rebuys, err = strconv.Atoi(strings.TrimSpace(record[rr.rebuyIdx]))
			if err != nil {
				return nil, fmt.Errorf("error parsing rebuys for %s: %w", line.email, err)
			}
		}
		line.result.Tournament = &model.TournamentFinish{
			Position: pos,
			Winnings: winnings,
			Rebuys:   rebuys,
		}
	}

	line.result.RSVP = model.RSVPYes
	line.result.BestHandParticipant = parseCSVBool(record, rr.bhIdx)
	line.result.BestHandWinner = parseCSVBool(record, rr.bhWinIdx)

	return &line, nil
}

func parseCSVFloat(record []string, idx int) (float64, error) {
	if idx == -1 || strings.TrimSpace(record[idx]) == "" {
		return 0, nil
	}
	return strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
}

func parseCSVBool(record []string, idx int) bool {
	if idx == -1 {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(record[idx])) {
	case "y", "yes", "true", "1":
		return true
	default:
		return false
	}
}
