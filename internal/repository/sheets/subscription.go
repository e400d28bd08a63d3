package sheets

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/prachij94/CancelItNowBot/internal/domain"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// statusColumn is the sheet column holding the status field.
// Schema is fixed: [user_id, username, name, cost, priority, status].
const statusColumn = "F"

// SubscriptionRepo implements repository.SubscriptionRepository on top
// of a Google Sheets spreadsheet
type SubscriptionRepo struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// New builds a Sheets-backed repository from service account
// credentials JSON
func New(ctx context.Context, credentialsJSON []byte, spreadsheetID, sheetName string) (*SubscriptionRepo, error) {
	jwt, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sheets credentials: %w", err)
	}

	svc, err := sheets.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &SubscriptionRepo{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append writes one row after the last non-empty row and returns its
// 1-based sheet position
func (r *SubscriptionRepo) Append(ctx context.Context, sub domain.Subscription) (int, error) {
	vr := &sheets.ValueRange{Values: [][]interface{}{rowValues(sub)}}

	resp, err := r.svc.Spreadsheets.Values.
		Append(r.spreadsheetID, r.dataRange(), vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return 0, storeErr("append row", err)
	}

	if resp.Updates == nil {
		return 0, storeErr("append row", fmt.Errorf("no update info in response"))
	}

	row, err := rowFromRange(resp.Updates.UpdatedRange)
	if err != nil {
		return 0, storeErr("append row", err)
	}
	return row, nil
}

// ListActive reads every data row and keeps the user's active ones in
// sheet order
func (r *SubscriptionRepo) ListActive(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	resp, err := r.svc.Spreadsheets.Values.
		Get(r.spreadsheetID, r.dataRange()).
		Context(ctx).
		Do()
	if err != nil {
		return nil, storeErr("list rows", err)
	}

	var subs []domain.Subscription
	for i, row := range resp.Values {
		// header is row 1, data starts at 2
		sub := subscriptionFromRow(i+2, row)
		if sub.UserID == userID && sub.Status == domain.StatusActive {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

// SetStatus overwrites the status cell of a single row
func (r *SubscriptionRepo) SetStatus(ctx context.Context, rowPos int, status domain.Status) error {
	cell := fmt.Sprintf("%s!%s%d", r.sheetName, statusColumn, rowPos)
	vr := &sheets.ValueRange{Values: [][]interface{}{{string(status)}}}

	_, err := r.svc.Spreadsheets.Values.
		Update(r.spreadsheetID, cell, vr).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return storeErr("update status cell", err)
	}
	return nil
}

func (r *SubscriptionRepo) dataRange() string {
	return fmt.Sprintf("%s!A2:%s", r.sheetName, statusColumn)
}

func storeErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStoreUnavailable, err)
}

// rowValues serializes a subscription in the fixed column order
func rowValues(sub domain.Subscription) []interface{} {
	cost := ""
	if sub.Cost != 0 {
		cost = strconv.Itoa(sub.Cost)
	}
	return []interface{}{
		strconv.FormatInt(sub.UserID, 10),
		sub.Username,
		sub.Name,
		cost,
		string(sub.Priority),
		string(sub.Status),
	}
}

// subscriptionFromRow parses one sheet row. Cells arrive as formatted
// strings; missing trailing cells and malformed cost degrade to zero
// values rather than failing the whole scan.
func subscriptionFromRow(pos int, row []interface{}) domain.Subscription {
	sub := domain.Subscription{RowPos: pos}

	sub.UserID, _ = strconv.ParseInt(cellString(row, 0), 10, 64)
	sub.Username = cellString(row, 1)
	sub.Name = cellString(row, 2)
	sub.Cost, _ = strconv.Atoi(cellString(row, 3))
	sub.Priority = domain.Priority(cellString(row, 4))
	sub.Status = domain.Status(strings.ToLower(cellString(row, 5)))

	return sub
}

func cellString(row []interface{}, idx int) string {
	if idx >= len(row) || row[idx] == nil {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[idx]))
}

// rowFromRange extracts the row number from an updated range like
// "Sheet1!A5:F5"
func rowFromRange(updatedRange string) (int, error) {
	ref := updatedRange
	if i := strings.LastIndex(ref, "!"); i >= 0 {
		ref = ref[i+1:]
	}
	if i := strings.Index(ref, ":"); i >= 0 {
		ref = ref[:i]
	}

	digits := strings.TrimLeftFunc(ref, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if digits == "" {
		return 0, fmt.Errorf("no row number in range %q", updatedRange)
	}

	return strconv.Atoi(digits)
}
