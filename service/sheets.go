package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"healthcall/config"
	"healthcall/logger"
)

// ErrSheetsAuth marks a failed service-account token exchange.
var ErrSheetsAuth = errors.New("google sheets authentication failed")

// SheetsClient appends rows to one spreadsheet range as a service account.
type SheetsClient struct {
	tokens        oauth2.TokenSource
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
	valueRange    string
}

// NewSheetsClient 创建 Google Sheets 客户端
// The private key is only parsed on the first token exchange, so a bad key surfaces as ErrSheetsAuth.
func NewSheetsClient(ctx context.Context, cfg config.SheetsConfig) (*SheetsClient, error) {
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = google.JWTTokenURL
	}

	jwtCfg := &jwt.Config{
		Email:      cfg.ServiceAccountEmail,
		PrivateKey: []byte(cfg.PrivateKey),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   tokenURL,
	}
	tokens := jwtCfg.TokenSource(ctx)

	opts := []option.ClientOption{option.WithTokenSource(tokens)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.Endpoint))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &SheetsClient{
		tokens:        tokens,
		values:        svc.Spreadsheets.Values,
		spreadsheetID: cfg.SpreadsheetID,
		valueRange:    cfg.Range,
	}, nil
}

// AppendRow appends one row below the last row of the range and returns the updated range.
func (s *SheetsClient) AppendRow(ctx context.Context, row []interface{}) (string, error) {
	// token is cached by the reuse source; the append below does not exchange again
	if _, err := s.tokens.Token(); err != nil {
		logger.Error("❌ Sheets token exchange failed | error=%v", err)
		return "", fmt.Errorf("%w: %v", ErrSheetsAuth, err)
	}

	resp, err := s.values.Append(s.spreadsheetID, s.valueRange, &sheets.ValueRange{
		Values: [][]interface{}{row},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		logger.Error("❌ Sheets append failed | spreadsheet=%s range=%s error=%v", s.spreadsheetID, s.valueRange, err)
		return "", fmt.Errorf("append to spreadsheet %s: %w", s.spreadsheetID, err)
	}

	updated := ""
	if resp.Updates != nil {
		updated = resp.Updates.UpdatedRange
	}
	logger.Info("✅ Sheets row appended | spreadsheet=%s range=%s", s.spreadsheetID, updated)
	return updated, nil
}
