package wordsearch

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

var tableRefPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_]+\.[A-Za-z0-9_-]+$`)

// BigQueryWords loads themed word lists from a BigQuery table with (at least) a "word" and a
// "theme" STRING column.
type BigQueryWords struct {
	client *bigquery.Client
	table  string
}

type wordRow struct {
	Word string `bigquery:"word"`
}

// NewBigQueryWords opens a BigQuery client for cfg.ProjectID reading cfg.WordsTable.
func NewBigQueryWords(ctx context.Context, cfg *Config) (*BigQueryWords, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("bigquery: project ID not configured")
	}
	table, err := quoteTable(cfg.WordsTable)
	if err != nil {
		return nil, err
	}

	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("bigquery: create client: %w", err)
	}
	return &BigQueryWords{client: client, table: table}, nil
}

// LoadWords runs a parameterized query for theme and returns the cleaned result.
func (b *BigQueryWords) LoadWords(ctx context.Context, theme string, maxLen, limit int) ([]string, error) {
	q := b.client.Query(wordsQuery(b.table))
	q.Parameters = []bigquery.QueryParameter{
		{Name: "theme", Value: theme},
		{Name: "max_len", Value: maxLen},
		// Over-fetch: normalized duplicates get dropped.
		{Name: "limit", Value: limit * 2},
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery: query %s: %w", b.table, err)
	}

	var raw []string
	for {
		var row wordRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery: read row: %w", err)
		}
		raw = append(raw, row.Word)
	}
	return cleanWords(raw, maxLen, limit), nil
}

// Close releases the BigQuery client.
func (b *BigQueryWords) Close() error {
	return b.client.Close()
}

// LoadWordsFromCloud opens a client, loads up to cfg.ThemeWordLimit words for theme and closes it.
func LoadWordsFromCloud(ctx context.Context, cfg *Config, theme string, maxLen int) ([]string, error) {
	src, err := NewBigQueryWords(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return src.LoadWords(ctx, theme, maxLen, cfg.ThemeWordLimit)
}

// quoteTable validates a project.dataset.table reference and quotes it for standard SQL. Table
// names cannot be query parameters, so only identifier characters are allowed through.
func quoteTable(ref string) (string, error) {
	if !tableRefPattern.MatchString(ref) {
		return "", fmt.Errorf("bigquery: invalid table reference %q, want project.dataset.table", ref)
	}
	return "`" + ref + "`", nil
}

// normalizedLength mirrors primitives.Normalize in SQL: decompose, keep ASCII letters, count.
const normalizedLength = `CHAR_LENGTH(REGEXP_REPLACE(NORMALIZE(word, NFD), r'[^A-Za-z]', ''))`

func wordsQuery(table string) string {
	return "SELECT word FROM " + table +
		" WHERE theme = @theme AND " + normalizedLength + " BETWEEN 1 AND @max_len" +
		" ORDER BY RAND() LIMIT @limit"
}
