// package formatter provides functions to export catalog data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Memetgms/kitapinceleme/internal/models"
	"github.com/Memetgms/kitapinceleme/internal/shared"
)

// genreName resolves a genre id against the export's genre list.
func genreName(export *models.CatalogExport, id int) string {
	for _, genre := range export.Genres {
		if genre.ID == id {
			return genre.Name
		}
	}
	return strconv.Itoa(id)
}

// ExportToCSV converts a CatalogExport to CSV format with columns: ID, Title, Author, Genre, Price, Published
func ExportToCSV(export *models.CatalogExport) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Author", "Genre", "Price", "Published"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, book := range export.Books {
		record := []string{
			strconv.Itoa(book.ID),
			book.Title,
			book.Author,
			genreName(export, book.GenreID),
			strconv.FormatFloat(book.Price, 'f', 2, 64),
			book.PublishedDate,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a CatalogExport to Markdown format
func ExportToMarkdown(export *models.CatalogExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", export.Title))
	buf.WriteString(fmt.Sprintf("**Books**: %d\n\n", len(export.Books)))

	buf.WriteString("## Books\n\n")
	for i, book := range export.Books {
		genrePart := ""
		if name := genreName(export, book.GenreID); name != "" {
			genrePart = fmt.Sprintf(" (%s)", name)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s, %s]\n",
			i+1, book.Author, book.Title, genrePart,
			shared.FormatPrice(book.Price), shared.FormatDate(book.PublishedDate)))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a CatalogExport to plain text format
func ExportToText(export *models.CatalogExport) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Catalog: %s\n", export.Title))
	buf.WriteString(fmt.Sprintf("Books: %d\n\n", len(export.Books)))

	for i, book := range export.Books {
		buf.WriteString(fmt.Sprintf("%d. %s - %s (%s)\n",
			i+1, book.Author, book.Title, shared.FormatPrice(book.Price)))
	}

	return buf.Bytes(), nil
}

// ToMetadataJSON generates a JSON representation of the export without the book rows
func ToMetadataJSON(export *models.CatalogExport) ([]byte, error) {
	metadata := struct {
		Title  string         `json:"title"`
		Count  int            `json:"count"`
		Genres []models.Genre `json:"genres,omitempty"`
	}{Title: export.Title, Count: len(export.Books), Genres: export.Genres}

	return shared.MarshalJSON(metadata, true)
}

// CSVExportResult contains the paths of files created by WriteCSVExport
type CSVExportResult struct {
	BooksFile    string
	MetadataFile string
}

// WriteCSVExport exports a catalog to CSV format with an accompanying metadata JSON file.
//
// Defaults to "catalog" as the base filename & creates {base}_books.csv and {base}_metadata.json
func WriteCSVExport(export *models.CatalogExport, baseFilepath string) (*CSVExportResult, error) {
	if baseFilepath == "" {
		baseFilepath = "catalog"
	}

	csvData, err := ExportToCSV(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate CSV: %w", err)
	}

	booksFile := baseFilepath + "_books.csv"
	if err := os.WriteFile(booksFile, csvData, 0644); err != nil {
		return nil, fmt.Errorf("failed to write CSV file: %w", err)
	}

	metadataJSON, err := ToMetadataJSON(export)
	if err != nil {
		return nil, fmt.Errorf("failed to generate metadata JSON: %w", err)
	}

	metadataFile := baseFilepath + "_metadata.json"
	if err := os.WriteFile(metadataFile, metadataJSON, 0644); err != nil {
		return nil, fmt.Errorf("failed to write metadata file: %w", err)
	}

	return &CSVExportResult{
		BooksFile:    booksFile,
		MetadataFile: metadataFile,
	}, nil
}

// WriteMarkdownExport exports a catalog to Markdown.
//
// Defaults to catalog.md as the filename.
func WriteMarkdownExport(export *models.CatalogExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = "catalog.md"
	}

	mdData, err := ExportToMarkdown(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate Markdown: %w", err)
	}

	if err := os.WriteFile(filepath, mdData, 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteTextExport exports a catalog to plain text format.
//
// Defaults to catalog.txt as the filename.
func WriteTextExport(export *models.CatalogExport, filepath string) (string, error) {
	if filepath == "" {
		filepath = "catalog.txt"
	}

	textData, err := ExportToText(export)
	if err != nil {
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if err := os.WriteFile(filepath, textData, 0644); err != nil {
		return "", fmt.Errorf("failed to write text file: %w", err)
	}

	return filepath, nil
}
