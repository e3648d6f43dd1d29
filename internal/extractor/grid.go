package extractor

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/julianstephens/clockings/internal/constants"
)

// Row is one line of the terminal's clockings grid.
type Row struct {
	Timestamp   string
	Description string
}

// ParseGrid reads a saved clockings page and returns the rows matched by
// selector (constants.DefaultGridSelector when empty). The first matched row
// is the grid header and is skipped, as are rows without cells.
func ParseGrid(r io.Reader, selector string) ([]Row, error) {
	if selector == "" {
		selector = constants.DefaultGridSelector
	}

	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clockings page: %w", err)
	}

	trs := doc.Find(selector)
	if trs.Length() == 0 {
		return nil, fmt.Errorf("no rows matched %q: is this the clockings page?", selector)
	}

	var rows []Row
	trs.Slice(1, goquery.ToEnd).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() == 0 {
			return
		}
		row := Row{Timestamp: cellText(tds.Eq(0))}
		if tds.Length() > 1 {
			row.Description = cellText(tds.Eq(1))
		}
		rows = append(rows, row)
	})
	return rows, nil
}

func cellText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}
