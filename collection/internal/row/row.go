// Package row maps collections onto SQL rows for the relational adapters.
package row

import (
	"database/sql"

	"github.com/marcelsud/bookshelf/collection"
)

// Columns is the select list Scan expects, aliased on c.
const Columns = `c.id, c.title, c.icon`

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

func Scan(s Scanner) (collection.Collection, error) {
	var (
		c    collection.Collection
		icon sql.NullString
	)
	if err := s.Scan(&c.ID, &c.Title, &icon); err != nil {
		return collection.Collection{}, err
	}
	if icon.Valid {
		c.Icon = &icon.String
	}
	return c, nil
}

// ScanAll drains rows into a non-nil slice and closes them.
func ScanAll(rows *sql.Rows) ([]collection.Collection, error) {
	defer rows.Close()

	all := []collection.Collection{}
	for rows.Next() {
		c, err := Scan(rows)
		if err != nil {
			return nil, err
		}
		all = append(all, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return all, nil
}
