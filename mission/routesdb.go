// SPDX-License-Identifier: MIT

package mission

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/rebelnav/navodds/route"
)

const routesQuery = `SELECT ORIGIN, DESTINATION, TRAVEL_TIME FROM ROUTES`

// LoadRoutesDB reads every row of the ROUTES table of a SQLite database.
// The database is opened read-only; a missing file is ErrFileNotFound
// rather than a freshly created empty database.
func LoadRoutesDB(ctx context.Context, path string) ([]route.Route, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("mission: stat %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)")
	if err != nil {
		return nil, fmt.Errorf("mission: open %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, routesQuery)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %v", route.ErrMalformedInput, path, err)
	}
	defer rows.Close()

	var out []route.Route
	for rows.Next() {
		var (
			origin, dest sql.NullString
			tt           sql.NullInt64
		)
		if err := rows.Scan(&origin, &dest, &tt); err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %v", route.ErrMalformedInput, path, len(out)+1, err)
		}
		if !origin.Valid || !dest.Valid || !tt.Valid {
			return nil, fmt.Errorf("%w: %s row %d: null column", route.ErrMalformedInput, path, len(out)+1)
		}
		out = append(out, route.Route{
			Origin:      origin.String,
			Destination: dest.String,
			TravelTime:  int(tt.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("mission: read %s: %w", path, err)
	}

	return out, nil
}

// RoutesDBPath returns the resolved database path, or "" when the document
// has none.
func (f *Falcon) RoutesDBPath() string {
	if f.RoutesDB == "" {
		return ""
	}
	if filepath.IsAbs(f.RoutesDB) || f.baseDir == "" {
		return f.RoutesDB
	}
	return filepath.Join(f.baseDir, f.RoutesDB)
}

// LoadRoutes returns the inline routes followed by the database routes.
func (f *Falcon) LoadRoutes(ctx context.Context) ([]route.Route, error) {
	out := make([]route.Route, 0, len(f.Routes))
	for _, r := range f.Routes {
		out = append(out, route.Route{Origin: r.Origin, Destination: r.Destination, TravelTime: *r.TravelTime})
	}
	if p := f.RoutesDBPath(); p != "" {
		dbRoutes, err := LoadRoutesDB(ctx, p)
		if err != nil {
			return nil, err
		}
		out = append(out, dbRoutes...)
	}

	return out, nil
}
